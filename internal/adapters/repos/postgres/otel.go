package postgres

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
)

var (
	tracer = otel.Tracer("plotbay/internal/adapters/repos/postgres")
	logger = otelslog.NewLogger("plotbay/internal/adapters/repos/postgres")
)
