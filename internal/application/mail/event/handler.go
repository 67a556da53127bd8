package mailevent

import (
	"context"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"

	"github.com/plotbay/plotbay-backend/internal/domain/valueobject/mails"
)

var (
	tracer = otel.Tracer("plotbay/application/mail/event")
	logger = otelslog.NewLogger("plotbay/application/mail/event")
)

type MailSender interface {
	SendMail(ctx context.Context, payload mails.Payload) error
}
