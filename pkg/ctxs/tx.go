package ctxs

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type ctxKey string

const txKey ctxKey = "pgxTxKey"

func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

func Tx(ctx context.Context) (pgx.Tx, bool) {
	val := ctx.Value(txKey)
	if val == nil {
		return nil, false
	}

	tx, ok := val.(pgx.Tx)
	return tx, ok
}
