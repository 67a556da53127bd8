package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/plotbay/plotbay-backend/internal/domain/admin"
	"github.com/plotbay/plotbay-backend/pkg/errorx"
)

var ErrNoRowsAffected = errors.New("no rows affected")

const (
	MsgEmailExists  = "Email already exists"
	MsgMobileExists = "Mobile number already exists"
)

func conflictError(emailTaken, mobileTaken bool) *errorx.Error {
	fields := make(map[string][]string, 2)
	if emailTaken {
		fields[admin.FieldEmail] = []string{MsgEmailExists}
	}
	if mobileTaken {
		fields[admin.FieldMobile] = []string{MsgMobileExists}
	}
	return errorx.NewConflict("admin already exists", fields)
}

// uniqueViolation maps a unique index violation to the same conflict shape
// as the pre-insert check, so a lost race reads identically to the client.
func uniqueViolation(err error) (*errorx.Error, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil, false
	}
	switch pgErr.ConstraintName {
	case "admins_email_unique":
		return conflictError(true, false), true
	case "admins_mobile_unique":
		return conflictError(false, true), true
	default:
		return nil, false
	}
}
