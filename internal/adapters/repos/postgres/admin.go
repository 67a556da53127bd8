package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"

	"github.com/plotbay/plotbay-backend/internal/domain/admin"
	"github.com/plotbay/plotbay-backend/pkg/errorx"
	"github.com/plotbay/plotbay-backend/pkg/otelx"
	"github.com/plotbay/plotbay-backend/pkg/postgres"
	"github.com/plotbay/plotbay-backend/pkg/watermillx"
)

const insertAdminQuery = `
    INSERT INTO admins (id, name, email, mobile, pass_hash, image_url, is_active, is_deleted, registered_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

// adminExistsQuery reports both uniqueness verdicts in a single round trip,
// so a registration colliding on email and mobile hears about both at once.
const adminExistsQuery = `
    SELECT
        EXISTS(SELECT 1 FROM admins WHERE email = $1 AND NOT is_deleted),
        EXISTS(SELECT 1 FROM admins WHERE mobile = $2 AND NOT is_deleted);`

const selectAdminByEmailQuery = `
    SELECT id, name, email, mobile, pass_hash, image_url, is_active, is_deleted, registered_at
    FROM admins
    WHERE email = $1 AND NOT is_deleted;`

type AdminRepo struct {
	tracer  trace.Tracer
	logger  *slog.Logger
	pool    *pgxpool.Pool
	wlogger watermill.LoggerAdapter
}

// NewAdminRepo creates a new instance of AdminRepo.
//
// WARNING: panics if pool is nil
func NewAdminRepo(pool *pgxpool.Pool, wlogger watermill.LoggerAdapter, t trace.Tracer, l *slog.Logger) *AdminRepo {
	if pool == nil {
		panic("pgxpool.Pool cannot be nil")
	}
	if t == nil {
		t = tracer
	}
	if l == nil {
		l = logger
	}

	return &AdminRepo{
		tracer:  t,
		logger:  l,
		pool:    pool,
		wlogger: wlogger,
	}
}

// SaveAdmin inserts the admin and publishes its recorded events in one
// transaction. Duplicate email or mobile comes back as a conflict error
// carrying a message list per offending field, whether it was caught by the
// pre-insert check or by a unique index on a concurrent insert.
func (r *AdminRepo) SaveAdmin(ctx context.Context, a *admin.Admin) error {
	const op = "postgres.AdminRepo.SaveAdmin"
	ctx, span := r.tracer.Start(ctx, "AdminRepo.SaveAdmin")
	defer span.End()

	err := postgres.WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		var emailTaken, mobileTaken bool
		err := tx.QueryRow(ctx, adminExistsQuery, a.Email(), a.Mobile()).Scan(&emailTaken, &mobileTaken)
		if err != nil {
			otelx.RecordSpanError(span, err, "failed to check admin existence")
			return errorx.Wrap(err, op)
		}
		if emailTaken || mobileTaken {
			return conflictError(emailTaken, mobileTaken)
		}

		dto := DomainToAdminDTO(a)
		res, err := tx.Exec(ctx, insertAdminQuery,
			dto.ID,
			dto.Name,
			dto.Email,
			dto.Mobile,
			dto.PassHash,
			dto.ImageURL,
			dto.IsActive,
			dto.IsDeleted,
			dto.RegisteredAt,
		)
		if err != nil {
			if conflict, ok := uniqueViolation(err); ok {
				return conflict
			}
			otelx.RecordSpanError(span, err, "failed to insert admin")
			return errorx.Wrap(err, op)
		}
		if res.RowsAffected() == 0 {
			otelx.RecordSpanError(span, ErrNoRowsAffected, "no rows affected while inserting admin")
			return errorx.Wrap(ErrNoRowsAffected, op)
		}

		events := a.GetUncommittedEvents()
		if len(events) > 0 {
			if err := watermillx.Publish(ctx, tx, r.wlogger, events...); err != nil {
				otelx.RecordSpanError(span, err, "failed to publish events")
				return errorx.Wrap(err, op)
			}
		}
		return nil
	})
	if err != nil {
		if !errorx.IsConflict(err) {
			otelx.RecordSpanError(span, err, "failed to execute transaction")
		}
		return err
	}

	a.MarkEventsAsCommitted()
	return nil
}

func (r *AdminRepo) GetAdminByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	const op = "postgres.AdminRepo.GetAdminByEmail"
	ctx, span := r.tracer.Start(ctx, "AdminRepo.GetAdminByEmail")
	defer span.End()

	var dto AdminDTO
	err := r.pool.QueryRow(ctx, selectAdminByEmailQuery, email).Scan(
		&dto.ID,
		&dto.Name,
		&dto.Email,
		&dto.Mobile,
		&dto.PassHash,
		&dto.ImageURL,
		&dto.IsActive,
		&dto.IsDeleted,
		&dto.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorx.NewNotFound("admin not found").WithCause(err)
		}
		otelx.RecordSpanError(span, err, "failed to get admin by email")
		return nil, errorx.Wrap(err, op)
	}

	return AdminToDomain(dto), nil
}
