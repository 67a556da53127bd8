package integration

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/plotbay/plotbay-backend/pkg/postgres"
)

func (s *PostgresSuite) TestWithTxJoinsAmbientTransaction() {
	ctx := s.T().Context()

	var outer, inner pgx.Tx
	err := postgres.WithTx(ctx, s.pgPool, func(ctx context.Context, tx pgx.Tx) error {
		outer = tx
		return postgres.WithTx(ctx, s.pgPool, func(_ context.Context, tx pgx.Tx) error {
			inner = tx
			_, err := tx.Exec(ctx, `
				INSERT INTO admins (id, name, email, mobile, pass_hash, image_url, is_active, is_deleted, registered_at)
				VALUES (gen_random_uuid(), 'Jane Doe', 'nested@gmail.com', '9876501234', 'x', '', TRUE, FALSE, now())`)
			return err
		})
	})
	s.Require().NoError(err)
	s.Same(outer, inner)

	var count int
	s.Require().NoError(s.pgPool.QueryRow(ctx, `SELECT count(*) FROM admins WHERE email = 'nested@gmail.com'`).Scan(&count))
	s.Equal(1, count)
}

func (s *PostgresSuite) TestWithTxOuterRollbackDiscardsJoinedWork() {
	ctx := s.T().Context()

	wantErr := pgx.ErrTxClosed
	err := postgres.WithTx(ctx, s.pgPool, func(ctx context.Context, tx pgx.Tx) error {
		innerErr := postgres.WithTx(ctx, s.pgPool, func(_ context.Context, tx pgx.Tx) error {
			_, err := tx.Exec(ctx, `
				INSERT INTO admins (id, name, email, mobile, pass_hash, image_url, is_active, is_deleted, registered_at)
				VALUES (gen_random_uuid(), 'Jane Doe', 'discarded@gmail.com', '9876509999', 'x', '', TRUE, FALSE, now())`)
			return err
		})
		s.Require().NoError(innerErr)
		return wantErr
	})
	s.Require().ErrorIs(err, wantErr)

	var count int
	s.Require().NoError(s.pgPool.QueryRow(ctx, `SELECT count(*) FROM admins WHERE email = 'discarded@gmail.com'`).Scan(&count))
	s.Zero(count)
}
