package pgsql

import (
	"context"

	"github.com/juruweb/epms_backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository holds the shared pool handle and transaction plumbing the
// per-aggregate repositories embed.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// withTx runs fn inside a transaction: rolled back when fn errors, committed
// otherwise. The deferred rollback after a successful commit returns
// pgx.ErrTxClosed, which is ignored.
func (r *BaseRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}
