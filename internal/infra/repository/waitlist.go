package repository

import (
	"context"
	"errors"

	"weekchain-capacity/internal/infra"
	"weekchain-capacity/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WaitlistRepository struct {
	pool *pgxpool.Pool
}

func NewWaitlistRepository(pool *pgxpool.Pool) *WaitlistRepository {
	return &WaitlistRepository{pool: pool}
}

func (r *WaitlistRepository) Insert(ctx context.Context, entry commands.WaitlistEntry) error {
	const query = `
INSERT INTO certificate_waitlist (email, party_size, desired_stays)
VALUES ($1, $2, $3)`

	if _, err := r.pool.Exec(ctx, query, entry.Email, entry.PartySize, entry.DesiredStays); err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already on waitlist", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert waitlist entry", err)
	}
	return nil
}

func (r *WaitlistRepository) CountWaiting(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM certificate_waitlist WHERE status = 'waiting'`

	var n int
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count waitlist entries", err)
	}
	return n, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
