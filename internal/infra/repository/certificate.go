package repository

import (
	"context"
	"errors"
	"time"

	"weekchain-capacity/internal/domain/certificate"
	"weekchain-capacity/internal/infra"
	"weekchain-capacity/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CertificateRepository struct {
	pool *pgxpool.Pool
}

func NewCertificateRepository(pool *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{pool: pool}
}

func (r *CertificateRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.CertificateSnapshot, error) {
	const query = `
SELECT id, user_id, max_pax, stays_per_year, status, remaining_stays, year_start, end_date, price_usd
FROM user_certificates
WHERE id = $1`

	var c queries.CertificateSnapshot
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.MaxPax, &c.StaysPerYear, &c.Status,
		&c.RemainingStays, &c.YearStart, &c.EndDate, &c.PriceUSD,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("certificate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find certificate by ID", err)
	}
	return &c, nil
}

func (r *CertificateRepository) CountActiveByClass(ctx context.Context) (certificate.ClassCounts, error) {
	const query = `
SELECT stays_per_year, COUNT(*)
FROM user_certificates
WHERE status = 'active'
GROUP BY stays_per_year`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return certificate.ClassCounts{}, infra.WrapRepoErr("failed to count active certificates", err)
	}
	defer rows.Close()

	var counts certificate.ClassCounts
	for rows.Next() {
		var stays, n int
		if err := rows.Scan(&stays, &n); err != nil {
			return certificate.ClassCounts{}, infra.WrapRepoErr("failed to scan certificate counts", err)
		}
		class, err := certificate.NewStaysClass(stays)
		if err != nil {
			return certificate.ClassCounts{}, infra.WrapRepoErr("invalid stays class in storage", err, infra.KindCheckViolated)
		}
		counts.Add(class, n)
	}
	if err := rows.Err(); err != nil {
		return certificate.ClassCounts{}, infra.WrapRepoErr("failed to iterate certificate counts", err)
	}
	return counts, nil
}

func (r *CertificateRepository) ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	const query = `
UPDATE user_certificates
SET status = 'expired', updated_at = NOW()
WHERE status = 'active' AND end_date <= $1`

	tag, err := r.pool.Exec(ctx, query, asOf)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire certificates", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CertificateRepository) ResetAnnualAllowances(ctx context.Context, asOf time.Time) (int64, error) {
	const query = `
UPDATE user_certificates
SET remaining_stays = stays_per_year,
    year_start = year_start + INTERVAL '1 year',
    updated_at = NOW()
WHERE status = 'active'
  AND end_date > $1
  AND year_start + INTERVAL '1 year' <= $1`

	tag, err := r.pool.Exec(ctx, query, asOf)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reset annual allowances", err)
	}
	return tag.RowsAffected(), nil
}
