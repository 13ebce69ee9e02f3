package repository

import (
	"context"
	"errors"

	"weekchain-capacity/internal/domain/certificate"
	"weekchain-capacity/internal/infra"
	"weekchain-capacity/internal/usecase/commands"
	"weekchain-capacity/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const snapshotColumns = `
id, calculated_at, total_properties, active_properties, total_supply_weeks, safe_capacity,
total_certificates_silver, total_certificates_gold, total_certificates_platinum, total_certificates_signature,
projected_demand, capacity_utilization_pct, system_status,
silver_sales_enabled, gold_sales_enabled, platinum_sales_enabled, signature_sales_enabled,
waitlist_enabled, waitlist_count`

// SnapshotRepository persists capacity snapshots append-only. Rows are never
// updated or deleted; "latest" is strictly the newest calculated_at.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

func (r *SnapshotRepository) Insert(ctx context.Context, snap commands.NewSnapshot) (*queries.SnapshotView, error) {
	query := `
INSERT INTO capacity_engine_status (
    total_properties, active_properties, total_supply_weeks, safe_capacity,
    total_certificates_silver, total_certificates_gold, total_certificates_platinum, total_certificates_signature,
    projected_demand, capacity_utilization_pct, system_status,
    silver_sales_enabled, gold_sales_enabled, platinum_sales_enabled, signature_sales_enabled,
    waitlist_enabled, waitlist_count
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
RETURNING ` + snapshotColumns

	row := r.pool.QueryRow(ctx, query,
		snap.TotalProperties, snap.ActiveProperties, snap.TotalSupplyWeeks, snap.SafeCapacity,
		snap.CertificatesByClass.Count(certificate.StaysOne),
		snap.CertificatesByClass.Count(certificate.StaysTwo),
		snap.CertificatesByClass.Count(certificate.StaysThree),
		snap.CertificatesByClass.Count(certificate.StaysFour),
		snap.ProjectedDemand, snap.UtilizationPct, snap.SystemStatus,
		snap.ClassSalesEnabled[0], snap.ClassSalesEnabled[1], snap.ClassSalesEnabled[2], snap.ClassSalesEnabled[3],
		snap.WaitlistEnabled, snap.WaitlistCount,
	)

	var view queries.SnapshotView
	if err := scanSnapshot(row, &view); err != nil {
		return nil, infra.WrapRepoErr("failed to insert snapshot", err)
	}
	return &view, nil
}

func (r *SnapshotRepository) FindLatest(ctx context.Context) (*queries.SnapshotView, error) {
	query := `
SELECT ` + snapshotColumns + `
FROM capacity_engine_status
ORDER BY calculated_at DESC
LIMIT 1`

	var view queries.SnapshotView
	if err := scanSnapshot(r.pool.QueryRow(ctx, query), &view); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no snapshot recorded yet", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find latest snapshot", err)
	}
	return &view, nil
}

func (r *SnapshotRepository) FindRecent(ctx context.Context, limit int) ([]*queries.SnapshotView, error) {
	query := `
SELECT ` + snapshotColumns + `
FROM capacity_engine_status
ORDER BY calculated_at DESC
LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent snapshots", err)
	}
	defer rows.Close()

	var views []*queries.SnapshotView
	for rows.Next() {
		var v queries.SnapshotView
		if err := scanSnapshot(rows, &v); err != nil {
			return nil, infra.WrapRepoErr("failed to scan snapshot row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate snapshot rows", err)
	}
	return views, nil
}

func scanSnapshot(row pgx.Row, v *queries.SnapshotView) error {
	return row.Scan(
		&v.ID, &v.CalculatedAt, &v.TotalProperties, &v.ActiveProperties, &v.TotalSupplyWeeks, &v.SafeCapacity,
		&v.CertificatesSilver, &v.CertificatesGold, &v.CertificatesPlatinum, &v.CertificatesSignature,
		&v.ProjectedDemand, &v.UtilizationPct, &v.SystemStatus,
		&v.SilverSalesEnabled, &v.GoldSalesEnabled, &v.PlatinumSalesEnabled, &v.SignatureSalesEnabled,
		&v.WaitlistEnabled, &v.WaitlistCount,
	)
}
