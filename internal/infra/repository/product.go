package repository

import (
	"context"
	"errors"

	"weekchain-capacity/internal/infra"
	"weekchain-capacity/internal/usecase/commands"
	"weekchain-capacity/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `
id, max_pax, stays_per_year, price_usd, display_name,
is_active, sales_enabled, beta_cap, sold_count, created_at, updated_at`

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	query := `SELECT ` + productColumns + ` FROM certificate_products WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "failed to find product by ID")
}

func (r *ProductRepository) FindBySpec(ctx context.Context, maxPax, staysPerYear int) (*queries.ProductView, error) {
	query := `SELECT ` + productColumns + ` FROM certificate_products WHERE max_pax = $1 AND stays_per_year = $2`
	return r.scanOne(r.pool.QueryRow(ctx, query, maxPax, staysPerYear), "failed to find product by spec")
}

func (r *ProductRepository) FindActive(ctx context.Context) ([]*queries.ProductView, error) {
	query := `SELECT ` + productColumns + `
FROM certificate_products
WHERE is_active
ORDER BY max_pax, stays_per_year`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active products", err)
	}
	defer rows.Close()

	var views []*queries.ProductView
	for rows.Next() {
		var v queries.ProductView
		if err := scanProduct(rows, &v); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return views, nil
}

func (r *ProductRepository) SumSoldCount(ctx context.Context) (int, error) {
	const query = `SELECT COALESCE(SUM(sold_count), 0) FROM certificate_products`

	var total int
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to sum sold counts", err)
	}
	return total, nil
}

// RecordSale increments sold_count inside one transaction. The global sum is
// taken with every catalog row locked FOR UPDATE, so two concurrent sales of
// different products serialize on the lock instead of both reading a stale
// total. The conditional UPDATE serializes buyers of the same product on its
// row lock.
func (r *ProductRepository) RecordSale(ctx context.Context, productID uuid.UUID, globalCap int) (*commands.SaleRecord, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin sale transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const lockAndSum = `
SELECT COALESCE(SUM(sold_count), 0)
FROM (SELECT sold_count FROM certificate_products FOR UPDATE) locked`

	var totalSold int
	if err := tx.QueryRow(ctx, lockAndSum).Scan(&totalSold); err != nil {
		return nil, infra.WrapRepoErr("failed to read global sold count", err)
	}
	if totalSold >= globalCap {
		return nil, infra.WrapRepoErr("global certificate cap reached", nil, infra.KindCheckViolated)
	}

	const update = `
UPDATE certificate_products
SET sold_count = sold_count + 1, updated_at = NOW()
WHERE id = $1
  AND is_active
  AND sales_enabled
  AND sold_count < beta_cap
RETURNING sold_count, beta_cap`

	var record commands.SaleRecord
	record.ProductID = productID
	err = tx.QueryRow(ctx, update, productID).Scan(&record.SoldCount, &record.BetaCap)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("failed to record sale", err)
		}
		// Distinguish a missing product from an exhausted or stopped one.
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM certificate_products WHERE id = $1)`, productID).Scan(&exists); err != nil {
			return nil, infra.WrapRepoErr("failed to check product existence", err)
		}
		if !exists {
			return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("product cap reached or sales stopped", nil, infra.KindCapExhausted)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit sale", err)
	}
	return &record, nil
}

func (r *ProductRepository) SetSalesEnabled(ctx context.Context, productID uuid.UUID, enabled bool) error {
	const query = `
UPDATE certificate_products
SET sales_enabled = $2, updated_at = NOW()
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, productID, enabled)
	if err != nil {
		return infra.WrapRepoErr("failed to update sales flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) scanOne(row pgx.Row, msg string) (*queries.ProductView, error) {
	var v queries.ProductView
	if err := scanProduct(row, &v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	return &v, nil
}

func scanProduct(row pgx.Row, v *queries.ProductView) error {
	return row.Scan(
		&v.ID, &v.MaxPax, &v.StaysPerYear, &v.PriceUSD, &v.DisplayName,
		&v.IsActive, &v.SalesEnabled, &v.BetaCap, &v.SoldCount, &v.CreatedAt, &v.UpdatedAt,
	)
}
