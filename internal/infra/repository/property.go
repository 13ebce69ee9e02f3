package repository

import (
	"context"

	"weekchain-capacity/internal/infra"
	"weekchain-capacity/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

// FindAll returns raw rows; status filtering and supply defaults live in the
// property entity, not here.
func (r *PropertyRepository) FindAll(ctx context.Context) ([]commands.PropertyRecord, error) {
	const query = `
SELECT id, name, category, status, supply_weeks_per_year
FROM supply_properties
ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties", err)
	}
	defer rows.Close()

	var records []commands.PropertyRecord
	for rows.Next() {
		var rec commands.PropertyRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Category, &rec.Status, &rec.SupplyWeeks); err != nil {
			return nil, infra.WrapRepoErr("failed to scan property row", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate property rows", err)
	}
	return records, nil
}
