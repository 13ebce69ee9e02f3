//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProperty(t *testing.T, db DBLike, name string, supplyWeeks int) uuid.UUID {
	t.Helper()

	propertyID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO supply_properties (id, name, category, status, supply_weeks_per_year) VALUES ($1, $2, 'A', 'active', $3)",
		propertyID, name, supplyWeeks)
	require.NoError(t, err)

	return propertyID
}

func CreateTestCertificate(t *testing.T, db DBLike, maxPax, staysPerYear int, status string) uuid.UUID {
	t.Helper()

	certID := uuid.New()
	yearStart := time.Now().UTC().AddDate(0, -1, 0)
	remaining := staysPerYear
	if status == "expired" || status == "cancelled" {
		remaining = 0
	}

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO user_certificates
		   (id, user_id, max_pax, stays_per_year, status, remaining_stays, year_start, end_date, price_usd)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		certID, uuid.New(), maxPax, staysPerYear, status, remaining,
		yearStart, yearStart.AddDate(15, 0, 0), 3500)
	require.NoError(t, err)

	return certID
}

func ProductIDBySpec(t *testing.T, db DBLike, maxPax, staysPerYear int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM certificate_products WHERE max_pax = $1 AND stays_per_year = $2",
		maxPax, staysPerYear).Scan(&id)
	require.NoError(t, err)

	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates the mutable tables and restores the seeded catalog state.
// The product rows themselves are seeded by migrations, so they are reset in
// place instead of truncated.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version', 'certificate_products')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	_, err := pool.Exec(ctx,
		"UPDATE certificate_products SET sold_count = 0, sales_enabled = TRUE, is_active = TRUE")
	return err
}
