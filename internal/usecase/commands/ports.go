package commands

import (
	"context"
	"time"

	"weekchain-capacity/internal/domain/certificate"
	"weekchain-capacity/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side ports. Repositories behind them own transactionality: the
// conditional sold_count increment in particular must be a single serialized
// statement at the persistence layer, never a read-modify-write here.

// PropertyRecord is a raw property row. The recalculation maps records
// through the property entity, which owns the supply-week default and the
// contributes-supply rule.
type PropertyRecord struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Status      string
	SupplyWeeks int
}

type PropertyReader interface {
	FindAll(ctx context.Context) ([]PropertyRecord, error)
}

type CertificateReader interface {
	CountActiveByClass(ctx context.Context) (certificate.ClassCounts, error)
}

type CertificateWriter interface {
	// ExpireOverdue marks active certificates past their validity end as
	// expired, returning how many were touched.
	ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error)
	// ResetAnnualAllowances restores the stay allowance and advances the
	// year window for certificates whose anniversary has passed.
	ResetAnnualAllowances(ctx context.Context, asOf time.Time) (int64, error)
}

// NewSnapshot carries every column of one immutable snapshot row.
type NewSnapshot struct {
	TotalProperties  int
	ActiveProperties int
	TotalSupplyWeeks int
	SafeCapacity     int

	CertificatesByClass certificate.ClassCounts

	ProjectedDemand float64
	UtilizationPct  float64
	SystemStatus    string

	ClassSalesEnabled [certificate.NumStaysClasses]bool

	WaitlistEnabled bool
	WaitlistCount   int
}

type SnapshotWriter interface {
	Insert(ctx context.Context, snap NewSnapshot) (*queries.SnapshotView, error)
}

// SaleRecord reports the product counters after a successful sale.
type SaleRecord struct {
	ProductID uuid.UUID
	SoldCount int
	BetaCap   int
}

type ProductWriter interface {
	// RecordSale atomically increments sold_count, failing when the product
	// cap or the global cap would be exceeded.
	RecordSale(ctx context.Context, productID uuid.UUID, globalCap int) (*SaleRecord, error)
	SetSalesEnabled(ctx context.Context, productID uuid.UUID, enabled bool) error
}

type WaitlistEntry struct {
	Email        string
	PartySize    int
	DesiredStays int
}

type WaitlistWriter interface {
	Insert(ctx context.Context, entry WaitlistEntry) error
}

type WaitlistReader interface {
	CountWaiting(ctx context.Context) (int, error)
}
