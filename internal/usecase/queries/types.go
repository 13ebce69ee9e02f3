package queries

import (
	"context"
	"time"

	"weekchain-capacity/internal/domain/certificate"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// SnapshotView is one immutable capacity computation result. The per-tier
// column names are the legacy persistence names; the index-based accessors
// map them back onto stays classes.
type SnapshotView struct {
	ID               uuid.UUID `json:"id"`
	CalculatedAt     time.Time `json:"calculated_at"`
	TotalProperties  int       `json:"total_properties"`
	ActiveProperties int       `json:"active_properties"`
	TotalSupplyWeeks int       `json:"total_supply_weeks"`
	SafeCapacity     int       `json:"safe_capacity"`

	CertificatesSilver    int `json:"total_certificates_silver"`
	CertificatesGold      int `json:"total_certificates_gold"`
	CertificatesPlatinum  int `json:"total_certificates_platinum"`
	CertificatesSignature int `json:"total_certificates_signature"`

	ProjectedDemand float64 `json:"projected_demand"`
	UtilizationPct  float64 `json:"capacity_utilization_pct"`
	SystemStatus    string  `json:"system_status"`

	SilverSalesEnabled    bool `json:"silver_sales_enabled"`
	GoldSalesEnabled      bool `json:"gold_sales_enabled"`
	PlatinumSalesEnabled  bool `json:"platinum_sales_enabled"`
	SignatureSalesEnabled bool `json:"signature_sales_enabled"`

	WaitlistEnabled bool `json:"waitlist_enabled"`
	WaitlistCount   int  `json:"waitlist_count"`
}

// ClassSalesEnabled returns the snapshot's stop-sale flag for a stays class.
func (v *SnapshotView) ClassSalesEnabled(class certificate.StaysClass) bool {
	switch class {
	case certificate.StaysOne:
		return v.SilverSalesEnabled
	case certificate.StaysTwo:
		return v.GoldSalesEnabled
	case certificate.StaysThree:
		return v.PlatinumSalesEnabled
	case certificate.StaysFour:
		return v.SignatureSalesEnabled
	default:
		return false
	}
}

type ProductView struct {
	ID           uuid.UUID `json:"id"`
	MaxPax       int       `json:"max_pax"`
	StaysPerYear int       `json:"max_estancias_per_year"`
	PriceUSD     int       `json:"price_usd"`
	DisplayName  string    `json:"display_name"`
	IsActive     bool      `json:"is_active"`
	SalesEnabled bool      `json:"sales_enabled"`
	BetaCap      int       `json:"beta_cap"`
	SoldCount    int       `json:"sold_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductAvailability is the availability gate's decision. It is a structured
// result, never an error: expected "not available" outcomes carry a reason
// string instead of raising.
type ProductAvailability struct {
	Available           bool   `json:"available"`
	Reason              string `json:"reason,omitempty"`
	RemainingForProduct int    `json:"remaining_for_product"`
	RemainingTotal      int    `json:"remaining_total"`
	WaitlistEnabled     bool   `json:"waitlist_enabled"`
}

// StayEligibility is the certificate usability decision.
type StayEligibility struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

type CertificateSnapshot struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	MaxPax         int
	StaysPerYear   int
	Status         string
	RemainingStays int
	YearStart      time.Time
	EndDate        time.Time
	PriceUSD       int
}

// SnapshotReadStore is the read side of the append-only snapshot history.
type SnapshotReadStore interface {
	FindLatest(ctx context.Context) (*SnapshotView, error)
	FindRecent(ctx context.Context, limit int) ([]*SnapshotView, error)
}

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindBySpec(ctx context.Context, maxPax, staysPerYear int) (*ProductView, error)
	FindActive(ctx context.Context) ([]*ProductView, error)
	SumSoldCount(ctx context.Context) (int, error)
}

type CertificateReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CertificateSnapshot, error)
}

// SnapshotCache is the L1 cache in front of the latest snapshot row. Reads
// on the purchase path hit it on every request, so it must be cheap.
type SnapshotCache interface {
	Get() (*SnapshotView, bool)
	Set(view *SnapshotView)
	Invalidate()
}
