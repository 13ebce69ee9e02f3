//go:build unit || e2e

package builder

import (
	"time"

	"weekchain-capacity/internal/usecase/queries"

	"github.com/google/uuid"
)

type SnapshotBuilder struct {
	CalculatedAt     time.Time
	TotalProperties  int
	ActiveProperties int
	TotalSupplyWeeks int
	SafeCapacity     int

	CertificatesSilver    int
	CertificatesGold      int
	CertificatesPlatinum  int
	CertificatesSignature int

	ProjectedDemand float64
	UtilizationPct  float64
	SystemStatus    string

	SilverSalesEnabled    bool
	GoldSalesEnabled      bool
	PlatinumSalesEnabled  bool
	SignatureSalesEnabled bool

	WaitlistEnabled bool
	WaitlistCount   int
}

// NewSnapshotBuilder defaults to a healthy GREEN system with all sales open.
func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		CalculatedAt:       time.Now(),
		TotalProperties:    12,
		ActiveProperties:   10,
		TotalSupplyWeeks:   480,
		SafeCapacity:       336,
		CertificatesSilver: 20,
		ProjectedDemand:    11,
		UtilizationPct:     3.27,
		SystemStatus:       "GREEN",

		SilverSalesEnabled:    true,
		GoldSalesEnabled:      true,
		PlatinumSalesEnabled:  true,
		SignatureSalesEnabled: true,
	}
}

func (b *SnapshotBuilder) With(mutate func(*SnapshotBuilder)) *SnapshotBuilder {
	mutate(b)
	return b
}

func (b *SnapshotBuilder) BuildView() *queries.SnapshotView {
	return &queries.SnapshotView{
		ID:               uuid.New(),
		CalculatedAt:     b.CalculatedAt,
		TotalProperties:  b.TotalProperties,
		ActiveProperties: b.ActiveProperties,
		TotalSupplyWeeks: b.TotalSupplyWeeks,
		SafeCapacity:     b.SafeCapacity,

		CertificatesSilver:    b.CertificatesSilver,
		CertificatesGold:      b.CertificatesGold,
		CertificatesPlatinum:  b.CertificatesPlatinum,
		CertificatesSignature: b.CertificatesSignature,

		ProjectedDemand: b.ProjectedDemand,
		UtilizationPct:  b.UtilizationPct,
		SystemStatus:    b.SystemStatus,

		SilverSalesEnabled:    b.SilverSalesEnabled,
		GoldSalesEnabled:      b.GoldSalesEnabled,
		PlatinumSalesEnabled:  b.PlatinumSalesEnabled,
		SignatureSalesEnabled: b.SignatureSalesEnabled,

		WaitlistEnabled: b.WaitlistEnabled,
		WaitlistCount:   b.WaitlistCount,
	}
}
