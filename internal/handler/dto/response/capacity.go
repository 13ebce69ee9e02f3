package response

import (
	"time"

	"weekchain-capacity/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SnapshotResponse struct {
	ID               string    `json:"id"`
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

func FromSnapshotView(v *queries.SnapshotView) *SnapshotResponse {
	var resp SnapshotResponse
	_ = copier.Copy(&resp, v)
	resp.ID = v.ID.String()
	return &resp
}

func FromSnapshotList(views []*queries.SnapshotView) []*SnapshotResponse {
	res := make([]*SnapshotResponse, len(views))
	for i, v := range views {
		res[i] = FromSnapshotView(v)
	}
	return res
}

type AvailabilityResponse struct {
	Available           bool   `json:"available"`
	Reason              string `json:"reason,omitempty"`
	RemainingForProduct int    `json:"remaining_for_product"`
	RemainingTotal      int    `json:"remaining_total"`
	WaitlistEnabled     bool   `json:"waitlist_enabled"`
}

func FromProductAvailability(a *queries.ProductAvailability) *AvailabilityResponse {
	var resp AvailabilityResponse
	_ = copier.Copy(&resp, a)
	return &resp
}

type TierAvailabilityResponse struct {
	Stays     int  `json:"stays"`
	Available bool `json:"available"`
}
