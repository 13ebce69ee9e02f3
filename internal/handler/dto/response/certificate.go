package response

import (
	"weekchain-capacity/internal/usecase/queries"
)

type StayEligibilityResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func FromStayEligibility(e *queries.StayEligibility) *StayEligibilityResponse {
	return &StayEligibilityResponse{
		Allowed: e.Allowed,
		Reason:  e.Reason,
	}
}

type MaintenanceResponse struct {
	Affected int64 `json:"affected"`
}
