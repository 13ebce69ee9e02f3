package capacity

import "weekchain-capacity/internal/domain/certificate"

// SystemStatus is the discrete health signal derived from utilization.
type SystemStatus string

const (
	StatusGreen  SystemStatus = "GREEN"
	StatusYellow SystemStatus = "YELLOW"
	// StatusOrange is retained for compatibility with historic snapshot rows;
	// the active policy goes straight from YELLOW to RED at 65%.
	StatusOrange SystemStatus = "ORANGE"
	StatusRed    SystemStatus = "RED"
)

// severity orders statuses for monotonicity checks.
func (s SystemStatus) severity() int {
	switch s {
	case StatusGreen:
		return 0
	case StatusYellow:
		return 1
	case StatusOrange:
		return 2
	case StatusRed:
		return 3
	default:
		return -1
	}
}

// AtLeastAsSevere reports whether s is at least as severe as other.
func (s SystemStatus) AtLeastAsSevere(other SystemStatus) bool {
	return s.severity() >= other.severity()
}

// StopSalePolicy says which stays classes may still sell and whether the
// waitlist is open. The flags are a global health measure: they depend only
// on utilization, not on which classes caused the demand.
type StopSalePolicy struct {
	enabled         [certificate.NumStaysClasses]bool
	WaitlistEnabled bool
}

func (p StopSalePolicy) ClassEnabled(class certificate.StaysClass) bool {
	if !class.Valid() {
		return false
	}
	return p.enabled[class-1]
}

// Evaluation is the full result of one capacity computation. It carries
// everything a snapshot row persists.
type Evaluation struct {
	TotalSupplyWeeks int
	SafeCapacity     int
	Counts           certificate.ClassCounts
	ProjectedDemand  float64
	UtilizationPct   float64
	Status           SystemStatus
	StopSale         StopSalePolicy
}
