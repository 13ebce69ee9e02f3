// Package capacity holds the pure supply/demand evaluation at the heart of
// the engine: given aggregate supply and projected demand it derives the
// utilization ratio, the discrete system status and the stop-sale policy.
// Nothing in this package performs I/O.
package capacity

import (
	"math"

	"weekchain-capacity/internal/domain/certificate"
)

// SafetyFactor derates raw supply to absorb scheduling friction (holds,
// blackout weeks, no-shows). Safe capacity is not meant to be
// 100%-allocatable.
const SafetyFactor = 0.70

// Utilization thresholds, in percent.
const (
	thresholdYellow  = 50 // below: GREEN
	thresholdRed     = 65 // below: YELLOW, at or above: RED
	thresholdStopOne = 65 // stays=1 stops selling, waitlist opens
	thresholdStopTwo = 75 // stays=1,2 stop selling
	thresholdStopAll = 85 // everything stops selling
)

// SafeCapacity returns floor(totalSupplyWeeks * SafetyFactor).
func SafeCapacity(totalSupplyWeeks int) int {
	if totalSupplyWeeks <= 0 {
		return 0
	}
	return int(math.Floor(float64(totalSupplyWeeks) * SafetyFactor))
}

// Utilization returns projected demand as a percentage of safe capacity,
// 0 when there is no capacity to measure against.
func Utilization(demand float64, safeCapacity int) float64 {
	if safeCapacity <= 0 {
		return 0
	}
	return demand / float64(safeCapacity) * 100
}

// ProjectDemand converts per-class active certificate counts into expected
// redemption load: count × staysPerYear × expectedUsageRate, summed over
// classes.
func ProjectDemand(counts certificate.ClassCounts) float64 {
	demand := 0.0
	for _, class := range certificate.AllStaysClasses() {
		demand += float64(counts.Count(class)) * float64(class.StaysPerYear()) * class.ExpectedUsageRate()
	}
	return demand
}

// StatusFor derives the system status from utilization. First match wins:
// <50 GREEN, <65 YELLOW, else RED. There is no ORANGE in the active policy.
func StatusFor(utilizationPct float64) SystemStatus {
	switch {
	case utilizationPct < thresholdYellow:
		return StatusGreen
	case utilizationPct < thresholdRed:
		return StatusYellow
	default:
		return StatusRed
	}
}

// StopSaleFor derives the stop-sale policy from utilization. The cascade
// throttles the cheapest, most numerous class first to preserve inventory
// for higher-commitment holders; the waitlist opens one threshold before the
// first stop so the transition is smooth.
func StopSaleFor(utilizationPct float64) StopSalePolicy {
	switch {
	case utilizationPct < thresholdStopOne:
		return StopSalePolicy{
			enabled:         [certificate.NumStaysClasses]bool{true, true, true, true},
			WaitlistEnabled: false,
		}
	case utilizationPct < thresholdStopTwo:
		return StopSalePolicy{
			enabled:         [certificate.NumStaysClasses]bool{false, true, true, true},
			WaitlistEnabled: true,
		}
	case utilizationPct < thresholdStopAll:
		return StopSalePolicy{
			enabled:         [certificate.NumStaysClasses]bool{false, false, true, true},
			WaitlistEnabled: true,
		}
	default:
		return StopSalePolicy{
			enabled:         [certificate.NumStaysClasses]bool{false, false, false, false},
			WaitlistEnabled: true,
		}
	}
}

// Evaluate runs the whole pipeline on two numbers and the class counts.
// Deterministic and I/O free so every policy boundary is unit-testable.
func Evaluate(totalSupplyWeeks int, counts certificate.ClassCounts) Evaluation {
	safe := SafeCapacity(totalSupplyWeeks)
	demand := ProjectDemand(counts)
	pct := Utilization(demand, safe)

	return Evaluation{
		TotalSupplyWeeks: totalSupplyWeeks,
		SafeCapacity:     safe,
		Counts:           counts,
		ProjectedDemand:  demand,
		UtilizationPct:   pct,
		Status:           StatusFor(pct),
		StopSale:         StopSaleFor(pct),
	}
}
