//go:build unit

package capacity_test

import (
	"testing"

	"weekchain-capacity/internal/domain/capacity"
	"weekchain-capacity/internal/domain/certificate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeCapacity(t *testing.T) {
	cases := []struct {
		name   string
		supply int
		want   int
	}{
		{name: "zero supply", supply: 0, want: 0},
		{name: "negative supply", supply: -10, want: 0},
		{name: "floor applies", supply: 10, want: 7},
		{name: "exact multiple", supply: 480, want: 336},
		{name: "one week", supply: 1, want: 0},
		{name: "fractional truncates down", supply: 55, want: 38}, // 38.5
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, capacity.SafeCapacity(tc.supply))
		})
	}
}

func TestUtilization(t *testing.T) {
	t.Run("zero capacity reports zero", func(t *testing.T) {
		assert.Zero(t, capacity.Utilization(100, 0))
		assert.Zero(t, capacity.Utilization(100, -5))
	})

	t.Run("percentage of safe capacity", func(t *testing.T) {
		assert.InDelta(t, 50.0, capacity.Utilization(168, 336), 1e-9)
		assert.InDelta(t, 100.0, capacity.Utilization(336, 336), 1e-9)
	})

	t.Run("can exceed 100", func(t *testing.T) {
		assert.Greater(t, capacity.Utilization(400, 336), 100.0)
	})
}

func TestProjectDemand(t *testing.T) {
	t.Run("empty counts", func(t *testing.T) {
		assert.Zero(t, capacity.ProjectDemand(certificate.ClassCounts{}))
	})

	t.Run("per class weighting", func(t *testing.T) {
		var counts certificate.ClassCounts
		counts.Add(certificate.StaysOne, 200)
		// 200 × 1 × 0.55
		assert.InDelta(t, 110.0, capacity.ProjectDemand(counts), 1e-9)
	})

	t.Run("all classes summed", func(t *testing.T) {
		var counts certificate.ClassCounts
		counts.Add(certificate.StaysOne, 10)   // 10 × 1 × 0.55 = 5.5
		counts.Add(certificate.StaysTwo, 10)   // 10 × 2 × 0.70 = 14
		counts.Add(certificate.StaysThree, 10) // 10 × 3 × 0.80 = 24
		counts.Add(certificate.StaysFour, 10)  // 10 × 4 × 0.85 = 34
		assert.InDelta(t, 77.5, capacity.ProjectDemand(counts), 1e-9)
	})
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		pct  float64
		want capacity.SystemStatus
	}{
		{name: "zero", pct: 0, want: capacity.StatusGreen},
		{name: "just below yellow", pct: 49.999, want: capacity.StatusGreen},
		{name: "yellow boundary", pct: 50, want: capacity.StatusYellow},
		{name: "just below red", pct: 64.999, want: capacity.StatusYellow},
		{name: "red boundary", pct: 65, want: capacity.StatusRed},
		{name: "far past red", pct: 120, want: capacity.StatusRed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, capacity.StatusFor(tc.pct))
		})
	}
}

func TestStatusMonotonicity(t *testing.T) {
	prev := capacity.StatusFor(0)
	for pct := 0.0; pct <= 130; pct += 0.5 {
		cur := capacity.StatusFor(pct)
		assert.True(t, cur.AtLeastAsSevere(prev), "status regressed at %.1f%%", pct)
		prev = cur
	}
}

func TestStopSaleFor(t *testing.T) {
	type want struct {
		enabled  [4]bool
		waitlist bool
	}
	cases := []struct {
		name string
		pct  float64
		want want
	}{
		{name: "healthy", pct: 30, want: want{enabled: [4]bool{true, true, true, true}}},
		{name: "just below first stop", pct: 64.999, want: want{enabled: [4]bool{true, true, true, true}}},
		{name: "first stop opens waitlist", pct: 65, want: want{enabled: [4]bool{false, true, true, true}, waitlist: true}},
		{name: "second stop", pct: 75, want: want{enabled: [4]bool{false, false, true, true}, waitlist: true}},
		{name: "just below full stop", pct: 84.999, want: want{enabled: [4]bool{false, false, true, true}, waitlist: true}},
		{name: "full stop", pct: 85, want: want{enabled: [4]bool{false, false, false, false}, waitlist: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			policy := capacity.StopSaleFor(tc.pct)
			for i, class := range certificate.AllStaysClasses() {
				assert.Equal(t, tc.want.enabled[i], policy.ClassEnabled(class), "class %d", class)
			}
			assert.Equal(t, tc.want.waitlist, policy.WaitlistEnabled)
		})
	}
}

func TestStopSaleCascadeOrder(t *testing.T) {
	// Once a class stops selling it must not re-enable at higher utilization,
	// and shorter-stay classes always stop no later than longer-stay ones.
	prev := capacity.StopSaleFor(0)
	for pct := 0.0; pct <= 130; pct += 0.5 {
		cur := capacity.StopSaleFor(pct)
		for _, class := range certificate.AllStaysClasses() {
			if !prev.ClassEnabled(class) {
				assert.False(t, cur.ClassEnabled(class), "class %d re-enabled at %.1f%%", class, pct)
			}
		}
		for i := 1; i < len(certificate.AllStaysClasses()); i++ {
			lower := certificate.AllStaysClasses()[i-1]
			higher := certificate.AllStaysClasses()[i]
			if cur.ClassEnabled(lower) {
				assert.True(t, cur.ClassEnabled(higher), "class %d stopped before class %d at %.1f%%", higher, lower, pct)
			}
		}
		if prev.WaitlistEnabled {
			assert.True(t, cur.WaitlistEnabled, "waitlist closed at %.1f%%", pct)
		}
		prev = cur
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("healthy portfolio", func(t *testing.T) {
		var counts certificate.ClassCounts
		counts.Add(certificate.StaysOne, 200)

		eval := capacity.Evaluate(480, counts)

		require.Equal(t, 336, eval.SafeCapacity)
		assert.InDelta(t, 110.0, eval.ProjectedDemand, 1e-9)
		assert.InDelta(t, 32.738, eval.UtilizationPct, 0.001)
		assert.Equal(t, capacity.StatusGreen, eval.Status)
		assert.True(t, eval.StopSale.ClassEnabled(certificate.StaysOne))
		assert.False(t, eval.StopSale.WaitlistEnabled)
	})

	t.Run("overheated portfolio stops short stays", func(t *testing.T) {
		var counts certificate.ClassCounts
		counts.Add(certificate.StaysTwo, 172) // 172 × 2 × 0.70 = 240.8

		eval := capacity.Evaluate(480, counts)

		require.Equal(t, 336, eval.SafeCapacity)
		assert.InDelta(t, 71.666, eval.UtilizationPct, 0.001)
		assert.Equal(t, capacity.StatusRed, eval.Status)
		assert.False(t, eval.StopSale.ClassEnabled(certificate.StaysOne))
		assert.True(t, eval.StopSale.ClassEnabled(certificate.StaysTwo))
		assert.True(t, eval.StopSale.ClassEnabled(certificate.StaysThree))
		assert.True(t, eval.StopSale.ClassEnabled(certificate.StaysFour))
		assert.True(t, eval.StopSale.WaitlistEnabled)
	})

	t.Run("no supply means zero utilization", func(t *testing.T) {
		var counts certificate.ClassCounts
		counts.Add(certificate.StaysFour, 50)

		eval := capacity.Evaluate(0, counts)

		assert.Zero(t, eval.SafeCapacity)
		assert.Zero(t, eval.UtilizationPct)
		assert.Equal(t, capacity.StatusGreen, eval.Status)
	})
}
