//go:build unit

package certificate_test

import (
	"testing"

	"weekchain-capacity/internal/domain/certificate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaysClass(t *testing.T) {
	for stays := 1; stays <= 4; stays++ {
		class, err := certificate.NewStaysClass(stays)
		require.NoError(t, err)
		assert.Equal(t, stays, class.StaysPerYear())
		assert.True(t, class.Valid())
	}

	for _, invalid := range []int{0, -1, 5, 100} {
		_, err := certificate.NewStaysClass(invalid)
		assert.ErrorIs(t, err, certificate.ErrInvalidStaysClass, "stays=%d", invalid)
	}
}

func TestExpectedUsageRate(t *testing.T) {
	cases := []struct {
		class certificate.StaysClass
		rate  float64
	}{
		{certificate.StaysOne, 0.55},
		{certificate.StaysTwo, 0.70},
		{certificate.StaysThree, 0.80},
		{certificate.StaysFour, 0.85},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.rate, tc.class.ExpectedUsageRate(), 1e-9)
	}
	assert.Zero(t, certificate.StaysClass(0).ExpectedUsageRate())
}

func TestTierName(t *testing.T) {
	assert.Equal(t, "Silver", certificate.StaysOne.TierName())
	assert.Equal(t, "Gold", certificate.StaysTwo.TierName())
	assert.Equal(t, "Platinum", certificate.StaysThree.TierName())
	assert.Equal(t, "Signature", certificate.StaysFour.TierName())
	assert.Equal(t, "Unknown", certificate.StaysClass(9).TierName())
}

func TestNewPaxClass(t *testing.T) {
	for _, valid := range []int{2, 4, 6, 8} {
		pax, err := certificate.NewPaxClass(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, pax.MaxPax())
	}
	for _, invalid := range []int{0, 1, 3, 5, 7, 9} {
		_, err := certificate.NewPaxClass(invalid)
		assert.ErrorIs(t, err, certificate.ErrInvalidPaxClass, "pax=%d", invalid)
	}
}

func TestBucketPartySize(t *testing.T) {
	cases := []struct {
		partySize int
		want      certificate.PaxClass
	}{
		{1, certificate.PaxTwo},
		{2, certificate.PaxTwo},
		{3, certificate.PaxFour},
		{4, certificate.PaxFour},
		{5, certificate.PaxSix},
		{6, certificate.PaxSix},
		{7, certificate.PaxEight},
		{8, certificate.PaxEight},
		{15, certificate.PaxEight},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, certificate.BucketPartySize(tc.partySize), "party=%d", tc.partySize)
	}
}

func TestClampStays(t *testing.T) {
	assert.Equal(t, certificate.StaysOne, certificate.ClampStays(0))
	assert.Equal(t, certificate.StaysOne, certificate.ClampStays(-3))
	assert.Equal(t, certificate.StaysTwo, certificate.ClampStays(2))
	assert.Equal(t, certificate.StaysFour, certificate.ClampStays(4))
	assert.Equal(t, certificate.StaysFour, certificate.ClampStays(99))
}

func TestClassCounts(t *testing.T) {
	var counts certificate.ClassCounts
	counts.Add(certificate.StaysOne, 3)
	counts.Add(certificate.StaysOne, 2)
	counts.Add(certificate.StaysFour, 7)
	counts.Add(certificate.StaysClass(0), 100) // ignored

	assert.Equal(t, 5, counts.Count(certificate.StaysOne))
	assert.Equal(t, 0, counts.Count(certificate.StaysTwo))
	assert.Equal(t, 7, counts.Count(certificate.StaysFour))
	assert.Equal(t, 0, counts.Count(certificate.StaysClass(9)))
	assert.Equal(t, 12, counts.Total())
}
