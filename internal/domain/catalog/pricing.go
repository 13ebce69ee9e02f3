package catalog

import "weekchain-capacity/internal/domain/certificate"

type classKey struct {
	pax   certificate.PaxClass
	stays certificate.StaysClass
}

// priceTableUSD is the locked beta price list per (pax, stays) SKU.
var priceTableUSD = map[classKey]int{
	{certificate.PaxTwo, certificate.StaysOne}:     3500,
	{certificate.PaxTwo, certificate.StaysTwo}:     6000,
	{certificate.PaxTwo, certificate.StaysThree}:   8000,
	{certificate.PaxTwo, certificate.StaysFour}:    10000,
	{certificate.PaxFour, certificate.StaysOne}:    5000,
	{certificate.PaxFour, certificate.StaysTwo}:    9000,
	{certificate.PaxFour, certificate.StaysThree}:  12000,
	{certificate.PaxFour, certificate.StaysFour}:   15000,
	{certificate.PaxSix, certificate.StaysOne}:     7500,
	{certificate.PaxSix, certificate.StaysTwo}:     13000,
	{certificate.PaxSix, certificate.StaysThree}:   18000,
	{certificate.PaxSix, certificate.StaysFour}:    20000,
	{certificate.PaxEight, certificate.StaysOne}:   10000,
	{certificate.PaxEight, certificate.StaysTwo}:   15000,
	{certificate.PaxEight, certificate.StaysThree}: 20000,
	{certificate.PaxEight, certificate.StaysFour}:  25000,
}

// ProductPrice returns the catalog price for a (pax, stays) pair, 0 when no
// such SKU exists.
func ProductPrice(pax certificate.PaxClass, stays certificate.StaysClass) int {
	return priceTableUSD[classKey{pax, stays}]
}

// Recommendation maps raw user input onto a catalog SKU key.
type Recommendation struct {
	Pax      certificate.PaxClass
	Stays    certificate.StaysClass
	PriceUSD int
}

// RecommendProduct buckets the party size into the smallest pax class that
// fits (capped at 8) and clamps the desired stay count into [1,4].
func RecommendProduct(partySize, desiredStays int) Recommendation {
	pax := certificate.BucketPartySize(partySize)
	stays := certificate.ClampStays(desiredStays)

	return Recommendation{
		Pax:      pax,
		Stays:    stays,
		PriceUSD: ProductPrice(pax, stays),
	}
}
