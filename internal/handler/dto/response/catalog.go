package response

import (
	"time"

	"weekchain-capacity/internal/domain/catalog"
	"weekchain-capacity/internal/usecase/queries"
)

type ProductResponse struct {
	ID           string    `json:"id"`
	MaxPax       int       `json:"max_pax"`
	StaysPerYear int       `json:"max_estancias_per_year"`
	PriceUSD     int       `json:"price_usd"`
	DisplayName  string    `json:"display_name"`
	IsActive     bool      `json:"is_active"`
	SalesEnabled bool      `json:"sales_enabled"`
	BetaCap      int       `json:"beta_cap"`
	SoldCount    int       `json:"sold_count"`
	Remaining    int       `json:"remaining"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:           v.ID.String(),
		MaxPax:       v.MaxPax,
		StaysPerYear: v.StaysPerYear,
		PriceUSD:     v.PriceUSD,
		DisplayName:  v.DisplayName,
		IsActive:     v.IsActive,
		SalesEnabled: v.SalesEnabled,
		BetaCap:      v.BetaCap,
		SoldCount:    v.SoldCount,
		Remaining:    v.BetaCap - v.SoldCount,
		CreatedAt:    v.CreatedAt,
	}
}

func FromProductList(views []*queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(views))
	for i, v := range views {
		res[i] = FromProductView(v)
	}
	return res
}

type RecommendationResponse struct {
	MaxPax   int `json:"max_pax"`
	Stays    int `json:"stays"`
	PriceUSD int `json:"price_usd"`
}

func FromRecommendation(r catalog.Recommendation) *RecommendationResponse {
	return &RecommendationResponse{
		MaxPax:   int(r.Pax),
		Stays:    int(r.Stays),
		PriceUSD: r.PriceUSD,
	}
}

type SaleResponse struct {
	ProductID           string `json:"product_id"`
	SoldCount           int    `json:"sold_count"`
	RemainingForProduct int    `json:"remaining_for_product"`
}
