//go:build unit || e2e

package builder

import (
	"time"

	"weekchain-capacity/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID           uuid.UUID
	MaxPax       int
	StaysPerYear int
	PriceUSD     int
	DisplayName  string
	IsActive     bool
	SalesEnabled bool
	BetaCap      int
	SoldCount    int
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:           uuid.New(),
		MaxPax:       2,
		StaysPerYear: 1,
		PriceUSD:     3500,
		DisplayName:  "Duo - 1 stay/year",
		IsActive:     true,
		SalesEnabled: true,
		BetaCap:      5,
		SoldCount:    0,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	now := time.Now()
	return &queries.ProductView{
		ID:           b.ID,
		MaxPax:       b.MaxPax,
		StaysPerYear: b.StaysPerYear,
		PriceUSD:     b.PriceUSD,
		DisplayName:  b.DisplayName,
		IsActive:     b.IsActive,
		SalesEnabled: b.SalesEnabled,
		BetaCap:      b.BetaCap,
		SoldCount:    b.SoldCount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
