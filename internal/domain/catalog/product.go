package catalog

import (
	"errors"
	"strings"

	"weekchain-capacity/internal/domain/certificate"

	"github.com/google/uuid"
)

var (
	ErrEmptyDisplayName = errors.New("product display name cannot be empty")
	ErrNegativeBetaCap  = errors.New("beta cap cannot be negative")
	ErrSoldOverCap      = errors.New("sold count cannot exceed beta cap")
	ErrInvalidPrice     = errors.New("price must be positive")
)

// TotalCertificatesAllowed is the global beta ceiling across every SKU,
// independent of capacity utilization.
const TotalCertificatesAllowed = 68

// Product is a priced, capped SKU defined by a (max pax, stays per year)
// pair. sold_count <= beta_cap must hold after every successful sale; the
// conditional increment in the product repository is the sole enforcement
// point, the availability gate's pre-check is advisory.
type Product struct {
	id           uuid.UUID
	pax          certificate.PaxClass
	stays        certificate.StaysClass
	priceUSD     int
	displayName  string
	isActive     bool
	salesEnabled bool
	betaCap      int
	soldCount    int
}

func NewProduct(
	id uuid.UUID,
	pax certificate.PaxClass,
	stays certificate.StaysClass,
	priceUSD int,
	displayName string,
	isActive, salesEnabled bool,
	betaCap, soldCount int,
) (*Product, error) {
	if !pax.Valid() {
		return nil, certificate.ErrInvalidPaxClass
	}
	if !stays.Valid() {
		return nil, certificate.ErrInvalidStaysClass
	}
	if priceUSD <= 0 {
		return nil, ErrInvalidPrice
	}
	if strings.TrimSpace(displayName) == "" {
		return nil, ErrEmptyDisplayName
	}
	if betaCap < 0 {
		return nil, ErrNegativeBetaCap
	}
	if soldCount < 0 || soldCount > betaCap {
		return nil, ErrSoldOverCap
	}

	return &Product{
		id:           id,
		pax:          pax,
		stays:        stays,
		priceUSD:     priceUSD,
		displayName:  strings.TrimSpace(displayName),
		isActive:     isActive,
		salesEnabled: salesEnabled,
		betaCap:      betaCap,
		soldCount:    soldCount,
	}, nil
}

// Remaining is the number of units still sellable under this SKU's own cap.
func (p *Product) Remaining() int {
	remaining := p.betaCap - p.soldCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (p *Product) ID() uuid.UUID                 { return p.id }
func (p *Product) Pax() certificate.PaxClass     { return p.pax }
func (p *Product) Stays() certificate.StaysClass { return p.stays }
func (p *Product) PriceUSD() int                 { return p.priceUSD }
func (p *Product) DisplayName() string           { return p.displayName }
func (p *Product) IsActive() bool                { return p.isActive }
func (p *Product) SalesEnabled() bool            { return p.salesEnabled }
func (p *Product) BetaCap() int                  { return p.betaCap }
func (p *Product) SoldCount() int                { return p.soldCount }
