package property

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyPropertyName = errors.New("property name cannot be empty")
	ErrNegativeSupply    = errors.New("supply weeks cannot be negative")
	ErrInvalidCategory   = errors.New("property category must be A, B or C")
)

// DefaultSupplyWeeks applies when a property has no configured annual supply:
// by convention 4 of 52 weeks are reserved for operational and maintenance
// use.
const DefaultSupplyWeeks = 48

type Status string

const (
	StatusActive      Status = "active"
	StatusOffline     Status = "offline"
	StatusMaintenance Status = "maintenance"
	StatusRemoved     Status = "removed"
)

type Category string

const (
	CategoryA Category = "A"
	CategoryB Category = "B"
	CategoryC Category = "C"
)

// Property is a vacation unit contributing weekly supply while active.
// Creation and status transitions belong to the external property-management
// workflow; the engine only ever reads.
type Property struct {
	id          uuid.UUID
	name        string
	category    Category
	status      Status
	supplyWeeks int
}

func New(id uuid.UUID, name string, category Category, status Status, supplyWeeks int) (*Property, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyPropertyName
	}
	switch category {
	case CategoryA, CategoryB, CategoryC:
	default:
		return nil, ErrInvalidCategory
	}
	if supplyWeeks < 0 {
		return nil, ErrNegativeSupply
	}
	if supplyWeeks == 0 {
		supplyWeeks = DefaultSupplyWeeks
	}

	return &Property{
		id:          id,
		name:        strings.TrimSpace(name),
		category:    category,
		status:      status,
		supplyWeeks: supplyWeeks,
	}, nil
}

// ContributesSupply reports whether the property counts toward total supply.
func (p *Property) ContributesSupply() bool {
	return p.status == StatusActive
}

func (p *Property) ID() uuid.UUID      { return p.id }
func (p *Property) Name() string       { return p.name }
func (p *Property) Category() Category { return p.category }
func (p *Property) Status() Status     { return p.status }
func (p *Property) SupplyWeeks() int   { return p.supplyWeeks }
