package certificate

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrExpired          = errors.New("certificate has expired")
	ErrNotActive        = errors.New("certificate is not active")
	ErrNoStaysRemaining = errors.New("no stays remaining this year")
	ErrInvalidValidity  = errors.New("certificate validity window is invalid")
	ErrNegativePrice    = errors.New("purchase price cannot be negative")
	ErrInvalidAllowance = errors.New("remaining stays cannot exceed the annual entitlement")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// ValidityYears is the fixed lifetime of a sold certificate.
const ValidityYears = 15

// Certificate is a sold obligation: the holder's right to request vacation
// usage. The engine reads certificates, it never creates them; purchase and
// status transitions happen in the external purchase workflow.
type Certificate struct {
	id             uuid.UUID
	userID         uuid.UUID
	pax            PaxClass
	stays          StaysClass
	status         Status
	remainingStays int
	yearStart      time.Time
	endDate        time.Time
	priceUSD       int
	createdAt      time.Time
}

func New(
	id, userID uuid.UUID,
	pax PaxClass,
	stays StaysClass,
	status Status,
	remainingStays int,
	yearStart, endDate time.Time,
	priceUSD int,
) (*Certificate, error) {
	if !pax.Valid() {
		return nil, ErrInvalidPaxClass
	}
	if !stays.Valid() {
		return nil, ErrInvalidStaysClass
	}
	if endDate.Before(yearStart) {
		return nil, ErrInvalidValidity
	}
	if priceUSD < 0 {
		return nil, ErrNegativePrice
	}
	if remainingStays < 0 || remainingStays > stays.StaysPerYear() {
		return nil, ErrInvalidAllowance
	}

	return &Certificate{
		id:             id,
		userID:         userID,
		pax:            pax,
		stays:          stays,
		status:         status,
		remainingStays: remainingStays,
		yearStart:      yearStart,
		endDate:        endDate,
		priceUSD:       priceUSD,
	}, nil
}

// CanRequestStay reports whether the certificate may request a stay at time t.
// It returns the first blocking condition, mirroring the ordering the member
// area shows to holders.
func (c *Certificate) CanRequestStay(t time.Time) error {
	if c.status == StatusExpired {
		return ErrExpired
	}
	if c.status != StatusActive {
		return ErrNotActive
	}
	if c.endDate.Before(t) {
		return ErrExpired
	}
	if c.remainingStays <= 0 {
		return ErrNoStaysRemaining
	}
	return nil
}

// DueForAnnualReset reports whether a full entitlement year has elapsed since
// the current year window started.
func (c *Certificate) DueForAnnualReset(t time.Time) bool {
	return c.status == StatusActive && !c.yearStart.After(t.AddDate(-1, 0, 0))
}

func (c *Certificate) ID() uuid.UUID        { return c.id }
func (c *Certificate) UserID() uuid.UUID    { return c.userID }
func (c *Certificate) Pax() PaxClass        { return c.pax }
func (c *Certificate) Stays() StaysClass    { return c.stays }
func (c *Certificate) Status() Status       { return c.status }
func (c *Certificate) RemainingStays() int  { return c.remainingStays }
func (c *Certificate) YearStart() time.Time { return c.yearStart }
func (c *Certificate) EndDate() time.Time   { return c.endDate }
func (c *Certificate) PriceUSD() int        { return c.priceUSD }
func (c *Certificate) CreatedAt() time.Time { return c.createdAt }
