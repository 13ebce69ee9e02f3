package certificate

import "errors"

var (
	ErrInvalidStaysClass = errors.New("stays per year must be between 1 and 4")
	ErrInvalidPaxClass   = errors.New("max pax must be one of 2, 4, 6, 8")
)

// StaysClass is the canonical certificate classification: how many stays per
// year the certificate entitles its holder to. The legacy named tiers
// (Silver..Signature) are a display mapping over it, not a separate model.
type StaysClass int

const (
	StaysOne StaysClass = iota + 1
	StaysTwo
	StaysThree
	StaysFour

	NumStaysClasses = 4
)

func NewStaysClass(staysPerYear int) (StaysClass, error) {
	if staysPerYear < 1 || staysPerYear > NumStaysClasses {
		return 0, ErrInvalidStaysClass
	}
	return StaysClass(staysPerYear), nil
}

func (c StaysClass) StaysPerYear() int { return int(c) }

func (c StaysClass) Valid() bool { return c >= StaysOne && c <= StaysFour }

// ExpectedUsageRate is the empirical fraction of the entitlement actually
// redeemed for this class. It deliberately under-counts relative to full
// entitlement; the separate 0.70 safety factor is stacked on top of it and
// the two must not be conflated.
func (c StaysClass) ExpectedUsageRate() float64 {
	switch c {
	case StaysOne:
		return 0.55
	case StaysTwo:
		return 0.70
	case StaysThree:
		return 0.80
	case StaysFour:
		return 0.85
	default:
		return 0
	}
}

// TierName returns the legacy marketing tier for a class. Display only.
func (c StaysClass) TierName() string {
	switch c {
	case StaysOne:
		return "Silver"
	case StaysTwo:
		return "Gold"
	case StaysThree:
		return "Platinum"
	case StaysFour:
		return "Signature"
	default:
		return "Unknown"
	}
}

// PaxClass is the party-size bucket a certificate or product is sold for.
type PaxClass int

const (
	PaxTwo   PaxClass = 2
	PaxFour  PaxClass = 4
	PaxSix   PaxClass = 6
	PaxEight PaxClass = 8
)

func NewPaxClass(maxPax int) (PaxClass, error) {
	switch maxPax {
	case 2, 4, 6, 8:
		return PaxClass(maxPax), nil
	default:
		return 0, ErrInvalidPaxClass
	}
}

func (p PaxClass) MaxPax() int { return int(p) }

func (p PaxClass) Valid() bool {
	_, err := NewPaxClass(int(p))
	return err == nil
}

// BucketPartySize maps a raw party size onto the smallest bucket that fits,
// capped at 8.
func BucketPartySize(partySize int) PaxClass {
	switch {
	case partySize <= 2:
		return PaxTwo
	case partySize <= 4:
		return PaxFour
	case partySize <= 6:
		return PaxSix
	default:
		return PaxEight
	}
}

// ClampStays clamps a raw desired stay count into the valid class range.
func ClampStays(desiredStays int) StaysClass {
	if desiredStays < 1 {
		return StaysOne
	}
	if desiredStays > NumStaysClasses {
		return StaysFour
	}
	return StaysClass(desiredStays)
}

// ClassCounts holds active certificate counts per stays class; index 0 is
// StaysOne.
type ClassCounts [NumStaysClasses]int

func (c ClassCounts) Count(class StaysClass) int {
	if !class.Valid() {
		return 0
	}
	return c[class-1]
}

func (c *ClassCounts) Add(class StaysClass, n int) {
	if class.Valid() {
		c[class-1] += n
	}
}

func (c ClassCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// AllStaysClasses lists the classes in ascending value order, which is also
// the stop-sale cascade order (lowest value throttled first).
func AllStaysClasses() []StaysClass {
	return []StaysClass{StaysOne, StaysTwo, StaysThree, StaysFour}
}
