package queries

import (
	"context"
	"errors"
	"log/slog"

	"weekchain-capacity/internal/domain/catalog"
	"weekchain-capacity/internal/domain/certificate"
	"weekchain-capacity/internal/infra"
	"weekchain-capacity/internal/pkg/errs"

	"github.com/google/uuid"
)

// GateMode selects the availability gate's failure policy.
type GateMode string

const (
	// GateModeStrict is the runtime policy: any persistence failure fails
	// closed (treated as capacity-exhausted).
	GateModeStrict GateMode = "strict"
	// GateModePermissive reports everything available. It exists for
	// bootstrap contexts with no payment backend and must stay out of the
	// runtime path.
	GateModePermissive GateMode = "permissive"
)

// Rejection reasons surfaced to callers, one per gate check.
const (
	ReasonProductNotFound   = "Product not found"
	ReasonProductInactive   = "Product is not active"
	ReasonSalesStopped      = "Sales are currently stopped for this product"
	ReasonBetaCapReached    = "Product beta cap reached"
	ReasonGlobalCapReached  = "Global beta cap reached"
	ReasonCapacityExhausted = "System capacity limit reached"
	ReasonEngineUnavailable = "Capacity engine unavailable"
)

// permissiveRemaining is the sentinel remaining count reported in permissive
// mode, where no caps are consulted.
const permissiveRemaining = 999

type AvailabilityQueries interface {
	IsProductAvailable(ctx context.Context, productID uuid.UUID) (*ProductAvailability, error)
	IsProductSpecAvailable(ctx context.Context, maxPax, staysPerYear int) (*ProductAvailability, error)
	IsTierAvailable(ctx context.Context, class certificate.StaysClass) bool
	RecommendProduct(partySize, desiredStays int) catalog.Recommendation
}

type availabilityQueriesImpl struct {
	products ProductReadStore
	capacity CapacityQueries
	mode     GateMode
}

func NewAvailabilityQueries(products ProductReadStore, capacity CapacityQueries, mode GateMode) AvailabilityQueries {
	return &availabilityQueriesImpl{
		products: products,
		capacity: capacity,
		mode:     mode,
	}
}

// IsProductAvailable runs the six gate checks in cost order: local product
// flags first, then the aggregate global-cap scan, then the cross-cutting
// capacity status. It short-circuits on the first failure and the returned
// decision always carries a reason for rejections. The error return is
// reserved for invalid input; persistence trouble degrades to a closed gate
// in strict mode.
func (q *availabilityQueriesImpl) IsProductAvailable(ctx context.Context, productID uuid.UUID) (*ProductAvailability, error) {
	if q.mode == GateModePermissive {
		return &ProductAvailability{
			Available:           true,
			RemainingForProduct: permissiveRemaining,
			RemainingTotal:      permissiveRemaining,
		}, nil
	}

	product, err := q.products.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return rejected(ReasonProductNotFound, 0, 0, false), nil
		}
		return q.failClosed(err), nil
	}

	return q.evaluateProduct(ctx, product)
}

func (q *availabilityQueriesImpl) IsProductSpecAvailable(ctx context.Context, maxPax, staysPerYear int) (*ProductAvailability, error) {
	if q.mode == GateModePermissive {
		return &ProductAvailability{
			Available:           true,
			RemainingForProduct: permissiveRemaining,
			RemainingTotal:      permissiveRemaining,
		}, nil
	}

	product, err := q.products.FindBySpec(ctx, maxPax, staysPerYear)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return rejected(ReasonProductNotFound, 0, 0, false), nil
		}
		return q.failClosed(err), nil
	}

	return q.evaluateProduct(ctx, product)
}

func (q *availabilityQueriesImpl) evaluateProduct(ctx context.Context, view *ProductView) (*ProductAvailability, error) {
	product, err := toDomainProduct(view)
	if err != nil {
		return q.failClosed(errs.Wrap(err, "invalid product record")), nil
	}

	if !product.IsActive() {
		return rejected(ReasonProductInactive, 0, 0, true), nil
	}
	if !product.SalesEnabled() {
		return rejected(ReasonSalesStopped, 0, 0, true), nil
	}

	remainingForProduct := product.Remaining()
	if remainingForProduct <= 0 {
		return rejected(ReasonBetaCapReached, 0, 0, true), nil
	}

	totalSold, err := q.products.SumSoldCount(ctx)
	if err != nil {
		return q.failClosed(err), nil
	}
	remainingTotal := catalog.TotalCertificatesAllowed - totalSold
	if remainingTotal <= 0 {
		return rejected(ReasonGlobalCapReached, remainingForProduct, 0, true), nil
	}

	snapshot, err := q.capacity.Latest(ctx)
	if err != nil {
		// No snapshot yet means the engine has never run; sales proceed on
		// product caps alone. Anything else fails closed.
		if !errors.Is(err, errs.ErrSnapshotNotFound) {
			return q.failClosed(err), nil
		}
	} else if snapshot.SystemStatus == "RED" {
		return rejected(ReasonCapacityExhausted, remainingForProduct, remainingTotal, true), nil
	}

	return &ProductAvailability{
		Available:           true,
		RemainingForProduct: remainingForProduct,
		RemainingTotal:      remainingTotal,
	}, nil
}

// IsTierAvailable reads only the latest snapshot's per-class flag: O(1)
// against the cache, for call sites that don't need the product-cap
// reasoning. No snapshot means no stop-sale has ever been derived, so sales
// default to open.
func (q *availabilityQueriesImpl) IsTierAvailable(ctx context.Context, class certificate.StaysClass) bool {
	if q.mode == GateModePermissive {
		return true
	}
	if !class.Valid() {
		return false
	}

	snapshot, err := q.capacity.Latest(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrSnapshotNotFound) {
			return true
		}
		slog.Warn("tier availability check degraded to closed", "error", err.Error())
		return false
	}

	return snapshot.ClassSalesEnabled(class)
}

func (q *availabilityQueriesImpl) RecommendProduct(partySize, desiredStays int) catalog.Recommendation {
	return catalog.RecommendProduct(partySize, desiredStays)
}

func toDomainProduct(view *ProductView) (*catalog.Product, error) {
	pax, err := certificate.NewPaxClass(view.MaxPax)
	if err != nil {
		return nil, err
	}
	stays, err := certificate.NewStaysClass(view.StaysPerYear)
	if err != nil {
		return nil, err
	}

	return catalog.NewProduct(
		view.ID,
		pax,
		stays,
		view.PriceUSD,
		view.DisplayName,
		view.IsActive,
		view.SalesEnabled,
		view.BetaCap,
		view.SoldCount,
	)
}

func (q *availabilityQueriesImpl) failClosed(err error) *ProductAvailability {
	slog.Warn("availability gate failing closed", "error", err.Error())
	return rejected(ReasonEngineUnavailable, 0, 0, false)
}

func rejected(reason string, remainingForProduct, remainingTotal int, waitlist bool) *ProductAvailability {
	return &ProductAvailability{
		Available:           false,
		Reason:              reason,
		RemainingForProduct: remainingForProduct,
		RemainingTotal:      remainingTotal,
		WaitlistEnabled:     waitlist,
	}
}
