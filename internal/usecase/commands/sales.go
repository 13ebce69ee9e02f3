package commands

import (
	"context"
	"errors"

	"weekchain-capacity/internal/domain/catalog"
	"weekchain-capacity/internal/infra"
	"weekchain-capacity/internal/pkg/errs"
	"weekchain-capacity/internal/usecase/queries"

	"github.com/google/uuid"
)

type RecordSaleResult struct {
	ProductID           uuid.UUID
	SoldCount           int
	RemainingForProduct int
}

type SalesCommands interface {
	// RecordSale is the authoritative cap enforcement, called from the
	// purchase-commit path after payment. The availability gate's pre-check
	// is an optimistic hint; this is where sold_count <= beta_cap actually
	// holds.
	RecordSale(ctx context.Context, productID uuid.UUID) (*RecordSaleResult, error)
	// SetProductSales is the admin kill switch for one SKU, independent of
	// the utilization-derived stop-sale flags.
	SetProductSales(ctx context.Context, productID uuid.UUID, enabled bool) error
	JoinWaitlist(ctx context.Context, entry WaitlistEntry) error
}

type salesCommandsImpl struct {
	products ProductWriter
	waitlist WaitlistWriter
	capacity queries.CapacityQueries
}

func NewSalesCommands(products ProductWriter, waitlist WaitlistWriter, capacity queries.CapacityQueries) SalesCommands {
	return &salesCommandsImpl{
		products: products,
		waitlist: waitlist,
		capacity: capacity,
	}
}

func (c *salesCommandsImpl) RecordSale(ctx context.Context, productID uuid.UUID) (*RecordSaleResult, error) {
	record, err := c.products.RecordSale(ctx, productID, catalog.TotalCertificatesAllowed)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrProductNotFound)
		case infra.IsKind(err, infra.KindCapExhausted):
			return nil, errs.Mark(err, errs.ErrBetaCapReached)
		case infra.IsKind(err, infra.KindCheckViolated):
			return nil, errs.Mark(err, errs.ErrGlobalCapReached)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return &RecordSaleResult{
		ProductID:           record.ProductID,
		SoldCount:           record.SoldCount,
		RemainingForProduct: record.BetaCap - record.SoldCount,
	}, nil
}

func (c *salesCommandsImpl) SetProductSales(ctx context.Context, productID uuid.UUID, enabled bool) error {
	if err := c.products.SetSalesEnabled(ctx, productID, enabled); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrProductNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// JoinWaitlist admits an entry only while the latest snapshot has the
// waitlist open; before the first snapshot there is nothing to wait for.
func (c *salesCommandsImpl) JoinWaitlist(ctx context.Context, entry WaitlistEntry) error {
	snapshot, err := c.capacity.Latest(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrSnapshotNotFound) {
			return errs.ErrWaitlistClosed
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !snapshot.WaitlistEnabled {
		return errs.ErrWaitlistClosed
	}

	if err := c.waitlist.Insert(ctx, entry); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(err, errs.ErrAlreadyOnWaitlist)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
