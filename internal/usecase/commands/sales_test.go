//go:build unit

package commands_test

import (
	"context"
	"testing"

	"weekchain-capacity/internal/infra"
	"weekchain-capacity/internal/pkg/errs"
	"weekchain-capacity/internal/usecase/commands"
	"weekchain-capacity/tests/common/builder"
	commandsmock "weekchain-capacity/tests/mock/commands"
	queriesmock "weekchain-capacity/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type salesMocks struct {
	products *commandsmock.MockProductWriter
	waitlist *commandsmock.MockWaitlistWriter
	capacity *queriesmock.MockCapacityQueries
}

func newSalesTarget(t *testing.T) (commands.SalesCommands, salesMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := salesMocks{
		products: commandsmock.NewMockProductWriter(ctrl),
		waitlist: commandsmock.NewMockWaitlistWriter(ctrl),
		capacity: queriesmock.NewMockCapacityQueries(ctrl),
	}
	return commands.NewSalesCommands(m.products, m.waitlist, m.capacity), m
}

func TestRecordSale(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	t.Run("successful sale reports the new counters", func(t *testing.T) {
		target, m := newSalesTarget(t)
		m.products.EXPECT().RecordSale(ctx, productID, 68).
			Return(&commands.SaleRecord{ProductID: productID, SoldCount: 3, BetaCap: 5}, nil)

		got, err := target.RecordSale(ctx, productID)
		require.NoError(t, err)
		assert.Equal(t, productID, got.ProductID)
		assert.Equal(t, 3, got.SoldCount)
		assert.Equal(t, 2, got.RemainingForProduct)
	})

	errorCases := []struct {
		name  string
		kind  infra.RepositoryErrorKind
		errIs error
	}{
		{"unknown product", infra.KindNotFound, errs.ErrProductNotFound},
		{"product cap exhausted", infra.KindCapExhausted, errs.ErrBetaCapReached},
		{"global cap exhausted", infra.KindCheckViolated, errs.ErrGlobalCapReached},
		{"persistence failure", infra.KindDBFailure, errs.ErrDatabaseOperationFailed},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			target, m := newSalesTarget(t)
			m.products.EXPECT().RecordSale(ctx, productID, 68).
				Return(nil, infra.WrapRepoErr("record sale", assert.AnError, tc.kind))

			_, err := target.RecordSale(ctx, productID)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestSetProductSales(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	t.Run("forwards the flag", func(t *testing.T) {
		target, m := newSalesTarget(t)
		m.products.EXPECT().SetSalesEnabled(ctx, productID, false).Return(nil)

		assert.NoError(t, target.SetProductSales(ctx, productID, false))
	})

	t.Run("unknown product", func(t *testing.T) {
		target, m := newSalesTarget(t)
		m.products.EXPECT().SetSalesEnabled(ctx, productID, true).
			Return(infra.WrapRepoErr("product not found", nil, infra.KindNotFound))

		err := target.SetProductSales(ctx, productID, true)
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})
}

func TestJoinWaitlist(t *testing.T) {
	ctx := context.Background()
	entry := commands.WaitlistEntry{Email: "guest@example.com", PartySize: 4, DesiredStays: 2}

	t.Run("admits while the waitlist is open", func(t *testing.T) {
		target, m := newSalesTarget(t)
		snapshot := builder.NewSnapshotBuilder().With(func(b *builder.SnapshotBuilder) {
			b.WaitlistEnabled = true
		}).BuildView()
		m.capacity.EXPECT().Latest(ctx).Return(snapshot, nil)
		m.waitlist.EXPECT().Insert(ctx, entry).Return(nil)

		assert.NoError(t, target.JoinWaitlist(ctx, entry))
	})

	t.Run("closed while the snapshot has the waitlist off", func(t *testing.T) {
		target, m := newSalesTarget(t)
		m.capacity.EXPECT().Latest(ctx).Return(builder.NewSnapshotBuilder().BuildView(), nil)

		err := target.JoinWaitlist(ctx, entry)
		assert.ErrorIs(t, err, errs.ErrWaitlistClosed)
	})

	t.Run("closed before the first snapshot", func(t *testing.T) {
		target, m := newSalesTarget(t)
		m.capacity.EXPECT().Latest(ctx).Return(nil, errs.ErrSnapshotNotFound)

		err := target.JoinWaitlist(ctx, entry)
		assert.ErrorIs(t, err, errs.ErrWaitlistClosed)
	})

	t.Run("duplicate email", func(t *testing.T) {
		target, m := newSalesTarget(t)
		snapshot := builder.NewSnapshotBuilder().With(func(b *builder.SnapshotBuilder) {
			b.WaitlistEnabled = true
		}).BuildView()
		m.capacity.EXPECT().Latest(ctx).Return(snapshot, nil)
		m.waitlist.EXPECT().Insert(ctx, entry).
			Return(infra.WrapRepoErr("duplicate waitlist email", assert.AnError, infra.KindDuplicateKey))

		err := target.JoinWaitlist(ctx, entry)
		assert.ErrorIs(t, err, errs.ErrAlreadyOnWaitlist)
	})

	t.Run("snapshot read failure", func(t *testing.T) {
		target, m := newSalesTarget(t)
		m.capacity.EXPECT().Latest(ctx).Return(nil, errs.ErrDatabaseOperationFailed)

		err := target.JoinWaitlist(ctx, entry)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
