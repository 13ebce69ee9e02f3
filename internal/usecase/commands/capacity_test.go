//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"

	"weekchain-capacity/internal/domain/certificate"
	"weekchain-capacity/internal/infra"
	"weekchain-capacity/internal/pkg/errs"
	"weekchain-capacity/internal/usecase/commands"
	"weekchain-capacity/internal/usecase/queries"
	"weekchain-capacity/tests/common/builder"
	commandsmock "weekchain-capacity/tests/mock/commands"
	queriesmock "weekchain-capacity/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type capacityMocks struct {
	properties   *commandsmock.MockPropertyReader
	certificates *commandsmock.MockCertificateReader
	waitlist     *commandsmock.MockWaitlistReader
	snapshots    *commandsmock.MockSnapshotWriter
	cache        *queriesmock.MockSnapshotCache
}

func newCapacityCommandsTarget(t *testing.T) (commands.CapacityCommands, capacityMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := capacityMocks{
		properties:   commandsmock.NewMockPropertyReader(ctrl),
		certificates: commandsmock.NewMockCertificateReader(ctrl),
		waitlist:     commandsmock.NewMockWaitlistReader(ctrl),
		snapshots:    commandsmock.NewMockSnapshotWriter(ctrl),
		cache:        queriesmock.NewMockSnapshotCache(ctrl),
	}
	target := commands.NewCapacityCommands(m.properties, m.certificates, m.waitlist, m.snapshots, m.cache)
	return target, m
}

// propertyRecords builds active rows of 48 weeks each plus offline ones that
// must not count toward supply.
func propertyRecords(active, offline int) []commands.PropertyRecord {
	var records []commands.PropertyRecord
	for i := 0; i < active; i++ {
		records = append(records, commands.PropertyRecord{
			ID: uuid.New(), Name: fmt.Sprintf("Unit %d", i+1),
			Category: "A", Status: "active", SupplyWeeks: 48,
		})
	}
	for i := 0; i < offline; i++ {
		records = append(records, commands.PropertyRecord{
			ID: uuid.New(), Name: fmt.Sprintf("Offline %d", i+1),
			Category: "B", Status: "offline", SupplyWeeks: 48,
		})
	}
	return records
}

func (m capacityMocks) captureInsert(ctx context.Context, dest *commands.NewSnapshot, view *queries.SnapshotView) {
	m.snapshots.EXPECT().Insert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, snap commands.NewSnapshot) (*queries.SnapshotView, error) {
			*dest = snap
			return view, nil
		})
}

func TestRunCalculation(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy system appends a GREEN snapshot", func(t *testing.T) {
		target, m := newCapacityCommandsTarget(t)
		counts := certificate.ClassCounts{20, 0, 0, 0}

		m.properties.EXPECT().FindAll(ctx).Return(propertyRecords(10, 2), nil)
		m.certificates.EXPECT().CountActiveByClass(ctx).Return(counts, nil)
		m.waitlist.EXPECT().CountWaiting(ctx).Return(3, nil)

		view := builder.NewSnapshotBuilder().BuildView()
		var inserted commands.NewSnapshot
		m.captureInsert(ctx, &inserted, view)
		m.cache.EXPECT().Invalidate()

		got, err := target.RunCalculation(ctx)
		require.NoError(t, err)
		assert.Same(t, view, got)

		expected := commands.NewSnapshot{
			TotalProperties:     12,
			ActiveProperties:    10,
			TotalSupplyWeeks:    480,
			SafeCapacity:        336,
			CertificatesByClass: counts,
			ProjectedDemand:     11,
			UtilizationPct:      3.27,
			SystemStatus:        "GREEN",
			ClassSalesEnabled:   [certificate.NumStaysClasses]bool{true, true, true, true},
			WaitlistEnabled:     false,
			WaitlistCount:       3,
		}
		if diff := cmp.Diff(expected, inserted, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("overloaded system stops first-tier sales and opens the waitlist", func(t *testing.T) {
		target, m := newCapacityCommandsTarget(t)
		counts := certificate.ClassCounts{0, 172, 0, 0}

		m.properties.EXPECT().FindAll(ctx).Return(propertyRecords(10, 2), nil)
		m.certificates.EXPECT().CountActiveByClass(ctx).Return(counts, nil)
		m.waitlist.EXPECT().CountWaiting(ctx).Return(0, nil)

		var inserted commands.NewSnapshot
		m.captureInsert(ctx, &inserted, builder.NewSnapshotBuilder().BuildView())
		m.cache.EXPECT().Invalidate()

		_, err := target.RunCalculation(ctx)
		require.NoError(t, err)

		// 172 * 2 * 0.70 = 240.8 demand on 336 safe weeks: 71.67% utilized.
		assert.InDelta(t, 71.67, inserted.UtilizationPct, 1e-9)
		assert.Equal(t, "RED", inserted.SystemStatus)
		assert.Equal(t, [certificate.NumStaysClasses]bool{false, true, true, true}, inserted.ClassSalesEnabled)
		assert.True(t, inserted.WaitlistEnabled)
	})

	t.Run("invalid property records are skipped", func(t *testing.T) {
		target, m := newCapacityCommandsTarget(t)
		records := append(propertyRecords(2, 0), commands.PropertyRecord{
			ID: uuid.New(), Name: "Unclassified", Category: "Z", Status: "active", SupplyWeeks: 48,
		})

		m.properties.EXPECT().FindAll(ctx).Return(records, nil)
		m.certificates.EXPECT().CountActiveByClass(ctx).Return(certificate.ClassCounts{}, nil)
		m.waitlist.EXPECT().CountWaiting(ctx).Return(0, nil)

		var inserted commands.NewSnapshot
		m.captureInsert(ctx, &inserted, builder.NewSnapshotBuilder().BuildView())
		m.cache.EXPECT().Invalidate()

		_, err := target.RunCalculation(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, inserted.TotalProperties)
		assert.Equal(t, 2, inserted.ActiveProperties)
		assert.Equal(t, 96, inserted.TotalSupplyWeeks)
	})

	t.Run("supply read failure degrades to zero capacity", func(t *testing.T) {
		target, m := newCapacityCommandsTarget(t)

		m.properties.EXPECT().FindAll(ctx).
			Return(nil, infra.WrapRepoErr("query failed", assert.AnError))
		m.certificates.EXPECT().CountActiveByClass(ctx).Return(certificate.ClassCounts{5, 0, 0, 0}, nil)
		m.waitlist.EXPECT().CountWaiting(ctx).Return(0, nil)

		var inserted commands.NewSnapshot
		m.captureInsert(ctx, &inserted, builder.NewSnapshotBuilder().BuildView())
		m.cache.EXPECT().Invalidate()

		_, err := target.RunCalculation(ctx)
		require.NoError(t, err)
		assert.Zero(t, inserted.TotalSupplyWeeks)
		assert.Zero(t, inserted.SafeCapacity)
		assert.Equal(t, "GREEN", inserted.SystemStatus)
	})

	t.Run("certificate read failure degrades to zero demand", func(t *testing.T) {
		target, m := newCapacityCommandsTarget(t)

		m.properties.EXPECT().FindAll(ctx).Return(propertyRecords(10, 2), nil)
		m.certificates.EXPECT().CountActiveByClass(ctx).
			Return(certificate.ClassCounts{}, infra.WrapRepoErr("query failed", assert.AnError))
		m.waitlist.EXPECT().CountWaiting(ctx).Return(0, nil)

		var inserted commands.NewSnapshot
		m.captureInsert(ctx, &inserted, builder.NewSnapshotBuilder().BuildView())
		m.cache.EXPECT().Invalidate()

		_, err := target.RunCalculation(ctx)
		require.NoError(t, err)
		assert.Zero(t, inserted.ProjectedDemand)
		assert.Zero(t, inserted.UtilizationPct)
	})

	t.Run("insert failure surfaces and keeps the cache untouched", func(t *testing.T) {
		target, m := newCapacityCommandsTarget(t)

		m.properties.EXPECT().FindAll(ctx).Return(propertyRecords(10, 0), nil)
		m.certificates.EXPECT().CountActiveByClass(ctx).Return(certificate.ClassCounts{}, nil)
		m.waitlist.EXPECT().CountWaiting(ctx).Return(0, nil)
		m.snapshots.EXPECT().Insert(ctx, gomock.Any()).
			Return(nil, infra.WrapRepoErr("insert failed", assert.AnError))

		_, err := target.RunCalculation(ctx)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
