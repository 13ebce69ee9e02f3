package commands

import (
	"context"
	"log/slog"
	"math"

	"weekchain-capacity/internal/domain/capacity"
	"weekchain-capacity/internal/domain/certificate"
	"weekchain-capacity/internal/domain/property"
	"weekchain-capacity/internal/pkg/errs"
	"weekchain-capacity/internal/usecase/queries"
)

type CapacityCommands interface {
	// RunCalculation performs one full supply/demand evaluation and appends
	// an immutable snapshot row. Triggering is the caller's concern (after a
	// sale, on a timer, from an admin view); the engine never schedules
	// itself.
	RunCalculation(ctx context.Context) (*queries.SnapshotView, error)
}

type capacityCommandsImpl struct {
	properties   PropertyReader
	certificates CertificateReader
	waitlist     WaitlistReader
	snapshots    SnapshotWriter
	cache        queries.SnapshotCache
}

func NewCapacityCommands(
	properties PropertyReader,
	certificates CertificateReader,
	waitlist WaitlistReader,
	snapshots SnapshotWriter,
	cache queries.SnapshotCache,
) CapacityCommands {
	return &capacityCommandsImpl{
		properties:   properties,
		certificates: certificates,
		waitlist:     waitlist,
		snapshots:    snapshots,
		cache:        cache,
	}
}

func (c *capacityCommandsImpl) RunCalculation(ctx context.Context) (*queries.SnapshotView, error) {
	// Supply and demand reads degrade to zero rather than failing the run:
	// the consumer is a sales gate, and "no capacity" is the safe default.
	records, err := c.properties.FindAll(ctx)
	if err != nil {
		slog.Error("failed to read properties, defaulting supply to zero", "error", err.Error())
		records = nil
	}

	var totalSupply, totalProps, activeProps int
	for _, rec := range records {
		prop, err := property.New(rec.ID, rec.Name, property.Category(rec.Category), property.Status(rec.Status), rec.SupplyWeeks)
		if err != nil {
			slog.Warn("skipping invalid property record", "property_id", rec.ID.String(), "error", err.Error())
			continue
		}
		totalProps++
		if prop.ContributesSupply() {
			activeProps++
			totalSupply += prop.SupplyWeeks()
		}
	}

	counts, err := c.certificates.CountActiveByClass(ctx)
	if err != nil {
		slog.Error("failed to read certificate counts, defaulting to zero", "error", err.Error())
		counts = certificate.ClassCounts{}
	}

	eval := capacity.Evaluate(totalSupply, counts)

	waitlistCount, err := c.waitlist.CountWaiting(ctx)
	if err != nil {
		slog.Warn("failed to read waitlist count", "error", err.Error())
		waitlistCount = 0
	}

	snap := NewSnapshot{
		TotalProperties:     totalProps,
		ActiveProperties:    activeProps,
		TotalSupplyWeeks:    eval.TotalSupplyWeeks,
		SafeCapacity:        eval.SafeCapacity,
		CertificatesByClass: eval.Counts,
		ProjectedDemand:     eval.ProjectedDemand,
		UtilizationPct:      math.Round(eval.UtilizationPct*100) / 100,
		SystemStatus:        string(eval.Status),
		WaitlistEnabled:     eval.StopSale.WaitlistEnabled,
		WaitlistCount:       waitlistCount,
	}
	for _, class := range certificate.AllStaysClasses() {
		snap.ClassSalesEnabled[class-1] = eval.StopSale.ClassEnabled(class)
	}

	view, err := c.snapshots.Insert(ctx, snap)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.cache.Invalidate()
	return view, nil
}
