package queries

import (
	"context"

	"weekchain-capacity/internal/infra"
	"weekchain-capacity/internal/pkg/errs"
)

const defaultHistoryLimit = 30

type CapacityQueries interface {
	// Latest returns the most recently calculated snapshot. Dashboard
	// consumers treat ErrSnapshotNotFound as "engine not yet run", not as a
	// failure.
	Latest(ctx context.Context) (*SnapshotView, error)
	History(ctx context.Context, limit int) ([]*SnapshotView, error)
}

type capacityQueriesImpl struct {
	store SnapshotReadStore
	cache SnapshotCache
}

func NewCapacityQueries(store SnapshotReadStore, cache SnapshotCache) CapacityQueries {
	return &capacityQueriesImpl{store: store, cache: cache}
}

func (q *capacityQueriesImpl) Latest(ctx context.Context) (*SnapshotView, error) {
	if view, ok := q.cache.Get(); ok {
		return view, nil
	}

	view, err := q.store.FindLatest(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSnapshotNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	q.cache.Set(view)
	return view, nil
}

func (q *capacityQueriesImpl) History(ctx context.Context, limit int) ([]*SnapshotView, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	views, err := q.store.FindRecent(ctx, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
