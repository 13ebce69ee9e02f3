package queries

import (
	"context"

	"weekchain-capacity/internal/infra"
	"weekchain-capacity/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	ListProducts(ctx context.Context) ([]*ProductView, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type catalogQueriesImpl struct {
	products ProductReadStore
}

func NewCatalogQueries(products ProductReadStore) CatalogQueries {
	return &catalogQueriesImpl{products: products}
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context) ([]*ProductView, error) {
	views, err := q.products.FindActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	view, err := q.products.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrProductNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
