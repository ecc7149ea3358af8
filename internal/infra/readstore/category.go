package readstore

import (
	"context"

	"laundryhub/internal/infra/db"
	"laundryhub/internal/usecase/queries"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type CategoryReadStore struct {
	db db.DBTX
}

func NewCategoryReadStore(q db.DBTX) *CategoryReadStore {
	return &CategoryReadStore{db: q}
}

const categoryViewSQL = `
SELECT c.id,
       c.provider_id,
       p.shop_name,
       c.name,
       c.pricing_type,
       c.price,
       c.min_kilo,
       c.max_kilo,
       c.created_at
FROM categories c
JOIN users p ON p.id = c.provider_id`

func (r *CategoryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	var view queries.CategoryView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Get(ctx, r.db, &view, categoryViewSQL+" WHERE c.id = $1", id)
	})
	if err != nil {
		return nil, wrapReadErr("failed to find category", err)
	}
	return &view, nil
}

func (r *CategoryReadStore) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*queries.CategoryView, error) {
	var views []*queries.CategoryView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.db, &views,
			categoryViewSQL+" WHERE c.provider_id = $1 ORDER BY c.created_at DESC", providerID)
	})
	if err != nil {
		return nil, wrapReadErr("failed to list categories", err)
	}
	return views, nil
}
