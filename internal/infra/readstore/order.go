package readstore

import (
	"context"

	"laundryhub/internal/infra/db"
	"laundryhub/internal/usecase/queries"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(q db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: q}
}

const orderViewSQL = `
SELECT o.id,
       o.booking_id,
       o.customer_id,
       cu.full_name AS customer_name,
       o.provider_id,
       pr.shop_name,
       o.status,
       o.delivery_option,
       o.notes,
       o.total_cost,
       o.created_at
FROM orders o
JOIN users cu ON cu.id = o.customer_id
JOIN users pr ON pr.id = o.provider_id`

func (r *OrderReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.OrderView, error) {
	var views []*queries.OrderView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.db, &views,
			orderViewSQL+" WHERE o.customer_id = $1 ORDER BY o.created_at DESC", customerID)
	})
	if err != nil {
		return nil, wrapReadErr("failed to list orders by customer", err)
	}
	return views, nil
}

func (r *OrderReadStore) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*queries.OrderView, error) {
	var views []*queries.OrderView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.db, &views,
			orderViewSQL+" WHERE o.provider_id = $1 ORDER BY o.created_at DESC", providerID)
	})
	if err != nil {
		return nil, wrapReadErr("failed to list orders by provider", err)
	}
	return views, nil
}
