package readstore

import (
	"context"

	"laundryhub/internal/infra/db"
	"laundryhub/internal/usecase/queries"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type ReceiptReadStore struct {
	db db.DBTX
}

func NewReceiptReadStore(q db.DBTX) *ReceiptReadStore {
	return &ReceiptReadStore{db: q}
}

const receiptViewSQL = `
SELECT r.id,
       r.order_id,
       r.customer_id,
       cu.full_name AS customer_name,
       r.provider_id,
       pr.shop_name,
       r.subtotal,
       r.delivery_fee,
       r.total,
       r.created_at
FROM receipts r
JOIN users cu ON cu.id = r.customer_id
JOIN users pr ON pr.id = r.provider_id`

func (r *ReceiptReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.ReceiptView, error) {
	var views []*queries.ReceiptView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.db, &views,
			receiptViewSQL+" WHERE r.customer_id = $1 ORDER BY r.created_at DESC", customerID)
	})
	if err != nil {
		return nil, wrapReadErr("failed to list receipts by customer", err)
	}
	return views, nil
}

func (r *ReceiptReadStore) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*queries.ReceiptView, error) {
	var views []*queries.ReceiptView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.db, &views,
			receiptViewSQL+" WHERE r.provider_id = $1 ORDER BY r.created_at DESC", providerID)
	})
	if err != nil {
		return nil, wrapReadErr("failed to list receipts by provider", err)
	}
	return views, nil
}
