package readstore

import (
	"context"

	"laundryhub/internal/infra/db"
	"laundryhub/internal/usecase/queries"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(q db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: q}
}

const bookingViewSQL = `
SELECT b.id,
       b.customer_id,
       cu.full_name AS customer_name,
       b.provider_id,
       pr.shop_name,
       pr.shop_address,
       pr.contact_number AS provider_contact,
       b.category_id,
       ca.name AS category_name,
       ca.pricing_type,
       b.weight_kg AS weight,
       b.total_price,
       b.schedule_at,
       b.status,
       b.notes,
       b.created_at
FROM bookings b
JOIN users cu ON cu.id = b.customer_id
JOIN users pr ON pr.id = b.provider_id
JOIN categories ca ON ca.id = b.category_id`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var view queries.BookingView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Get(ctx, r.db, &view, bookingViewSQL+" WHERE b.id = $1", id)
	})
	if err != nil {
		return nil, wrapReadErr("failed to find booking", err)
	}
	return &view, nil
}

func (r *BookingReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.BookingView, error) {
	var views []*queries.BookingView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.db, &views,
			bookingViewSQL+" WHERE b.customer_id = $1 ORDER BY b.created_at DESC", customerID)
	})
	if err != nil {
		return nil, wrapReadErr("failed to list bookings by customer", err)
	}
	return views, nil
}

func (r *BookingReadStore) FindByProviderID(ctx context.Context, providerID uuid.UUID) ([]*queries.BookingView, error) {
	var views []*queries.BookingView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.db, &views,
			bookingViewSQL+" WHERE b.provider_id = $1 ORDER BY b.created_at DESC", providerID)
	})
	if err != nil {
		return nil, wrapReadErr("failed to list bookings by provider", err)
	}
	return views, nil
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	var views []*queries.BookingView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.db, &views, bookingViewSQL+" ORDER BY b.created_at DESC")
	})
	if err != nil {
		return nil, wrapReadErr("failed to list bookings", err)
	}
	return views, nil
}
