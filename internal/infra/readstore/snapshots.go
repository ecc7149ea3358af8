package readstore

import (
	"context"

	"laundryhub/internal/infra/db"
	"laundryhub/internal/usecase/shared"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

// SnapshotReadStore serves the write side's validation reads. Unlike the view
// stores it returns raw rows without joins, and it never retries: command
// paths fail fast.
type SnapshotReadStore struct {
	db db.DBTX
}

func NewSnapshotReadStore(q db.DBTX) *SnapshotReadStore {
	return &SnapshotReadStore{db: q}
}

const bookingSnapshotSQL = `
SELECT id, customer_id, provider_id, category_id, weight_kg AS weight, total_price,
       schedule_at, status, notes, created_at
FROM bookings WHERE id = $1`

func (r *SnapshotReadStore) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var snap shared.BookingSnapshot
	if err := pgxscan.Get(ctx, r.db, &snap, bookingSnapshotSQL, id); err != nil {
		return nil, wrapReadErr("failed to read booking snapshot", err)
	}
	return &snap, nil
}

const categorySnapshotSQL = `
SELECT id, provider_id, name, pricing_type, price, min_kilo, max_kilo, created_at
FROM categories WHERE id = $1`

func (r *SnapshotReadStore) CategoryByID(ctx context.Context, id uuid.UUID) (*shared.CategorySnapshot, error) {
	var snap shared.CategorySnapshot
	if err := pgxscan.Get(ctx, r.db, &snap, categorySnapshotSQL, id); err != nil {
		return nil, wrapReadErr("failed to read category snapshot", err)
	}
	return &snap, nil
}

const userSnapshotSQL = `
SELECT id, role, email, password_hash, contact_number, full_name, address,
       shop_name, shop_address, provider_status, is_available, banned, created_at
FROM users`

func (r *SnapshotReadStore) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	var snap shared.UserSnapshot
	if err := pgxscan.Get(ctx, r.db, &snap, userSnapshotSQL+" WHERE id = $1", id); err != nil {
		return nil, wrapReadErr("failed to read user snapshot", err)
	}
	return &snap, nil
}

func (r *SnapshotReadStore) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	var snap shared.UserSnapshot
	if err := pgxscan.Get(ctx, r.db, &snap, userSnapshotSQL+" WHERE email = $1", email); err != nil {
		return nil, wrapReadErr("failed to read user snapshot by email", err)
	}
	return &snap, nil
}

const orderSnapshotSQL = `
SELECT id, booking_id, status, total_cost FROM orders WHERE booking_id = $1`

func (r *SnapshotReadStore) OrderByBookingID(ctx context.Context, bookingID uuid.UUID) (*shared.OrderSnapshot, error) {
	var snap shared.OrderSnapshot
	if err := pgxscan.Get(ctx, r.db, &snap, orderSnapshotSQL, bookingID); err != nil {
		return nil, wrapReadErr("failed to read order snapshot", err)
	}
	return &snap, nil
}

const receiptSnapshotSQL = `
SELECT id, order_id, delivery_fee FROM receipts WHERE order_id = $1`

func (r *SnapshotReadStore) ReceiptByOrderID(ctx context.Context, orderID uuid.UUID) (*shared.ReceiptSnapshot, error) {
	var snap shared.ReceiptSnapshot
	if err := pgxscan.Get(ctx, r.db, &snap, receiptSnapshotSQL, orderID); err != nil {
		return nil, wrapReadErr("failed to read receipt snapshot", err)
	}
	return &snap, nil
}

const notificationSnapshotSQL = `
SELECT id, user_id, read FROM notifications WHERE id = $1`

func (r *SnapshotReadStore) NotificationByID(ctx context.Context, id uuid.UUID) (*shared.NotificationSnapshot, error) {
	var snap shared.NotificationSnapshot
	if err := pgxscan.Get(ctx, r.db, &snap, notificationSnapshotSQL, id); err != nil {
		return nil, wrapReadErr("failed to read notification snapshot", err)
	}
	return &snap, nil
}
