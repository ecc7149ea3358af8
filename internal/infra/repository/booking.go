package repository

import (
	"context"

	"laundryhub/internal/domain/booking"
	"laundryhub/internal/infra/db"
	"laundryhub/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (id, customer_id, provider_id, category_id, weight_kg, total_price, schedule_at, status, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *BookingRepository) Create(ctx context.Context, q db.DBTX, b *booking.Booking) error {
	_, err := q.Exec(ctx, createBookingSQL,
		b.ID(), b.CustomerID(), b.ProviderID(), b.CategoryID(),
		b.Weight(), b.TotalPrice().Decimal(), b.ScheduleAt(), b.Status().String(), b.Notes(),
	)
	if err != nil {
		return wrapPgErr("failed to create booking", err)
	}
	return nil
}

const updateBookingStatusSQL = `
UPDATE bookings SET status = $3 WHERE id = $1 AND status = $2`

// UpdateStatusFrom is the race arbiter for lifecycle transitions: the write
// only lands if the booking is still in the expected source status.
func (r *BookingRepository) UpdateStatusFrom(ctx context.Context, q db.DBTX, id uuid.UUID, from, to booking.Status) (int64, error) {
	tag, err := q.Exec(ctx, updateBookingStatusSQL, id, from.String(), to.String())
	if err != nil {
		return 0, wrapPgErr("failed to update booking status", err)
	}
	return tag.RowsAffected(), nil
}

const updateBookingDetailsSQL = `
UPDATE bookings SET weight_kg = $2, notes = $3, total_price = $4 WHERE id = $1`

func (r *BookingRepository) UpdateDetails(ctx context.Context, q db.DBTX, id uuid.UUID, weight decimal.Decimal, notes string, totalPrice money.Money) error {
	_, err := q.Exec(ctx, updateBookingDetailsSQL, id, weight, notes, totalPrice.Decimal())
	if err != nil {
		return wrapPgErr("failed to update booking details", err)
	}
	return nil
}
