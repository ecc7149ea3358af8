package repository

import (
	"context"

	"laundryhub/internal/domain/order"
	"laundryhub/internal/infra/db"
	"laundryhub/internal/pkg/money"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const createOrderSQL = `
INSERT INTO orders (id, booking_id, customer_id, provider_id, status, delivery_option, notes, total_cost)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *OrderRepository) Create(ctx context.Context, q db.DBTX, o *order.Order) error {
	_, err := q.Exec(ctx, createOrderSQL,
		o.ID(), o.BookingID(), o.CustomerID(), o.ProviderID(),
		o.Status().String(), string(o.DeliveryOption()), o.Notes(), o.TotalCost().Decimal(),
	)
	if err != nil {
		return wrapPgErr("failed to create order", err)
	}
	return nil
}

const updateOrderStatusSQL = `UPDATE orders SET status = $2 WHERE id = $1`

func (r *OrderRepository) UpdateStatus(ctx context.Context, q db.DBTX, id uuid.UUID, status order.Status) error {
	_, err := q.Exec(ctx, updateOrderStatusSQL, id, status.String())
	if err != nil {
		return wrapPgErr("failed to update order status", err)
	}
	return nil
}

const updateOrderTotalSQL = `UPDATE orders SET total_cost = $2 WHERE id = $1`

func (r *OrderRepository) UpdateTotalCost(ctx context.Context, q db.DBTX, id uuid.UUID, total money.Money) error {
	_, err := q.Exec(ctx, updateOrderTotalSQL, id, total.Decimal())
	if err != nil {
		return wrapPgErr("failed to update order total", err)
	}
	return nil
}
