package repository

import (
	"context"

	"laundryhub/internal/domain/receipt"
	"laundryhub/internal/infra/db"
	"laundryhub/internal/pkg/money"

	"github.com/google/uuid"
)

type ReceiptRepository struct{}

func NewReceiptRepository() *ReceiptRepository {
	return &ReceiptRepository{}
}

const createReceiptSQL = `
INSERT INTO receipts (id, order_id, customer_id, provider_id, subtotal, delivery_fee, total)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *ReceiptRepository) Create(ctx context.Context, q db.DBTX, rc *receipt.Receipt) error {
	_, err := q.Exec(ctx, createReceiptSQL,
		rc.ID(), rc.OrderID(), rc.CustomerID(), rc.ProviderID(),
		rc.Subtotal().Decimal(), rc.DeliveryFee().Decimal(), rc.Total().Decimal(),
	)
	if err != nil {
		return wrapPgErr("failed to create receipt", err)
	}
	return nil
}

const resyncReceiptSQL = `UPDATE receipts SET subtotal = $2, total = $3 WHERE id = $1`

func (r *ReceiptRepository) Resync(ctx context.Context, q db.DBTX, id uuid.UUID, subtotal, total money.Money) error {
	_, err := q.Exec(ctx, resyncReceiptSQL, id, subtotal.Decimal(), total.Decimal())
	if err != nil {
		return wrapPgErr("failed to resync receipt", err)
	}
	return nil
}
