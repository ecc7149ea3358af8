package repository

import (
	"context"

	"laundryhub/internal/domain/notification"
	"laundryhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository writes in-app notifications on the pool directly:
// they are emitted after the command transaction commits and are best effort.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

const createNotificationSQL = `
INSERT INTO notifications (id, user_id, type, message, read, booking_id, receipt_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	_, err := r.pool.Exec(ctx, createNotificationSQL,
		n.ID(), n.UserID(), string(n.Kind()), n.Message(), n.Read(), n.BookingID(), n.ReceiptID(),
	)
	if err != nil {
		return wrapPgErr("failed to create notification", err)
	}
	return nil
}

const markNotificationReadSQL = `UPDATE notifications SET read = true WHERE id = $1`

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, markNotificationReadSQL, id)
	if err != nil {
		return wrapPgErr("failed to mark notification read", err)
	}
	return nil
}

var _ db.DBTX = (*pgxpool.Pool)(nil)
