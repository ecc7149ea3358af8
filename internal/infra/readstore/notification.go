package readstore

import (
	"context"

	"laundryhub/internal/infra/db"
	"laundryhub/internal/usecase/queries"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(q db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: q}
}

const notificationViewSQL = `
SELECT id, type, message, read, booking_id, receipt_id, created_at
FROM notifications`

func (r *NotificationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.NotificationView, error) {
	var views []*queries.NotificationView
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return pgxscan.Select(ctx, r.db, &views,
			notificationViewSQL+" WHERE user_id = $1 ORDER BY created_at DESC", userID)
	})
	if err != nil {
		return nil, wrapReadErr("failed to list notifications", err)
	}
	return views, nil
}
