package queries

import (
	"context"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error)
}

type NotificationViewRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	repo NotificationViewRepo
}

func NewNotificationQueries(repo NotificationViewRepo) NotificationQueries {
	return &notificationQueriesImpl{repo: repo}
}

func (q *notificationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error) {
	return q.repo.FindByUserID(ctx, userID)
}
