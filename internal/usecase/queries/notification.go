package queries

import (
	"context"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*NotificationView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*NotificationView, error) {
	return q.readStore.FindByUser(ctx, userID, unreadOnly, ValidateLimit(limit))
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return q.readStore.CountUnread(ctx, userID)
}
