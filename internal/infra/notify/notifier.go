package notify

import (
	"context"

	"shiftboard/internal/infra/repository"
	"shiftboard/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBNotifier persists notifications to the notifications table, where the
// web client polls them. It runs outside the state-transition transaction;
// callers log and swallow its errors.
type DBNotifier struct {
	pool *pgxpool.Pool
	repo *repository.NotificationRepository
}

func NewDBNotifier(pool *pgxpool.Pool) shared.Notifier {
	return &DBNotifier{
		pool: pool,
		repo: repository.NewNotificationRepository(),
	}
}

func (n *DBNotifier) Notify(ctx context.Context, notification shared.Notification) error {
	return n.repo.Insert(ctx, n.pool, notification)
}
