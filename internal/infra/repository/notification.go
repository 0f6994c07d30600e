package repository

import (
	"context"

	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"
	"shiftboard/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Insert(ctx context.Context, tx db.DBTX, n shared.Notification) error {
	const query = `
		INSERT INTO notifications (id, user_id, kind, title, message, link)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := tx.Exec(ctx, query, uuid.New(), n.UserID, n.Kind, n.Title, n.Message, n.Link); err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("notification references missing user", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert notification", err)
	}
	return nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) (bool, error) {
	const query = `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2`

	tag, err := tx.Exec(ctx, query, id, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark notification read", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tx db.DBTX, userID uuid.UUID) (int64, error) {
	const query = `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE`

	tag, err := tx.Exec(ctx, query, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return tag.RowsAffected(), nil
}
