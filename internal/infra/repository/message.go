package repository

import (
	"context"
	"time"

	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"
	"shiftboard/internal/usecase/shared"

	"github.com/google/uuid"
)

type MessageRepository struct{}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Insert(ctx context.Context, tx db.DBTX, m shared.MessageWrite) (uuid.UUID, error) {
	const query = `
		INSERT INTO messages (id, sender_id, recipient_id, parent_id, subject, content)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, uuid.New(), m.SenderID, m.RecipientID, m.ParentID, m.Subject, m.Content).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("message references missing user or parent", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert message", err)
	}
	return id, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, tx db.DBTX, id, recipientID uuid.UUID, at time.Time) (bool, error) {
	const query = `
		UPDATE messages
		SET read_at = $3
		WHERE id = $1 AND recipient_id = $2 AND read_at IS NULL`

	tag, err := tx.Exec(ctx, query, id, recipientID, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark message read", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *MessageRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM messages WHERE id = $1`

	if _, err := tx.Exec(ctx, query, id); err != nil {
		return infra.WrapRepoErr("failed to delete message", err)
	}
	return nil
}
