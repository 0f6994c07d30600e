package readstore

import (
	"context"

	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"
	"shiftboard/internal/usecase/queries"

	"github.com/google/uuid"
)

const messageSelect = `
	SELECT m.id, m.sender_id,
	       COALESCE(se.first_name || ' ' || se.last_name, su.email),
	       m.recipient_id,
	       COALESCE(re.first_name || ' ' || re.last_name, ru.email),
	       m.parent_id, m.subject, m.content, m.read_at, m.created_at
	FROM messages m
	JOIN users su ON su.id = m.sender_id
	LEFT JOIN employees se ON se.id = su.employee_id
	JOIN users ru ON ru.id = m.recipient_id
	LEFT JOIN employees re ON re.id = ru.employee_id`

type MessageReadStore struct {
	db db.DBTX
}

func NewMessageReadStore(dbtx db.DBTX) *MessageReadStore {
	return &MessageReadStore{db: dbtx}
}

func (r *MessageReadStore) FindByUser(ctx context.Context, userID uuid.UUID, box queries.MessageBox, limit int) ([]*queries.MessageView, error) {
	query := messageSelect
	switch box {
	case queries.MessageBoxInbox:
		query += ` WHERE m.recipient_id = $1`
	case queries.MessageBoxSent:
		query += ` WHERE m.sender_id = $1`
	default:
		query += ` WHERE m.recipient_id = $1 OR m.sender_id = $1`
	}
	query += ` ORDER BY m.created_at DESC LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}
	defer rows.Close()

	views := []*queries.MessageView{}
	for rows.Next() {
		var m queries.MessageView
		if err := rows.Scan(
			&m.ID, &m.SenderID, &m.SenderName, &m.RecipientID, &m.RecipientName,
			&m.ParentID, &m.Subject, &m.Content, &m.ReadAt, &m.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan message row", err)
		}
		views = append(views, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate message rows", err)
	}
	return views, nil
}

func (r *MessageReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MessageView, error) {
	query := messageSelect + ` WHERE m.id = $1`

	var m queries.MessageView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.SenderID, &m.SenderName, &m.RecipientID, &m.RecipientName,
		&m.ParentID, &m.Subject, &m.Content, &m.ReadAt, &m.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("message not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read message", err)
	}
	return &m, nil
}

func (r *MessageReadStore) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	const query = `SELECT count(*) FROM messages WHERE recipient_id = $1 AND read_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query, recipientID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count unread messages", err)
	}
	return count, nil
}
