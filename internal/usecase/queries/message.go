package queries

import (
	"context"

	"shiftboard/internal/infra"
	"shiftboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMessageNotFound   = errs.New("message not found")
	ErrMessageNotVisible = errs.New("message belongs to other users")
)

// MessageBox selects which side of the conversation to list.
type MessageBox string

const (
	MessageBoxAll   MessageBox = "all"
	MessageBoxInbox MessageBox = "inbox"
	MessageBoxSent  MessageBox = "sent"
)

func ParseMessageBox(s string) MessageBox {
	switch MessageBox(s) {
	case MessageBoxInbox, MessageBoxSent:
		return MessageBox(s)
	default:
		return MessageBoxAll
	}
}

type MessageQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, box MessageBox, limit int) ([]*MessageView, error)
	// GetByID returns the message only to its sender or recipient.
	GetByID(ctx context.Context, id, viewerID uuid.UUID) (*MessageView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type MessageReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID, box MessageBox, limit int) ([]*MessageView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*MessageView, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type messageQueriesImpl struct {
	readStore MessageReadStore
}

func NewMessageQueries(readStore MessageReadStore) MessageQueries {
	return &messageQueriesImpl{readStore: readStore}
}

func (q *messageQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, box MessageBox, limit int) ([]*MessageView, error) {
	return q.readStore.FindByUser(ctx, userID, box, ValidateLimit(limit))
}

func (q *messageQueriesImpl) GetByID(ctx context.Context, id, viewerID uuid.UUID) (*MessageView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	if view.SenderID != viewerID && view.RecipientID != viewerID {
		return nil, ErrMessageNotVisible
	}
	return view, nil
}

func (q *messageQueriesImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return q.readStore.CountUnread(ctx, userID)
}
