package commands

import (
	"context"
	"fmt"

	"shiftboard/internal/infra"
	"shiftboard/internal/pkg/clock"
	"shiftboard/internal/pkg/errs"
	"shiftboard/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMessageNotFound       = errs.New("message not found")
	ErrRecipientNotFound     = errs.New("message recipient not found")
	ErrParentMessageNotFound = errs.New("parent message not found")
	ErrNotMessageRecipient   = errs.New("only the recipient can mark a message read")
	ErrNotMessageParticipant = errs.New("message belongs to other users")
)

type SendMessageInput struct {
	RecipientID uuid.UUID
	Subject     *string
	Content     string
	ParentID    *uuid.UUID
}

type MessageCommands interface {
	Send(ctx context.Context, input SendMessageInput, actor Actor) (uuid.UUID, error)
	MarkRead(ctx context.Context, messageID uuid.UUID, actor Actor) error
	Delete(ctx context.Context, messageID uuid.UUID, actor Actor) error
}

type messageUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
}

func NewMessageUseCase(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock) MessageCommands {
	return &messageUseCaseImpl{uow: uow, notifier: notifier, clock: clk}
}

func (uc *messageUseCaseImpl) Send(ctx context.Context, input SendMessageInput, actor Actor) (uuid.UUID, error) {
	var (
		createdID uuid.UUID
		pending   []shared.Notification
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pending = pending[:0]

		exists, derr := tx.Reads().UserExists(ctx, input.RecipientID)
		if derr != nil {
			return derr
		}
		if !exists {
			return ErrRecipientNotFound
		}

		if input.ParentID != nil {
			if _, derr = tx.Reads().MessageByID(ctx, *input.ParentID); derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return ErrParentMessageNotFound
				}
				return derr
			}
		}

		id, derr := tx.Messages().Insert(ctx, tx.DB(), shared.MessageWrite{
			SenderID:    actor.UserID,
			RecipientID: input.RecipientID,
			ParentID:    input.ParentID,
			Subject:     input.Subject,
			Content:     input.Content,
		})
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return ErrRecipientNotFound
			}
			return derr
		}
		createdID = id

		kind, title, body := shared.NotifyNewMessage, "New message", "You have received a new message."
		if input.ParentID != nil {
			kind, title, body = shared.NotifyMessageReply, "New reply", "Someone replied to your message."
		}
		if emp, eerr := tx.Reads().EmployeeByUser(ctx, actor.UserID); eerr == nil {
			body = fmt.Sprintf("%s %s: %s", emp.FirstName, emp.LastName, body)
		} else if !infra.IsKind(eerr, infra.KindNotFound) {
			return eerr
		}

		link := fmt.Sprintf("/messages/%s", id)
		pending = append(pending, shared.Notification{
			UserID:  input.RecipientID,
			Kind:    kind,
			Title:   title,
			Message: body,
			Link:    &link,
		})
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	dispatch(ctx, uc.notifier, pending)
	return createdID, nil
}

func (uc *messageUseCaseImpl) MarkRead(ctx context.Context, messageID uuid.UUID, actor Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().MessageByID(ctx, messageID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrMessageNotFound
			}
			return derr
		}
		if snap.RecipientID != actor.UserID {
			return ErrNotMessageRecipient
		}
		if snap.ReadAt != nil {
			return nil
		}
		_, derr = tx.Messages().MarkRead(ctx, tx.DB(), messageID, actor.UserID, uc.clock.Now())
		return derr
	})
}

func (uc *messageUseCaseImpl) Delete(ctx context.Context, messageID uuid.UUID, actor Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().MessageByID(ctx, messageID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrMessageNotFound
			}
			return derr
		}
		if snap.SenderID != actor.UserID && snap.RecipientID != actor.UserID {
			return ErrNotMessageParticipant
		}
		return tx.Messages().Delete(ctx, tx.DB(), messageID)
	})
}
