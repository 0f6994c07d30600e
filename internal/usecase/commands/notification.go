package commands

import (
	"context"

	"shiftboard/internal/pkg/errs"
	"shiftboard/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationCommands interface {
	MarkRead(ctx context.Context, notificationID uuid.UUID, actor Actor) error
	MarkAllRead(ctx context.Context, actor Actor) (int64, error)
}

type notificationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationUseCase(uow shared.UnitOfWork) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow}
}

func (uc *notificationUseCaseImpl) MarkRead(ctx context.Context, notificationID uuid.UUID, actor Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, derr := tx.Notifications().MarkRead(ctx, tx.DB(), notificationID, actor.UserID)
		if derr != nil {
			return derr
		}
		if !ok {
			return ErrNotificationNotFound
		}
		return nil
	})
}

func (uc *notificationUseCaseImpl) MarkAllRead(ctx context.Context, actor Actor) (int64, error) {
	var marked int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Notifications().MarkAllRead(ctx, tx.DB(), actor.UserID)
		if derr != nil {
			return derr
		}
		marked = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return marked, nil
}
