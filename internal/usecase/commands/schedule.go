package commands

import (
	"context"
	"time"

	"shiftboard/internal/domain/schedule"
	"shiftboard/internal/infra"
	"shiftboard/internal/pkg/errs"
	"shiftboard/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPeriodNotFound  = errs.New("schedule period not found")
	ErrPeriodArchived  = errs.New("schedule period is archived")
	ErrPeriodNotDraft  = errs.New("schedule period is not a draft")
	ErrPeriodExists    = errs.New("schedule period already exists for that month")
	ErrForbiddenAdmin  = errs.New("operation requires a supervisor or admin")
	ErrEntryOutOfRange = errs.New("entry date outside the period")
)

type UpsertEntryInput struct {
	PeriodID    uuid.UUID
	EmployeeID  uuid.UUID
	Date        time.Time
	ShiftTypeID uuid.UUID
}

type ScheduleCommands interface {
	CreatePeriod(ctx context.Context, year, month int, actor Actor) (uuid.UUID, error)
	UpsertEntry(ctx context.Context, input UpsertEntryInput, actor Actor) (uuid.UUID, error)
	PublishPeriod(ctx context.Context, periodID uuid.UUID, actor Actor) error
	ArchivePeriod(ctx context.Context, periodID uuid.UUID, actor Actor) error
}

type scheduleUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewScheduleUseCase(uow shared.UnitOfWork) ScheduleCommands {
	return &scheduleUseCaseImpl{uow: uow}
}

func (uc *scheduleUseCaseImpl) CreatePeriod(ctx context.Context, year, month int, actor Actor) (uuid.UUID, error) {
	if !actor.Role.CanApproveChanges() {
		return uuid.Nil, ErrForbiddenAdmin
	}

	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Schedules().CreatePeriod(ctx, tx.DB(), year, month)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrPeriodExists
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *scheduleUseCaseImpl) UpsertEntry(ctx context.Context, input UpsertEntryInput, actor Actor) (uuid.UUID, error) {
	if !actor.Role.CanApproveChanges() {
		return uuid.Nil, ErrForbiddenAdmin
	}

	var entryID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		period, derr := tx.Reads().PeriodByID(ctx, input.PeriodID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrPeriodNotFound
			}
			return derr
		}
		if period.Status == schedule.PeriodArchived {
			return ErrPeriodArchived
		}
		if input.Date.Year() != period.Year || int(input.Date.Month()) != period.Month {
			return ErrEntryOutOfRange
		}

		if _, terr := tx.Reads().ShiftTypeByID(ctx, input.ShiftTypeID); terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				return ErrShiftTypeNotFound
			}
			return terr
		}

		id, derr := tx.Schedules().UpsertEntry(ctx, tx.DB(), input.PeriodID, input.EmployeeID, input.Date, input.ShiftTypeID)
		if derr != nil {
			return derr
		}
		entryID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entryID, nil
}

func (uc *scheduleUseCaseImpl) PublishPeriod(ctx context.Context, periodID uuid.UUID, actor Actor) error {
	return uc.setPeriodStatus(ctx, periodID, actor, schedule.PeriodDraft, schedule.PeriodPublished, ErrPeriodNotDraft)
}

func (uc *scheduleUseCaseImpl) ArchivePeriod(ctx context.Context, periodID uuid.UUID, actor Actor) error {
	return uc.setPeriodStatus(ctx, periodID, actor, schedule.PeriodPublished, schedule.PeriodArchived, ErrPeriodNotFound)
}

func (uc *scheduleUseCaseImpl) setPeriodStatus(ctx context.Context, periodID uuid.UUID, actor Actor, from, to schedule.PeriodStatus, notInFromErr error) error {
	if !actor.Role.CanApproveChanges() {
		return ErrForbiddenAdmin
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().PeriodByID(ctx, periodID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrPeriodNotFound
			}
			return derr
		}

		ok, derr := tx.Schedules().SetPeriodStatus(ctx, tx.DB(), periodID, from, to)
		if derr != nil {
			return derr
		}
		if !ok {
			return notInFromErr
		}
		return nil
	})
}
