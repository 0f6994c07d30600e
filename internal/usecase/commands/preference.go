package commands

import (
	"context"
	"time"

	"shiftboard/internal/infra"
	"shiftboard/internal/pkg/clock"
	"shiftboard/internal/pkg/errs"
	"shiftboard/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPreferencePeriodNotFound = errs.New("preference period not found")
	ErrPreferencePeriodClosed   = errs.New("preference period is closed")
	ErrPreferenceOutOfPeriod    = errs.New("preference date outside the period")
	ErrPreferenceConflict       = errs.New("preference cannot be both a shift and a day off")
)

type PreferenceEntryInput struct {
	Date        time.Time
	ShiftTypeID *uuid.UUID
	PrefersOff  bool
	Note        *string
}

type SubmitPreferencesInput struct {
	Year    int
	Month   int
	Entries []PreferenceEntryInput
}

type PreferenceCommands interface {
	Submit(ctx context.Context, input SubmitPreferencesInput, actor Actor) error
}

type preferenceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPreferenceUseCase(uow shared.UnitOfWork, clk clock.Clock) PreferenceCommands {
	return &preferenceUseCaseImpl{uow: uow, clock: clk}
}

// Submit replaces the employee's whole preference sheet for the period.
// Partial edits re-send the full sheet; the previous one is discarded.
func (uc *preferenceUseCaseImpl) Submit(ctx context.Context, input SubmitPreferencesInput, actor Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		emp, derr := requireEmployee(ctx, tx, actor)
		if derr != nil {
			return derr
		}

		period, derr := tx.Reads().PreferencePeriod(ctx, input.Year, input.Month)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrPreferencePeriodNotFound
			}
			return derr
		}
		if !period.IsOpen || uc.clock.Now().After(period.Deadline) {
			return ErrPreferencePeriodClosed
		}

		writes := make([]shared.PreferenceEntryWrite, 0, len(input.Entries))
		for _, e := range input.Entries {
			if e.Date.Year() != input.Year || int(e.Date.Month()) != input.Month {
				return ErrPreferenceOutOfPeriod
			}
			if e.PrefersOff && e.ShiftTypeID != nil {
				return ErrPreferenceConflict
			}
			writes = append(writes, shared.PreferenceEntryWrite{
				Date:        e.Date,
				ShiftTypeID: e.ShiftTypeID,
				PrefersOff:  e.PrefersOff,
				Note:        e.Note,
			})
		}

		return tx.Preferences().ReplaceEntries(ctx, tx.DB(), period.ID, emp.ID, writes)
	})
}
