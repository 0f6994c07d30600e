package commands

import (
	"context"
	"fmt"

	"shiftboard/internal/domain/shiftchange"
	"shiftboard/internal/infra"
	"shiftboard/internal/pkg/errs"
	"shiftboard/internal/usecase/shared"
)

var ErrResultMissing = errs.New("change result record missing")

// executeResult applies a completed request to the schedule. Execution is
// claimed through the result's executed_at stamp so a retried transaction or
// a racing approver can never apply the same change twice.
func (uc *shiftChangeUseCaseImpl) executeResult(ctx context.Context, tx shared.Tx, snap *shared.RequestSnapshot, selected *shared.OfferSnapshot) error {
	result, err := tx.Reads().ResultByRequest(ctx, snap.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrResultMissing
		}
		return err
	}

	claimed, err := tx.Results().ClaimExecution(ctx, tx.DB(), result.ID, uc.clock.Now())
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}

	reason := fmt.Sprintf("shift change request %s", snap.ID)
	switch snap.ChangeType {
	case shiftchange.TypeCoverage:
		if selected == nil {
			return ErrResultMissing
		}
		return tx.Schedules().ReassignEmployee(ctx, tx.DB(), snap.ScheduleEntryID, selected.OffererID, reason)

	case shiftchange.TypeSwap:
		if snap.TargetShiftTypeID == nil {
			return shiftchange.ErrSwapTargetRequired
		}
		return tx.Schedules().ReassignShiftType(ctx, tx.DB(), snap.ScheduleEntryID, *snap.TargetShiftTypeID, reason)

	case shiftchange.TypeAbsence:
		dayOff, derr := tx.Reads().ShiftTypeByCode(ctx, uc.cfg.DayOffShiftCode)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrShiftTypeNotFound
			}
			return derr
		}
		return tx.Schedules().ReassignShiftType(ctx, tx.DB(), snap.ScheduleEntryID, dayOff.ID, reason)

	default:
		return shiftchange.ErrInvalidChangeType
	}
}
