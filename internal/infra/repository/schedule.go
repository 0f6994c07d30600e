package repository

import (
	"context"
	"time"

	"shiftboard/internal/domain/schedule"
	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

// ReassignEmployee hands an entry to another employee, keeping the first
// original assignee across repeated changes.
func (r *ScheduleRepository) ReassignEmployee(ctx context.Context, tx db.DBTX, entryID, newEmployeeID uuid.UUID, reason string) error {
	const query = `
		UPDATE schedule_entries
		SET original_employee_id = COALESCE(original_employee_id, employee_id),
		    employee_id = $2,
		    is_manual_override = TRUE,
		    override_reason = $3,
		    updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, entryID, newEmployeeID, reason)
	if err != nil {
		return infra.WrapRepoErr("failed to reassign entry employee", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("schedule entry not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ScheduleRepository) ReassignShiftType(ctx context.Context, tx db.DBTX, entryID, shiftTypeID uuid.UUID, reason string) error {
	const query = `
		UPDATE schedule_entries
		SET shift_type_id = $2,
		    is_manual_override = TRUE,
		    override_reason = $3,
		    updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, entryID, shiftTypeID, reason)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("shift type does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to reassign entry shift type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("schedule entry not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ScheduleRepository) CreatePeriod(ctx context.Context, tx db.DBTX, year, month int) (uuid.UUID, error) {
	const query = `
		INSERT INTO schedule_periods (id, year, month, status)
		VALUES ($1, $2, $3, 'DRAFT')
		RETURNING id`

	var id uuid.UUID
	if err := tx.QueryRow(ctx, query, uuid.New(), year, month).Scan(&id); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("period already exists for that month", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create schedule period", err)
	}
	return id, nil
}

func (r *ScheduleRepository) UpsertEntry(ctx context.Context, tx db.DBTX, periodID, employeeID uuid.UUID, date time.Time, shiftTypeID uuid.UUID) (uuid.UUID, error) {
	const query = `
		INSERT INTO schedule_entries (id, period_id, employee_id, date, shift_type_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (period_id, employee_id, date)
		DO UPDATE SET shift_type_id = EXCLUDED.shift_type_id, updated_at = now()
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, uuid.New(), periodID, employeeID, date, shiftTypeID).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("entry references missing row", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to upsert schedule entry", err)
	}
	return id, nil
}

func (r *ScheduleRepository) SetPeriodStatus(ctx context.Context, tx db.DBTX, periodID uuid.UUID, from, to schedule.PeriodStatus) (bool, error) {
	const query = `
		UPDATE schedule_periods
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`

	tag, err := tx.Exec(ctx, query, periodID, from.String(), to.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to set period status", err)
	}
	return tag.RowsAffected() > 0, nil
}
