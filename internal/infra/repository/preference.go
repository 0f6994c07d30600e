package repository

import (
	"context"

	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"
	"shiftboard/internal/usecase/shared"

	"github.com/google/uuid"
)

type PreferenceRepository struct{}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{}
}

// ReplaceEntries swaps the employee's whole sheet for the period in one go.
func (r *PreferenceRepository) ReplaceEntries(ctx context.Context, tx db.DBTX, periodID, employeeID uuid.UUID, entries []shared.PreferenceEntryWrite) error {
	const deleteQuery = `DELETE FROM preference_entries WHERE period_id = $1 AND employee_id = $2`
	if _, err := tx.Exec(ctx, deleteQuery, periodID, employeeID); err != nil {
		return infra.WrapRepoErr("failed to clear preference entries", err)
	}

	const insertQuery = `
		INSERT INTO preference_entries (id, period_id, employee_id, date, shift_type_id, prefers_off, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, e := range entries {
		_, err := tx.Exec(ctx, insertQuery, uuid.New(), periodID, employeeID, e.Date, e.ShiftTypeID, e.PrefersOff, e.Note)
		if err != nil {
			if pgconv.IsForeignKeyViolation(err) {
				return infra.WrapRepoErr("preference references missing row", err, infra.KindForeignKeyViolated)
			}
			return infra.WrapRepoErr("failed to insert preference entry", err)
		}
	}
	return nil
}
