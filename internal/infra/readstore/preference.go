package readstore

import (
	"context"

	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"
	"shiftboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type PreferenceReadStore struct {
	db db.DBTX
}

func NewPreferenceReadStore(dbtx db.DBTX) *PreferenceReadStore {
	return &PreferenceReadStore{db: dbtx}
}

func (r *PreferenceReadStore) FindPeriodWithEntries(ctx context.Context, employeeID uuid.UUID, year, month int) (*queries.PreferencePeriodView, error) {
	const query = `
		SELECT id, year, month, is_open, deadline
		FROM preference_periods
		WHERE year = $1 AND month = $2`

	var period queries.PreferencePeriodView
	err := r.db.QueryRow(ctx, query, year, month).Scan(&period.ID, &period.Year, &period.Month, &period.IsOpen, &period.Deadline)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("preference period not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get preference period", err)
	}

	const entriesQuery = `
		SELECT date, shift_type_id, prefers_off, note
		FROM preference_entries
		WHERE period_id = $1 AND employee_id = $2
		ORDER BY date`

	rows, err := r.db.Query(ctx, entriesQuery, period.ID, employeeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list preference entries", err)
	}
	defer rows.Close()

	period.Entries = []queries.PreferenceEntryView{}
	for rows.Next() {
		var e queries.PreferenceEntryView
		if err := rows.Scan(&e.Date, &e.ShiftTypeID, &e.PrefersOff, &e.Note); err != nil {
			return nil, infra.WrapRepoErr("failed to scan preference entry row", err)
		}
		period.Entries = append(period.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate preference entry rows", err)
	}
	return &period, nil
}
