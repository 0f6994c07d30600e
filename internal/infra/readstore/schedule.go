package readstore

import (
	"context"
	"time"

	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"
	"shiftboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: dbtx}
}

func (r *ScheduleReadStore) FindPeriodByMonth(ctx context.Context, year, month int) (*queries.SchedulePeriodView, error) {
	const query = `
		SELECT id, year, month, status
		FROM schedule_periods
		WHERE year = $1 AND month = $2`

	var period queries.SchedulePeriodView
	err := r.db.QueryRow(ctx, query, year, month).Scan(&period.ID, &period.Year, &period.Month, &period.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule period not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get schedule period", err)
	}

	const entriesQuery = `
		SELECT se.id, se.period_id, se.employee_id, e.first_name || ' ' || e.last_name,
		       se.date, se.shift_type_id, st.code, st.name, se.is_manual_override, se.override_reason
		FROM schedule_entries se
		JOIN employees e ON e.id = se.employee_id
		JOIN shift_types st ON st.id = se.shift_type_id
		WHERE se.period_id = $1
		ORDER BY se.date, e.last_name, e.first_name`

	rows, err := r.db.Query(ctx, entriesQuery, period.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedule entries", err)
	}
	defer rows.Close()

	period.Entries = []queries.ScheduleEntryView{}
	for rows.Next() {
		var e queries.ScheduleEntryView
		err := rows.Scan(
			&e.ID, &e.PeriodID, &e.EmployeeID, &e.EmployeeName,
			&e.Date, &e.ShiftTypeID, &e.ShiftTypeCode, &e.ShiftTypeName,
			&e.IsManualOverride, &e.OverrideReason,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule entry row", err)
		}
		period.Entries = append(period.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate schedule entry rows", err)
	}
	return &period, nil
}

func (r *ScheduleReadStore) FindEntriesByEmployee(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]*queries.ScheduleEntryView, error) {
	const query = `
		SELECT se.id, se.period_id, se.employee_id, e.first_name || ' ' || e.last_name,
		       se.date, se.shift_type_id, st.code, st.name, se.is_manual_override, se.override_reason
		FROM schedule_entries se
		JOIN employees e ON e.id = se.employee_id
		JOIN shift_types st ON st.id = se.shift_type_id
		JOIN schedule_periods p ON p.id = se.period_id
		WHERE se.employee_id = $1 AND se.date BETWEEN $2 AND $3 AND p.status <> 'DRAFT'
		ORDER BY se.date`

	rows, err := r.db.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list entries by employee", err)
	}
	defer rows.Close()

	entries := []*queries.ScheduleEntryView{}
	for rows.Next() {
		var e queries.ScheduleEntryView
		err := rows.Scan(
			&e.ID, &e.PeriodID, &e.EmployeeID, &e.EmployeeName,
			&e.Date, &e.ShiftTypeID, &e.ShiftTypeCode, &e.ShiftTypeName,
			&e.IsManualOverride, &e.OverrideReason,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan entry row", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate entry rows", err)
	}
	return entries, nil
}

func (r *ScheduleReadStore) FindShiftTypes(ctx context.Context) ([]*queries.ShiftTypeView, error) {
	const query = `
		SELECT id, code, name, start_time, end_time, color, is_active
		FROM shift_types
		ORDER BY code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shift types", err)
	}
	defer rows.Close()

	types := []*queries.ShiftTypeView{}
	for rows.Next() {
		var t queries.ShiftTypeView
		if err := rows.Scan(&t.ID, &t.Code, &t.Name, &t.StartTime, &t.EndTime, &t.Color, &t.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan shift type row", err)
		}
		types = append(types, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate shift type rows", err)
	}
	return types, nil
}
