package readstore

import (
	"context"

	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"
	"shiftboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VacationReadStore struct {
	db db.DBTX
}

func NewVacationReadStore(dbtx db.DBTX) *VacationReadStore {
	return &VacationReadStore{db: dbtx}
}

const vacationSelect = `
	SELECT v.id, v.employee_id, e.first_name || ' ' || e.last_name,
	       v.start_date, v.end_date, v.total_days, v.reason, v.status, v.admin_notes, v.created_at
	FROM vacation_requests v
	JOIN employees e ON e.id = v.employee_id`

func (r *VacationReadStore) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*queries.VacationRequestView, error) {
	query := vacationSelect + ` WHERE v.employee_id = $1 ORDER BY v.created_at DESC`

	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vacation requests", err)
	}
	return scanVacationRows(rows)
}

func (r *VacationReadStore) FindPending(ctx context.Context) ([]*queries.VacationRequestView, error) {
	query := vacationSelect + ` WHERE v.status = 'PENDING' ORDER BY v.created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending vacation requests", err)
	}
	return scanVacationRows(rows)
}

func (r *VacationReadStore) FindBalance(ctx context.Context, employeeID uuid.UUID, year int) (*queries.VacationBalanceView, error) {
	const query = `
		SELECT employee_id, year, total_days, used_days, pending_days, carried_over_days
		FROM vacation_balances
		WHERE employee_id = $1 AND year = $2`

	var v queries.VacationBalanceView
	err := r.db.QueryRow(ctx, query, employeeID, year).Scan(
		&v.EmployeeID, &v.Year, &v.TotalDays, &v.UsedDays, &v.PendingDays, &v.CarriedOverDays,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vacation balance not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get vacation balance", err)
	}
	v.AvailableDays = v.TotalDays + v.CarriedOverDays - v.UsedDays - v.PendingDays
	return &v, nil
}

func scanVacationRows(rows pgx.Rows) ([]*queries.VacationRequestView, error) {
	defer rows.Close()

	views := []*queries.VacationRequestView{}
	for rows.Next() {
		var v queries.VacationRequestView
		err := rows.Scan(
			&v.ID, &v.EmployeeID, &v.EmployeeName,
			&v.StartDate, &v.EndDate, &v.TotalDays, &v.Reason, &v.Status, &v.AdminNotes, &v.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vacation request row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vacation request rows", err)
	}
	return views, nil
}
