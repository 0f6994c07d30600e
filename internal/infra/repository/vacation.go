package repository

import (
	"context"

	"shiftboard/internal/domain/vacation"
	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VacationRequestRepository struct{}

func NewVacationRequestRepository() *VacationRequestRepository {
	return &VacationRequestRepository{}
}

func (r *VacationRequestRepository) Create(ctx context.Context, tx db.DBTX, req *vacation.Request) (uuid.UUID, error) {
	const query = `
		INSERT INTO vacation_requests (id, employee_id, start_date, end_date, total_days, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		req.ID(), req.EmployeeID(), req.StartDate(), req.EndDate(),
		req.TotalDays(), req.Reason(), req.Status().String(), req.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("vacation request references missing employee", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create vacation request", err)
	}
	return id, nil
}

func (r *VacationRequestRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to vacation.Status, adminNotes *string) (bool, error) {
	const query = `
		UPDATE vacation_requests
		SET status = $3, admin_notes = COALESCE($4, admin_notes), updated_at = now()
		WHERE id = $1 AND status = $2`

	tag, err := tx.Exec(ctx, query, id, from.String(), to.String(), adminNotes)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update vacation request status", err)
	}
	return tag.RowsAffected() > 0, nil
}

type VacationBalanceRepository struct{}

func NewVacationBalanceRepository() *VacationBalanceRepository {
	return &VacationBalanceRepository{}
}

func (r *VacationBalanceRepository) Create(ctx context.Context, tx db.DBTX, balance *vacation.Balance) (uuid.UUID, error) {
	const query = `
		INSERT INTO vacation_balances (id, employee_id, year, total_days, used_days, pending_days, carried_over_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		balance.ID(), balance.EmployeeID(), balance.Year(),
		balance.TotalDays(), balance.UsedDays(), balance.PendingDays(), balance.CarriedOverDays(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("balance already exists for that year", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create vacation balance", err)
	}
	return id, nil
}

// UpdateCounters writes the counter columns back. Callers load the row with
// BalanceForUpdate first, so the write happens under a row lock.
func (r *VacationBalanceRepository) UpdateCounters(ctx context.Context, tx db.DBTX, balance *vacation.Balance) error {
	const query = `
		UPDATE vacation_balances
		SET used_days = $2, pending_days = $3, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, balance.ID(), balance.UsedDays(), balance.PendingDays())
	if err != nil {
		return infra.WrapRepoErr("failed to update vacation balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vacation balance not found", nil, infra.KindNotFound)
	}
	return nil
}
