package uow

import (
	"context"
	"time"

	"shiftboard/internal/domain/schedule"
	"shiftboard/internal/domain/shiftchange"
	"shiftboard/internal/domain/vacation"
	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"
	"shiftboard/internal/usecase/shared"

	"github.com/google/uuid"
)

// commandReads runs the write-side lookups on whatever DBTX it was built
// with: the pool outside a transaction, the open transaction inside one.
type commandReads struct {
	dbtx db.DBTX
}

func (r *commandReads) RequestByID(ctx context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	const query = `
		SELECT id, requester_id, schedule_entry_id, change_type, target_shift_type_id,
		       urgency, reason, status, admin_notes, created_at
		FROM shift_change_requests
		WHERE id = $1`

	var snap shared.RequestSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.RequesterID, &snap.ScheduleEntryID, &snap.ChangeType, &snap.TargetShiftTypeID,
		&snap.Urgency, &snap.Reason, &snap.Status, &snap.AdminNotes, &snap.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("change request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read change request", err)
	}
	return &snap, nil
}

func (r *commandReads) OfferByID(ctx context.Context, id uuid.UUID) (*shared.OfferSnapshot, error) {
	const query = `
		SELECT id, request_id, offerer_id, conditions, status, offered_at
		FROM coverage_offers
		WHERE id = $1`

	var snap shared.OfferSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.RequestID, &snap.OffererID, &snap.Conditions, &snap.Status, &snap.OfferedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read offer", err)
	}
	return &snap, nil
}

func (r *commandReads) OffersByRequest(ctx context.Context, requestID uuid.UUID) ([]shared.OfferSnapshot, error) {
	const query = `
		SELECT id, request_id, offerer_id, conditions, status, offered_at
		FROM coverage_offers
		WHERE request_id = $1
		ORDER BY offered_at`

	rows, err := r.dbtx.Query(ctx, query, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read offers", err)
	}
	defer rows.Close()

	offers := []shared.OfferSnapshot{}
	for rows.Next() {
		var snap shared.OfferSnapshot
		if err := rows.Scan(&snap.ID, &snap.RequestID, &snap.OffererID, &snap.Conditions, &snap.Status, &snap.OfferedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer row", err)
		}
		offers = append(offers, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offer rows", err)
	}
	return offers, nil
}

func (r *commandReads) ApprovalsByRequest(ctx context.Context, requestID uuid.UUID) (shiftchange.ApprovalLog, error) {
	const query = `
		SELECT id, request_id, approver_id, role, approved, created_at
		FROM change_approvals
		WHERE request_id = $1
		ORDER BY created_at, id`

	rows, err := r.dbtx.Query(ctx, query, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read approvals", err)
	}
	defer rows.Close()

	log := shiftchange.ApprovalLog{}
	for rows.Next() {
		var a shiftchange.Approval
		if err := rows.Scan(&a.ID, &a.RequestID, &a.ApproverID, &a.Role, &a.Approved, &a.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan approval row", err)
		}
		log = append(log, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate approval rows", err)
	}
	return log, nil
}

func (r *commandReads) ResultByRequest(ctx context.Context, requestID uuid.UUID) (*shared.ResultSnapshot, error) {
	const query = `
		SELECT id, request_id, selected_offer_id, original_entry_snapshot, executed_at
		FROM shift_change_results
		WHERE request_id = $1`

	var snap shared.ResultSnapshot
	err := r.dbtx.QueryRow(ctx, query, requestID).Scan(
		&snap.ID, &snap.RequestID, &snap.SelectedOfferID, &snap.OriginalEntrySnapshot, &snap.ExecutedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("change result not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read change result", err)
	}
	return &snap, nil
}

func (r *commandReads) LiveRequestExistsForEntry(ctx context.Context, entryID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM shift_change_requests
			WHERE schedule_entry_id = $1
			  AND status IN ('OPEN', 'SELECTING', 'AWAITING_APPROVAL')
		)`

	var exists bool
	if err := r.dbtx.QueryRow(ctx, query, entryID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check live request", err)
	}
	return exists, nil
}

func (r *commandReads) EntryByID(ctx context.Context, id uuid.UUID) (*schedule.EntrySnapshot, error) {
	const query = `
		SELECT se.id, se.period_id, se.employee_id, se.original_employee_id,
		       se.date, se.shift_type_id, se.is_manual_override, se.override_reason, p.status
		FROM schedule_entries se
		JOIN schedule_periods p ON p.id = se.period_id
		WHERE se.id = $1`

	var snap schedule.EntrySnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.PeriodID, &snap.EmployeeID, &snap.OriginalEmployeeID,
		&snap.Date, &snap.ShiftTypeID, &snap.IsManualOverride, &snap.OverrideReason, &snap.PeriodStatus,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read schedule entry", err)
	}
	return &snap, nil
}

func (r *commandReads) PeriodByID(ctx context.Context, id uuid.UUID) (*shared.PeriodSnapshot, error) {
	const query = `SELECT id, year, month, status FROM schedule_periods WHERE id = $1`

	var snap shared.PeriodSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Year, &snap.Month, &snap.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule period not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read schedule period", err)
	}
	return &snap, nil
}

func (r *commandReads) ShiftTypeByID(ctx context.Context, id uuid.UUID) (*schedule.ShiftType, error) {
	const query = `
		SELECT id, code, name, start_time, end_time, color, is_active
		FROM shift_types
		WHERE id = $1`

	return r.scanShiftType(ctx, query, id)
}

func (r *commandReads) ShiftTypeByCode(ctx context.Context, code string) (*schedule.ShiftType, error) {
	const query = `
		SELECT id, code, name, start_time, end_time, color, is_active
		FROM shift_types
		WHERE code = $1`

	return r.scanShiftType(ctx, query, code)
}

func (r *commandReads) scanShiftType(ctx context.Context, query string, arg any) (*schedule.ShiftType, error) {
	var st schedule.ShiftType
	err := r.dbtx.QueryRow(ctx, query, arg).Scan(
		&st.ID, &st.Code, &st.Name, &st.StartTime, &st.EndTime, &st.Color, &st.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shift type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read shift type", err)
	}
	return &st, nil
}

func (r *commandReads) EmployeeByUser(ctx context.Context, userID uuid.UUID) (*shared.EmployeeRef, error) {
	const query = `
		SELECT e.id, u.id, e.first_name, e.last_name
		FROM employees e
		JOIN users u ON u.employee_id = e.id
		WHERE u.id = $1`

	var ref shared.EmployeeRef
	err := r.dbtx.QueryRow(ctx, query, userID).Scan(&ref.ID, &ref.UserID, &ref.FirstName, &ref.LastName)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("employee profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read employee profile", err)
	}
	return &ref, nil
}

func (r *commandReads) UserIDByEmployee(ctx context.Context, employeeID uuid.UUID) (uuid.UUID, error) {
	const query = `SELECT id FROM users WHERE employee_id = $1`

	var id uuid.UUID
	if err := r.dbtx.QueryRow(ctx, query, employeeID).Scan(&id); err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("user not found for employee", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to read user by employee", err)
	}
	return id, nil
}

func (r *commandReads) AdminUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	const query = `SELECT id FROM users WHERE role IN ('supervisor', 'admin') AND is_active`

	rows, err := r.dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list admin users", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan admin user id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate admin user ids", err)
	}
	return ids, nil
}

// BalanceForUpdate locks the balance row for the rest of the transaction so
// concurrent vacation requests cannot both pass the availability check.
func (r *commandReads) BalanceForUpdate(ctx context.Context, employeeID uuid.UUID, year int) (*vacation.Balance, error) {
	const query = `
		SELECT id, employee_id, year, total_days, used_days, pending_days, carried_over_days
		FROM vacation_balances
		WHERE employee_id = $1 AND year = $2
		FOR UPDATE`

	var (
		id, empID                                         uuid.UUID
		yr, totalDays, usedDays, pendingDays, carriedDays int
	)
	err := r.dbtx.QueryRow(ctx, query, employeeID, year).Scan(
		&id, &empID, &yr, &totalDays, &usedDays, &pendingDays, &carriedDays,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vacation balance not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read vacation balance", err)
	}
	return vacation.ReconstructBalance(id, empID, yr, totalDays, usedDays, pendingDays, carriedDays), nil
}

func (r *commandReads) VacationRequestByID(ctx context.Context, id uuid.UUID) (*vacation.Request, error) {
	const query = `
		SELECT id, employee_id, start_date, end_date, total_days, reason, status, admin_notes, created_at
		FROM vacation_requests
		WHERE id = $1`

	var (
		reqID, empID                  uuid.UUID
		startDate, endDate, createdAt time.Time
		totalDays                     int
		reason, adminNotes            *string
		status                        string
	)
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&reqID, &empID, &startDate, &endDate, &totalDays, &reason, &status, &adminNotes, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vacation request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read vacation request", err)
	}
	return vacation.ReconstructRequest(reqID, empID, startDate, endDate, totalDays, reason, vacation.Status(status), adminNotes, createdAt), nil
}

func (r *commandReads) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1 AND is_active)`

	var exists bool
	if err := r.dbtx.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}

func (r *commandReads) MessageByID(ctx context.Context, id uuid.UUID) (*shared.MessageSnapshot, error) {
	const query = `
		SELECT id, sender_id, recipient_id, parent_id, read_at
		FROM messages
		WHERE id = $1`

	var snap shared.MessageSnapshot
	err := r.dbtx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.SenderID, &snap.RecipientID, &snap.ParentID, &snap.ReadAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("message not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read message", err)
	}
	return &snap, nil
}

func (r *commandReads) PreferencePeriod(ctx context.Context, year, month int) (*shared.PreferencePeriodSnapshot, error) {
	const query = `
		SELECT id, year, month, is_open, deadline
		FROM preference_periods
		WHERE year = $1 AND month = $2`

	var snap shared.PreferencePeriodSnapshot
	err := r.dbtx.QueryRow(ctx, query, year, month).Scan(&snap.ID, &snap.Year, &snap.Month, &snap.IsOpen, &snap.Deadline)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("preference period not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read preference period", err)
	}
	return &snap, nil
}
