package readstore

import (
	"context"
	"fmt"
	"strings"

	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"
	"shiftboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type ShiftChangeReadStore struct {
	db db.DBTX
}

func NewShiftChangeReadStore(dbtx db.DBTX) *ShiftChangeReadStore {
	return &ShiftChangeReadStore{db: dbtx}
}

func (r *ShiftChangeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ChangeRequestView, error) {
	const query = `
		SELECT r.id, r.requester_id, e.first_name || ' ' || e.last_name,
		       r.schedule_entry_id, se.date, se.shift_type_id, st.name,
		       r.change_type, r.target_shift_type_id, r.urgency, r.reason,
		       r.status, r.admin_notes, r.created_at, r.updated_at
		FROM shift_change_requests r
		JOIN employees e ON e.id = r.requester_id
		JOIN schedule_entries se ON se.id = r.schedule_entry_id
		JOIN shift_types st ON st.id = se.shift_type_id
		WHERE r.id = $1`

	var view queries.ChangeRequestView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.RequesterID, &view.RequesterName,
		&view.ScheduleEntryID, &view.EntryDate, &view.ShiftTypeID, &view.ShiftTypeName,
		&view.ChangeType, &view.TargetShiftTypeID, &view.Urgency, &view.Reason,
		&view.Status, &view.AdminNotes, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("change request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get change request view", err)
	}

	if view.Offers, err = r.findOffers(ctx, id); err != nil {
		return nil, err
	}
	if view.Approvals, err = r.findApprovals(ctx, id); err != nil {
		return nil, err
	}
	if view.Result, err = r.findResult(ctx, id); err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *ShiftChangeReadStore) findOffers(ctx context.Context, requestID uuid.UUID) ([]queries.OfferView, error) {
	const query = `
		SELECT o.id, o.request_id, o.offerer_id, e.first_name || ' ' || e.last_name,
		       o.conditions, o.status, o.offered_at
		FROM coverage_offers o
		JOIN employees e ON e.id = o.offerer_id
		WHERE o.request_id = $1
		ORDER BY o.offered_at`

	rows, err := r.db.Query(ctx, query, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	defer rows.Close()

	offers := []queries.OfferView{}
	for rows.Next() {
		var o queries.OfferView
		if err := rows.Scan(&o.ID, &o.RequestID, &o.OffererID, &o.OffererName, &o.Conditions, &o.Status, &o.OfferedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer row", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offer rows", err)
	}
	return offers, nil
}

func (r *ShiftChangeReadStore) findApprovals(ctx context.Context, requestID uuid.UUID) ([]queries.ApprovalView, error) {
	const query = `
		SELECT id, approver_id, role, approved, created_at
		FROM change_approvals
		WHERE request_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approvals", err)
	}
	defer rows.Close()

	approvals := []queries.ApprovalView{}
	for rows.Next() {
		var a queries.ApprovalView
		if err := rows.Scan(&a.ID, &a.ApproverID, &a.Role, &a.Approved, &a.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan approval row", err)
		}
		approvals = append(approvals, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate approval rows", err)
	}
	return approvals, nil
}

func (r *ShiftChangeReadStore) findResult(ctx context.Context, requestID uuid.UUID) (*queries.ChangeResultView, error) {
	const query = `
		SELECT id, selected_offer_id, executed_at, created_at
		FROM shift_change_results
		WHERE request_id = $1`

	var v queries.ChangeResultView
	err := r.db.QueryRow(ctx, query, requestID).Scan(&v.ID, &v.SelectedOfferID, &v.ExecutedAt, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get change result", err)
	}
	return &v, nil
}

func (r *ShiftChangeReadStore) FindList(ctx context.Context, viewerEmployeeID uuid.UUID, filter queries.ListChangesFilter) ([]*queries.ChangeRequestListItem, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT r.id, r.requester_id, e.first_name || ' ' || e.last_name,
		       se.date, st.name, r.change_type, r.urgency, r.status,
		       (SELECT count(*) FROM coverage_offers o WHERE o.request_id = r.id),
		       r.created_at
		FROM shift_change_requests r
		JOIN employees e ON e.id = r.requester_id
		JOIN schedule_entries se ON se.id = r.schedule_entry_id
		JOIN shift_types st ON st.id = se.shift_type_id
		WHERE 1=1`)

	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Status != nil {
		sb.WriteString(" AND r.status = " + arg(*filter.Status))
	}
	if filter.Mine {
		sb.WriteString(" AND r.requester_id = " + arg(viewerEmployeeID))
	}
	if filter.Available {
		sb.WriteString(" AND r.status IN ('OPEN', 'SELECTING') AND r.requester_id <> " + arg(viewerEmployeeID))
	}
	if filter.After != "" {
		afterTime, afterID, err := queries.DecodeAfterCursor(filter.After)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid list cursor", err, infra.KindConflict)
		}
		sb.WriteString(fmt.Sprintf(" AND (r.created_at, r.id) < (%s, %s)", arg(afterTime), arg(afterID)))
	}
	sb.WriteString(" ORDER BY r.created_at DESC, r.id DESC LIMIT " + arg(filter.Limit))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list change requests", err)
	}
	defer rows.Close()

	items := []*queries.ChangeRequestListItem{}
	for rows.Next() {
		var it queries.ChangeRequestListItem
		err := rows.Scan(
			&it.ID, &it.RequesterID, &it.RequesterName,
			&it.EntryDate, &it.ShiftTypeName, &it.ChangeType, &it.Urgency, &it.Status,
			&it.OfferCount, &it.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan change request row", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate change request rows", err)
	}
	return items, nil
}
