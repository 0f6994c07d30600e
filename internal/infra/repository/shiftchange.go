package repository

import (
	"context"
	"time"

	"shiftboard/internal/domain/shiftchange"
	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ChangeRequestRepository struct{}

func NewChangeRequestRepository() *ChangeRequestRepository {
	return &ChangeRequestRepository{}
}

func (r *ChangeRequestRepository) Create(ctx context.Context, tx db.DBTX, req *shiftchange.ChangeRequest) (uuid.UUID, error) {
	const query = `
		INSERT INTO shift_change_requests
			(id, requester_id, schedule_entry_id, change_type, target_shift_type_id, urgency, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		req.ID(), req.RequesterID(), req.ScheduleEntryID(),
		req.ChangeType().String(), req.TargetShiftTypeID(),
		req.Urgency().String(), req.Reason(), req.Status().String(), req.CreatedAt(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("entry already has a live change request", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("change request references missing row", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create change request", err)
	}
	return id, nil
}

// UpdateStatus performs the compare-and-swap every transition goes through.
func (r *ChangeRequestRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, from, to shiftchange.Status) (bool, error) {
	const query = `
		UPDATE shift_change_requests
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`

	tag, err := tx.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to update change request status", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ChangeRequestRepository) SetAdminNotes(ctx context.Context, tx db.DBTX, id uuid.UUID, notes string) error {
	const query = `
		UPDATE shift_change_requests
		SET admin_notes = $2, updated_at = now()
		WHERE id = $1`

	if _, err := tx.Exec(ctx, query, id, notes); err != nil {
		return infra.WrapRepoErr("failed to set admin notes", err)
	}
	return nil
}

func (r *ChangeRequestRepository) ExpireOlderThan(ctx context.Context, tx db.DBTX, cutoff time.Time) (int64, error) {
	const query = `
		UPDATE shift_change_requests
		SET status = 'EXPIRED', updated_at = now()
		WHERE status IN ('OPEN', 'SELECTING') AND created_at < $1`

	tag, err := tx.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire stale change requests", err)
	}
	return tag.RowsAffected(), nil
}
