package repository

import (
	"context"

	"shiftboard/internal/domain/shiftchange"
	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ApprovalRepository struct{}

func NewApprovalRepository() *ApprovalRepository {
	return &ApprovalRepository{}
}

// Append adds one ledger record. The table is insert-only; superseding a
// decision means appending a newer record for the same role.
func (r *ApprovalRepository) Append(ctx context.Context, tx db.DBTX, requestID, approverID uuid.UUID, role shiftchange.ApproverRole, approved bool) error {
	const query = `
		INSERT INTO change_approvals (id, request_id, approver_id, role, approved)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := tx.Exec(ctx, query, uuid.New(), requestID, approverID, role.String(), approved); err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("approval references missing request", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to append approval", err)
	}
	return nil
}
