package repository

import (
	"context"
	"time"

	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ResultRepository struct{}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{}
}

func (r *ResultRepository) Create(ctx context.Context, tx db.DBTX, requestID uuid.UUID, selectedOfferID *uuid.UUID, snapshot []byte) (uuid.UUID, error) {
	const query = `
		INSERT INTO shift_change_results (id, request_id, selected_offer_id, original_entry_snapshot)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query, uuid.New(), requestID, selectedOfferID, snapshot).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("request already has a result", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create change result", err)
	}
	return id, nil
}

// ClaimExecution stamps executed_at exactly once. A second caller sees zero
// affected rows and must treat the execution as already done.
func (r *ResultRepository) ClaimExecution(ctx context.Context, tx db.DBTX, resultID uuid.UUID, at time.Time) (bool, error) {
	const query = `
		UPDATE shift_change_results
		SET executed_at = $2
		WHERE id = $1 AND executed_at IS NULL`

	tag, err := tx.Exec(ctx, query, resultID, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim result execution", err)
	}
	return tag.RowsAffected() > 0, nil
}
