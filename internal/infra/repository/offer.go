package repository

import (
	"context"

	"shiftboard/internal/domain/shiftchange"
	"shiftboard/internal/infra"
	"shiftboard/internal/infra/db"
	"shiftboard/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfferRepository struct{}

func NewOfferRepository() *OfferRepository {
	return &OfferRepository{}
}

func (r *OfferRepository) Create(ctx context.Context, tx db.DBTX, offer *shiftchange.CoverageOffer) (uuid.UUID, error) {
	const query = `
		INSERT INTO coverage_offers (id, request_id, offerer_id, conditions, status, offered_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		offer.ID(), offer.RequestID(), offer.OffererID(),
		offer.Conditions(), offer.Status().String(), offer.OfferedAt(),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("offerer already has an offer on this request", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("offer references missing row", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create offer", err)
	}
	return id, nil
}

func (r *OfferRepository) Delete(ctx context.Context, tx db.DBTX, offerID uuid.UUID) error {
	const query = `DELETE FROM coverage_offers WHERE id = $1`

	tag, err := tx.Exec(ctx, query, offerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete offer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OfferRepository) MarkSelected(ctx context.Context, tx db.DBTX, offerID uuid.UUID) error {
	const query = `
		UPDATE coverage_offers
		SET status = 'SELECTED'
		WHERE id = $1 AND status = 'PENDING'`

	tag, err := tx.Exec(ctx, query, offerID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark offer selected", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer is no longer pending", nil, infra.KindConflict)
	}
	return nil
}

func (r *OfferRepository) CountByRequest(ctx context.Context, tx db.DBTX, requestID uuid.UUID) (int64, error) {
	const query = `SELECT count(*) FROM coverage_offers WHERE request_id = $1 AND status = 'PENDING'`

	var count int64
	if err := tx.QueryRow(ctx, query, requestID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count offers", err)
	}
	return count, nil
}
