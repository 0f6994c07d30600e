//go:build unit || e2e

package builder

import (
	"time"

	"shiftboard/internal/domain/shiftchange"
	"shiftboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	RequestID   uuid.UUID
	OffererID   uuid.UUID
	RequesterID uuid.UUID
	Conditions  *string
	Now         time.Time
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		RequestID:   uuid.New(),
		OffererID:   uuid.New(),
		RequesterID: uuid.New(),
		Conditions:  nil,
		Now:         time.Now(),
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OfferBuilder) BuildDomain() (*shiftchange.CoverageOffer, error) {
	return shiftchange.NewCoverageOffer(b.RequestID, b.OffererID, b.RequesterID, b.Conditions, b.Now)
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	return &queries.OfferView{
		ID:          uuid.New(),
		RequestID:   b.RequestID,
		OffererID:   b.OffererID,
		OffererName: "Test Offerer",
		Conditions:  b.Conditions,
		Status:      shiftchange.OfferPending.String(),
		OfferedAt:   b.Now,
	}
}

// Fluent builder methods
func (b *OfferBuilder) WithOffererID(id uuid.UUID) *OfferBuilder {
	b.OffererID = id
	return b
}

func (b *OfferBuilder) WithConditions(conditions string) *OfferBuilder {
	b.Conditions = &conditions
	return b
}

func (b *OfferBuilder) AsSelfOffer() *OfferBuilder {
	b.OffererID = b.RequesterID
	return b
}
