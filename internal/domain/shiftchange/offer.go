package shiftchange

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSelfOffer       = errors.New("cannot offer on own request")
	ErrDuplicateOffer  = errors.New("offerer already has an offer on this request")
	ErrOfferNotPending = errors.New("offer is not pending")
	ErrNotOfferer      = errors.New("actor is not the offerer")
	ErrOfferMismatch   = errors.New("offer does not belong to this request")
)

const MaxConditionsLength = 500

var ErrConditionsTooLong = errors.New("conditions exceed maximum length")

// CoverageOffer is a worker's bid to take over the shift a change request
// contests. At most one offer per (request, offerer).
type CoverageOffer struct {
	id         uuid.UUID
	requestID  uuid.UUID
	offererID  uuid.UUID
	conditions *string
	status     OfferStatus
	offeredAt  time.Time
}

func NewCoverageOffer(requestID, offererID, requesterID uuid.UUID, conditions *string, now time.Time) (*CoverageOffer, error) {
	if offererID == requesterID {
		return nil, ErrSelfOffer
	}

	if conditions != nil {
		trimmed := strings.TrimSpace(*conditions)
		if trimmed == "" {
			conditions = nil
		} else if len(trimmed) > MaxConditionsLength {
			return nil, ErrConditionsTooLong
		} else {
			conditions = &trimmed
		}
	}

	return &CoverageOffer{
		id:         uuid.New(),
		requestID:  requestID,
		offererID:  offererID,
		conditions: conditions,
		status:     OfferPending,
		offeredAt:  now,
	}, nil
}

func ReconstructCoverageOffer(
	id, requestID, offererID uuid.UUID,
	conditions *string,
	status OfferStatus,
	offeredAt time.Time,
) *CoverageOffer {
	return &CoverageOffer{
		id:         id,
		requestID:  requestID,
		offererID:  offererID,
		conditions: conditions,
		status:     status,
		offeredAt:  offeredAt,
	}
}

func (o *CoverageOffer) ID() uuid.UUID        { return o.id }
func (o *CoverageOffer) RequestID() uuid.UUID { return o.requestID }
func (o *CoverageOffer) OffererID() uuid.UUID { return o.offererID }
func (o *CoverageOffer) Conditions() *string  { return o.conditions }
func (o *CoverageOffer) Status() OfferStatus  { return o.status }
func (o *CoverageOffer) OfferedAt() time.Time { return o.offeredAt }

// CanWithdraw guards withdrawal: only the offerer, only while pending.
// Selected offers are never physically removed.
func (o *CoverageOffer) CanWithdraw(actorEmployeeID uuid.UUID) error {
	if o.offererID != actorEmployeeID {
		return ErrNotOfferer
	}
	if o.status != OfferPending {
		return ErrOfferNotPending
	}
	return nil
}
