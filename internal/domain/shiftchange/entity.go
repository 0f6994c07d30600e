package shiftchange

import (
	"errors"
	"strings"
	"time"

	"shiftboard/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEntryNotOwned      = errors.New("schedule entry does not belong to requester")
	ErrPeriodNotPublished = errors.New("schedule period is not published")
	ErrSwapTargetRequired = errors.New("swap request requires a target shift type")
	ErrSwapTargetSame     = errors.New("swap target must differ from the current shift type")
	ErrSwapTargetInactive = errors.New("swap target shift type is not active")
	ErrInvalidChangeType  = errors.New("invalid change type")
	ErrInvalidUrgency     = errors.New("invalid urgency")
	ErrNotRequester       = errors.New("actor is not the requester")
)

const MaxReasonLength = 500

var ErrReasonTooLong = errors.New("reason exceeds maximum length")

// ChangeRequest is the aggregate root of a shift-change negotiation. Offers,
// approvals and the result are stored per id and cross-referenced, never
// embedded, so the orchestrator can re-fetch a consistent snapshot before
// each transition.
type ChangeRequest struct {
	id                uuid.UUID
	requesterID       uuid.UUID
	scheduleEntryID   uuid.UUID
	changeType        ChangeType
	targetShiftTypeID *uuid.UUID
	urgency           Urgency
	reason            *string
	status            Status
	adminNotes        *string
	createdAt         time.Time
}

// TargetShiftSpec is the minimal view of the swap target a new request is
// validated against.
type TargetShiftSpec struct {
	ID       uuid.UUID
	IsActive bool
}

func NewChangeRequest(
	requesterID uuid.UUID,
	entry schedule.EntrySnapshot,
	changeType ChangeType,
	target *TargetShiftSpec,
	reason *string,
	urgency Urgency,
	now time.Time,
) (*ChangeRequest, error) {
	if !changeType.IsValid() {
		return nil, ErrInvalidChangeType
	}
	if urgency == "" {
		urgency = UrgencyMedium
	}
	if !urgency.IsValid() {
		return nil, ErrInvalidUrgency
	}
	if entry.EmployeeID != requesterID {
		return nil, ErrEntryNotOwned
	}
	if entry.PeriodStatus != schedule.PeriodPublished {
		return nil, ErrPeriodNotPublished
	}

	var targetID *uuid.UUID
	if changeType == TypeSwap {
		if target == nil {
			return nil, ErrSwapTargetRequired
		}
		if target.ID == entry.ShiftTypeID {
			return nil, ErrSwapTargetSame
		}
		if !target.IsActive {
			return nil, ErrSwapTargetInactive
		}
		id := target.ID
		targetID = &id
	}

	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		if trimmed == "" {
			reason = nil
		} else if len(trimmed) > MaxReasonLength {
			return nil, ErrReasonTooLong
		} else {
			reason = &trimmed
		}
	}

	return &ChangeRequest{
		id:                uuid.New(),
		requesterID:       requesterID,
		scheduleEntryID:   entry.ID,
		changeType:        changeType,
		targetShiftTypeID: targetID,
		urgency:           urgency,
		reason:            reason,
		status:            StatusOpen,
		createdAt:         now,
	}, nil
}

func ReconstructChangeRequest(
	id, requesterID, scheduleEntryID uuid.UUID,
	changeType ChangeType,
	targetShiftTypeID *uuid.UUID,
	urgency Urgency,
	reason *string,
	status Status,
	adminNotes *string,
	createdAt time.Time,
) *ChangeRequest {
	return &ChangeRequest{
		id:                id,
		requesterID:       requesterID,
		scheduleEntryID:   scheduleEntryID,
		changeType:        changeType,
		targetShiftTypeID: targetShiftTypeID,
		urgency:           urgency,
		reason:            reason,
		status:            status,
		adminNotes:        adminNotes,
		createdAt:         createdAt,
	}
}

func (r *ChangeRequest) ID() uuid.UUID                 { return r.id }
func (r *ChangeRequest) RequesterID() uuid.UUID        { return r.requesterID }
func (r *ChangeRequest) ScheduleEntryID() uuid.UUID    { return r.scheduleEntryID }
func (r *ChangeRequest) ChangeType() ChangeType        { return r.changeType }
func (r *ChangeRequest) TargetShiftTypeID() *uuid.UUID { return r.targetShiftTypeID }
func (r *ChangeRequest) Urgency() Urgency              { return r.urgency }
func (r *ChangeRequest) Reason() *string               { return r.reason }
func (r *ChangeRequest) Status() Status                { return r.status }
func (r *ChangeRequest) AdminNotes() *string           { return r.adminNotes }
func (r *ChangeRequest) CreatedAt() time.Time          { return r.createdAt }

// HasExpired reports whether the request outlived its validity window while
// still negotiating. Terminal and awaiting-approval requests never expire.
func (r *ChangeRequest) HasExpired(now time.Time, window time.Duration) bool {
	if !r.status.AcceptsOffers() {
		return false
	}
	return now.After(r.createdAt.Add(window))
}

func (r *ChangeRequest) CanCancel(actorEmployeeID uuid.UUID) error {
	if r.requesterID != actorEmployeeID {
		return ErrNotRequester
	}
	if !CanApply(r.status, ActionCancel) {
		return ErrInvalidTransition
	}
	return nil
}
