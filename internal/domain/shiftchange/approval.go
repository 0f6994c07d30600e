package shiftchange

import (
	"time"

	"github.com/google/uuid"
)

// Approval is one append-only sign-off record. The ledger is never rewritten;
// the effective decision of a role is its most recent record.
type Approval struct {
	ID         uuid.UUID
	RequestID  uuid.UUID
	ApproverID uuid.UUID
	Role       ApproverRole
	Approved   bool
	CreatedAt  time.Time
}

// ApprovalLog is the ledger of a single request, ordered by creation.
type ApprovalLog []Approval

// ActiveByRole reports whether the most recent record for the role is an
// approval.
func (l ApprovalLog) ActiveByRole(role ApproverRole) bool {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i].Role == role {
			return l[i].Approved
		}
	}
	return false
}

// IsFullyApproved reports whether every required role has an active approval.
func (l ApprovalLog) IsFullyApproved(required []ApproverRole) bool {
	for _, role := range required {
		if !l.ActiveByRole(role) {
			return false
		}
	}
	return true
}

// RequiredRoles returns the approval set a request must collect before
// execution. The offerer only signs off when a peer offer was actually
// selected; an offer-less absence or swap needs requester and admin alone.
func RequiredRoles(hasSelectedOffer bool) []ApproverRole {
	if hasSelectedOffer {
		return []ApproverRole{RoleRequester, RoleOfferer, RoleAdmin}
	}
	return []ApproverRole{RoleRequester, RoleAdmin}
}
