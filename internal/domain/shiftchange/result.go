package shiftchange

import (
	"time"

	"github.com/google/uuid"
)

// ShiftChangeResult is the durable record that a negotiation concluded: which
// offer won (nil for admin-resolved absence/swap) and a serialized copy of
// the schedule entry before execution. Created once, never deleted.
type ShiftChangeResult struct {
	ID                    uuid.UUID
	RequestID             uuid.UUID
	SelectedOfferID       *uuid.UUID
	OriginalEntrySnapshot []byte
	ExecutedAt            *time.Time
	CreatedAt             time.Time
}

func (r *ShiftChangeResult) IsExecuted() bool {
	return r.ExecutedAt != nil
}
