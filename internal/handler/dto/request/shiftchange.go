package request

import (
	"strings"

	"shiftboard/internal/domain/shiftchange"
	"shiftboard/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateChangeRequest struct {
	ScheduleEntryID   uuid.UUID  `json:"schedule_entry_id" binding:"required"`
	ChangeType        string     `json:"change_type" binding:"required,oneof=COVERAGE SWAP ABSENCE"`
	TargetShiftTypeID *uuid.UUID `json:"target_shift_type_id,omitempty"`
	Reason            *string    `json:"reason,omitempty" binding:"omitempty,max=500"`
	Urgency           string     `json:"urgency" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
}

func (r CreateChangeRequest) ToInput() commands.CreateChangeInput {
	urgency := shiftchange.UrgencyMedium
	if r.Urgency != "" {
		urgency = shiftchange.Urgency(r.Urgency)
	}
	return commands.CreateChangeInput{
		ScheduleEntryID:   r.ScheduleEntryID,
		ChangeType:        shiftchange.ChangeType(r.ChangeType),
		TargetShiftTypeID: r.TargetShiftTypeID,
		Reason:            trimmedPtr(r.Reason),
		Urgency:           urgency,
	}
}

type SubmitOfferRequest struct {
	Conditions *string `json:"conditions,omitempty" binding:"omitempty,max=500"`
}

func (r SubmitOfferRequest) ToInput() commands.SubmitOfferInput {
	return commands.SubmitOfferInput{Conditions: trimmedPtr(r.Conditions)}
}

type DecisionRequest struct {
	Notes *string `json:"notes,omitempty" binding:"omitempty,max=500"`
}

func (r DecisionRequest) ToInput() commands.DecisionInput {
	return commands.DecisionInput{Notes: trimmedPtr(r.Notes)}
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
