package response

import (
	"time"

	"shiftboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ChangeRequestResponse struct {
	ID                uuid.UUID             `json:"id"`
	RequesterID       uuid.UUID             `json:"requester_id"`
	RequesterName     string                `json:"requester_name"`
	ScheduleEntryID   uuid.UUID             `json:"schedule_entry_id"`
	EntryDate         time.Time             `json:"entry_date"`
	ShiftTypeID       uuid.UUID             `json:"shift_type_id"`
	ShiftTypeName     string                `json:"shift_type_name"`
	ChangeType        string                `json:"change_type"`
	TargetShiftTypeID *uuid.UUID            `json:"target_shift_type_id,omitempty"`
	Urgency           string                `json:"urgency"`
	Reason            *string               `json:"reason,omitempty"`
	Status            string                `json:"status"`
	AdminNotes        *string               `json:"admin_notes,omitempty"`
	Offers            []OfferResponse       `json:"offers"`
	Approvals         []ApprovalResponse    `json:"approvals"`
	Result            *ChangeResultResponse `json:"result,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

type OfferResponse struct {
	ID          uuid.UUID `json:"id"`
	RequestID   uuid.UUID `json:"request_id"`
	OffererID   uuid.UUID `json:"offerer_id"`
	OffererName string    `json:"offerer_name"`
	Conditions  *string   `json:"conditions,omitempty"`
	Status      string    `json:"status"`
	OfferedAt   time.Time `json:"offered_at"`
}

type ApprovalResponse struct {
	ID         uuid.UUID `json:"id"`
	ApproverID uuid.UUID `json:"approver_id"`
	Role       string    `json:"role"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
}

type ChangeResultResponse struct {
	ID              uuid.UUID  `json:"id"`
	SelectedOfferID *uuid.UUID `json:"selected_offer_id,omitempty"`
	ExecutedAt      *time.Time `json:"executed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ChangeRequestListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	RequesterID   uuid.UUID `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	EntryDate     time.Time `json:"entry_date"`
	ShiftTypeName string    `json:"shift_type_name"`
	ChangeType    string    `json:"change_type"`
	Urgency       string    `json:"urgency"`
	Status        string    `json:"status"`
	OfferCount    int64     `json:"offer_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromChangeRequestView(v *queries.ChangeRequestView) *ChangeRequestResponse {
	var resp ChangeRequestResponse
	_ = copier.Copy(&resp, v)
	if resp.Offers == nil {
		resp.Offers = []OfferResponse{}
	}
	if resp.Approvals == nil {
		resp.Approvals = []ApprovalResponse{}
	}
	return &resp
}

func FromChangeRequestList(items []*queries.ChangeRequestListItem) []*ChangeRequestListItemResponse {
	res := make([]*ChangeRequestListItemResponse, len(items))
	for i, it := range items {
		var resp ChangeRequestListItemResponse
		_ = copier.Copy(&resp, it)
		res[i] = &resp
	}
	return res
}
