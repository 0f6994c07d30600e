package queries

import (
	"time"

	"github.com/google/uuid"
)

// ChangeRequestView represents read-optimized change request data with the
// joined context a detail page needs.
type ChangeRequestView struct {
	ID                uuid.UUID         `json:"id"`
	RequesterID       uuid.UUID         `json:"requester_id"`
	RequesterName     string            `json:"requester_name"`
	ScheduleEntryID   uuid.UUID         `json:"schedule_entry_id"`
	EntryDate         time.Time         `json:"entry_date"`
	ShiftTypeID       uuid.UUID         `json:"shift_type_id"`
	ShiftTypeName     string            `json:"shift_type_name"`
	ChangeType        string            `json:"change_type"`
	TargetShiftTypeID *uuid.UUID        `json:"target_shift_type_id,omitempty"`
	Urgency           string            `json:"urgency"`
	Reason            *string           `json:"reason,omitempty"`
	Status            string            `json:"status"`
	AdminNotes        *string           `json:"admin_notes,omitempty"`
	Offers            []OfferView       `json:"offers"`
	Approvals         []ApprovalView    `json:"approvals"`
	Result            *ChangeResultView `json:"result,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

type ChangeRequestListItem struct {
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

type OfferView struct {
	ID          uuid.UUID `json:"id"`
	RequestID   uuid.UUID `json:"request_id"`
	OffererID   uuid.UUID `json:"offerer_id"`
	OffererName string    `json:"offerer_name"`
	Conditions  *string   `json:"conditions,omitempty"`
	Status      string    `json:"status"`
	OfferedAt   time.Time `json:"offered_at"`
}

type ApprovalView struct {
	ID         uuid.UUID `json:"id"`
	ApproverID uuid.UUID `json:"approver_id"`
	Role       string    `json:"role"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
}

type ChangeResultView struct {
	ID              uuid.UUID  `json:"id"`
	SelectedOfferID *uuid.UUID `json:"selected_offer_id,omitempty"`
	ExecutedAt      *time.Time `json:"executed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	EmployeeID *uuid.UUID `json:"employee_id,omitempty"`
	IsActive   bool       `json:"is_active"`
}

type ScheduleEntryView struct {
	ID               uuid.UUID `json:"id"`
	PeriodID         uuid.UUID `json:"period_id"`
	EmployeeID       uuid.UUID `json:"employee_id"`
	EmployeeName     string    `json:"employee_name"`
	Date             time.Time `json:"date"`
	ShiftTypeID      uuid.UUID `json:"shift_type_id"`
	ShiftTypeCode    string    `json:"shift_type_code"`
	ShiftTypeName    string    `json:"shift_type_name"`
	IsManualOverride bool      `json:"is_manual_override"`
	OverrideReason   *string   `json:"override_reason,omitempty"`
}

type SchedulePeriodView struct {
	ID      uuid.UUID           `json:"id"`
	Year    int                 `json:"year"`
	Month   int                 `json:"month"`
	Status  string              `json:"status"`
	Entries []ScheduleEntryView `json:"entries"`
}

type ShiftTypeView struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Color     string    `json:"color"`
	IsActive  bool      `json:"is_active"`
}

type VacationRequestView struct {
	ID           uuid.UUID `json:"id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	TotalDays    int       `json:"total_days"`
	Reason       *string   `json:"reason,omitempty"`
	Status       string    `json:"status"`
	AdminNotes   *string   `json:"admin_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type VacationBalanceView struct {
	EmployeeID      uuid.UUID `json:"employee_id"`
	Year            int       `json:"year"`
	TotalDays       int       `json:"total_days"`
	UsedDays        int       `json:"used_days"`
	PendingDays     int       `json:"pending_days"`
	CarriedOverDays int       `json:"carried_over_days"`
	AvailableDays   int       `json:"available_days"`
}

// MessageView is a direct message with both party names resolved; users
// without an employee profile fall back to their email.
type MessageView struct {
	ID            uuid.UUID  `json:"id"`
	SenderID      uuid.UUID  `json:"sender_id"`
	SenderName    string     `json:"sender_name"`
	RecipientID   uuid.UUID  `json:"recipient_id"`
	RecipientName string     `json:"recipient_name"`
	ParentID      *uuid.UUID `json:"parent_id,omitempty"`
	Subject       *string    `json:"subject,omitempty"`
	Content       string     `json:"content"`
	ReadAt        *time.Time `json:"read_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      *string   `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type PreferenceEntryView struct {
	Date        time.Time  `json:"date"`
	ShiftTypeID *uuid.UUID `json:"shift_type_id,omitempty"`
	PrefersOff  bool       `json:"prefers_off"`
	Note        *string    `json:"note,omitempty"`
}

type PreferencePeriodView struct {
	ID       uuid.UUID             `json:"id"`
	Year     int                   `json:"year"`
	Month    int                   `json:"month"`
	IsOpen   bool                  `json:"is_open"`
	Deadline time.Time             `json:"deadline"`
	Entries  []PreferenceEntryView `json:"entries"`
}
