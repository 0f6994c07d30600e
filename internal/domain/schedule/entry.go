package schedule

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EntrySnapshot is an immutable copy of one (employee, date) → shift-type
// assignment, carrying the owning period's status so callers can validate
// without a second lookup. The negotiation core both validates against it
// and serializes it into the pre-change audit record.
type EntrySnapshot struct {
	ID                 uuid.UUID    `json:"id"`
	PeriodID           uuid.UUID    `json:"period_id"`
	EmployeeID         uuid.UUID    `json:"employee_id"`
	OriginalEmployeeID *uuid.UUID   `json:"original_employee_id,omitempty"`
	Date               time.Time    `json:"date"`
	ShiftTypeID        uuid.UUID    `json:"shift_type_id"`
	IsManualOverride   bool         `json:"is_manual_override"`
	OverrideReason     *string      `json:"override_reason,omitempty"`
	PeriodStatus       PeriodStatus `json:"period_status"`
}

// Marshal serializes the snapshot for the pre-change audit record.
func (e EntrySnapshot) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func UnmarshalEntrySnapshot(data []byte) (EntrySnapshot, error) {
	var snap EntrySnapshot
	err := json.Unmarshal(data, &snap)
	return snap, err
}

// ShiftType is the reference data a schedule entry points at.
type ShiftType struct {
	ID        uuid.UUID
	Code      string
	Name      string
	StartTime string
	EndTime   string
	Color     string
	IsActive  bool
}
