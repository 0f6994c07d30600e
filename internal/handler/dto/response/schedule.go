package response

import (
	"time"

	"shiftboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ScheduleEntryResponse struct {
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

type SchedulePeriodResponse struct {
	ID      uuid.UUID               `json:"id"`
	Year    int                     `json:"year"`
	Month   int                     `json:"month"`
	Status  string                  `json:"status"`
	Entries []ScheduleEntryResponse `json:"entries"`
}

type ShiftTypeResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Color     string    `json:"color"`
	IsActive  bool      `json:"is_active"`
}

func FromSchedulePeriodView(v *queries.SchedulePeriodView) *SchedulePeriodResponse {
	var resp SchedulePeriodResponse
	_ = copier.Copy(&resp, v)
	if resp.Entries == nil {
		resp.Entries = []ScheduleEntryResponse{}
	}
	return &resp
}

func FromScheduleEntryList(items []*queries.ScheduleEntryView) []*ScheduleEntryResponse {
	res := make([]*ScheduleEntryResponse, len(items))
	for i, it := range items {
		var resp ScheduleEntryResponse
		_ = copier.Copy(&resp, it)
		res[i] = &resp
	}
	return res
}

func FromShiftTypeList(items []*queries.ShiftTypeView) []*ShiftTypeResponse {
	res := make([]*ShiftTypeResponse, len(items))
	for i, it := range items {
		var resp ShiftTypeResponse
		_ = copier.Copy(&resp, it)
		res[i] = &resp
	}
	return res
}
