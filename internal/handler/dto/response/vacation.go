package response

import (
	"time"

	"shiftboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VacationRequestResponse struct {
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

type VacationBalanceResponse struct {
	EmployeeID      uuid.UUID `json:"employee_id"`
	Year            int       `json:"year"`
	TotalDays       int       `json:"total_days"`
	UsedDays        int       `json:"used_days"`
	PendingDays     int       `json:"pending_days"`
	CarriedOverDays int       `json:"carried_over_days"`
	AvailableDays   int       `json:"available_days"`
}

func FromVacationView(v *queries.VacationRequestView) *VacationRequestResponse {
	var resp VacationRequestResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromVacationList(items []*queries.VacationRequestView) []*VacationRequestResponse {
	res := make([]*VacationRequestResponse, len(items))
	for i, it := range items {
		res[i] = FromVacationView(it)
	}
	return res
}

func FromVacationBalance(v *queries.VacationBalanceView) *VacationBalanceResponse {
	var resp VacationBalanceResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
