package request

import (
	"time"

	"shiftboard/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatePeriodRequest struct {
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

type UpsertEntryRequest struct {
	EmployeeID  uuid.UUID `json:"employee_id" binding:"required"`
	Date        string    `json:"date" binding:"required,datetime=2006-01-02"`
	ShiftTypeID uuid.UUID `json:"shift_type_id" binding:"required"`
}

func (r UpsertEntryRequest) ToInput(periodID uuid.UUID) (commands.UpsertEntryInput, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return commands.UpsertEntryInput{}, err
	}
	return commands.UpsertEntryInput{
		PeriodID:    periodID,
		EmployeeID:  r.EmployeeID,
		Date:        date,
		ShiftTypeID: r.ShiftTypeID,
	}, nil
}
