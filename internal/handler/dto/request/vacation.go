package request

import (
	"time"

	"shiftboard/internal/usecase/commands"
)

type RequestVacationRequest struct {
	StartDate string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason    *string `json:"reason,omitempty" binding:"omitempty,max=500"`
}

func (r RequestVacationRequest) ToInput() (commands.RequestVacationInput, error) {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return commands.RequestVacationInput{}, err
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return commands.RequestVacationInput{}, err
	}
	return commands.RequestVacationInput{
		StartDate: start,
		EndDate:   end,
		Reason:    trimmedPtr(r.Reason),
	}, nil
}

type VacationDecisionRequest struct {
	Notes *string `json:"notes,omitempty" binding:"omitempty,max=500"`
}
