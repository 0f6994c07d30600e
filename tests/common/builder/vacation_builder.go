//go:build unit || e2e

package builder

import (
	"time"

	"shiftboard/internal/domain/vacation"
	"shiftboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type VacationRequestBuilder struct {
	EmployeeID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Now        time.Time
}

// NewVacationRequestBuilder defaults to a Monday-to-Friday week, five
// business days.
func NewVacationRequestBuilder() *VacationRequestBuilder {
	return &VacationRequestBuilder{
		EmployeeID: uuid.New(),
		StartDate:  time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC),
		Now:        time.Now(),
	}
}

func (b *VacationRequestBuilder) With(mutate func(*VacationRequestBuilder)) *VacationRequestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *VacationRequestBuilder) BuildDomain() (*vacation.Request, error) {
	return vacation.NewRequest(b.EmployeeID, b.StartDate, b.EndDate, b.Reason, b.Now)
}

func (b *VacationRequestBuilder) BuildView() *queries.VacationRequestView {
	return &queries.VacationRequestView{
		ID:           uuid.New(),
		EmployeeID:   b.EmployeeID,
		EmployeeName: "Test Worker",
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		TotalDays:    vacation.BusinessDaysBetween(b.StartDate, b.EndDate),
		Reason:       b.Reason,
		Status:       vacation.StatusPending.String(),
		CreatedAt:    b.Now,
	}
}

// Fluent builder methods
func (b *VacationRequestBuilder) WithEmployeeID(id uuid.UUID) *VacationRequestBuilder {
	b.EmployeeID = id
	return b
}

func (b *VacationRequestBuilder) WithDates(start, end time.Time) *VacationRequestBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *VacationRequestBuilder) WithReason(reason string) *VacationRequestBuilder {
	b.Reason = &reason
	return b
}
