package vacation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInsufficientBalance = errors.New("insufficient vacation balance")
	ErrNegativeDays        = errors.New("days must be positive")
	ErrPendingUnderflow    = errors.New("pending days underflow")
)

// Balance is one employee's vacation account for a calendar year. Requested
// days are held in pendingDays until an admin decides; approval moves them to
// usedDays, rejection or cancellation releases them.
type Balance struct {
	id              uuid.UUID
	employeeID      uuid.UUID
	year            int
	totalDays       int
	usedDays        int
	pendingDays     int
	carriedOverDays int
}

func NewBalance(employeeID uuid.UUID, year, totalDays int) *Balance {
	return &Balance{
		id:         uuid.New(),
		employeeID: employeeID,
		year:       year,
		totalDays:  totalDays,
	}
}

func ReconstructBalance(id, employeeID uuid.UUID, year, totalDays, usedDays, pendingDays, carriedOverDays int) *Balance {
	return &Balance{
		id:              id,
		employeeID:      employeeID,
		year:            year,
		totalDays:       totalDays,
		usedDays:        usedDays,
		pendingDays:     pendingDays,
		carriedOverDays: carriedOverDays,
	}
}

func (b *Balance) ID() uuid.UUID         { return b.id }
func (b *Balance) EmployeeID() uuid.UUID { return b.employeeID }
func (b *Balance) Year() int             { return b.year }
func (b *Balance) TotalDays() int        { return b.totalDays }
func (b *Balance) UsedDays() int         { return b.usedDays }
func (b *Balance) PendingDays() int      { return b.pendingDays }
func (b *Balance) CarriedOverDays() int  { return b.carriedOverDays }

func (b *Balance) Available() int {
	return b.totalDays + b.carriedOverDays - b.usedDays - b.pendingDays
}

func (b *Balance) ReservePending(days int) error {
	if days <= 0 {
		return ErrNegativeDays
	}
	if days > b.Available() {
		return ErrInsufficientBalance
	}
	b.pendingDays += days
	return nil
}

func (b *Balance) CommitPending(days int) error {
	if days <= 0 {
		return ErrNegativeDays
	}
	if days > b.pendingDays {
		return ErrPendingUnderflow
	}
	b.pendingDays -= days
	b.usedDays += days
	return nil
}

func (b *Balance) ReleasePending(days int) error {
	if days <= 0 {
		return ErrNegativeDays
	}
	if days > b.pendingDays {
		return ErrPendingUnderflow
	}
	b.pendingDays -= days
	return nil
}

// BusinessDaysBetween counts weekdays in [start, end], inclusive on both
// ends. Weekends are excluded; public holidays are not modeled.
func BusinessDaysBetween(start, end time.Time) int {
	if start.After(end) {
		return 0
	}
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}
