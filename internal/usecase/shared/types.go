package shared

import (
	"time"

	"shiftboard/internal/domain/schedule"
	"shiftboard/internal/domain/shiftchange"

	"github.com/google/uuid"
)

// RequestSnapshot is the command-side read model of a change request row.
type RequestSnapshot struct {
	ID                uuid.UUID
	RequesterID       uuid.UUID
	ScheduleEntryID   uuid.UUID
	ChangeType        shiftchange.ChangeType
	TargetShiftTypeID *uuid.UUID
	Urgency           shiftchange.Urgency
	Reason            *string
	Status            shiftchange.Status
	AdminNotes        *string
	CreatedAt         time.Time
}

type OfferSnapshot struct {
	ID         uuid.UUID
	RequestID  uuid.UUID
	OffererID  uuid.UUID
	Conditions *string
	Status     shiftchange.OfferStatus
	OfferedAt  time.Time
}

type ResultSnapshot struct {
	ID                    uuid.UUID
	RequestID             uuid.UUID
	SelectedOfferID       *uuid.UUID
	OriginalEntrySnapshot []byte
	ExecutedAt            *time.Time
}

// EmployeeRef links an employee profile to its login user.
type EmployeeRef struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FirstName string
	LastName  string
}

type PeriodSnapshot struct {
	ID     uuid.UUID
	Year   int
	Month  int
	Status schedule.PeriodStatus
}

type PreferencePeriodSnapshot struct {
	ID       uuid.UUID
	Year     int
	Month    int
	IsOpen   bool
	Deadline time.Time
}
