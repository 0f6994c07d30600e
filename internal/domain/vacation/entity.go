package vacation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrNoBusinessDays   = errors.New("range contains no business days")
	ErrNotPending       = errors.New("request is not pending")
	ErrNotOwner         = errors.New("actor does not own this request")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

type Request struct {
	id         uuid.UUID
	employeeID uuid.UUID
	startDate  time.Time
	endDate    time.Time
	totalDays  int
	reason     *string
	status     Status
	adminNotes *string
	createdAt  time.Time
}

func NewRequest(employeeID uuid.UUID, startDate, endDate time.Time, reason *string, now time.Time) (*Request, error) {
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	totalDays := BusinessDaysBetween(startDate, endDate)
	if totalDays == 0 {
		return nil, ErrNoBusinessDays
	}

	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		if trimmed == "" {
			reason = nil
		} else {
			reason = &trimmed
		}
	}

	return &Request{
		id:         uuid.New(),
		employeeID: employeeID,
		startDate:  startDate,
		endDate:    endDate,
		totalDays:  totalDays,
		reason:     reason,
		status:     StatusPending,
		createdAt:  now,
	}, nil
}

func ReconstructRequest(
	id, employeeID uuid.UUID,
	startDate, endDate time.Time,
	totalDays int,
	reason *string,
	status Status,
	adminNotes *string,
	createdAt time.Time,
) *Request {
	return &Request{
		id:         id,
		employeeID: employeeID,
		startDate:  startDate,
		endDate:    endDate,
		totalDays:  totalDays,
		reason:     reason,
		status:     status,
		adminNotes: adminNotes,
		createdAt:  createdAt,
	}
}

func (r *Request) ID() uuid.UUID         { return r.id }
func (r *Request) EmployeeID() uuid.UUID { return r.employeeID }
func (r *Request) StartDate() time.Time  { return r.startDate }
func (r *Request) EndDate() time.Time    { return r.endDate }
func (r *Request) TotalDays() int        { return r.totalDays }
func (r *Request) Reason() *string       { return r.reason }
func (r *Request) Status() Status        { return r.status }
func (r *Request) AdminNotes() *string   { return r.adminNotes }
func (r *Request) CreatedAt() time.Time  { return r.createdAt }

func (r *Request) CanDecide() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	return nil
}

func (r *Request) CanCancel(actorEmployeeID uuid.UUID) error {
	if r.employeeID != actorEmployeeID {
		return ErrNotOwner
	}
	if r.status != StatusPending {
		return ErrNotPending
	}
	return nil
}
