package shared

import (
	"context"
	"time"

	"shiftboard/internal/domain/schedule"
	"shiftboard/internal/domain/shiftchange"
	"shiftboard/internal/domain/user"
	"shiftboard/internal/domain/vacation"
	"shiftboard/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	ChangeRequests() ChangeRequestRepository
	Offers() OfferRepository
	Approvals() ApprovalRepository
	Results() ResultRepository
	Schedules() ScheduleRepository
	VacationRequests() VacationRequestRepository
	VacationBalances() VacationBalanceRepository
	Preferences() PreferenceRepository
	Notifications() NotificationRepository
	Messages() MessageRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the write-side lookups commands validate against. Inside
// Within they run on the open transaction and therefore see its writes.
type CommandReads interface {
	RequestByID(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
	OfferByID(ctx context.Context, id uuid.UUID) (*OfferSnapshot, error)
	OffersByRequest(ctx context.Context, requestID uuid.UUID) ([]OfferSnapshot, error)
	ApprovalsByRequest(ctx context.Context, requestID uuid.UUID) (shiftchange.ApprovalLog, error)
	ResultByRequest(ctx context.Context, requestID uuid.UUID) (*ResultSnapshot, error)
	LiveRequestExistsForEntry(ctx context.Context, entryID uuid.UUID) (bool, error)
	EntryByID(ctx context.Context, id uuid.UUID) (*schedule.EntrySnapshot, error)
	PeriodByID(ctx context.Context, id uuid.UUID) (*PeriodSnapshot, error)
	ShiftTypeByID(ctx context.Context, id uuid.UUID) (*schedule.ShiftType, error)
	ShiftTypeByCode(ctx context.Context, code string) (*schedule.ShiftType, error)
	EmployeeByUser(ctx context.Context, userID uuid.UUID) (*EmployeeRef, error)
	UserIDByEmployee(ctx context.Context, employeeID uuid.UUID) (uuid.UUID, error)
	AdminUserIDs(ctx context.Context) ([]uuid.UUID, error)
	BalanceForUpdate(ctx context.Context, employeeID uuid.UUID, year int) (*vacation.Balance, error)
	VacationRequestByID(ctx context.Context, id uuid.UUID) (*vacation.Request, error)
	PreferencePeriod(ctx context.Context, year, month int) (*PreferencePeriodSnapshot, error)
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
	MessageByID(ctx context.Context, id uuid.UUID) (*MessageSnapshot, error)
}

type ChangeRequestRepository interface {
	Create(ctx context.Context, db db.DBTX, req *shiftchange.ChangeRequest) (uuid.UUID, error)
	// UpdateStatus is a compare-and-swap on the status column; false means
	// the expected status was no longer current.
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, from, to shiftchange.Status) (bool, error)
	SetAdminNotes(ctx context.Context, db db.DBTX, id uuid.UUID, notes string) error
	ExpireOlderThan(ctx context.Context, db db.DBTX, cutoff time.Time) (int64, error)
}

type OfferRepository interface {
	Create(ctx context.Context, db db.DBTX, offer *shiftchange.CoverageOffer) (uuid.UUID, error)
	Delete(ctx context.Context, db db.DBTX, offerID uuid.UUID) error
	MarkSelected(ctx context.Context, db db.DBTX, offerID uuid.UUID) error
	CountByRequest(ctx context.Context, db db.DBTX, requestID uuid.UUID) (int64, error)
}

type ApprovalRepository interface {
	Append(ctx context.Context, db db.DBTX, requestID, approverID uuid.UUID, role shiftchange.ApproverRole, approved bool) error
}

type ResultRepository interface {
	Create(ctx context.Context, db db.DBTX, requestID uuid.UUID, selectedOfferID *uuid.UUID, snapshot []byte) (uuid.UUID, error)
	// ClaimExecution stamps executed_at once; false means it was already set.
	ClaimExecution(ctx context.Context, db db.DBTX, resultID uuid.UUID, at time.Time) (bool, error)
}

type ScheduleRepository interface {
	ReassignEmployee(ctx context.Context, db db.DBTX, entryID, newEmployeeID uuid.UUID, reason string) error
	ReassignShiftType(ctx context.Context, db db.DBTX, entryID, shiftTypeID uuid.UUID, reason string) error
	CreatePeriod(ctx context.Context, db db.DBTX, year, month int) (uuid.UUID, error)
	UpsertEntry(ctx context.Context, db db.DBTX, periodID, employeeID uuid.UUID, date time.Time, shiftTypeID uuid.UUID) (uuid.UUID, error)
	SetPeriodStatus(ctx context.Context, db db.DBTX, periodID uuid.UUID, from, to schedule.PeriodStatus) (bool, error)
}

type VacationRequestRepository interface {
	Create(ctx context.Context, db db.DBTX, req *vacation.Request) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, from, to vacation.Status, adminNotes *string) (bool, error)
}

type VacationBalanceRepository interface {
	Create(ctx context.Context, db db.DBTX, balance *vacation.Balance) (uuid.UUID, error)
	UpdateCounters(ctx context.Context, db db.DBTX, balance *vacation.Balance) error
}

type PreferenceEntryWrite struct {
	Date        time.Time
	ShiftTypeID *uuid.UUID
	PrefersOff  bool
	Note        *string
}

type PreferenceRepository interface {
	ReplaceEntries(ctx context.Context, db db.DBTX, periodID, employeeID uuid.UUID, entries []PreferenceEntryWrite) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, db db.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, db db.DBTX, u *user.User) (uuid.UUID, error)
}

// Notification is a fire-and-forget delivery request. Failures must never
// roll back the owning state transition, so notifications are written after
// commit and errors are logged at the call site.
type Notification struct {
	UserID  uuid.UUID
	Kind    string
	Title   string
	Message string
	Link    *string
}

type NotificationRepository interface {
	Insert(ctx context.Context, db db.DBTX, n Notification) error
	MarkRead(ctx context.Context, db db.DBTX, id, userID uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, db db.DBTX, userID uuid.UUID) (int64, error)
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// MessageSnapshot is the write-side view of a direct message.
type MessageSnapshot struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	ParentID    *uuid.UUID
	ReadAt      *time.Time
}

type MessageWrite struct {
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	ParentID    *uuid.UUID
	Subject     *string
	Content     string
}

type MessageRepository interface {
	Insert(ctx context.Context, db db.DBTX, m MessageWrite) (uuid.UUID, error)
	// MarkRead stamps read_at once for the recipient; false means the
	// message was not theirs or was already read.
	MarkRead(ctx context.Context, db db.DBTX, id, recipientID uuid.UUID, at time.Time) (bool, error)
	Delete(ctx context.Context, db db.DBTX, id uuid.UUID) error
}

const (
	NotifyOfferReceived    = "COVERAGE_OFFER_RECEIVED"
	NotifyOfferSelected    = "OFFER_SELECTED"
	NotifyChangeApproved   = "CHANGE_APPROVED"
	NotifyChangeRejected   = "CHANGE_REJECTED"
	NotifyVacationRequest  = "VACATION_REQUEST"
	NotifyVacationApproved = "VACATION_APPROVED"
	NotifyVacationRejected = "VACATION_REJECTED"
	NotifyNewMessage       = "MESSAGE_RECEIVED"
	NotifyMessageReply     = "MESSAGE_REPLY"
)
