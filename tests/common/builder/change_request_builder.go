//go:build unit || e2e

package builder

import (
	"time"

	"shiftboard/internal/domain/schedule"
	"shiftboard/internal/domain/shiftchange"
	reqdto "shiftboard/internal/handler/dto/request"
	"shiftboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type ChangeRequestBuilder struct {
	RequesterID   uuid.UUID
	RequesterName string
	Entry         schedule.EntrySnapshot
	ChangeType    shiftchange.ChangeType
	Target        *shiftchange.TargetShiftSpec
	Reason        *string
	Urgency       shiftchange.Urgency
	Now           time.Time
}

// NewChangeRequestBuilder defaults to a valid coverage request: the entry
// belongs to the requester and sits in a published period.
func NewChangeRequestBuilder() *ChangeRequestBuilder {
	requesterID := uuid.New()
	reason := "family emergency"
	return &ChangeRequestBuilder{
		RequesterID:   requesterID,
		RequesterName: "Test Worker",
		Entry: schedule.EntrySnapshot{
			ID:           uuid.New(),
			PeriodID:     uuid.New(),
			EmployeeID:   requesterID,
			Date:         time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
			ShiftTypeID:  uuid.New(),
			PeriodStatus: schedule.PeriodPublished,
		},
		ChangeType: shiftchange.TypeCoverage,
		Reason:     &reason,
		Urgency:    shiftchange.UrgencyMedium,
		Now:        time.Now(),
	}
}

func (b *ChangeRequestBuilder) With(mutate func(*ChangeRequestBuilder)) *ChangeRequestBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ChangeRequestBuilder) BuildDomain() (*shiftchange.ChangeRequest, error) {
	return shiftchange.NewChangeRequest(b.RequesterID, b.Entry, b.ChangeType, b.Target, b.Reason, b.Urgency, b.Now)
}

func (b *ChangeRequestBuilder) BuildCreateRequestDTO() reqdto.CreateChangeRequest {
	var targetID *uuid.UUID
	if b.Target != nil {
		id := b.Target.ID
		targetID = &id
	}
	return reqdto.CreateChangeRequest{
		ScheduleEntryID:   b.Entry.ID,
		ChangeType:        b.ChangeType.String(),
		TargetShiftTypeID: targetID,
		Reason:            b.Reason,
		Urgency:           b.Urgency.String(),
	}
}

func (b *ChangeRequestBuilder) BuildView() *queries.ChangeRequestView {
	return &queries.ChangeRequestView{
		ID:              uuid.New(),
		RequesterID:     b.RequesterID,
		RequesterName:   b.RequesterName,
		ScheduleEntryID: b.Entry.ID,
		EntryDate:       b.Entry.Date,
		ShiftTypeID:     b.Entry.ShiftTypeID,
		ShiftTypeName:   "Morning",
		ChangeType:      b.ChangeType.String(),
		Urgency:         b.Urgency.String(),
		Reason:          b.Reason,
		Status:          shiftchange.StatusOpen.String(),
		Offers:          []queries.OfferView{},
		Approvals:       []queries.ApprovalView{},
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
}

func (b *ChangeRequestBuilder) BuildListItem() *queries.ChangeRequestListItem {
	return &queries.ChangeRequestListItem{
		ID:            uuid.New(),
		RequesterID:   b.RequesterID,
		RequesterName: b.RequesterName,
		EntryDate:     b.Entry.Date,
		ShiftTypeName: "Morning",
		ChangeType:    b.ChangeType.String(),
		Urgency:       b.Urgency.String(),
		Status:        shiftchange.StatusOpen.String(),
		OfferCount:    0,
		CreatedAt:     b.Now,
	}
}

// Fluent builder methods
func (b *ChangeRequestBuilder) WithChangeType(t shiftchange.ChangeType) *ChangeRequestBuilder {
	b.ChangeType = t
	return b
}

func (b *ChangeRequestBuilder) WithTarget(target *shiftchange.TargetShiftSpec) *ChangeRequestBuilder {
	b.Target = target
	return b
}

func (b *ChangeRequestBuilder) WithReason(reason string) *ChangeRequestBuilder {
	b.Reason = &reason
	return b
}

func (b *ChangeRequestBuilder) WithoutReason() *ChangeRequestBuilder {
	b.Reason = nil
	return b
}

func (b *ChangeRequestBuilder) WithUrgency(u shiftchange.Urgency) *ChangeRequestBuilder {
	b.Urgency = u
	return b
}

func (b *ChangeRequestBuilder) WithPeriodStatus(s schedule.PeriodStatus) *ChangeRequestBuilder {
	b.Entry.PeriodStatus = s
	return b
}

func (b *ChangeRequestBuilder) WithEntryOwner(employeeID uuid.UUID) *ChangeRequestBuilder {
	b.Entry.EmployeeID = employeeID
	return b
}

func (b *ChangeRequestBuilder) WithNow(now time.Time) *ChangeRequestBuilder {
	b.Now = now
	return b
}

// AsSwap turns the request into a swap with a valid, active target that
// differs from the entry's current shift type.
func (b *ChangeRequestBuilder) AsSwap() *ChangeRequestBuilder {
	b.ChangeType = shiftchange.TypeSwap
	b.Target = &shiftchange.TargetShiftSpec{ID: uuid.New(), IsActive: true}
	return b
}

func (b *ChangeRequestBuilder) AsAbsence() *ChangeRequestBuilder {
	b.ChangeType = shiftchange.TypeAbsence
	b.Target = nil
	return b
}
