package queries

import (
	"context"
	"time"

	"shiftboard/internal/infra"
	"shiftboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSchedulePeriodNotFound = errs.New("schedule period not found")

type ScheduleQueries interface {
	// MonthlySchedule returns the period with its full entry grid.
	// Workers only see published periods; admins also see drafts.
	MonthlySchedule(ctx context.Context, year, month int, includeDrafts bool) (*SchedulePeriodView, error)
	MyEntries(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]*ScheduleEntryView, error)
	ShiftTypes(ctx context.Context) ([]*ShiftTypeView, error)
}

type ScheduleReadStore interface {
	FindPeriodByMonth(ctx context.Context, year, month int) (*SchedulePeriodView, error)
	FindEntriesByEmployee(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]*ScheduleEntryView, error)
	FindShiftTypes(ctx context.Context) ([]*ShiftTypeView, error)
}

type scheduleQueriesImpl struct {
	readStore ScheduleReadStore
}

func NewScheduleQueries(readStore ScheduleReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{readStore: readStore}
}

func (q *scheduleQueriesImpl) MonthlySchedule(ctx context.Context, year, month int, includeDrafts bool) (*SchedulePeriodView, error) {
	period, err := q.readStore.FindPeriodByMonth(ctx, year, month)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSchedulePeriodNotFound
		}
		return nil, err
	}
	if period.Status == "DRAFT" && !includeDrafts {
		return nil, ErrSchedulePeriodNotFound
	}
	return period, nil
}

func (q *scheduleQueriesImpl) MyEntries(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]*ScheduleEntryView, error) {
	return q.readStore.FindEntriesByEmployee(ctx, employeeID, from, to)
}

func (q *scheduleQueriesImpl) ShiftTypes(ctx context.Context) ([]*ShiftTypeView, error) {
	return q.readStore.FindShiftTypes(ctx)
}
