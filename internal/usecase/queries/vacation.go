package queries

import (
	"context"

	"shiftboard/internal/infra"
	"shiftboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBalanceNotFound = errs.New("vacation balance not found")

type VacationQueries interface {
	MyRequests(ctx context.Context, employeeID uuid.UUID) ([]*VacationRequestView, error)
	MyBalance(ctx context.Context, employeeID uuid.UUID, year int) (*VacationBalanceView, error)
	ListPending(ctx context.Context) ([]*VacationRequestView, error)
}

type VacationReadStore interface {
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*VacationRequestView, error)
	FindBalance(ctx context.Context, employeeID uuid.UUID, year int) (*VacationBalanceView, error)
	FindPending(ctx context.Context) ([]*VacationRequestView, error)
}

type vacationQueriesImpl struct {
	readStore VacationReadStore
}

func NewVacationQueries(readStore VacationReadStore) VacationQueries {
	return &vacationQueriesImpl{readStore: readStore}
}

func (q *vacationQueriesImpl) MyRequests(ctx context.Context, employeeID uuid.UUID) ([]*VacationRequestView, error) {
	return q.readStore.FindByEmployee(ctx, employeeID)
}

func (q *vacationQueriesImpl) MyBalance(ctx context.Context, employeeID uuid.UUID, year int) (*VacationBalanceView, error) {
	view, err := q.readStore.FindBalance(ctx, employeeID, year)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBalanceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *vacationQueriesImpl) ListPending(ctx context.Context) ([]*VacationRequestView, error) {
	return q.readStore.FindPending(ctx)
}
