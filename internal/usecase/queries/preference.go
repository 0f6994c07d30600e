package queries

import (
	"context"

	"shiftboard/internal/infra"
	"shiftboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPreferencePeriodNotFound = errs.New("preference period not found")

type PreferenceQueries interface {
	MyPreferences(ctx context.Context, employeeID uuid.UUID, year, month int) (*PreferencePeriodView, error)
}

type PreferenceReadStore interface {
	FindPeriodWithEntries(ctx context.Context, employeeID uuid.UUID, year, month int) (*PreferencePeriodView, error)
}

type preferenceQueriesImpl struct {
	readStore PreferenceReadStore
}

func NewPreferenceQueries(readStore PreferenceReadStore) PreferenceQueries {
	return &preferenceQueriesImpl{readStore: readStore}
}

func (q *preferenceQueriesImpl) MyPreferences(ctx context.Context, employeeID uuid.UUID, year, month int) (*PreferencePeriodView, error) {
	view, err := q.readStore.FindPeriodWithEntries(ctx, employeeID, year, month)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPreferencePeriodNotFound
		}
		return nil, err
	}
	return view, nil
}
