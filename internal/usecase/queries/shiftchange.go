package queries

import (
	"context"

	"shiftboard/internal/infra"
	"shiftboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrChangeRequestNotFound = errs.New("change request not found")

// ListChangesFilter narrows the request list. Mine and Available are
// resolved against the viewer's employee id; Available means the request
// still accepts offers and belongs to someone else.
type ListChangesFilter struct {
	Status    *string
	Mine      bool
	Available bool
	Limit     int
	After     string
}

type ShiftChangeQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ChangeRequestView, error)
	List(ctx context.Context, viewerEmployeeID uuid.UUID, filter ListChangesFilter) ([]*ChangeRequestListItem, *Cursor, error)
}

type ShiftChangeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ChangeRequestView, error)
	FindList(ctx context.Context, viewerEmployeeID uuid.UUID, filter ListChangesFilter) ([]*ChangeRequestListItem, error)
}

type shiftChangeQueriesImpl struct {
	readStore ShiftChangeReadStore
}

func NewShiftChangeQueries(readStore ShiftChangeReadStore) ShiftChangeQueries {
	return &shiftChangeQueriesImpl{readStore: readStore}
}

func (q *shiftChangeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ChangeRequestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrChangeRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *shiftChangeQueriesImpl) List(ctx context.Context, viewerEmployeeID uuid.UUID, filter ListChangesFilter) ([]*ChangeRequestListItem, *Cursor, error) {
	filter.Limit = ValidateLimit(filter.Limit)

	items, err := q.readStore.FindList(ctx, viewerEmployeeID, filter)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) == filter.Limit {
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return items, next, nil
}
