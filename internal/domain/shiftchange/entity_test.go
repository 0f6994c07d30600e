//go:build unit

package shiftchange_test

import (
	"strings"
	"testing"
	"time"

	"shiftboard/internal/domain/schedule"
	"shiftboard/internal/domain/shiftchange"
	"shiftboard/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ChangeRequestBuilder)
	errIs  error
}

func TestNewChangeRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewChangeRequestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, shiftchange.StatusOpen, actual.Status())
		assert.Equal(t, shiftchange.TypeCoverage, actual.ChangeType())
		assert.Equal(t, shiftchange.UrgencyMedium, actual.Urgency())
		assert.Nil(t, actual.TargetShiftTypeID())
	})

	t.Run("entry ownership and period validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "entry owned by someone else",
				mutate: func(b *builder.ChangeRequestBuilder) { b.WithEntryOwner(uuid.New()) },
				errIs:  shiftchange.ErrEntryNotOwned,
			},
			{
				name:   "draft period",
				mutate: func(b *builder.ChangeRequestBuilder) { b.WithPeriodStatus(schedule.PeriodDraft) },
				errIs:  shiftchange.ErrPeriodNotPublished,
			},
			{
				name:   "archived period",
				mutate: func(b *builder.ChangeRequestBuilder) { b.WithPeriodStatus(schedule.PeriodArchived) },
				errIs:  shiftchange.ErrPeriodNotPublished,
			},
		})
	})

	t.Run("change type and urgency validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unknown change type",
				mutate: func(b *builder.ChangeRequestBuilder) { b.WithChangeType("HOLIDAY") },
				errIs:  shiftchange.ErrInvalidChangeType,
			},
			{
				name:   "unknown urgency",
				mutate: func(b *builder.ChangeRequestBuilder) { b.WithUrgency("CRITICAL") },
				errIs:  shiftchange.ErrInvalidUrgency,
			},
			{
				name:   "absence without target",
				mutate: func(b *builder.ChangeRequestBuilder) { b.AsAbsence() },
			},
			{
				name:   "swap with valid target",
				mutate: func(b *builder.ChangeRequestBuilder) { b.AsSwap() },
			},
		})
	})

	t.Run("swap target validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "swap without target",
				mutate: func(b *builder.ChangeRequestBuilder) {
					b.WithChangeType(shiftchange.TypeSwap).WithTarget(nil)
				},
				errIs: shiftchange.ErrSwapTargetRequired,
			},
			{
				name: "swap target equals current shift type",
				mutate: func(b *builder.ChangeRequestBuilder) {
					b.WithChangeType(shiftchange.TypeSwap)
					b.Target = &shiftchange.TargetShiftSpec{ID: b.Entry.ShiftTypeID, IsActive: true}
				},
				errIs: shiftchange.ErrSwapTargetSame,
			},
			{
				name: "swap target inactive",
				mutate: func(b *builder.ChangeRequestBuilder) {
					b.WithChangeType(shiftchange.TypeSwap)
					b.Target = &shiftchange.TargetShiftSpec{ID: uuid.New(), IsActive: false}
				},
				errIs: shiftchange.ErrSwapTargetInactive,
			},
		})
	})

	t.Run("reason validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "no reason",
				mutate: func(b *builder.ChangeRequestBuilder) { b.WithoutReason() },
			},
			{
				name: "reason at maximum length",
				mutate: func(b *builder.ChangeRequestBuilder) {
					b.WithReason(strings.Repeat("a", shiftchange.MaxReasonLength))
				},
			},
			{
				name: "reason exceeds maximum length",
				mutate: func(b *builder.ChangeRequestBuilder) {
					b.WithReason(strings.Repeat("a", shiftchange.MaxReasonLength+1))
				},
				errIs: shiftchange.ErrReasonTooLong,
			},
		})
	})

	t.Run("reason is trimmed and blank reason dropped", func(t *testing.T) {
		actual, err := builder.NewChangeRequestBuilder().WithReason("  overslept  ").BuildDomain()
		require.NoError(t, err)
		require.Equal(t, "overslept", *actual.Reason())

		actual, err = builder.NewChangeRequestBuilder().WithReason("   ").BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.Reason())
	})

	t.Run("empty urgency defaults to medium", func(t *testing.T) {
		actual, err := builder.NewChangeRequestBuilder().WithUrgency("").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, shiftchange.UrgencyMedium, actual.Urgency())
	})
}

func TestChangeRequestHasExpired(t *testing.T) {
	window := 14 * 24 * time.Hour
	created := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	t.Run("open request within window", func(t *testing.T) {
		req, err := builder.NewChangeRequestBuilder().WithNow(created).BuildDomain()
		require.NoError(t, err)
		assert.False(t, req.HasExpired(created.Add(window), window))
	})

	t.Run("open request past window", func(t *testing.T) {
		req, err := builder.NewChangeRequestBuilder().WithNow(created).BuildDomain()
		require.NoError(t, err)
		assert.True(t, req.HasExpired(created.Add(window+time.Second), window))
	})

	t.Run("awaiting approval never expires", func(t *testing.T) {
		req := shiftchange.ReconstructChangeRequest(
			uuid.New(), uuid.New(), uuid.New(),
			shiftchange.TypeCoverage, nil, shiftchange.UrgencyMedium, nil,
			shiftchange.StatusAwaitingApproval, nil, created,
		)
		assert.False(t, req.HasExpired(created.Add(100*window), window))
	})

	t.Run("terminal statuses never expire", func(t *testing.T) {
		for _, status := range []shiftchange.Status{
			shiftchange.StatusCompleted,
			shiftchange.StatusCancelled,
			shiftchange.StatusRejected,
			shiftchange.StatusExpired,
		} {
			req := shiftchange.ReconstructChangeRequest(
				uuid.New(), uuid.New(), uuid.New(),
				shiftchange.TypeCoverage, nil, shiftchange.UrgencyMedium, nil,
				status, nil, created,
			)
			assert.False(t, req.HasExpired(created.Add(100*window), window), status.String())
		}
	})
}

func TestChangeRequestCanCancel(t *testing.T) {
	requesterID := uuid.New()

	reconstruct := func(status shiftchange.Status) *shiftchange.ChangeRequest {
		return shiftchange.ReconstructChangeRequest(
			uuid.New(), requesterID, uuid.New(),
			shiftchange.TypeCoverage, nil, shiftchange.UrgencyMedium, nil,
			status, nil, time.Now(),
		)
	}

	t.Run("requester cancels while open", func(t *testing.T) {
		require.NoError(t, reconstruct(shiftchange.StatusOpen).CanCancel(requesterID))
	})

	t.Run("requester cancels while selecting", func(t *testing.T) {
		require.NoError(t, reconstruct(shiftchange.StatusSelecting).CanCancel(requesterID))
	})

	t.Run("other employee cannot cancel", func(t *testing.T) {
		err := reconstruct(shiftchange.StatusOpen).CanCancel(uuid.New())
		require.ErrorIs(t, err, shiftchange.ErrNotRequester)
	})

	t.Run("cannot cancel once awaiting approval", func(t *testing.T) {
		err := reconstruct(shiftchange.StatusAwaitingApproval).CanCancel(requesterID)
		require.ErrorIs(t, err, shiftchange.ErrInvalidTransition)
	})

	t.Run("cannot cancel a terminal request", func(t *testing.T) {
		err := reconstruct(shiftchange.StatusCancelled).CanCancel(requesterID)
		require.ErrorIs(t, err, shiftchange.ErrInvalidTransition)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewChangeRequestBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
