//go:build unit

package vacation_test

import (
	"testing"
	"time"

	"shiftboard/internal/domain/vacation"
	"shiftboard/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewVacationRequestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, vacation.StatusPending, actual.Status())
		assert.Equal(t, 5, actual.TotalDays())
	})

	t.Run("start after end", func(t *testing.T) {
		actual, err := builder.NewVacationRequestBuilder().
			WithDates(
				time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC),
			).BuildDomain()
		require.ErrorIs(t, err, vacation.ErrInvalidDateRange)
		assert.Nil(t, actual)
	})

	t.Run("weekend-only range has no business days", func(t *testing.T) {
		actual, err := builder.NewVacationRequestBuilder().
			WithDates(
				time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
			).BuildDomain()
		require.ErrorIs(t, err, vacation.ErrNoBusinessDays)
		assert.Nil(t, actual)
	})

	t.Run("reason is trimmed and blank reason dropped", func(t *testing.T) {
		actual, err := builder.NewVacationRequestBuilder().WithReason("  summer trip  ").BuildDomain()
		require.NoError(t, err)
		require.Equal(t, "summer trip", *actual.Reason())

		actual, err = builder.NewVacationRequestBuilder().WithReason("   ").BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, actual.Reason())
	})
}

func TestRequestGuards(t *testing.T) {
	employeeID := uuid.New()

	reconstruct := func(status vacation.Status) *vacation.Request {
		return vacation.ReconstructRequest(
			uuid.New(), employeeID,
			time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC),
			5, nil, status, nil, time.Now(),
		)
	}

	t.Run("pending request can be decided", func(t *testing.T) {
		require.NoError(t, reconstruct(vacation.StatusPending).CanDecide())
	})

	t.Run("decided request cannot be decided again", func(t *testing.T) {
		for _, s := range []vacation.Status{
			vacation.StatusApproved,
			vacation.StatusRejected,
			vacation.StatusCancelled,
		} {
			require.ErrorIs(t, reconstruct(s).CanDecide(), vacation.ErrNotPending, s.String())
		}
	})

	t.Run("owner cancels pending request", func(t *testing.T) {
		require.NoError(t, reconstruct(vacation.StatusPending).CanCancel(employeeID))
	})

	t.Run("other employee cannot cancel", func(t *testing.T) {
		err := reconstruct(vacation.StatusPending).CanCancel(uuid.New())
		require.ErrorIs(t, err, vacation.ErrNotOwner)
	})

	t.Run("approved request cannot be cancelled", func(t *testing.T) {
		err := reconstruct(vacation.StatusApproved).CanCancel(employeeID)
		require.ErrorIs(t, err, vacation.ErrNotPending)
	})
}
