//go:build unit

package vacation_test

import (
	"testing"
	"time"

	"shiftboard/internal/domain/vacation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceLifecycle(t *testing.T) {
	newBalance := func() *vacation.Balance {
		return vacation.ReconstructBalance(uuid.New(), uuid.New(), 2025, 20, 5, 0, 2)
	}

	t.Run("available counts carry-over and subtracts used and pending", func(t *testing.T) {
		b := newBalance()
		assert.Equal(t, 17, b.Available())

		require.NoError(t, b.ReservePending(3))
		assert.Equal(t, 14, b.Available())
		assert.Equal(t, 3, b.PendingDays())
	})

	t.Run("reserve beyond available fails", func(t *testing.T) {
		b := newBalance()
		require.ErrorIs(t, b.ReservePending(18), vacation.ErrInsufficientBalance)
		assert.Equal(t, 0, b.PendingDays())
	})

	t.Run("approval commits pending into used", func(t *testing.T) {
		b := newBalance()
		require.NoError(t, b.ReservePending(3))
		require.NoError(t, b.CommitPending(3))

		assert.Equal(t, 8, b.UsedDays())
		assert.Equal(t, 0, b.PendingDays())
		assert.Equal(t, 14, b.Available())
	})

	t.Run("rejection releases pending without consuming days", func(t *testing.T) {
		b := newBalance()
		require.NoError(t, b.ReservePending(3))
		require.NoError(t, b.ReleasePending(3))

		assert.Equal(t, 5, b.UsedDays())
		assert.Equal(t, 0, b.PendingDays())
		assert.Equal(t, 17, b.Available())
	})

	t.Run("commit or release beyond pending fails", func(t *testing.T) {
		b := newBalance()
		require.NoError(t, b.ReservePending(2))
		require.ErrorIs(t, b.CommitPending(3), vacation.ErrPendingUnderflow)
		require.ErrorIs(t, b.ReleasePending(3), vacation.ErrPendingUnderflow)
	})

	t.Run("non-positive day counts are rejected", func(t *testing.T) {
		b := newBalance()
		require.ErrorIs(t, b.ReservePending(0), vacation.ErrNegativeDays)
		require.ErrorIs(t, b.CommitPending(-1), vacation.ErrNegativeDays)
		require.ErrorIs(t, b.ReleasePending(0), vacation.ErrNegativeDays)
	})

	t.Run("new balance starts unspent", func(t *testing.T) {
		b := vacation.NewBalance(uuid.New(), 2025, 22)
		assert.Equal(t, 22, b.Available())
		assert.Equal(t, 0, b.UsedDays())
		assert.Equal(t, 0, b.PendingDays())
	})
}

func TestBusinessDaysBetween(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"single weekday", date(2025, 7, 7), date(2025, 7, 7), 1},
		{"monday to friday", date(2025, 7, 7), date(2025, 7, 11), 5},
		{"spanning a weekend", date(2025, 7, 11), date(2025, 7, 14), 2},
		{"weekend only", date(2025, 7, 12), date(2025, 7, 13), 0},
		{"two full weeks", date(2025, 7, 7), date(2025, 7, 20), 10},
		{"start after end", date(2025, 7, 11), date(2025, 7, 7), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vacation.BusinessDaysBetween(tt.start, tt.end))
		})
	}
}
