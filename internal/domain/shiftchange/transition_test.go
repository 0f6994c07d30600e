//go:build unit

package shiftchange_test

import (
	"testing"

	"shiftboard/internal/domain/shiftchange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	type row struct {
		from   shiftchange.Status
		action shiftchange.Action
		to     shiftchange.Status
	}

	allowed := []row{
		{shiftchange.StatusOpen, shiftchange.ActionSubmitOffer, shiftchange.StatusSelecting},
		{shiftchange.StatusSelecting, shiftchange.ActionSubmitOffer, shiftchange.StatusSelecting},
		{shiftchange.StatusSelecting, shiftchange.ActionWithdrawOffer, shiftchange.StatusSelecting},
		{shiftchange.StatusSelecting, shiftchange.ActionWithdrawLastOffer, shiftchange.StatusOpen},
		{shiftchange.StatusOpen, shiftchange.ActionCancel, shiftchange.StatusCancelled},
		{shiftchange.StatusSelecting, shiftchange.ActionCancel, shiftchange.StatusCancelled},
		{shiftchange.StatusSelecting, shiftchange.ActionSelectOffer, shiftchange.StatusAwaitingApproval},
		{shiftchange.StatusAwaitingApproval, shiftchange.ActionApprove, shiftchange.StatusAwaitingApproval},
		{shiftchange.StatusAwaitingApproval, shiftchange.ActionComplete, shiftchange.StatusCompleted},
		{shiftchange.StatusAwaitingApproval, shiftchange.ActionReject, shiftchange.StatusRejected},
		{shiftchange.StatusOpen, shiftchange.ActionReject, shiftchange.StatusRejected},
		{shiftchange.StatusSelecting, shiftchange.ActionReject, shiftchange.StatusRejected},
		{shiftchange.StatusOpen, shiftchange.ActionAdminResolve, shiftchange.StatusCompleted},
		{shiftchange.StatusSelecting, shiftchange.ActionAdminResolve, shiftchange.StatusCompleted},
		{shiftchange.StatusOpen, shiftchange.ActionExpire, shiftchange.StatusExpired},
		{shiftchange.StatusSelecting, shiftchange.ActionExpire, shiftchange.StatusExpired},
	}

	for _, r := range allowed {
		t.Run(string(r.from)+"/"+string(r.action), func(t *testing.T) {
			next, err := shiftchange.Transition(r.from, r.action)
			require.NoError(t, err)
			assert.Equal(t, r.to, next)
			assert.True(t, shiftchange.CanApply(r.from, r.action))
		})
	}

	t.Run("terminal statuses admit no action", func(t *testing.T) {
		terminal := []shiftchange.Status{
			shiftchange.StatusCompleted,
			shiftchange.StatusCancelled,
			shiftchange.StatusRejected,
			shiftchange.StatusExpired,
		}
		actions := []shiftchange.Action{
			shiftchange.ActionSubmitOffer,
			shiftchange.ActionWithdrawOffer,
			shiftchange.ActionWithdrawLastOffer,
			shiftchange.ActionCancel,
			shiftchange.ActionSelectOffer,
			shiftchange.ActionApprove,
			shiftchange.ActionComplete,
			shiftchange.ActionAdminResolve,
			shiftchange.ActionReject,
			shiftchange.ActionExpire,
		}
		for _, status := range terminal {
			for _, action := range actions {
				_, err := shiftchange.Transition(status, action)
				require.ErrorIs(t, err, shiftchange.ErrInvalidTransition,
					"%s/%s", status, action)
			}
		}
	})

	t.Run("denied non-terminal combinations", func(t *testing.T) {
		denied := []struct {
			from   shiftchange.Status
			action shiftchange.Action
		}{
			// nothing to select or withdraw before the first offer
			{shiftchange.StatusOpen, shiftchange.ActionSelectOffer},
			{shiftchange.StatusOpen, shiftchange.ActionWithdrawOffer},
			{shiftchange.StatusOpen, shiftchange.ActionWithdrawLastOffer},
			{shiftchange.StatusOpen, shiftchange.ActionApprove},
			{shiftchange.StatusOpen, shiftchange.ActionComplete},
			{shiftchange.StatusSelecting, shiftchange.ActionApprove},
			{shiftchange.StatusSelecting, shiftchange.ActionComplete},
			// once an offer is selected the negotiation is locked in
			{shiftchange.StatusAwaitingApproval, shiftchange.ActionSubmitOffer},
			{shiftchange.StatusAwaitingApproval, shiftchange.ActionWithdrawOffer},
			{shiftchange.StatusAwaitingApproval, shiftchange.ActionCancel},
			{shiftchange.StatusAwaitingApproval, shiftchange.ActionSelectOffer},
			{shiftchange.StatusAwaitingApproval, shiftchange.ActionAdminResolve},
			{shiftchange.StatusAwaitingApproval, shiftchange.ActionExpire},
		}
		for _, d := range denied {
			_, err := shiftchange.Transition(d.from, d.action)
			require.ErrorIs(t, err, shiftchange.ErrInvalidTransition, "%s/%s", d.from, d.action)
			assert.False(t, shiftchange.CanApply(d.from, d.action))
		}
	})
}

func TestStatusPredicates(t *testing.T) {
	t.Run("AcceptsOffers", func(t *testing.T) {
		assert.True(t, shiftchange.StatusOpen.AcceptsOffers())
		assert.True(t, shiftchange.StatusSelecting.AcceptsOffers())
		assert.False(t, shiftchange.StatusAwaitingApproval.AcceptsOffers())
		assert.False(t, shiftchange.StatusCompleted.AcceptsOffers())
	})

	t.Run("IsTerminal", func(t *testing.T) {
		for _, s := range []shiftchange.Status{
			shiftchange.StatusCompleted,
			shiftchange.StatusCancelled,
			shiftchange.StatusRejected,
			shiftchange.StatusExpired,
		} {
			assert.True(t, s.IsTerminal(), s.String())
		}
		for _, s := range []shiftchange.Status{
			shiftchange.StatusOpen,
			shiftchange.StatusSelecting,
			shiftchange.StatusAwaitingApproval,
		} {
			assert.False(t, s.IsTerminal(), s.String())
		}
	})

	t.Run("IsValid rejects unknown status", func(t *testing.T) {
		assert.False(t, shiftchange.Status("PAUSED").IsValid())
	})
}

func TestChangeTypeAdminResolvable(t *testing.T) {
	assert.True(t, shiftchange.TypeAbsence.AdminResolvable())
	assert.True(t, shiftchange.TypeSwap.AdminResolvable())
	assert.False(t, shiftchange.TypeCoverage.AdminResolvable())
}
