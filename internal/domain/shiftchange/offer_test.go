//go:build unit

package shiftchange_test

import (
	"strings"
	"testing"
	"time"

	"shiftboard/internal/domain/shiftchange"
	"shiftboard/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoverageOffer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		offer, err := builder.NewOfferBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, offer)

		assert.NotEqual(t, uuid.Nil, offer.ID())
		assert.Equal(t, shiftchange.OfferPending, offer.Status())
		assert.Nil(t, offer.Conditions())
	})

	t.Run("requester cannot offer on own request", func(t *testing.T) {
		offer, err := builder.NewOfferBuilder().AsSelfOffer().BuildDomain()
		require.ErrorIs(t, err, shiftchange.ErrSelfOffer)
		assert.Nil(t, offer)
	})

	t.Run("conditions are trimmed and blank conditions dropped", func(t *testing.T) {
		offer, err := builder.NewOfferBuilder().WithConditions("  only until 6pm  ").BuildDomain()
		require.NoError(t, err)
		require.Equal(t, "only until 6pm", *offer.Conditions())

		offer, err = builder.NewOfferBuilder().WithConditions("   ").BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, offer.Conditions())
	})

	t.Run("conditions exceed maximum length", func(t *testing.T) {
		long := strings.Repeat("a", shiftchange.MaxConditionsLength+1)
		offer, err := builder.NewOfferBuilder().WithConditions(long).BuildDomain()
		require.ErrorIs(t, err, shiftchange.ErrConditionsTooLong)
		assert.Nil(t, offer)
	})
}

func TestCoverageOfferCanWithdraw(t *testing.T) {
	offererID := uuid.New()

	reconstruct := func(status shiftchange.OfferStatus) *shiftchange.CoverageOffer {
		return shiftchange.ReconstructCoverageOffer(
			uuid.New(), uuid.New(), offererID, nil, status, time.Now(),
		)
	}

	t.Run("offerer withdraws pending offer", func(t *testing.T) {
		require.NoError(t, reconstruct(shiftchange.OfferPending).CanWithdraw(offererID))
	})

	t.Run("other employee cannot withdraw", func(t *testing.T) {
		err := reconstruct(shiftchange.OfferPending).CanWithdraw(uuid.New())
		require.ErrorIs(t, err, shiftchange.ErrNotOfferer)
	})

	t.Run("selected offer cannot be withdrawn", func(t *testing.T) {
		err := reconstruct(shiftchange.OfferSelected).CanWithdraw(offererID)
		require.ErrorIs(t, err, shiftchange.ErrOfferNotPending)
	})

	t.Run("rejected offer cannot be withdrawn", func(t *testing.T) {
		err := reconstruct(shiftchange.OfferRejected).CanWithdraw(offererID)
		require.ErrorIs(t, err, shiftchange.ErrOfferNotPending)
	})
}
