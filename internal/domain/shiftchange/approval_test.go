//go:build unit

package shiftchange_test

import (
	"testing"
	"time"

	"shiftboard/internal/domain/shiftchange"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func approval(role shiftchange.ApproverRole, approved bool, at time.Time) shiftchange.Approval {
	return shiftchange.Approval{
		ID:         uuid.New(),
		RequestID:  uuid.New(),
		ApproverID: uuid.New(),
		Role:       role,
		Approved:   approved,
		CreatedAt:  at,
	}
}

func TestApprovalLogActiveByRole(t *testing.T) {
	now := time.Now()

	t.Run("empty log has no active approval", func(t *testing.T) {
		assert.False(t, shiftchange.ApprovalLog{}.ActiveByRole(shiftchange.RoleRequester))
	})

	t.Run("single approval is active", func(t *testing.T) {
		log := shiftchange.ApprovalLog{approval(shiftchange.RoleRequester, true, now)}
		assert.True(t, log.ActiveByRole(shiftchange.RoleRequester))
		assert.False(t, log.ActiveByRole(shiftchange.RoleAdmin))
	})

	t.Run("most recent record wins", func(t *testing.T) {
		log := shiftchange.ApprovalLog{
			approval(shiftchange.RoleAdmin, true, now),
			approval(shiftchange.RoleAdmin, false, now.Add(time.Minute)),
		}
		assert.False(t, log.ActiveByRole(shiftchange.RoleAdmin))

		log = append(log, approval(shiftchange.RoleAdmin, true, now.Add(2*time.Minute)))
		assert.True(t, log.ActiveByRole(shiftchange.RoleAdmin))
	})

	t.Run("roles are tracked independently", func(t *testing.T) {
		log := shiftchange.ApprovalLog{
			approval(shiftchange.RoleRequester, true, now),
			approval(shiftchange.RoleOfferer, false, now.Add(time.Minute)),
		}
		assert.True(t, log.ActiveByRole(shiftchange.RoleRequester))
		assert.False(t, log.ActiveByRole(shiftchange.RoleOfferer))
	})
}

func TestApprovalLogIsFullyApproved(t *testing.T) {
	now := time.Now()

	t.Run("requires every role", func(t *testing.T) {
		required := shiftchange.RequiredRoles(true)
		log := shiftchange.ApprovalLog{
			approval(shiftchange.RoleRequester, true, now),
			approval(shiftchange.RoleOfferer, true, now),
		}
		assert.False(t, log.IsFullyApproved(required))

		log = append(log, approval(shiftchange.RoleAdmin, true, now))
		assert.True(t, log.IsFullyApproved(required))
	})

	t.Run("offerer and admin alone cannot complete a selected offer", func(t *testing.T) {
		required := shiftchange.RequiredRoles(true)
		log := shiftchange.ApprovalLog{
			approval(shiftchange.RoleOfferer, true, now),
			approval(shiftchange.RoleAdmin, true, now),
		}
		assert.False(t, log.IsFullyApproved(required))

		// the consent recorded when the requester selected the offer
		// completes the set
		log = append(log, approval(shiftchange.RoleRequester, true, now))
		assert.True(t, log.IsFullyApproved(required))
	})

	t.Run("rescinded approval blocks completion", func(t *testing.T) {
		required := shiftchange.RequiredRoles(false)
		log := shiftchange.ApprovalLog{
			approval(shiftchange.RoleRequester, true, now),
			approval(shiftchange.RoleAdmin, true, now),
			approval(shiftchange.RoleRequester, false, now.Add(time.Minute)),
		}
		assert.False(t, log.IsFullyApproved(required))
	})
}

func TestRequiredRoles(t *testing.T) {
	assert.Equal(t,
		[]shiftchange.ApproverRole{shiftchange.RoleRequester, shiftchange.RoleOfferer, shiftchange.RoleAdmin},
		shiftchange.RequiredRoles(true))
	assert.Equal(t,
		[]shiftchange.ApproverRole{shiftchange.RoleRequester, shiftchange.RoleAdmin},
		shiftchange.RequiredRoles(false))
}
