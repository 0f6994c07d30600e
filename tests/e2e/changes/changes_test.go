//go:build e2e

package changes_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"shiftboard/internal/domain/user"
	"shiftboard/internal/handler/dto/request"
	"shiftboard/internal/handler/dto/response"
	"shiftboard/internal/infra/repository"
	"shiftboard/tests/common/authtest"
	"shiftboard/tests/common/builder"
	"shiftboard/tests/common/dbtest"
	"shiftboard/tests/common/httptest"
	"shiftboard/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const changesURL = "/api/changes"

type ChangesSuite struct {
	e2e.SharedSuite
}

func (s *ChangesSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestChangesSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ChangesSuite))
}

// seedPublishedEntry creates a published July 2025 period with one morning
// shift for the given employee and returns the entry id.
func (s *ChangesSuite) seedPublishedEntry(t *testing.T, employeeID uuid.UUID, date string) uuid.UUID {
	periodID := dbtest.CreateTestPeriod(t, s.DB, 2025, 7, "PUBLISHED")
	morning := dbtest.ShiftTypeID(t, s.DB, "M")
	return dbtest.CreateTestEntry(t, s.DB, periodID, employeeID, date, morning)
}

func (s *ChangesSuite) createChangeRequest(t *testing.T, token string, entryID uuid.UUID, mutate func(*builder.ChangeRequestBuilder)) response.ChangeRequestResponse {
	b := builder.NewChangeRequestBuilder().With(func(b *builder.ChangeRequestBuilder) {
		b.Entry.ID = entryID
	})
	if mutate != nil {
		b.With(mutate)
	}

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, changesURL, b.BuildCreateRequestDTO(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.ChangeRequestResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEqual(t, uuid.Nil, created.ID)
	return created
}

func (s *ChangesSuite) getChangeRequest(t *testing.T, token string, id uuid.UUID) response.ChangeRequestResponse {
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, changesURL+"/"+id.String(), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.ChangeRequestResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

// =============================================================================
// TestCoverageNegotiation - full coverage flow from open request to execution
// =============================================================================

func (s *ChangesSuite) TestCoverageNegotiation() {
	s.Run("Normal case: Offer, selection and remaining approvals execute the change", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "requester@example.com", string(user.RoleWorker))
		offererToken, offererEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "offerer@example.com", string(user.RoleWorker))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		entryID := s.seedPublishedEntry(t, requesterEmpID, "2025-07-15")

		created := s.createChangeRequest(t, requesterToken, entryID, nil)
		require.Equal(t, "OPEN", created.Status)
		require.Equal(t, "COVERAGE", created.ChangeType)

		// Offer from a colleague moves the request into selection
		conditions := "can start 30 minutes late"
		ow := httptest.PerformRequest(t, s.Router, http.MethodPost, changesURL+"/"+created.ID.String()+"/offers",
			request.SubmitOfferRequest{Conditions: &conditions}, offererToken)
		require.Equal(t, http.StatusCreated, ow.Code, ow.Body.String())

		var offerRes map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &offerRes))
		offerID, err := uuid.Parse(offerRes["offer_id"])
		require.NoError(t, err)

		detail := s.getChangeRequest(t, requesterToken, created.ID)
		require.Equal(t, "SELECTING", detail.Status)
		require.Len(t, detail.Offers, 1)
		require.Equal(t, offererEmpID, detail.Offers[0].OffererID)

		// Requester picks the offer
		sw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			changesURL+"/"+created.ID.String()+"/offers/"+offerID.String()+"/select", nil, requesterToken)
		require.Equal(t, http.StatusNoContent, sw.Code, sw.Body.String())

		detail = s.getChangeRequest(t, requesterToken, created.ID)
		require.Equal(t, "AWAITING_APPROVAL", detail.Status)
		require.Equal(t, "SELECTED", detail.Offers[0].Status)

		// Selection already recorded the requester's consent
		require.Len(t, detail.Approvals, 1)
		require.Equal(t, "REQUESTER", detail.Approvals[0].Role)
		require.True(t, detail.Approvals[0].Approved)

		// A second explicit approval from the requester is a conflict
		approveURL := changesURL + "/" + created.ID.String() + "/approve"
		dup := httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL, nil, requesterToken)
		require.Equal(t, http.StatusConflict, dup.Code, dup.Body.String())

		ow = httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL, nil, offererToken)
		require.Equal(t, http.StatusNoContent, ow.Code, ow.Body.String())

		detail = s.getChangeRequest(t, requesterToken, created.ID)
		require.Equal(t, "AWAITING_APPROVAL", detail.Status, "Should stay pending until the admin approves")

		notes := "approved after checking staffing levels"
		aw := httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL,
			request.DecisionRequest{Notes: &notes}, adminToken)
		require.Equal(t, http.StatusNoContent, aw.Code, aw.Body.String())

		detail = s.getChangeRequest(t, requesterToken, created.ID)
		require.Equal(t, "COMPLETED", detail.Status)
		require.Len(t, detail.Approvals, 3)
		require.NotNil(t, detail.Result)
		require.NotNil(t, detail.Result.SelectedOfferID)
		require.Equal(t, offerID, *detail.Result.SelectedOfferID)
		require.NotNil(t, detail.Result.ExecutedAt)

		// The entry now belongs to the offerer
		var assignee uuid.UUID
		err = s.DB.QueryRow(context.Background(),
			"SELECT employee_id FROM schedule_entries WHERE id = $1", entryID).Scan(&assignee)
		require.NoError(t, err)
		require.Equal(t, offererEmpID, assignee)

		// The execution stamp is claimed exactly once; a concurrent executor
		// sees zero affected rows and leaves the original stamp untouched
		var stamped time.Time
		err = s.DB.QueryRow(context.Background(),
			"SELECT executed_at FROM shift_change_results WHERE id = $1", detail.Result.ID).Scan(&stamped)
		require.NoError(t, err)

		claimed, err := repository.NewResultRepository().ClaimExecution(context.Background(), s.DB, detail.Result.ID, time.Now())
		require.NoError(t, err)
		require.False(t, claimed)

		var after time.Time
		err = s.DB.QueryRow(context.Background(),
			"SELECT executed_at FROM shift_change_results WHERE id = $1", detail.Result.ID).Scan(&after)
		require.NoError(t, err)
		require.Equal(t, stamped, after)
	})

	s.Run("Error case: Requester cannot offer on their own request", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "self@example.com", string(user.RoleWorker))
		entryID := s.seedPublishedEntry(t, requesterEmpID, "2025-07-15")
		created := s.createChangeRequest(t, requesterToken, entryID, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			changesURL+"/"+created.ID.String()+"/offers", request.SubmitOfferRequest{}, requesterToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: Second live request for the same entry is rejected", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "dup@example.com", string(user.RoleWorker))
		entryID := s.seedPublishedEntry(t, requesterEmpID, "2025-07-15")
		s.createChangeRequest(t, requesterToken, entryID, nil)

		reqBody := builder.NewChangeRequestBuilder().With(func(b *builder.ChangeRequestBuilder) {
			b.Entry.ID = entryID
		}).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, changesURL, reqBody, requesterToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		reqBody := builder.NewChangeRequestBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, changesURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestCancelChangeRequest - cancellation before completion
// =============================================================================

func (s *ChangesSuite) TestCancelChangeRequest() {
	s.Run("Normal case: Requester cancels an open request", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "cancel@example.com", string(user.RoleWorker))
		entryID := s.seedPublishedEntry(t, requesterEmpID, "2025-07-15")
		created := s.createChangeRequest(t, requesterToken, entryID, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			changesURL+"/"+created.ID.String()+"/cancel", nil, requesterToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		detail := s.getChangeRequest(t, requesterToken, created.ID)
		require.Equal(t, "CANCELLED", detail.Status)
	})

	s.Run("Error case: Only the requester can cancel", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "owner@example.com", string(user.RoleWorker))
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleWorker))
		entryID := s.seedPublishedEntry(t, requesterEmpID, "2025-07-15")
		created := s.createChangeRequest(t, requesterToken, entryID, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			changesURL+"/"+created.ID.String()+"/cancel", nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestAdminResolve - offer-less absence resolution by an admin
// =============================================================================

func (s *ChangesSuite) TestAdminResolve() {
	s.Run("Normal case: Admin approves an absence request directly", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "absent@example.com", string(user.RoleWorker))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		entryID := s.seedPublishedEntry(t, requesterEmpID, "2025-07-15")

		created := s.createChangeRequest(t, requesterToken, entryID, func(b *builder.ChangeRequestBuilder) {
			b.AsAbsence()
		})
		require.Equal(t, "ABSENCE", created.ChangeType)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			changesURL+"/"+created.ID.String()+"/approve", nil, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		detail := s.getChangeRequest(t, requesterToken, created.ID)
		require.Equal(t, "COMPLETED", detail.Status)
		require.NotNil(t, detail.Result)
		require.Nil(t, detail.Result.SelectedOfferID)

		// The entry was converted to the day-off shift
		var shiftTypeID uuid.UUID
		err := s.DB.QueryRow(context.Background(),
			"SELECT shift_type_id FROM schedule_entries WHERE id = $1", entryID).Scan(&shiftTypeID)
		require.NoError(t, err)
		require.Equal(t, dbtest.ShiftTypeID(t, s.DB, "L"), shiftTypeID)
	})

	s.Run("Error case: Worker cannot admin-resolve an open request", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "absent2@example.com", string(user.RoleWorker))
		entryID := s.seedPublishedEntry(t, requesterEmpID, "2025-07-15")
		created := s.createChangeRequest(t, requesterToken, entryID, func(b *builder.ChangeRequestBuilder) {
			b.AsAbsence()
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			changesURL+"/"+created.ID.String()+"/approve", nil, requesterToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: Coverage request cannot skip offer selection", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "coverage@example.com", string(user.RoleWorker))
		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin2@example.com", string(user.RoleAdmin))
		entryID := s.seedPublishedEntry(t, requesterEmpID, "2025-07-15")
		created := s.createChangeRequest(t, requesterToken, entryID, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			changesURL+"/"+created.ID.String()+"/approve", nil, adminToken)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestRejectChangeRequest - veto by supervisors and participants
// =============================================================================

func (s *ChangesSuite) TestRejectChangeRequest() {
	s.Run("Normal case: Supervisor rejects an open request", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "rejected@example.com", string(user.RoleWorker))
		supervisorToken := authtest.CreateAndLogin(t, s.DB, s.Router, "supervisor@example.com", string(user.RoleSupervisor))
		entryID := s.seedPublishedEntry(t, requesterEmpID, "2025-07-15")
		created := s.createChangeRequest(t, requesterToken, entryID, nil)

		notes := "understaffed that week"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			changesURL+"/"+created.ID.String()+"/reject", request.DecisionRequest{Notes: &notes}, supervisorToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		detail := s.getChangeRequest(t, requesterToken, created.ID)
		require.Equal(t, "REJECTED", detail.Status)
	})

	s.Run("Normal case: Selected offerer can back out, requester cannot", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "committed@example.com", string(user.RoleWorker))
		offererToken, _ := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "backout@example.com", string(user.RoleWorker))
		entryID := s.seedPublishedEntry(t, requesterEmpID, "2025-07-15")
		created := s.createChangeRequest(t, requesterToken, entryID, nil)

		ow := httptest.PerformRequest(t, s.Router, http.MethodPost,
			changesURL+"/"+created.ID.String()+"/offers", request.SubmitOfferRequest{}, offererToken)
		require.Equal(t, http.StatusCreated, ow.Code, ow.Body.String())

		var offerRes map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &offerRes))

		sw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			changesURL+"/"+created.ID.String()+"/offers/"+offerRes["offer_id"]+"/select", nil, requesterToken)
		require.Equal(t, http.StatusNoContent, sw.Code, sw.Body.String())

		// Selecting was the requester's consent; they cannot veto afterwards
		rejectURL := changesURL + "/" + created.ID.String() + "/reject"
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, rejectURL, nil, requesterToken)
		require.Equal(t, http.StatusForbidden, rw.Code, rw.Body.String())

		rw = httptest.PerformRequest(t, s.Router, http.MethodPost, rejectURL, nil, offererToken)
		require.Equal(t, http.StatusNoContent, rw.Code, rw.Body.String())

		detail := s.getChangeRequest(t, requesterToken, created.ID)
		require.Equal(t, "REJECTED", detail.Status)
	})

	s.Run("Error case: Unrelated worker cannot reject", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "target@example.com", string(user.RoleWorker))
		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleWorker))
		entryID := s.seedPublishedEntry(t, requesterEmpID, "2025-07-15")
		created := s.createChangeRequest(t, requesterToken, entryID, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			changesURL+"/"+created.ID.String()+"/reject", nil, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestWithdrawOffer - offer withdrawal and status fallback
// =============================================================================

func (s *ChangesSuite) TestWithdrawOffer() {
	s.Run("Normal case: Withdrawing the only offer reopens the request", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "reopen@example.com", string(user.RoleWorker))
		offererToken, _ := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "helper@example.com", string(user.RoleWorker))
		entryID := s.seedPublishedEntry(t, requesterEmpID, "2025-07-15")
		created := s.createChangeRequest(t, requesterToken, entryID, nil)

		ow := httptest.PerformRequest(t, s.Router, http.MethodPost,
			changesURL+"/"+created.ID.String()+"/offers", request.SubmitOfferRequest{}, offererToken)
		require.Equal(t, http.StatusCreated, ow.Code, ow.Body.String())

		var offerRes map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &offerRes))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			changesURL+"/"+created.ID.String()+"/offers/"+offerRes["offer_id"], nil, offererToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		detail := s.getChangeRequest(t, requesterToken, created.ID)
		require.Equal(t, "OPEN", detail.Status)
		require.Empty(t, detail.Offers)
	})

	s.Run("Error case: Only the offerer can withdraw", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "mine@example.com", string(user.RoleWorker))
		offererToken, _ := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "generous@example.com", string(user.RoleWorker))
		entryID := s.seedPublishedEntry(t, requesterEmpID, "2025-07-15")
		created := s.createChangeRequest(t, requesterToken, entryID, nil)

		ow := httptest.PerformRequest(t, s.Router, http.MethodPost,
			changesURL+"/"+created.ID.String()+"/offers", request.SubmitOfferRequest{}, offererToken)
		require.Equal(t, http.StatusCreated, ow.Code, ow.Body.String())

		var offerRes map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &offerRes))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			changesURL+"/"+created.ID.String()+"/offers/"+offerRes["offer_id"], nil, requesterToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestListChangeRequests - filters and pagination
// =============================================================================

func (s *ChangesSuite) TestListChangeRequests() {
	s.Run("Normal case: Mine filter returns only the caller's requests", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "lister@example.com", string(user.RoleWorker))
		otherToken, otherEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "noise@example.com", string(user.RoleWorker))

		periodID := dbtest.CreateTestPeriod(t, s.DB, 2025, 7, "PUBLISHED")
		morning := dbtest.ShiftTypeID(t, s.DB, "M")
		myEntry := dbtest.CreateTestEntry(t, s.DB, periodID, requesterEmpID, "2025-07-15", morning)
		otherEntry := dbtest.CreateTestEntry(t, s.DB, periodID, otherEmpID, "2025-07-16", morning)

		mine := s.createChangeRequest(t, requesterToken, myEntry, nil)
		s.createChangeRequest(t, otherToken, otherEntry, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, changesURL+"?mine=true", nil, requesterToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actualRes struct {
			Changes []*response.ChangeRequestListItemResponse `json:"changes"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actualRes))
		require.Len(t, actualRes.Changes, 1)
		require.Equal(t, mine.ID, actualRes.Changes[0].ID)
	})

	s.Run("Normal case: Available filter hides the caller's own requests", func() {
		t := s.T()

		requesterToken, requesterEmpID := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "poster@example.com", string(user.RoleWorker))
		viewerToken, _ := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "viewer@example.com", string(user.RoleWorker))
		entryID := s.seedPublishedEntry(t, requesterEmpID, "2025-07-15")
		created := s.createChangeRequest(t, requesterToken, entryID, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, changesURL+"?available=true", nil, viewerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var viewerRes struct {
			Changes []*response.ChangeRequestListItemResponse `json:"changes"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &viewerRes))
		require.Len(t, viewerRes.Changes, 1)
		require.Equal(t, created.ID, viewerRes.Changes[0].ID)

		ow := httptest.PerformRequest(t, s.Router, http.MethodGet, changesURL+"?available=true", nil, requesterToken)
		require.Equal(t, http.StatusOK, ow.Code, ow.Body.String())

		var ownerRes struct {
			Changes []*response.ChangeRequestListItemResponse `json:"changes"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &ownerRes))
		require.Empty(t, ownerRes.Changes)
	})
}
