//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"shiftboard/internal/domain/shiftchange"
	"shiftboard/internal/domain/user"
	"shiftboard/internal/handler/api"
	resdto "shiftboard/internal/handler/dto/response"
	"shiftboard/internal/usecase/commands"
	"shiftboard/internal/usecase/queries"
	"shiftboard/tests/common/builder"
	"shiftboard/tests/common/httptest"
	"shiftboard/tests/common/testutil"
	commandsmock "shiftboard/tests/mock/commands"
	queriesmock "shiftboard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ShiftChangeHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCommands    *commandsmock.MockShiftChangeCommands
	mockQueries     *queriesmock.MockShiftChangeQueries
	mockUserQueries *queriesmock.MockUserQueries
	handler         *api.ShiftChangeHandler
	userID          uuid.UUID
}

func (s *ShiftChangeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockShiftChangeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockShiftChangeQueries(s.mockCtrl)
	s.mockUserQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewShiftChangeHandler(s.mockCommands, s.mockQueries, s.mockUserQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleWorker)
		c.Next()
	}

	// Setup routes
	s.router.POST("/changes", authMiddleware, s.handler.Create)
	s.router.GET("/changes", authMiddleware, s.handler.List)
	s.router.GET("/changes/:id", authMiddleware, s.handler.Get)
	s.router.POST("/changes/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.POST("/changes/:id/approve", authMiddleware, s.handler.Approve)
	s.router.POST("/changes/:id/reject", authMiddleware, s.handler.Reject)
	s.router.POST("/changes/:id/offers", authMiddleware, s.handler.SubmitOffer)
	s.router.DELETE("/changes/:id/offers/:offerId", authMiddleware, s.handler.WithdrawOffer)
	s.router.POST("/changes/:id/offers/:offerId/select", authMiddleware, s.handler.SelectOffer)
}

func (s *ShiftChangeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestShiftChangeHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShiftChangeHandlerTestSuite))
}

type testCaseChange struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ShiftChangeHandlerTestSuite) TestCreate() {
	url := "/changes"

	reqBody := builder.NewChangeRequestBuilder().BuildCreateRequestDTO()
	returnView := builder.NewChangeRequestBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ChangeRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.ChangeType, response.ChangeType)
		s.Equal(shiftchange.StatusOpen.String(), response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseChange{
			{name: "missing field: schedule_entry_id", mutate: testutil.Field("schedule_entry_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: change_type", mutate: testutil.Field("change_type", nil), expectCode: http.StatusBadRequest},
			{name: "unknown change_type", mutate: testutil.Field("change_type", "HOLIDAY"), expectCode: http.StatusBadRequest},
			{name: "unknown urgency", mutate: testutil.Field("urgency", "CRITICAL"), expectCode: http.StatusBadRequest},
			{name: "reason too long", mutate: testutil.Field("reason", strings.Repeat("a", 501)), expectCode: http.StatusBadRequest},
			{name: "urgency omitted is OK", mutate: testutil.Field("urgency", nil), expectCode: http.StatusCreated},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(returnView.ID, nil).Times(1)
					s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
						Return(returnView, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "schedule entry not found",
				commandsError:  commands.ErrEntryNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "no employee profile",
				commandsError:  commands.ErrNoEmployeeProfile,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "No employee profile",
			},
			{
				name:           "active request already exists",
				commandsError:  commands.ErrActiveRequestExists,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already exists",
			},
			{
				name:           "entry in unpublished period",
				commandsError:  shiftchange.ErrPeriodNotPublished,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not published",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ShiftChangeHandlerTestSuite) TestGet() {
	requestID := uuid.New()
	url := "/changes/" + requestID.String()

	returnView := builder.NewChangeRequestBuilder().BuildView()
	returnView.ID = requestID

	s.Run("success: returns 200 OK with ChangeRequestResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), requestID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ChangeRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(requestID, response.ID)
		s.Equal(returnView.RequesterName, response.RequesterName)
		s.NotNil(response.Offers)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/changes/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing request", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), requestID).
			Return(nil, queries.ErrChangeRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ShiftChangeHandlerTestSuite) TestList() {
	employeeID := uuid.New()
	userView := builder.NewUserBuilder().WithEmployeeID(&employeeID).BuildReadModel()

	s.Run("success: returns items with next cursor", func() {
		items := []*queries.ChangeRequestListItem{
			builder.NewChangeRequestBuilder().BuildListItem(),
			builder.NewChangeRequestBuilder().BuildListItem(),
		}
		cursor := &queries.Cursor{After: "opaque-cursor"}

		s.mockUserQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(userView, nil).Times(1)
		s.mockQueries.EXPECT().List(gomock.Any(), employeeID, gomock.Any()).
			Return(items, cursor, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/changes?mine=true&limit=50", nil, "bearer-token")

		var body struct {
			Changes    []resdto.ChangeRequestListItemResponse `json:"changes"`
			NextCursor string                                 `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Changes, 2)
		s.Equal("opaque-cursor", body.NextCursor)
	})

	s.Run("success: viewer without employee profile lists with nil id", func() {
		s.mockUserQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(nil, queries.ErrUserNotFound).Times(1)
		s.mockQueries.EXPECT().List(gomock.Any(), uuid.Nil, gomock.Any()).
			Return([]*queries.ChangeRequestListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/changes", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/changes?status=PAUSED", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})
}

// ================================================================================
// TestSubmitOffer
// ================================================================================

func (s *ShiftChangeHandlerTestSuite) TestSubmitOffer() {
	requestID := uuid.New()
	url := "/changes/" + requestID.String() + "/offers"
	offerID := uuid.New()

	s.Run("success: returns 201 Created with offer id", func() {
		s.mockCommands.EXPECT().SubmitOffer(gomock.Any(), requestID, gomock.Any(), gomock.Any()).
			Return(offerID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"conditions": "only until 6pm"}, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(offerID.String(), body["offer_id"])
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"request not found", commands.ErrRequestNotFound, http.StatusNotFound},
			{"own request", shiftchange.ErrSelfOffer, http.StatusConflict},
			{"duplicate offer", shiftchange.ErrDuplicateOffer, http.StatusConflict},
			{"closed to offers", shiftchange.ErrInvalidTransition, http.StatusConflict},
			{"expired request", commands.ErrRequestExpired, http.StatusGone},
			{"conditions too long", shiftchange.ErrConditionsTooLong, http.StatusUnprocessableEntity},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SubmitOffer(gomock.Any(), requestID, gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					map[string]any{}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestCancel / TestSelectOffer / TestWithdrawOffer
// ================================================================================

func (s *ShiftChangeHandlerTestSuite) TestCancel() {
	requestID := uuid.New()
	url := "/changes/" + requestID.String() + "/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), requestID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden for someone else's request", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), requestID, gomock.Any()).
			Return(shiftchange.ErrNotRequester).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})
}

func (s *ShiftChangeHandlerTestSuite) TestSelectOffer() {
	requestID := uuid.New()
	offerID := uuid.New()
	url := "/changes/" + requestID.String() + "/offers/" + offerID.String() + "/select"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().SelectOffer(gomock.Any(), requestID, offerID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when offer belongs to another request", func() {
		s.mockCommands.EXPECT().SelectOffer(gomock.Any(), requestID, offerID, gomock.Any()).
			Return(shiftchange.ErrOfferMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *ShiftChangeHandlerTestSuite) TestWithdrawOffer() {
	requestID := uuid.New()
	offerID := uuid.New()
	url := "/changes/" + requestID.String() + "/offers/" + offerID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().WithdrawOffer(gomock.Any(), requestID, offerID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict for non-pending offer", func() {
		s.mockCommands.EXPECT().WithdrawOffer(gomock.Any(), requestID, offerID, gomock.Any()).
			Return(shiftchange.ErrOfferNotPending).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestApprove / TestReject
// ================================================================================

func (s *ShiftChangeHandlerTestSuite) TestApprove() {
	requestID := uuid.New()
	url := "/changes/" + requestID.String() + "/approve"

	s.Run("success: returns 204 with empty body", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), requestID, commands.DecisionInput{}, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: returns 204 with notes", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), requestID, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"notes": "confirmed with the team"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{"not a required approver", commands.ErrForbiddenApproval, http.StatusForbidden},
			{"already approved", commands.ErrAlreadyApproved, http.StatusConflict},
			{"not awaiting approval", shiftchange.ErrInvalidTransition, http.StatusConflict},
			{"concurrent update", commands.ErrConcurrentUpdate, http.StatusConflict},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Approve(gomock.Any(), requestID, gomock.Any(), gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *ShiftChangeHandlerTestSuite) TestReject() {
	requestID := uuid.New()
	url := "/changes/" + requestID.String() + "/reject"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), requestID, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"notes": "understaffed that week"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden for outsiders", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), requestID, gomock.Any(), gomock.Any()).
			Return(commands.ErrNotParticipant).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
