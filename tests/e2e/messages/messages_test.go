//go:build e2e

package messages_test

import (
	"context"
	"net/http"
	"testing"

	"shiftboard/internal/domain/user"
	"shiftboard/internal/handler/dto/request"
	"shiftboard/internal/handler/dto/response"
	"shiftboard/tests/common/authtest"
	"shiftboard/tests/common/dbtest"
	"shiftboard/tests/common/httptest"
	"shiftboard/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const messagesURL = "/api/messages"

type MessagesSuite struct {
	e2e.SharedSuite
}

func (s *MessagesSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestMessagesSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MessagesSuite))
}

type messageListResponse struct {
	Messages    []*response.MessageResponse `json:"messages"`
	UnreadCount int64                       `json:"unread_count"`
}

func (s *MessagesSuite) sendMessage(t *testing.T, token string, recipientID uuid.UUID, mutate func(*request.SendMessageRequest)) uuid.UUID {
	body := request.SendMessageRequest{
		RecipientID: recipientID,
		Content:     "are you free to swap next week?",
	}
	if mutate != nil {
		mutate(&body)
	}

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, messagesURL, body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res map[string]string
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	id, err := uuid.Parse(res["message_id"])
	require.NoError(t, err)
	return id
}

func (s *MessagesSuite) listMessages(t *testing.T, token, box string) messageListResponse {
	url := messagesURL
	if box != "" {
		url += "?box=" + box
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res messageListResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return res
}

func (s *MessagesSuite) TestDirectMessages() {
	s.Run("Normal case: Send, inbox and sent filters, read on open", func() {
		t := s.T()

		senderToken, _ := authtest.CreateAndLoginEmployee(t, s.DB, s.Router, "sender@example.com", string(user.RoleWorker))
		recipientID := dbtest.CreateTestUser(t, s.DB, "recipient@example.com", string(user.RoleWorker))
		recipientToken := authtest.LoginUser(t, s.Router, "recipient@example.com", "password123")

		subject := "shift swap"
		msgID := s.sendMessage(t, senderToken, recipientID, func(r *request.SendMessageRequest) {
			r.Subject = &subject
		})

		inbox := s.listMessages(t, recipientToken, "inbox")
		require.Len(t, inbox.Messages, 1)
		require.Equal(t, msgID, inbox.Messages[0].ID)
		require.Equal(t, int64(1), inbox.UnreadCount)
		require.Nil(t, inbox.Messages[0].ReadAt)

		sent := s.listMessages(t, senderToken, "sent")
		require.Len(t, sent.Messages, 1)
		require.Equal(t, msgID, sent.Messages[0].ID)

		// sender's inbox is empty
		require.Empty(t, s.listMessages(t, senderToken, "inbox").Messages)

		// opening the message as the recipient marks it read
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, messagesURL+"/"+msgID.String(), nil, recipientToken)
		require.Equal(t, http.StatusOK, gw.Code, gw.Body.String())

		inbox = s.listMessages(t, recipientToken, "inbox")
		require.Equal(t, int64(0), inbox.UnreadCount)
		require.NotNil(t, inbox.Messages[0].ReadAt)

		// the recipient was notified
		var kind string
		err := s.DB.QueryRow(context.Background(),
			"SELECT kind FROM notifications WHERE user_id = $1", recipientID).Scan(&kind)
		require.NoError(t, err)
		require.Equal(t, "MESSAGE_RECEIVED", kind)
	})

	s.Run("Normal case: Reply references the parent and notifies as a reply", func() {
		t := s.T()

		senderID := dbtest.CreateTestUser(t, s.DB, "first@example.com", string(user.RoleWorker))
		senderToken := authtest.LoginUser(t, s.Router, "first@example.com", "password123")
		recipientID := dbtest.CreateTestUser(t, s.DB, "second@example.com", string(user.RoleWorker))
		recipientToken := authtest.LoginUser(t, s.Router, "second@example.com", "password123")

		parentID := s.sendMessage(t, senderToken, recipientID, nil)
		replyID := s.sendMessage(t, recipientToken, senderID, func(r *request.SendMessageRequest) {
			r.Content = "sure, which day?"
			r.ParentID = &parentID
		})

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, messagesURL+"/"+replyID.String(), nil, senderToken)
		require.Equal(t, http.StatusOK, gw.Code, gw.Body.String())

		var reply response.MessageResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &reply))
		require.NotNil(t, reply.ParentID)
		require.Equal(t, parentID, *reply.ParentID)

		var kind string
		err := s.DB.QueryRow(context.Background(),
			"SELECT kind FROM notifications WHERE user_id = $1", senderID).Scan(&kind)
		require.NoError(t, err)
		require.Equal(t, "MESSAGE_REPLY", kind)
	})

	s.Run("Error case: Unknown recipient is rejected", func() {
		t := s.T()

		senderToken := authtest.CreateAndLogin(t, s.DB, s.Router, "lonely@example.com", string(user.RoleWorker))

		body := request.SendMessageRequest{RecipientID: uuid.New(), Content: "anyone there?"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, messagesURL, body, senderToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: Outsiders cannot read or mark someone else's message", func() {
		t := s.T()

		senderToken := authtest.CreateAndLogin(t, s.DB, s.Router, "a@example.com", string(user.RoleWorker))
		recipientID := dbtest.CreateTestUser(t, s.DB, "b@example.com", string(user.RoleWorker))
		outsiderToken := authtest.CreateAndLogin(t, s.DB, s.Router, "c@example.com", string(user.RoleWorker))

		msgID := s.sendMessage(t, senderToken, recipientID, nil)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, messagesURL+"/"+msgID.String(), nil, outsiderToken)
		require.Equal(t, http.StatusForbidden, gw.Code, gw.Body.String())

		// only the recipient may mark a message read
		mw := httptest.PerformRequest(t, s.Router, http.MethodPost, messagesURL+"/"+msgID.String()+"/read", nil, senderToken)
		require.Equal(t, http.StatusForbidden, mw.Code, mw.Body.String())
	})

	s.Run("Normal case: Either participant can delete the message", func() {
		t := s.T()

		senderToken := authtest.CreateAndLogin(t, s.DB, s.Router, "gone@example.com", string(user.RoleWorker))
		recipientID := dbtest.CreateTestUser(t, s.DB, "keeper@example.com", string(user.RoleWorker))
		recipientToken := authtest.LoginUser(t, s.Router, "keeper@example.com", "password123")

		msgID := s.sendMessage(t, senderToken, recipientID, nil)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, messagesURL+"/"+msgID.String(), nil, recipientToken)
		require.Equal(t, http.StatusNoContent, dw.Code, dw.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, messagesURL+"/"+msgID.String(), nil, senderToken)
		require.Equal(t, http.StatusNotFound, gw.Code, gw.Body.String())
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, messagesURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
