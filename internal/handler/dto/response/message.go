package response

import (
	"time"

	"shiftboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MessageResponse struct {
	ID            uuid.UUID  `json:"id"`
	SenderID      uuid.UUID  `json:"sender_id"`
	SenderName    string     `json:"sender_name"`
	RecipientID   uuid.UUID  `json:"recipient_id"`
	RecipientName string     `json:"recipient_name"`
	ParentID      *uuid.UUID `json:"parent_id,omitempty"`
	Subject       *string    `json:"subject,omitempty"`
	Content       string     `json:"content"`
	ReadAt        *time.Time `json:"read_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromMessageView(v *queries.MessageView) *MessageResponse {
	var resp MessageResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromMessageList(items []*queries.MessageView) []*MessageResponse {
	res := make([]*MessageResponse, len(items))
	for i, it := range items {
		res[i] = FromMessageView(it)
	}
	return res
}
