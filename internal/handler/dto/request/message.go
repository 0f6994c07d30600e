package request

import (
	"shiftboard/internal/usecase/commands"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	RecipientID uuid.UUID  `json:"recipient_id" binding:"required"`
	Subject     *string    `json:"subject,omitempty" binding:"omitempty,max=200"`
	Content     string     `json:"content" binding:"required,max=2000"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
}

func (r SendMessageRequest) ToInput() commands.SendMessageInput {
	return commands.SendMessageInput{
		RecipientID: r.RecipientID,
		Subject:     trimmedPtr(r.Subject),
		Content:     r.Content,
		ParentID:    r.ParentID,
	}
}
