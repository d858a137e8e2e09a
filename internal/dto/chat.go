package dto

import (
	"time"

	"github.com/rentory/rentory-api/internal/models"
)

// ChatMessageDTO represents a chat message in API responses
type ChatMessageDTO struct {
	ID         string    `json:"id"`
	GroupID    string    `json:"group_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Text       string    `json:"text,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToChatMessageDTO converts a ChatMessage model to its response shape
func ToChatMessageDTO(msg models.ChatMessage) ChatMessageDTO {
	return ChatMessageDTO{
		ID:         msg.ID,
		GroupID:    msg.GroupID,
		SenderID:   msg.SenderID,
		SenderName: msg.SenderName,
		Text:       msg.Text,
		ImageURL:   msg.ImageURL,
		CreatedAt:  msg.CreatedAt,
	}
}

// ToChatMessageDTOs converts a slice of messages preserving order
func ToChatMessageDTOs(messages []models.ChatMessage) []ChatMessageDTO {
	dtos := make([]ChatMessageDTO, len(messages))
	for i, msg := range messages {
		dtos[i] = ToChatMessageDTO(msg)
	}
	return dtos
}
