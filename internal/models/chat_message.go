package models

import "time"

// ChatMessage carries text and/or an image URL; at least one must be set.
// SenderName is a snapshot taken at post time and is not updated when the
// sender later changes their name.
type ChatMessage struct {
	ID         string    `gorm:"type:varchar(64);primarykey" json:"id"`
	GroupID    string    `gorm:"type:varchar(64);not null;index" json:"group_id"`
	SenderID   string    `gorm:"type:varchar(64);not null" json:"sender_id"`
	SenderName string    `gorm:"type:varchar(120);not null" json:"sender_name"`
	Text       string    `gorm:"type:text" json:"text,omitempty"`
	ImageURL   string    `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
