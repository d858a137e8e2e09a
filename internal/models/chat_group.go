package models

import "time"

// ChatGroup is the communication channel for one property. It is created
// together with the property and never deleted.
type ChatGroup struct {
	ID         string    `gorm:"type:varchar(64);primarykey" json:"id"`
	PropertyID string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"property_id"`
	Name       string    `gorm:"type:varchar(120);not null" json:"name"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Members  []ChatGroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
	Messages []ChatMessage     `gorm:"foreignKey:GroupID" json:"messages,omitempty"`
}
