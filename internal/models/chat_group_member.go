package models

import "time"

type ChatGroupMember struct {
	ID        string    `gorm:"type:varchar(64);primarykey" json:"id"`
	GroupID   string    `gorm:"type:varchar(64);not null;index" json:"group_id"`
	UserID    string    `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Role      UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Group ChatGroup `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	User  User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
