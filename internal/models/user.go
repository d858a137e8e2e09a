package models

import "time"

type UserRole string

const (
	RoleOwner  UserRole = "owner"
	RoleTenant UserRole = "tenant"
)

type User struct {
	ID                 string    `gorm:"type:varchar(64);primarykey" json:"id"`
	Role               UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	FullName           string    `gorm:"type:varchar(120);not null" json:"full_name"`
	Phone              string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"phone"`
	Email              string    `gorm:"type:varchar(120)" json:"email,omitempty"`
	PasswordHash       string    `gorm:"type:varchar(120)" json:"-"`
	Age                *int      `json:"age,omitempty"`
	Documents          string    `gorm:"type:text" json:"documents,omitempty"`
	AssignedPropertyID *string   `gorm:"type:varchar(64)" json:"assigned_property_id"`
	CreatedAt          time.Time `json:"created_at"`

	// Relations
	Properties []Property `gorm:"foreignKey:OwnerID" json:"-"`
}
