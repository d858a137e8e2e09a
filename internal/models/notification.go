package models

import "time"

// Notification is one row per (broadcast, targeted property) pair. Delivery
// is out of scope; rows are only ever recorded.
type Notification struct {
	ID         string    `gorm:"type:varchar(64);primarykey" json:"id"`
	OwnerID    string    `gorm:"type:varchar(64);not null;index" json:"owner_id"`
	PropertyID *string   `gorm:"type:varchar(64)" json:"property_id"`
	Title      string    `gorm:"type:varchar(160);not null" json:"title"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}
