package models

import "time"

type TicketStatus string

const (
	TicketOpen TicketStatus = "open"
)

type MaintenanceTicket struct {
	ID               string       `gorm:"type:varchar(64);primarykey" json:"id"`
	PropertyID       string       `gorm:"type:varchar(64);not null;index" json:"property_id"`
	TenantID         string       `gorm:"type:varchar(64);not null" json:"tenant_id"`
	IssueTitle       string       `gorm:"type:varchar(160);not null" json:"issue_title"`
	IssueDescription string       `gorm:"type:text" json:"issue_description,omitempty"`
	Status           TicketStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
}
