package dto

import (
	"time"

	"github.com/rentory/rentory-api/internal/models"
)

// MaintenanceTicketDTO represents a maintenance ticket in API responses
type MaintenanceTicketDTO struct {
	ID               string              `json:"id"`
	PropertyID       string              `json:"property_id"`
	TenantID         string              `json:"tenant_id"`
	IssueTitle       string              `json:"issue_title"`
	IssueDescription string              `json:"issue_description,omitempty"`
	Status           models.TicketStatus `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
}

// ToMaintenanceTicketDTO converts a MaintenanceTicket model to its response shape
func ToMaintenanceTicketDTO(ticket models.MaintenanceTicket) MaintenanceTicketDTO {
	return MaintenanceTicketDTO{
		ID:               ticket.ID,
		PropertyID:       ticket.PropertyID,
		TenantID:         ticket.TenantID,
		IssueTitle:       ticket.IssueTitle,
		IssueDescription: ticket.IssueDescription,
		Status:           ticket.Status,
		CreatedAt:        ticket.CreatedAt,
	}
}
