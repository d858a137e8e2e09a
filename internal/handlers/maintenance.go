package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentory/rentory-api/internal/dto"
	apierrors "github.com/rentory/rentory-api/internal/errors"
	"github.com/rentory/rentory-api/internal/services"
)

// MaintenanceHandler coordinates the maintenance ticket endpoint.
type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(maintenanceService *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
	}
}

// CreateTicket opens a maintenance ticket against a property.
func (h *MaintenanceHandler) CreateTicket(c *gin.Context) {
	type TicketRequest struct {
		PropertyID       string `json:"property_id" binding:"required"`
		TenantID         string `json:"tenant_id" binding:"required"`
		IssueTitle       string `json:"issue_title" binding:"required,max=160"`
		IssueDescription string `json:"issue_description"`
	}

	var req TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	ticket, err := h.maintenanceService.OpenTicket(services.OpenTicketInput{
		PropertyID:       req.PropertyID,
		TenantID:         req.TenantID,
		IssueTitle:       req.IssueTitle,
		IssueDescription: req.IssueDescription,
	})
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMaintenanceTicketDTO(*ticket))
}
