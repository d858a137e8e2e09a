package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentory/rentory-api/internal/dto"
	apierrors "github.com/rentory/rentory-api/internal/errors"
	"github.com/rentory/rentory-api/internal/services"
)

// NotificationHandler coordinates the broadcast endpoint.
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// Broadcast fans an owner announcement out to the targeted properties.
func (h *NotificationHandler) Broadcast(c *gin.Context) {
	type BroadcastRequest struct {
		OwnerID     string   `json:"owner_id" binding:"required"`
		Title       string   `json:"title" binding:"required,max=160"`
		Body        string   `json:"body" binding:"required"`
		PropertyIDs []string `json:"property_ids"`
	}

	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	ids, err := h.notificationService.Broadcast(services.BroadcastInput{
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		Body:        req.Body,
		PropertyIDs: req.PropertyIDs,
	})
	if err != nil {
		if errors.Is(err, services.ErrOwnerNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusAccepted, dto.BroadcastResponseDTO{
		Queued:          true,
		NotificationIDs: ids,
	})
}
