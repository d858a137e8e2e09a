package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentory/rentory-api/internal/dto"
	apierrors "github.com/rentory/rentory-api/internal/errors"
	"github.com/rentory/rentory-api/internal/services"
)

// ChatHandler coordinates the per-property chat endpoints.
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ListMessages returns a property's chat history in posting order.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	messages, err := h.chatService.ListMessages(c.Param("property_id"))
	if err != nil {
		respondChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChatMessageDTOs(messages))
}

// PostMessage stores a message in the property's chat group.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	type PostRequest struct {
		SenderID string `json:"sender_id" binding:"required"`
		Text     string `json:"text"`
		ImageURL string `json:"image_url" binding:"omitempty,url"`
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	msg, err := h.chatService.PostMessage(services.PostMessageInput{
		PropertyID: c.Param("property_id"),
		SenderID:   req.SenderID,
		Text:       req.Text,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		respondChatError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToChatMessageDTO(*msg))
}

func respondChatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrChatGroupNotFound),
		errors.Is(err, services.ErrSenderNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotGroupMember):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrEmptyMessage):
		apierrors.UnprocessableEntity(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
