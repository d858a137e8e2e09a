package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentory/rentory-api/internal/dto"
	apierrors "github.com/rentory/rentory-api/internal/errors"
	"github.com/rentory/rentory-api/internal/models"
	"github.com/rentory/rentory-api/internal/services"
)

// BillingHandler coordinates the payment recording endpoint.
type BillingHandler struct {
	billingService *services.BillingService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(billingService *services.BillingService) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
	}
}

// CreatePayment records a paid bill against a property.
func (h *BillingHandler) CreatePayment(c *gin.Context) {
	type PaymentRequest struct {
		PropertyID string          `json:"property_id" binding:"required"`
		TenantID   string          `json:"tenant_id" binding:"required"`
		BillType   models.BillType `json:"bill_type" binding:"required,oneof=rent electricity water"`
		Amount     float64         `json:"amount" binding:"required,gt=0"`
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	payment, err := h.billingService.RecordPayment(services.RecordPaymentInput{
		PropertyID: req.PropertyID,
		TenantID:   req.TenantID,
		BillType:   req.BillType,
		Amount:     req.Amount,
	})
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentDTO(*payment))
}
