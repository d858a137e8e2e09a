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

// PropertyHandler coordinates the property catalog HTTP handlers.
type PropertyHandler struct {
	propertyService *services.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// CreateProperty lists a new property for an owner.
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	type CreateRequest struct {
		Location    string  `json:"location" binding:"required,max=120"`
		Name        string  `json:"name" binding:"required,max=120"`
		UnitType    string  `json:"unit_type" binding:"required,max=40"`
		Description string  `json:"description"`
		ImageURL    string  `json:"image_url" binding:"omitempty,url"`
		Capacity    int     `json:"capacity" binding:"required,gt=0"`
		Rent        float64 `json:"rent" binding:"required,gt=0"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	property, err := h.propertyService.Create(c.Param("owner_id"), services.CreatePropertyInput{
		Location:    req.Location,
		Name:        req.Name,
		UnitType:    req.UnitType,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Capacity:    req.Capacity,
		Rent:        req.Rent,
	})
	if err != nil {
		respondPropertyError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPropertyCardDTO(*property))
}

// ListProperties returns the owner's properties as card projections.
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	properties, err := h.propertyService.ListForOwner(c.Param("owner_id"))
	if err != nil {
		respondPropertyError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyCardDTOs(properties))
}

// GetProperty returns the full property detail view.
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	detail, err := h.propertyService.Detail(c.Param("property_id"))
	if err != nil {
		respondPropertyError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyDetailDTO(
		*detail.Property,
		*detail.Owner,
		detail.ChatGroupName,
		detail.TenantLinks,
		detail.Payments,
	))
}

// UpdateWaterBillStatus overwrites the property's water bill status.
func (h *PropertyHandler) UpdateWaterBillStatus(c *gin.Context) {
	type UpdateRequest struct {
		Status models.WaterBillStatus `json:"status" binding:"required"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	if req.Status != models.WaterBillPaid && req.Status != models.WaterBillUnpaid {
		apierrors.UnprocessableEntity(c, "status must be paid or unpaid")
		return
	}

	property, err := h.propertyService.SetWaterBillStatus(c.Param("property_id"), req.Status)
	if err != nil {
		respondPropertyError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WaterBillStatusDTO{
		PropertyID:      property.ID,
		WaterBillStatus: property.WaterBillStatus,
	})
}

// GetAnalytics summarizes the owner's portfolio.
func (h *PropertyHandler) GetAnalytics(c *gin.Context) {
	analytics, err := h.propertyService.Analytics(c.Param("owner_id"))
	if err != nil {
		respondPropertyError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOwnerAnalyticsDTO(
		analytics.Locations,
		analytics.TotalProperties,
		analytics.ActiveTenants,
	))
}

// CreateJoinRequest records a pending join request against a property.
func (h *PropertyHandler) CreateJoinRequest(c *gin.Context) {
	type JoinRequest struct {
		TenantID string `json:"tenant_id" binding:"required"`
	}

	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	link, err := h.propertyService.RequestJoin(c.Param("property_id"), req.TenantID)
	if err != nil {
		respondPropertyError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJoinRequestDTO(*link))
}

func respondPropertyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOwnerNotFound),
		errors.Is(err, services.ErrPropertyNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrQRTokenGenerationFailed),
		errors.Is(err, services.ErrFailedToCreateProperty):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
