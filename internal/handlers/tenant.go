package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentory/rentory-api/internal/dto"
	apierrors "github.com/rentory/rentory-api/internal/errors"
	"github.com/rentory/rentory-api/internal/services"
)

// TenantHandler coordinates the tenant-facing read endpoints.
type TenantHandler struct {
	tenantService *services.TenantService
}

// NewTenantHandler creates a new TenantHandler.
func NewTenantHandler(tenantService *services.TenantService) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
	}
}

// GetTenant returns a tenant's profile.
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenant, err := h.tenantService.Profile(c.Param("tenant_id"))
	if err != nil {
		respondTenantError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTenantDTO(*tenant))
}

// GetDashboard returns the tenant's assigned property view.
func (h *TenantHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.tenantService.Dashboard(c.Param("tenant_id"))
	if err != nil {
		respondTenantError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTenantDashboardDTO(
		*dashboard.Property,
		dashboard.OwnerPhone,
		dashboard.Rent,
	))
}

func respondTenantError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTenantNotFound),
		errors.Is(err, services.ErrPropertyNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
