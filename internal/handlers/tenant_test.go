package handlers

import (
	"net/http"
	"testing"

	"github.com/rentory/rentory-api/internal/dto"
	"github.com/rentory/rentory-api/internal/services"
	"github.com/stretchr/testify/require"
)

func registerTenant(t *testing.T, env testEnv, qrCode, phone string) string {
	t.Helper()

	result, _, err := env.authService.RegisterTenant(services.RegisterTenantInput{
		QRCode:   qrCode,
		FullName: "Rahul Nair",
		Phone:    phone,
		Password: "supersecret",
	})
	require.NoError(t, err)
	return result.User.ID
}

func TestTenantHandler_GetTenant(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.createOwner(t, "900000001")
	property := env.createProperty(t, owner.ID, 2, 12000)
	tenantID := registerTenant(t, env, property.QRCode, "900000002")

	w := env.doJSON(t, http.MethodGet, "/tenants/"+tenantID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tenant dto.TenantDTO
	decodeJSON(t, w, &tenant)
	require.Equal(t, "Rahul Nair", tenant.FullName)
	require.Equal(t, "900000002", tenant.Phone)
	require.NotNil(t, tenant.AssignedPropertyID)
	require.Equal(t, property.ID, *tenant.AssignedPropertyID)
}

func TestTenantHandler_GetTenant_NotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/tenants/no-such-tenant", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTenantHandler_GetTenant_OwnerID(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.createOwner(t, "900000001")

	// Owners are not tenants; the tenant view must not leak them.
	w := env.doJSON(t, http.MethodGet, "/tenants/"+owner.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTenantHandler_GetDashboard(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.createOwner(t, "900000001")
	property := env.createProperty(t, owner.ID, 2, 12000)
	tenantID := registerTenant(t, env, property.QRCode, "900000002")

	w := env.doJSON(t, http.MethodGet, "/tenants/"+tenantID+"/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dashboard dto.TenantDashboardDTO
	decodeJSON(t, w, &dashboard)
	require.Equal(t, property.ID, dashboard.Property.ID)
	require.Equal(t, owner.Phone, dashboard.OwnerPhone)
	require.Equal(t, 12000.0, dashboard.Rent)
}

func TestTenantHandler_GetDashboard_Unassigned(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.createOwner(t, "900000001")
	property := env.createProperty(t, owner.ID, 2, 12000)

	// A join request creates a placeholder tenant with no assignment.
	w := env.doJSON(t, http.MethodPost, "/properties/"+property.ID+"/tenants/join-requests", map[string]string{"tenant_id": "tenant-100"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.doJSON(t, http.MethodGet, "/tenants/tenant-100/dashboard", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
