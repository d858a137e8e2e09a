package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/rentory/rentory-api/internal/dto"
	"github.com/rentory/rentory-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_SignupOwner(t *testing.T) {
	env := setupTestEnv(t)

	payload := map[string]string{
		"full_name": "Anita Menon",
		"phone":     "900000001",
		"password":  "supersecret",
	}

	w := env.doJSON(t, http.MethodPost, "/auth/owners/signup", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.AuthResponseDTO
	decodeJSON(t, w, &response)
	require.Equal(t, models.RoleOwner, response.Role)
	require.NotEmpty(t, response.UserID)
	require.True(t, strings.HasPrefix(response.AccessToken, "demo-token-"))
}

func TestAuthHandler_SignupOwner_MissingFields(t *testing.T) {
	env := setupTestEnv(t)

	payload := map[string]string{
		"full_name": "Anita Menon",
		"phone":     "900000001",
	}

	w := env.doJSON(t, http.MethodPost, "/auth/owners/signup", payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAuthHandler_SignupOwner_DuplicatePhone(t *testing.T) {
	env := setupTestEnv(t)
	env.createOwner(t, "900000001")

	payload := map[string]string{
		"full_name": "Another Owner",
		"phone":     "900000001",
		"password":  "supersecret",
	}

	w := env.doJSON(t, http.MethodPost, "/auth/owners/signup", payload)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_RegisterTenant(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.createOwner(t, "900000001")
	property := env.createProperty(t, owner.ID, 2, 25000)

	payload := map[string]interface{}{
		"qr_code":   property.QRCode,
		"full_name": "Rahul Nair",
		"phone":     "900000002",
		"password":  "supersecret",
		"age":       28,
	}

	w := env.doJSON(t, http.MethodPost, "/auth/tenants/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.TenantRegistrationDTO
	decodeJSON(t, w, &response)
	require.Equal(t, models.RoleTenant, response.Role)
	require.Equal(t, property.ID, response.PropertyID)

	var stored models.Property
	require.NoError(t, env.db.First(&stored, "id = ?", property.ID).Error)
	require.Equal(t, 1, stored.OccupiedCount)

	var tenant models.User
	require.NoError(t, env.db.First(&tenant, "id = ?", response.UserID).Error)
	require.NotNil(t, tenant.AssignedPropertyID)
	require.Equal(t, property.ID, *tenant.AssignedPropertyID)

	var link models.PropertyTenant
	require.NoError(t, env.db.Where("property_id = ? AND tenant_id = ?", property.ID, tenant.ID).First(&link).Error)
	require.Equal(t, models.TenancyActive, link.Status)

	// The tenant joins the property chat group as part of registration.
	var group models.ChatGroup
	require.NoError(t, env.db.Where("property_id = ?", property.ID).First(&group).Error)
	var member models.ChatGroupMember
	require.NoError(t, env.db.Where("group_id = ? AND user_id = ?", group.ID, tenant.ID).First(&member).Error)
	require.Equal(t, models.RoleTenant, member.Role)
}

func TestAuthHandler_RegisterTenant_UnknownQRCode(t *testing.T) {
	env := setupTestEnv(t)

	payload := map[string]string{
		"qr_code":   "no-such-token",
		"full_name": "Rahul Nair",
		"phone":     "900000002",
		"password":  "supersecret",
	}

	w := env.doJSON(t, http.MethodPost, "/auth/tenants/register", payload)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthHandler_RegisterTenant_FullProperty(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.createOwner(t, "900000001")
	property := env.createProperty(t, owner.ID, 1, 25000)

	first := map[string]string{
		"qr_code":   property.QRCode,
		"full_name": "First Tenant",
		"phone":     "900000002",
		"password":  "supersecret",
	}
	w := env.doJSON(t, http.MethodPost, "/auth/tenants/register", first)
	require.Equal(t, http.StatusCreated, w.Code)

	second := map[string]string{
		"qr_code":   property.QRCode,
		"full_name": "Second Tenant",
		"phone":     "900000003",
		"password":  "supersecret",
	}
	w = env.doJSON(t, http.MethodPost, "/auth/tenants/register", second)
	require.Equal(t, http.StatusConflict, w.Code)

	// The failed registration leaves the counter untouched.
	var stored models.Property
	require.NoError(t, env.db.First(&stored, "id = ?", property.ID).Error)
	require.Equal(t, 1, stored.OccupiedCount)

	var users int64
	require.NoError(t, env.db.Model(&models.User{}).Where("phone = ?", "900000003").Count(&users).Error)
	require.Zero(t, users)
}

func TestAuthHandler_RegisterTenant_DuplicatePhone(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.createOwner(t, "900000001")
	property := env.createProperty(t, owner.ID, 3, 25000)

	payload := map[string]string{
		"qr_code":   property.QRCode,
		"full_name": "Tenant",
		"phone":     "900000001", // the owner's phone
		"password":  "supersecret",
	}

	w := env.doJSON(t, http.MethodPost, "/auth/tenants/register", payload)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.createOwner(t, "900000001")

	payload := map[string]string{
		"identifier": "900000001",
		"password":   "supersecret",
		"role":       "owner",
	}

	w := env.doJSON(t, http.MethodPost, "/auth/login", payload)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.AuthResponseDTO
	decodeJSON(t, w, &response)
	require.Equal(t, owner.ID, response.UserID)
	require.Equal(t, models.RoleOwner, response.Role)
	require.NotEmpty(t, response.AccessToken)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.createOwner(t, "900000001")

	payload := map[string]string{
		"identifier": "900000001",
		"password":   "wrong-password",
		"role":       "owner",
	}

	w := env.doJSON(t, http.MethodPost, "/auth/login", payload)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_RoleMismatch(t *testing.T) {
	env := setupTestEnv(t)
	env.createOwner(t, "900000001")

	payload := map[string]string{
		"identifier": "900000001",
		"password":   "supersecret",
		"role":       "tenant",
	}

	w := env.doJSON(t, http.MethodPost, "/auth/login", payload)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_UnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	payload := map[string]string{
		"identifier": "nobody@example.com",
		"password":   "supersecret",
		"role":       "tenant",
	}

	w := env.doJSON(t, http.MethodPost, "/auth/login", payload)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
