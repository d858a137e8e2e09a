package dto

import "github.com/rentory/rentory-api/internal/models"

// AuthResponseDTO is returned by signup, registration, and login. The access
// token is a placeholder string; nothing in the API verifies it.
type AuthResponseDTO struct {
	AccessToken string          `json:"access_token"`
	Role        models.UserRole `json:"role"`
	UserID      string          `json:"user_id"`
}

// TenantRegistrationDTO extends the auth response with the joined property.
type TenantRegistrationDTO struct {
	AuthResponseDTO
	PropertyID string `json:"property_id"`
}
