package dto

import (
	"time"

	"github.com/rentory/rentory-api/internal/models"
)

// TenantDTO represents a tenant profile in API responses
type TenantDTO struct {
	ID                 string    `json:"id"`
	FullName           string    `json:"full_name"`
	Phone              string    `json:"phone"`
	Email              string    `json:"email,omitempty"`
	Age                *int      `json:"age,omitempty"`
	Documents          string    `json:"documents,omitempty"`
	AssignedPropertyID *string   `json:"assigned_property_id"`
	CreatedAt          time.Time `json:"created_at"`
}

// TenantDashboardDTO is the tenant home view
type TenantDashboardDTO struct {
	Property   PropertyCardDTO `json:"property"`
	OwnerPhone string          `json:"owner_phone"`
	Rent       float64         `json:"rent"`
}

// ToTenantDTO converts a User model to its tenant profile projection
func ToTenantDTO(user models.User) TenantDTO {
	return TenantDTO{
		ID:                 user.ID,
		FullName:           user.FullName,
		Phone:              user.Phone,
		Email:              user.Email,
		Age:                user.Age,
		Documents:          user.Documents,
		AssignedPropertyID: user.AssignedPropertyID,
		CreatedAt:          user.CreatedAt,
	}
}

// ToTenantDashboardDTO assembles the tenant dashboard view
func ToTenantDashboardDTO(property models.Property, ownerPhone string, rent float64) TenantDashboardDTO {
	return TenantDashboardDTO{
		Property:   ToPropertyCardDTO(property),
		OwnerPhone: ownerPhone,
		Rent:       rent,
	}
}
