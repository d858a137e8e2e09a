package dto

import (
	"time"

	"github.com/rentory/rentory-api/internal/models"
	"github.com/rentory/rentory-api/internal/repository"
	"github.com/rentory/rentory-api/internal/utils"
)

// PropertyCardDTO is the compact property projection used in lists and
// dashboards. QRImageURL points at the external render endpoint.
type PropertyCardDTO struct {
	ID            string  `json:"id"`
	OwnerID       string  `json:"owner_id"`
	Location      string  `json:"location"`
	Name          string  `json:"name"`
	UnitType      string  `json:"unit_type"`
	Capacity      int     `json:"capacity"`
	OccupiedCount int     `json:"occupied_count"`
	Rent          float64 `json:"rent"`
	ImageURL      string  `json:"image_url,omitempty"`
	QRCode        string  `json:"qr_code"`
	QRImageURL    string  `json:"qr_image_url"`
}

// TenantLinkDTO is a tenancy record with the tenant's name and phone joined in.
type TenantLinkDTO struct {
	ID          string               `json:"id"`
	TenantID    string               `json:"tenant_id"`
	TenantName  string               `json:"tenant_name"`
	TenantPhone string               `json:"tenant_phone"`
	Status      models.TenancyStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

// JoinRequestDTO represents a newly created join request.
type JoinRequestDTO struct {
	ID         string               `json:"id"`
	PropertyID string               `json:"property_id"`
	TenantID   string               `json:"tenant_id"`
	Status     models.TenancyStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}

// PropertyDetailDTO is the full property view for owners.
type PropertyDetailDTO struct {
	PropertyCardDTO
	Description       string                 `json:"description,omitempty"`
	CurrentBillAmount float64                `json:"current_bill_amount"`
	WaterBillStatus   models.WaterBillStatus `json:"water_bill_status"`
	OwnerPhone        string                 `json:"owner_phone"`
	ChatGroupName     string                 `json:"chat_group_name,omitempty"`
	Tenants           []TenantLinkDTO        `json:"tenants"`
	Bills             []PaymentDTO           `json:"bills"`
}

// WaterBillStatusDTO is returned by the water bill status update.
type WaterBillStatusDTO struct {
	PropertyID      string                 `json:"property_id"`
	WaterBillStatus models.WaterBillStatus `json:"water_bill_status"`
}

// LocationCountDTO is one row of the per-location property breakdown.
type LocationCountDTO struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

// OwnerAnalyticsDTO summarizes an owner's portfolio.
type OwnerAnalyticsDTO struct {
	Locations       []LocationCountDTO `json:"locations"`
	TotalProperties int64              `json:"total_properties"`
	ActiveTenants   int64              `json:"active_tenants"`
}

// Conversion functions

// ToPropertyCardDTO converts a Property model to its card projection
func ToPropertyCardDTO(property models.Property) PropertyCardDTO {
	return PropertyCardDTO{
		ID:            property.ID,
		OwnerID:       property.OwnerID,
		Location:      property.Location,
		Name:          property.Name,
		UnitType:      property.UnitType,
		Capacity:      property.Capacity,
		OccupiedCount: property.OccupiedCount,
		Rent:          property.Rent,
		ImageURL:      property.ImageURL,
		QRCode:        property.QRCode,
		QRImageURL:    utils.QRImageURL(property.QRCode),
	}
}

// ToPropertyCardDTOs converts a slice of properties to card projections
func ToPropertyCardDTOs(properties []models.Property) []PropertyCardDTO {
	cards := make([]PropertyCardDTO, len(properties))
	for i, property := range properties {
		cards[i] = ToPropertyCardDTO(property)
	}
	return cards
}

// ToTenantLinkDTO converts a tenancy record with preloaded tenant
func ToTenantLinkDTO(link models.PropertyTenant) TenantLinkDTO {
	return TenantLinkDTO{
		ID:          link.ID,
		TenantID:    link.TenantID,
		TenantName:  link.Tenant.FullName,
		TenantPhone: link.Tenant.Phone,
		Status:      link.Status,
		CreatedAt:   link.CreatedAt,
	}
}

// ToJoinRequestDTO converts a tenancy record to a join request response
func ToJoinRequestDTO(link models.PropertyTenant) JoinRequestDTO {
	return JoinRequestDTO{
		ID:         link.ID,
		PropertyID: link.PropertyID,
		TenantID:   link.TenantID,
		Status:     link.Status,
		CreatedAt:  link.CreatedAt,
	}
}

// ToPropertyDetailDTO assembles the full property view
func ToPropertyDetailDTO(property models.Property, owner models.User, chatGroupName string, links []models.PropertyTenant, payments []models.Payment) PropertyDetailDTO {
	tenants := make([]TenantLinkDTO, len(links))
	for i, link := range links {
		tenants[i] = ToTenantLinkDTO(link)
	}

	bills := make([]PaymentDTO, len(payments))
	for i, payment := range payments {
		bills[i] = ToPaymentDTO(payment)
	}

	return PropertyDetailDTO{
		PropertyCardDTO:   ToPropertyCardDTO(property),
		Description:       property.Description,
		CurrentBillAmount: property.CurrentBillAmount,
		WaterBillStatus:   property.WaterBillStatus,
		OwnerPhone:        owner.Phone,
		ChatGroupName:     chatGroupName,
		Tenants:           tenants,
		Bills:             bills,
	}
}

// ToOwnerAnalyticsDTO converts the analytics aggregation to its response shape
func ToOwnerAnalyticsDTO(locations []repository.LocationCount, totalProperties, activeTenants int64) OwnerAnalyticsDTO {
	locationDTOs := make([]LocationCountDTO, len(locations))
	for i, loc := range locations {
		locationDTOs[i] = LocationCountDTO{Location: loc.Location, Count: loc.Count}
	}

	return OwnerAnalyticsDTO{
		Locations:       locationDTOs,
		TotalProperties: totalProperties,
		ActiveTenants:   activeTenants,
	}
}
