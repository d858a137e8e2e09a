package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rentory/rentory-api/internal/models"
	"github.com/rentory/rentory-api/internal/repository"
	"github.com/rentory/rentory-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrOwnerNotFound           = errors.New("owner not found")
	ErrPropertyNotFound        = errors.New("property not found")
	ErrQRTokenGenerationFailed = errors.New("failed to generate QR token")
	ErrFailedToCreateProperty  = errors.New("failed to create property")
)

// PropertyService provides business logic for the property catalog.
type PropertyService struct {
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	billingRepo  repository.BillingRepository
	chatRepo     repository.ChatRepository
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(propertyRepo repository.PropertyRepository, userRepo repository.UserRepository, billingRepo repository.BillingRepository, chatRepo repository.ChatRepository) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		billingRepo:  billingRepo,
		chatRepo:     chatRepo,
	}
}

// CreatePropertyInput represents parameters to list a new property.
type CreatePropertyInput struct {
	Location    string
	Name        string
	UnitType    string
	Description string
	ImageURL    string
	Capacity    int
	Rent        float64
}

// Create lists a new property for an owner. The property starts empty with
// its rent as the current bill amount, and gets a chat group with the owner
// as first member.
func (s *PropertyService) Create(ownerID string, input CreatePropertyInput) (*models.Property, error) {
	owner, err := s.findOwner(ownerID)
	if err != nil {
		return nil, err
	}

	qrToken, err := utils.GenerateQRToken()
	if err != nil {
		return nil, ErrQRTokenGenerationFailed
	}

	property := &models.Property{
		ID:                uuid.NewString(),
		OwnerID:           owner.ID,
		Location:          strings.TrimSpace(input.Location),
		Name:              strings.TrimSpace(input.Name),
		UnitType:          input.UnitType,
		Description:       input.Description,
		ImageURL:          input.ImageURL,
		QRCode:            qrToken,
		Capacity:          input.Capacity,
		OccupiedCount:     0,
		Rent:              input.Rent,
		CurrentBillAmount: input.Rent,
		WaterBillStatus:   models.WaterBillUnpaid,
	}

	group := &models.ChatGroup{
		ID:   uuid.NewString(),
		Name: property.Name + " Residents",
	}

	member := &models.ChatGroupMember{
		ID:     uuid.NewString(),
		UserID: owner.ID,
		Role:   models.RoleOwner,
	}

	if err := s.propertyRepo.CreateWithChatGroup(property, group, member); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateProperty, err)
	}

	return property, nil
}

// ListForOwner returns all properties belonging to an owner.
func (s *PropertyService) ListForOwner(ownerID string) ([]models.Property, error) {
	if _, err := s.findOwner(ownerID); err != nil {
		return nil, err
	}

	properties, err := s.propertyRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

// PropertyDetail aggregates everything the property detail view shows.
type PropertyDetail struct {
	Property      *models.Property
	Owner         *models.User
	ChatGroupName string
	TenantLinks   []models.PropertyTenant
	Payments      []models.Payment
}

// Detail returns the property together with its owner, active tenancy
// records, chat group name, and payment history.
func (s *PropertyService) Detail(propertyID string) (*PropertyDetail, error) {
	property, err := s.propertyRepo.FindByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	owner, err := s.userRepo.FindByID(property.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find property owner: %w", err)
	}

	var groupName string
	group, err := s.chatRepo.FindGroupByPropertyID(property.ID)
	if err == nil {
		groupName = group.Name
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find chat group: %w", err)
	}

	links, err := s.propertyRepo.ListTenantLinks(property.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	payments, err := s.billingRepo.ListPaymentsByProperty(property.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &PropertyDetail{
		Property:      property,
		Owner:         owner,
		ChatGroupName: groupName,
		TenantLinks:   links,
		Payments:      payments,
	}, nil
}

// SetWaterBillStatus overwrites the water bill status and returns the
// updated property. The new value does not have to differ from the old one.
func (s *PropertyService) SetWaterBillStatus(propertyID string, status models.WaterBillStatus) (*models.Property, error) {
	property, err := s.propertyRepo.FindByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	if err := s.propertyRepo.UpdateWaterBillStatus(property.ID, status); err != nil {
		return nil, fmt.Errorf("failed to update water bill status: %w", err)
	}

	property.WaterBillStatus = status
	return property, nil
}

// OwnerAnalytics summarizes an owner's portfolio.
type OwnerAnalytics struct {
	Locations       []repository.LocationCount
	TotalProperties int64
	ActiveTenants   int64
}

// Analytics counts the owner's properties per location and the active
// tenancy links across all of them.
func (s *PropertyService) Analytics(ownerID string) (*OwnerAnalytics, error) {
	if _, err := s.findOwner(ownerID); err != nil {
		return nil, err
	}

	locations, err := s.propertyRepo.CountByLocation(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count properties by location: %w", err)
	}

	var total int64
	for _, loc := range locations {
		total += loc.Count
	}

	activeTenants, err := s.propertyRepo.CountActiveTenants(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active tenants: %w", err)
	}

	return &OwnerAnalytics{
		Locations:       locations,
		TotalProperties: total,
		ActiveTenants:   activeTenants,
	}, nil
}

// RequestJoin records a pending join request for a property. An unknown
// tenant ID is upserted as a placeholder tenant record; this deliberately
// accepts unverified identities. Duplicate requests are allowed and the
// occupancy counter is untouched.
func (s *PropertyService) RequestJoin(propertyID, tenantID string) (*models.PropertyTenant, error) {
	property, err := s.propertyRepo.FindByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	tenant, err := s.userRepo.EnsureTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant: %w", err)
	}

	link := &models.PropertyTenant{
		ID:         uuid.NewString(),
		PropertyID: property.ID,
		TenantID:   tenant.ID,
		Status:     models.TenancyPending,
	}

	if err := s.propertyRepo.AddTenantLink(link); err != nil {
		return nil, fmt.Errorf("failed to create join request: %w", err)
	}

	return link, nil
}

func (s *PropertyService) findOwner(ownerID string) (*models.User, error) {
	owner, err := s.userRepo.FindByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to find owner: %w", err)
	}
	if owner.Role != models.RoleOwner {
		return nil, ErrOwnerNotFound
	}
	return owner, nil
}
