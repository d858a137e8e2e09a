package services

import (
	"errors"
	"fmt"

	"github.com/rentory/rentory-api/internal/models"
	"github.com/rentory/rentory-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTenantNotFound = errors.New("tenant not found")
)

// TenantService provides the tenant-facing read views.
type TenantService struct {
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
}

// NewTenantService creates a new TenantService.
func NewTenantService(userRepo repository.UserRepository, propertyRepo repository.PropertyRepository) *TenantService {
	return &TenantService{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
	}
}

// Profile returns the tenant's profile fields.
func (s *TenantService) Profile(tenantID string) (*models.User, error) {
	tenant, err := s.userRepo.FindByID(tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}
	if tenant.Role != models.RoleTenant {
		return nil, ErrTenantNotFound
	}
	return tenant, nil
}

// TenantDashboard is the tenant's home view: the assigned property and what
// they owe its owner.
type TenantDashboard struct {
	Tenant     *models.User
	Property   *models.Property
	OwnerPhone string
	Rent       float64
}

// Dashboard resolves the tenant's assigned property. A tenant without an
// assignment, or whose assigned property row is missing, gets NotFound.
func (s *TenantService) Dashboard(tenantID string) (*TenantDashboard, error) {
	tenant, err := s.Profile(tenantID)
	if err != nil {
		return nil, err
	}

	if tenant.AssignedPropertyID == nil {
		return nil, ErrPropertyNotFound
	}

	property, err := s.propertyRepo.FindByID(*tenant.AssignedPropertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find assigned property: %w", err)
	}

	owner, err := s.userRepo.FindByID(property.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find property owner: %w", err)
	}

	return &TenantDashboard{
		Tenant:     tenant,
		Property:   property,
		OwnerPhone: owner.Phone,
		Rent:       property.Rent,
	}, nil
}
