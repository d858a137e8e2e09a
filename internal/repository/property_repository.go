package repository

import (
	"errors"
	"fmt"

	"github.com/rentory/rentory-api/internal/models"
	"gorm.io/gorm"
)

// GormPropertyRepository is a GORM implementation of PropertyRepository
type GormPropertyRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateProperty is returned when creating a property fails inside the creation transaction.
	ErrCreateProperty = errors.New("property repository: create property failed")
	// ErrCreateChatGroup is returned when creating the chat group fails inside the creation transaction.
	ErrCreateChatGroup = errors.New("property repository: create chat group failed")
)

// NewPropertyRepository creates a new PropertyRepository
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &GormPropertyRepository{db: db}
}

// CreateWithChatGroup creates a property, its chat group, and the owner's
// membership atomically.
func (r *GormPropertyRepository) CreateWithChatGroup(property *models.Property, group *models.ChatGroup, member *models.ChatGroupMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(property).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateProperty, err)
		}

		group.PropertyID = property.ID
		if err := tx.Create(group).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateChatGroup, err)
		}

		member.GroupID = group.ID
		if err := tx.Create(member).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateChatMember, err)
		}

		return nil
	})
}

// FindByID finds a property by ID
func (r *GormPropertyRepository) FindByID(id string) (*models.Property, error) {
	var property models.Property
	if err := r.db.First(&property, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// FindByQRCode finds a property by its QR token
func (r *GormPropertyRepository) FindByQRCode(code string) (*models.Property, error) {
	var property models.Property
	if err := r.db.Where("qr_code = ?", code).First(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// ListByOwner lists all properties belonging to an owner
func (r *GormPropertyRepository) ListByOwner(ownerID string) ([]models.Property, error) {
	var properties []models.Property
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// ListTenantLinks lists a property's active tenancy records with tenants
// preloaded. Pending join requests are not occupants and stay hidden.
func (r *GormPropertyRepository) ListTenantLinks(propertyID string) ([]models.PropertyTenant, error) {
	var links []models.PropertyTenant
	if err := r.db.Preload("Tenant").
		Where("property_id = ? AND status = ?", propertyID, models.TenancyActive).
		Order("created_at ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// AddTenantLink inserts a tenancy record
func (r *GormPropertyRepository) AddTenantLink(link *models.PropertyTenant) error {
	return r.db.Create(link).Error
}

// UpdateWaterBillStatus overwrites the water bill status
func (r *GormPropertyRepository) UpdateWaterBillStatus(id string, status models.WaterBillStatus) error {
	return r.db.Model(&models.Property{}).
		Where("id = ?", id).
		UpdateColumn("water_bill_status", status).Error
}

// CountByLocation counts an owner's properties grouped by location
func (r *GormPropertyRepository) CountByLocation(ownerID string) ([]LocationCount, error) {
	var counts []LocationCount
	if err := r.db.Model(&models.Property{}).
		Select("location, COUNT(*) AS count").
		Where("owner_id = ?", ownerID).
		Group("location").
		Order("location ASC").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// CountActiveTenants counts active tenancy links across an owner's properties
func (r *GormPropertyRepository) CountActiveTenants(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.PropertyTenant{}).
		Joins("JOIN properties ON properties.id = property_tenants.property_id").
		Where("properties.owner_id = ? AND property_tenants.status = ?", ownerID, models.TenancyActive).
		Count(&count).Error
	return count, err
}
