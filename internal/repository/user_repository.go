package repository

import (
	"errors"
	"fmt"

	"github.com/rentory/rentory-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrPropertyFull is returned when the occupancy increment finds no spare capacity.
	ErrPropertyFull = errors.New("user repository: property is at capacity")
	// ErrCreateUser is returned when creating a user fails inside the registration transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrCreateTenancy is returned when creating a tenancy link fails inside the registration transaction.
	ErrCreateTenancy = errors.New("user repository: create tenancy link failed")
	// ErrCreateChatMember is returned when creating a chat membership fails inside the registration transaction.
	ErrCreateChatMember = errors.New("user repository: create chat member failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// RegisterTenant creates a tenant, the active tenancy link, and the chat
// membership atomically. The occupancy increment is a conditional update so
// that two concurrent registrations cannot both pass the capacity guard.
func (r *GormUserRepository) RegisterTenant(user *models.User, link *models.PropertyTenant, member *models.ChatGroupMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Property{}).
			Where("id = ? AND occupied_count < capacity", link.PropertyID).
			UpdateColumn("occupied_count", gorm.Expr("occupied_count + ?", 1))
		if res.Error != nil {
			return fmt.Errorf("failed to increment occupancy: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrPropertyFull
		}

		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		link.TenantID = user.ID
		if err := tx.Create(link).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateTenancy, err)
		}

		if member != nil {
			member.UserID = user.ID
			if err := tx.Create(member).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCreateChatMember, err)
			}
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByPhone finds a user by phone number
func (r *GormUserRepository) FindByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIdentifier finds a user by phone or email
func (r *GormUserRepository) FindByIdentifier(identifier string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("phone = ? OR email = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureTenant returns the user with the given ID, creating a placeholder
// tenant when none exists. The placeholder phone uses the reserved
// "unverified:" form so it cannot collide with a registered number.
func (r *GormUserRepository) EnsureTenant(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		ID:       id,
		Role:     models.RoleTenant,
		FullName: "Unverified Tenant",
		Phone:    "unverified:" + id,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateUser, err)
	}
	return &user, nil
}
