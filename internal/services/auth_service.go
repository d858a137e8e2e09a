package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rentory/rentory-api/internal/models"
	"github.com/rentory/rentory-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPhoneTaken           = errors.New("phone number already registered")
	ErrInvalidCredentials   = errors.New("invalid identifier or password")
	ErrPropertyFull         = errors.New("property is at full capacity")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// AuthService handles signup, tenant self-registration, and login.
//
// Authentication itself is a placeholder: successful calls return an opaque
// demo token that no endpoint ever verifies.
type AuthService struct {
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
	chatRepo     repository.ChatRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, propertyRepo repository.PropertyRepository, chatRepo repository.ChatRepository) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		chatRepo:     chatRepo,
	}
}

// AuthResult is the outcome of a successful signup, registration, or login.
type AuthResult struct {
	User        *models.User
	AccessToken string
}

// SignupOwnerInput represents the required information to register an owner.
type SignupOwnerInput struct {
	FullName string
	Phone    string
	Email    string
	Password string
}

// SignupOwner creates a new owner account.
func (s *AuthService) SignupOwner(input SignupOwnerInput) (*AuthResult, error) {
	if err := s.checkPhoneAvailable(input.Phone); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Role:         models.RoleOwner,
		FullName:     strings.TrimSpace(input.FullName),
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateUser, err)
	}

	return &AuthResult{User: user, AccessToken: newAccessToken()}, nil
}

// RegisterTenantInput represents a tenant self-registration via QR token.
type RegisterTenantInput struct {
	QRCode    string
	FullName  string
	Phone     string
	Email     string
	Password  string
	Age       *int
	Documents string
}

// RegisterTenant onboards a tenant against the property identified by the QR
// token. The user, the active tenancy link, the occupancy increment, and the
// chat membership land in one transaction.
func (s *AuthService) RegisterTenant(input RegisterTenantInput) (*AuthResult, *models.Property, error) {
	property, err := s.propertyRepo.FindByQRCode(input.QRCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPropertyNotFound
		}
		return nil, nil, fmt.Errorf("failed to find property: %w", err)
	}

	// Advisory only; the conditional update inside the transaction is the
	// authoritative guard.
	if property.OccupiedCount >= property.Capacity {
		return nil, nil, ErrPropertyFull
	}

	if err := s.checkPhoneAvailable(input.Phone); err != nil {
		return nil, nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, ErrFailedToHashPassword
	}

	assignedID := property.ID
	user := &models.User{
		ID:                 uuid.NewString(),
		Role:               models.RoleTenant,
		FullName:           strings.TrimSpace(input.FullName),
		Phone:              input.Phone,
		Email:              input.Email,
		PasswordHash:       string(hashedPassword),
		Age:                input.Age,
		Documents:          input.Documents,
		AssignedPropertyID: &assignedID,
	}

	link := &models.PropertyTenant{
		ID:         uuid.NewString(),
		PropertyID: property.ID,
		Status:     models.TenancyActive,
	}

	var member *models.ChatGroupMember
	group, err := s.chatRepo.FindGroupByPropertyID(property.ID)
	switch {
	case err == nil:
		member = &models.ChatGroupMember{
			ID:      uuid.NewString(),
			GroupID: group.ID,
			Role:    models.RoleTenant,
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Property without a chat group; registration proceeds without a membership.
	default:
		return nil, nil, fmt.Errorf("failed to find chat group: %w", err)
	}

	if err := s.userRepo.RegisterTenant(user, link, member); err != nil {
		if errors.Is(err, repository.ErrPropertyFull) {
			return nil, nil, ErrPropertyFull
		}
		return nil, nil, fmt.Errorf("failed to complete registration: %w", err)
	}

	return &AuthResult{User: user, AccessToken: newAccessToken()}, property, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Identifier string
	Password   string
	Role       models.UserRole
}

// Login verifies credentials against the stored hash and expected role.
func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.FindByIdentifier(input.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.Role != input.Role {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &AuthResult{User: user, AccessToken: newAccessToken()}, nil
}

func (s *AuthService) checkPhoneAvailable(phone string) error {
	if _, err := s.userRepo.FindByPhone(phone); err == nil {
		return ErrPhoneTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check phone: %w", err)
	}
	return nil
}

func newAccessToken() string {
	return "demo-token-" + uuid.NewString()
}
