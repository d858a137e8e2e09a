package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rentory/rentory-api/internal/models"
	"github.com/rentory/rentory-api/internal/repository"
	"gorm.io/gorm"
)

// MaintenanceService records maintenance tickets. Tickets open in status
// "open" and no transition exists elsewhere in the system.
type MaintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	propertyRepo    repository.PropertyRepository
	userRepo        repository.UserRepository
}

// NewMaintenanceService creates a new MaintenanceService.
func NewMaintenanceService(maintenanceRepo repository.MaintenanceRepository, propertyRepo repository.PropertyRepository, userRepo repository.UserRepository) *MaintenanceService {
	return &MaintenanceService{
		maintenanceRepo: maintenanceRepo,
		propertyRepo:    propertyRepo,
		userRepo:        userRepo,
	}
}

// OpenTicketInput represents a maintenance issue reported against a property.
type OpenTicketInput struct {
	PropertyID       string
	TenantID         string
	IssueTitle       string
	IssueDescription string
}

// OpenTicket stores a new ticket. An unknown tenant ID is upserted as a
// placeholder tenant record.
func (s *MaintenanceService) OpenTicket(input OpenTicketInput) (*models.MaintenanceTicket, error) {
	if _, err := s.propertyRepo.FindByID(input.PropertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	tenant, err := s.userRepo.EnsureTenant(input.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant: %w", err)
	}

	ticket := &models.MaintenanceTicket{
		ID:               uuid.NewString(),
		PropertyID:       input.PropertyID,
		TenantID:         tenant.ID,
		IssueTitle:       strings.TrimSpace(input.IssueTitle),
		IssueDescription: input.IssueDescription,
		Status:           models.TicketOpen,
	}

	if err := s.maintenanceRepo.Create(ticket); err != nil {
		return nil, fmt.Errorf("failed to create maintenance ticket: %w", err)
	}

	return ticket, nil
}
