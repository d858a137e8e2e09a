package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rentory/rentory-api/internal/models"
	"github.com/rentory/rentory-api/internal/repository"
	"gorm.io/gorm"
)

// NotificationService fans owner broadcasts out as one notification row per
// targeted property. Delivery is out of scope; rows are only recorded.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	propertyRepo     repository.PropertyRepository
	userRepo         repository.UserRepository
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository, propertyRepo repository.PropertyRepository, userRepo repository.UserRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		propertyRepo:     propertyRepo,
		userRepo:         userRepo,
	}
}

// BroadcastInput represents an owner broadcast. An empty PropertyIDs list
// targets every property the owner has.
type BroadcastInput struct {
	OwnerID     string
	Title       string
	Body        string
	PropertyIDs []string
}

// Broadcast inserts the notification rows and returns their IDs.
func (s *NotificationService) Broadcast(input BroadcastInput) ([]string, error) {
	owner, err := s.userRepo.FindByID(input.OwnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to find owner: %w", err)
	}
	if owner.Role != models.RoleOwner {
		return nil, ErrOwnerNotFound
	}

	targets := input.PropertyIDs
	if len(targets) == 0 {
		properties, err := s.propertyRepo.ListByOwner(owner.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list owner properties: %w", err)
		}
		for _, p := range properties {
			targets = append(targets, p.ID)
		}
	}

	notifications := make([]models.Notification, len(targets))
	ids := make([]string, len(targets))
	for i, propertyID := range targets {
		pid := propertyID
		notifications[i] = models.Notification{
			ID:         uuid.NewString(),
			OwnerID:    owner.ID,
			PropertyID: &pid,
			Title:      input.Title,
			Body:       input.Body,
		}
		ids[i] = notifications[i].ID
	}

	if err := s.notificationRepo.CreateBatch(notifications); err != nil {
		return nil, fmt.Errorf("failed to create notifications: %w", err)
	}

	return ids, nil
}
