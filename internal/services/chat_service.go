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

var (
	ErrChatGroupNotFound = errors.New("chat group not found")
	ErrSenderNotFound    = errors.New("sender not found")
	ErrNotGroupMember    = errors.New("sender is not a member of this chat group")
	ErrEmptyMessage      = errors.New("message requires text or an image")
)

// ChatService provides business logic for the per-property chat group.
type ChatService struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

// NewChatService creates a new ChatService.
func NewChatService(chatRepo repository.ChatRepository, userRepo repository.UserRepository) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		userRepo: userRepo,
	}
}

// ListMessages returns a property's chat history in posting order.
func (s *ChatService) ListMessages(propertyID string) ([]models.ChatMessage, error) {
	group, err := s.findGroup(propertyID)
	if err != nil {
		return nil, err
	}

	messages, err := s.chatRepo.ListMessages(group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// PostMessageInput represents a message posted to a property's chat group.
type PostMessageInput struct {
	PropertyID string
	SenderID   string
	Text       string
	ImageURL   string
}

// PostMessage stores a message after checking the sender's membership. The
// sender's name is copied onto the message at post time; later profile
// changes leave old messages as they were.
func (s *ChatService) PostMessage(input PostMessageInput) (*models.ChatMessage, error) {
	group, err := s.findGroup(input.PropertyID)
	if err != nil {
		return nil, err
	}

	sender, err := s.userRepo.FindByID(input.SenderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSenderNotFound
		}
		return nil, fmt.Errorf("failed to find sender: %w", err)
	}

	if _, err := s.chatRepo.FindMember(group.ID, sender.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotGroupMember
		}
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	text := strings.TrimSpace(input.Text)
	imageURL := strings.TrimSpace(input.ImageURL)
	if text == "" && imageURL == "" {
		return nil, ErrEmptyMessage
	}

	msg := &models.ChatMessage{
		ID:         uuid.NewString(),
		GroupID:    group.ID,
		SenderID:   sender.ID,
		SenderName: sender.FullName,
		Text:       text,
		ImageURL:   imageURL,
	}

	if err := s.chatRepo.CreateMessage(msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return msg, nil
}

func (s *ChatService) findGroup(propertyID string) (*models.ChatGroup, error) {
	group, err := s.chatRepo.FindGroupByPropertyID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatGroupNotFound
		}
		return nil, fmt.Errorf("failed to find chat group: %w", err)
	}
	return group, nil
}
