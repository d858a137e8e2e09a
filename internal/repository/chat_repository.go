package repository

import (
	"github.com/rentory/rentory-api/internal/models"
	"gorm.io/gorm"
)

// GormChatRepository is a GORM implementation of ChatRepository
type GormChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &GormChatRepository{db: db}
}

// FindGroupByPropertyID finds the chat group attached to a property
func (r *GormChatRepository) FindGroupByPropertyID(propertyID string) (*models.ChatGroup, error) {
	var group models.ChatGroup
	if err := r.db.Where("property_id = ?", propertyID).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// FindMember finds a specific group member
func (r *GormChatRepository) FindMember(groupID, userID string) (*models.ChatGroupMember, error) {
	var member models.ChatGroupMember
	if err := r.db.Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// CreateMessage inserts a chat message
func (r *GormChatRepository) CreateMessage(msg *models.ChatMessage) error {
	return r.db.Create(msg).Error
}

// ListMessages lists a group's messages ordered by creation time ascending
func (r *GormChatRepository) ListMessages(groupID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	if err := r.db.Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
