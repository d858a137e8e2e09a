package repository

import (
	"github.com/rentory/rentory-api/internal/models"
	"gorm.io/gorm"
)

// GormMaintenanceRepository is a GORM implementation of MaintenanceRepository
type GormMaintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new MaintenanceRepository
func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &GormMaintenanceRepository{db: db}
}

// Create inserts a maintenance ticket
func (r *GormMaintenanceRepository) Create(ticket *models.MaintenanceTicket) error {
	return r.db.Create(ticket).Error
}
