package repository

import (
	"errors"
	"fmt"

	"github.com/rentory/rentory-api/internal/models"
	"gorm.io/gorm"
)

// GormBillingRepository is a GORM implementation of BillingRepository
type GormBillingRepository struct {
	db *gorm.DB
}

var (
	// ErrCreatePayment is returned when inserting the payment fails inside the billing transaction.
	ErrCreatePayment = errors.New("billing repository: create payment failed")
	// ErrCreateBill is returned when inserting the paired bill fails inside the billing transaction.
	ErrCreateBill = errors.New("billing repository: create bill failed")
)

// NewBillingRepository creates a new BillingRepository
func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &GormBillingRepository{db: db}
}

// CreatePaymentWithBill inserts a payment and its paired paid bill
// atomically. Either both rows land or neither does.
func (r *GormBillingRepository) CreatePaymentWithBill(payment *models.Payment, bill *models.Bill) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreatePayment, err)
		}

		if err := tx.Create(bill).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateBill, err)
		}

		return nil
	})
}

// ListPaymentsByProperty lists all payments recorded for a property
func (r *GormBillingRepository) ListPaymentsByProperty(propertyID string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Where("property_id = ?", propertyID).
		Order("paid_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
