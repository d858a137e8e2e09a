package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rentory/rentory-api/internal/models"
	"github.com/rentory/rentory-api/internal/repository"
	"gorm.io/gorm"
)

// BillingService records payments. Every payment is mirrored by a paid bill
// row in the same transaction.
type BillingService struct {
	billingRepo  repository.BillingRepository
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
}

// NewBillingService creates a new BillingService.
func NewBillingService(billingRepo repository.BillingRepository, propertyRepo repository.PropertyRepository, userRepo repository.UserRepository) *BillingService {
	return &BillingService{
		billingRepo:  billingRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
	}
}

// RecordPaymentInput represents a paid bill reported by a tenant.
type RecordPaymentInput struct {
	PropertyID string
	TenantID   string
	BillType   models.BillType
	Amount     float64
}

// RecordPayment stores the payment and its paired bill. An unknown tenant ID
// is upserted as a placeholder tenant record (unverified reporter identity).
func (s *BillingService) RecordPayment(input RecordPaymentInput) (*models.Payment, error) {
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

	paidAt := time.Now().UTC()
	payment := &models.Payment{
		ID:         uuid.NewString(),
		PropertyID: input.PropertyID,
		TenantID:   tenant.ID,
		BillType:   input.BillType,
		Amount:     input.Amount,
		PaidAt:     paidAt,
	}

	bill := &models.Bill{
		ID:         uuid.NewString(),
		PropertyID: input.PropertyID,
		TenantID:   tenant.ID,
		BillType:   input.BillType,
		Amount:     input.Amount,
		Status:     models.BillPaid,
	}

	if err := s.billingRepo.CreatePaymentWithBill(payment, bill); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	return payment, nil
}
