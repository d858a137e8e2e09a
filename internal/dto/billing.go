package dto

import (
	"time"

	"github.com/rentory/rentory-api/internal/models"
)

// PaymentDTO represents a recorded payment in API responses
type PaymentDTO struct {
	ID         string          `json:"id"`
	PropertyID string          `json:"property_id"`
	TenantID   string          `json:"tenant_id"`
	BillType   models.BillType `json:"bill_type"`
	Amount     float64         `json:"amount"`
	PaidAt     time.Time       `json:"paid_at"`
}

// ToPaymentDTO converts a Payment model to its response shape
func ToPaymentDTO(payment models.Payment) PaymentDTO {
	return PaymentDTO{
		ID:         payment.ID,
		PropertyID: payment.PropertyID,
		TenantID:   payment.TenantID,
		BillType:   payment.BillType,
		Amount:     payment.Amount,
		PaidAt:     payment.PaidAt,
	}
}
