package models

import "time"

type BillType string

const (
	BillTypeRent        BillType = "rent"
	BillTypeElectricity BillType = "electricity"
	BillTypeWater       BillType = "water"
)

// Payment is an immutable record of a paid bill.
type Payment struct {
	ID         string    `gorm:"type:varchar(64);primarykey" json:"id"`
	PropertyID string    `gorm:"type:varchar(64);not null;index" json:"property_id"`
	TenantID   string    `gorm:"type:varchar(64);not null;index" json:"tenant_id"`
	BillType   BillType  `gorm:"type:varchar(20);not null" json:"bill_type"`
	Amount     float64   `gorm:"not null" json:"amount"`
	PaidAt     time.Time `json:"paid_at"`
}
