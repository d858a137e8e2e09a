package models

import "time"

type BillStatus string

const (
	BillPaid BillStatus = "paid"
)

// Bill mirrors a Payment with an explicit status column. The system only
// ever writes paid bills; a Bill row exists for every Payment row.
type Bill struct {
	ID         string     `gorm:"type:varchar(64);primarykey" json:"id"`
	PropertyID string     `gorm:"type:varchar(64);not null;index" json:"property_id"`
	TenantID   string     `gorm:"type:varchar(64);not null" json:"tenant_id"`
	BillType   BillType   `gorm:"type:varchar(20);not null" json:"bill_type"`
	Amount     float64    `gorm:"not null" json:"amount"`
	Status     BillStatus `gorm:"type:varchar(20);not null;default:'paid'" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}
