package models

type WaterBillStatus string

const (
	WaterBillPaid   WaterBillStatus = "paid"
	WaterBillUnpaid WaterBillStatus = "unpaid"
)

type Property struct {
	ID                string          `gorm:"type:varchar(64);primarykey" json:"id"`
	OwnerID           string          `gorm:"type:varchar(64);not null;index" json:"owner_id"`
	Location          string          `gorm:"type:varchar(120);not null" json:"location"`
	Name              string          `gorm:"type:varchar(120);not null" json:"name"`
	UnitType          string          `gorm:"type:varchar(40);not null" json:"unit_type"`
	Description       string          `gorm:"type:text" json:"description,omitempty"`
	ImageURL          string          `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	QRCode            string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"qr_code"`
	Capacity          int             `gorm:"not null" json:"capacity"`
	OccupiedCount     int             `gorm:"not null;default:0" json:"occupied_count"`
	Rent              float64         `gorm:"not null" json:"rent"`
	CurrentBillAmount float64         `gorm:"not null;default:0" json:"current_bill_amount"`
	WaterBillStatus   WaterBillStatus `gorm:"type:varchar(20);not null;default:'unpaid'" json:"water_bill_status"`

	// Relations
	Owner   User             `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Tenants []PropertyTenant `gorm:"foreignKey:PropertyID" json:"tenants,omitempty"`
}
