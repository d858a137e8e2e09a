package models

import "time"

type TenancyStatus string

const (
	TenancyPending TenancyStatus = "pending"
	TenancyActive  TenancyStatus = "active"
)

// PropertyTenant links a tenant user to a property. A pending record is an
// unapproved join request; an active record is an occupant counted against
// the property's capacity. The same tenant-property pair may appear more
// than once.
type PropertyTenant struct {
	ID         string        `gorm:"type:varchar(64);primarykey" json:"id"`
	PropertyID string        `gorm:"type:varchar(64);not null;index" json:"property_id"`
	TenantID   string        `gorm:"type:varchar(64);not null;index" json:"tenant_id"`
	Status     TenancyStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`

	// Relations
	Property Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Tenant   User     `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}
