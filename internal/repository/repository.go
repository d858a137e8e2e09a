package repository

import (
	"github.com/rentory/rentory-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// RegisterTenant creates a tenant user, the active tenancy link, and the
	// chat membership while incrementing the property's occupancy, all
	// within a single transaction. member may be nil when the property has
	// no chat group.
	RegisterTenant(user *models.User, link *models.PropertyTenant, member *models.ChatGroupMember) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByPhone finds a user by phone number
	FindByPhone(phone string) (*models.User, error)

	// FindByIdentifier finds a user by phone or email
	FindByIdentifier(identifier string) (*models.User, error)

	// EnsureTenant returns the user with the given ID, creating a
	// placeholder tenant record when none exists
	EnsureTenant(id string) (*models.User, error)
}

// PropertyRepository defines the interface for property data access
type PropertyRepository interface {
	// CreateWithChatGroup creates a property, its chat group, and the
	// owner's membership within a single transaction
	CreateWithChatGroup(property *models.Property, group *models.ChatGroup, member *models.ChatGroupMember) error

	// FindByID finds a property by ID
	FindByID(id string) (*models.Property, error)

	// FindByQRCode finds a property by its QR token
	FindByQRCode(code string) (*models.Property, error)

	// ListByOwner lists all properties belonging to an owner
	ListByOwner(ownerID string) ([]models.Property, error)

	// ListTenantLinks lists the active tenancy records of a property with
	// the tenant users preloaded
	ListTenantLinks(propertyID string) ([]models.PropertyTenant, error)

	// AddTenantLink inserts a tenancy record
	AddTenantLink(link *models.PropertyTenant) error

	// UpdateWaterBillStatus overwrites the water bill status
	UpdateWaterBillStatus(id string, status models.WaterBillStatus) error

	// CountByLocation counts an owner's properties grouped by location
	CountByLocation(ownerID string) ([]LocationCount, error)

	// CountActiveTenants counts active tenancy links across an owner's properties
	CountActiveTenants(ownerID string) (int64, error)
}

// LocationCount is one row of the per-location analytics breakdown
type LocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

// ChatRepository defines the interface for chat data access
type ChatRepository interface {
	// FindGroupByPropertyID finds the chat group attached to a property
	FindGroupByPropertyID(propertyID string) (*models.ChatGroup, error)

	// FindMember finds a specific group member
	FindMember(groupID, userID string) (*models.ChatGroupMember, error)

	// CreateMessage inserts a chat message
	CreateMessage(msg *models.ChatMessage) error

	// ListMessages lists a group's messages ordered by creation time ascending
	ListMessages(groupID string) ([]models.ChatMessage, error)
}

// BillingRepository defines the interface for payment and bill data access
type BillingRepository interface {
	// CreatePaymentWithBill inserts a payment and its paired paid bill
	// within a single transaction
	CreatePaymentWithBill(payment *models.Payment, bill *models.Bill) error

	// ListPaymentsByProperty lists all payments recorded for a property
	ListPaymentsByProperty(propertyID string) ([]models.Payment, error)
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// CreateBatch inserts one notification row per targeted property
	CreateBatch(notifications []models.Notification) error
}

// MaintenanceRepository defines the interface for maintenance ticket data access
type MaintenanceRepository interface {
	// Create inserts a maintenance ticket
	Create(ticket *models.MaintenanceTicket) error
}
