package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rentory/rentory-api/internal/database"
	"github.com/rentory/rentory-api/internal/models"
	"github.com/rentory/rentory-api/internal/repository"
	"github.com/rentory/rentory-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine

	authService     *services.AuthService
	propertyService *services.PropertyService
}

// setupTestEnv wires the full route table against an in-memory database.
func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.PropertyTenant{},
		&models.ChatGroup{},
		&models.ChatGroupMember{},
		&models.ChatMessage{},
		&models.Payment{},
		&models.Bill{},
		&models.Notification{},
		&models.MaintenanceTicket{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	chatRepo := repository.NewChatRepository(db)
	billingRepo := repository.NewBillingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	authService := services.NewAuthService(userRepo, propertyRepo, chatRepo)
	propertyService := services.NewPropertyService(propertyRepo, userRepo, billingRepo, chatRepo)
	tenantService := services.NewTenantService(userRepo, propertyRepo)
	chatService := services.NewChatService(chatRepo, userRepo)
	billingService := services.NewBillingService(billingRepo, propertyRepo, userRepo)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, propertyRepo, userRepo)
	notificationService := services.NewNotificationService(notificationRepo, propertyRepo, userRepo)

	authHandler := NewAuthHandler(authService)
	propertyHandler := NewPropertyHandler(propertyService)
	tenantHandler := NewTenantHandler(tenantService)
	chatHandler := NewChatHandler(chatService)
	billingHandler := NewBillingHandler(billingService)
	maintenanceHandler := NewMaintenanceHandler(maintenanceService)
	notificationHandler := NewNotificationHandler(notificationService)

	r := gin.New()
	auth := r.Group("/auth")
	{
		auth.POST("/owners/signup", authHandler.SignupOwner)
		auth.POST("/tenants/register", authHandler.RegisterTenant)
		auth.POST("/login", authHandler.Login)
	}
	owners := r.Group("/owners/:owner_id")
	{
		owners.GET("/properties", propertyHandler.ListProperties)
		owners.POST("/properties", propertyHandler.CreateProperty)
		owners.GET("/analytics", propertyHandler.GetAnalytics)
	}
	properties := r.Group("/properties/:property_id")
	{
		properties.GET("", propertyHandler.GetProperty)
		properties.PATCH("/water-bill", propertyHandler.UpdateWaterBillStatus)
		properties.POST("/tenants/join-requests", propertyHandler.CreateJoinRequest)
		properties.GET("/chat", chatHandler.ListMessages)
		properties.POST("/chat", chatHandler.PostMessage)
	}
	tenants := r.Group("/tenants/:tenant_id")
	{
		tenants.GET("", tenantHandler.GetTenant)
		tenants.GET("/dashboard", tenantHandler.GetDashboard)
	}
	r.POST("/payments", billingHandler.CreatePayment)
	r.POST("/maintenance-tickets", maintenanceHandler.CreateTicket)
	r.POST("/notifications/broadcast", notificationHandler.Broadcast)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{
		db:              db,
		router:          r,
		authService:     authService,
		propertyService: propertyService,
	}
}

// doJSON performs a JSON request against the test router.
func (env testEnv) doJSON(t *testing.T, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// createOwner registers an owner directly through the service.
func (env testEnv) createOwner(t *testing.T, phone string) *models.User {
	t.Helper()

	result, err := env.authService.SignupOwner(services.SignupOwnerInput{
		FullName: "Test Owner",
		Phone:    phone,
		Password: "supersecret",
	})
	require.NoError(t, err)
	return result.User
}

// createProperty lists a property for the owner directly through the service.
func (env testEnv) createProperty(t *testing.T, ownerID string, capacity int, rent float64) *models.Property {
	t.Helper()

	property, err := env.propertyService.Create(ownerID, services.CreatePropertyInput{
		Location: "Kaloor",
		Name:     "Kaloor Residency A",
		UnitType: "2BHK",
		Capacity: capacity,
		Rent:     rent,
	})
	require.NoError(t, err)
	return property
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
