package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/rentory/rentory-api/internal/config"
	"github.com/rentory/rentory-api/internal/database"
	"github.com/rentory/rentory-api/internal/handlers"
	"github.com/rentory/rentory-api/internal/repository"
	"github.com/rentory/rentory-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	chatRepo := repository.NewChatRepository(db)
	billingRepo := repository.NewBillingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, propertyRepo, chatRepo)
	propertyService := services.NewPropertyService(propertyRepo, userRepo, billingRepo, chatRepo)
	tenantService := services.NewTenantService(userRepo, propertyRepo)
	chatService := services.NewChatService(chatRepo, userRepo)
	billingService := services.NewBillingService(billingRepo, propertyRepo, userRepo)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, propertyRepo, userRepo)
	notificationService := services.NewNotificationService(notificationRepo, propertyRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	chatHandler := handlers.NewChatHandler(chatService)
	billingHandler := handlers.NewBillingHandler(billingService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "rentory-api",
		})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/owners/signup", authHandler.SignupOwner)
		auth.POST("/tenants/register", authHandler.RegisterTenant)
		auth.POST("/login", authHandler.Login)
	}

	// Owner routes
	owners := r.Group("/owners/:owner_id")
	{
		owners.GET("/properties", propertyHandler.ListProperties)
		owners.POST("/properties", propertyHandler.CreateProperty)
		owners.GET("/analytics", propertyHandler.GetAnalytics)
	}

	// Property routes
	properties := r.Group("/properties/:property_id")
	{
		properties.GET("", propertyHandler.GetProperty)
		properties.PATCH("/water-bill", propertyHandler.UpdateWaterBillStatus)
		properties.POST("/tenants/join-requests", propertyHandler.CreateJoinRequest)
		properties.GET("/chat", chatHandler.ListMessages)
		properties.POST("/chat", chatHandler.PostMessage)
	}

	// Tenant routes
	tenants := r.Group("/tenants/:tenant_id")
	{
		tenants.GET("", tenantHandler.GetTenant)
		tenants.GET("/dashboard", tenantHandler.GetDashboard)
	}

	// Top-level record endpoints
	r.POST("/payments", billingHandler.CreatePayment)
	r.POST("/maintenance-tickets", maintenanceHandler.CreateTicket)
	r.POST("/notifications/broadcast", notificationHandler.Broadcast)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
