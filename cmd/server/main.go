package main

import (
	"log"

	"github.com/bantayan/disaster-report-api/internal/config"
	"github.com/bantayan/disaster-report-api/internal/database"
	"github.com/bantayan/disaster-report-api/internal/handlers"
	"github.com/bantayan/disaster-report-api/internal/repository"
	"github.com/bantayan/disaster-report-api/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
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

	// Ensure schema exists; serving against a missing schema is pointless
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	authService := services.NewAuthService(userRepo, cfg.StrictEmail)
	reportService := services.NewReportService(reportRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	r := gin.Default()

	// The submission form is served cross-origin by community sites
	r.Use(cors.Default())

	// Routes
	r.GET("/", handlers.Form)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/report", reportHandler.Submit)
	r.GET("/report", reportHandler.List)
	r.GET("/reports", reportHandler.List)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Disaster Report API is running",
		})
	})

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
