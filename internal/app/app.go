package app

import (
	"context"
	"errors"
	"fmt"

	"dentalai_backend/internal/ai"
	"dentalai_backend/internal/ai/anthropic"
	"dentalai_backend/internal/ai/openai"
	"dentalai_backend/internal/auth"
	"dentalai_backend/internal/config"
	"dentalai_backend/internal/email"
	"dentalai_backend/internal/handlers"
	"dentalai_backend/internal/logger"
	"dentalai_backend/internal/middleware"
	"dentalai_backend/internal/models"
	"dentalai_backend/internal/repositories"
	"dentalai_backend/internal/routes"
	"dentalai_backend/internal/services"
	"dentalai_backend/internal/storage"
	"dentalai_backend/internal/validator"
	"dentalai_backend/internal/workers"
	"dentalai_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("failed to get *sql.DB from GORM", "error", err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("database unavailable", "error", err)
	}
	logger.Info("database connected")

	if err := migrate(gormDB); err != nil {
		logger.Fatal("migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("failed to seed first admin user", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := SetupRouter(ctx, cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("server startup error", "error", err)
	}
}

// SetupRouter builds the full application: storage, providers,
// services, handlers, websocket manager, background workers, routes.
func SetupRouter(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	logger.Info("storage initialized", "type", cfg.Storage.Type)

	emailProvider := newEmailProvider(cfg)
	aiProvider := newAIProvider(cfg)

	wsManager := ws.NewManager()
	go wsManager.Run()

	serviceContainer := services.NewServiceContainer(gormDB, store, emailProvider, aiProvider, wsManager)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())
	wsHandler := ws.NewHandler(wsManager)

	startWorkers(ctx, cfg, gormDB, emailProvider)

	router := newGinRouter(cfg)
	routes.RegisterRoutes(router, appHandlers, wsHandler)
	return router
}

func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured; outgoing email is disabled")
		return &MockEmailProvider{}
	}
	return email.NewSMTPProvider(cfg)
}

// newAIProvider picks the note drafting backend. A nil provider is
// legal; note drafting endpoints then return a configuration error.
func newAIProvider(cfg *config.Config) ai.Provider {
	switch cfg.AI.Provider {
	case "openai":
		if cfg.AI.OpenAI.APIKey == "" {
			logger.Warn("openai selected but no API key configured; AI drafting disabled")
			return nil
		}
		return openai.New(cfg)
	case "anthropic":
		if cfg.AI.Anthropic.APIKey == "" {
			logger.Warn("anthropic selected but no API key configured; AI drafting disabled")
			return nil
		}
		return anthropic.New(cfg)
	case "":
		logger.Warn("no AI provider configured; AI drafting disabled")
		return nil
	default:
		logger.Fatal("unknown AI provider", "provider", cfg.AI.Provider)
		return nil
	}
}

func startWorkers(ctx context.Context, cfg *config.Config, gormDB *gorm.DB, emailProvider email.Provider) {
	userRepo := repositories.NewUserRepository(gormDB)
	recordingRepo := repositories.NewRecordingRepository(gormDB)
	appointmentRepo := repositories.NewAppointmentRepository(gormDB)

	workers.NewCleanupWorker(userRepo, recordingRepo).Start(ctx)

	if cfg.Reminders.Enabled {
		workers.NewReminderWorker(appointmentRepo, emailProvider, cfg).Start(ctx)
		logger.Info("reminder worker started", "hours_ahead", cfg.Reminders.HoursAhead)
	}
}

func newGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Patient{},
		&models.ClinicalNote{},
		&models.Appointment{},
		&models.Recording{},
	)
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("admin user already exists, skipping creation", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hashedPassword, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:        adminEmail,
		PasswordHash: hashedPassword,
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}

	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("first admin user created", "email", adminEmail)
	return nil
}
