package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/handlers"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/middleware"
	"portfolio_backend/internal/pkg/email"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/routes"
	"portfolio_backend/internal/services"
	"portfolio_backend/internal/storage"
	"portfolio_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.JWT.Secret == "" {
		logger.Warn("JWT secret not configured, using the built-in default; set JWT_SECRET in production")
	}

	logger.Info("Connecting to database...", "db", cfg.Database.Name)
	db, err := repositories.Connect(context.Background(), cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := repositories.EnsureIndexes(context.Background(), db); err != nil {
		logger.Fatal("Failed to ensure indexes", "error", err)
	}
	logger.Info("Database connected")

	ginRouter := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
// Split from Run so tests can build the full router against their own
// database handle.
func SetupRouter(cfg *config.Config, db *mongo.Database) *gin.Engine {
	storageInstance, err := storage.New(storage.Config{
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
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	emailSender := newEmailSender(cfg)

	userRepo := repositories.NewUserRepository(db)
	contentRepo := repositories.NewContentRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	experienceRepo := repositories.NewExperienceRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	assetService := services.NewAssetService(storageInstance)
	authService := services.NewAuthService(userRepo, assetService)
	contentService := services.NewContentService(contentRepo, assetService)
	skillService := services.NewSkillService(skillRepo)
	experienceService := services.NewExperienceService(experienceRepo)
	projectService := services.NewProjectService(projectRepo, assetService)
	contactService := services.NewContactService(contactRepo, emailSender)

	if err := authService.SeedAdmin(context.Background(),
		cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.Fatal("Failed to seed admin user", "error", err)
	}

	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	appHandlers := &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, authService),
		ContentHandler:    handlers.NewContentHandler(baseHandler, contentService),
		SkillHandler:      handlers.NewSkillHandler(baseHandler, skillService),
		ExperienceHandler: handlers.NewExperienceHandler(baseHandler, experienceService),
		ProjectHandler:    handlers.NewProjectHandler(baseHandler, projectService),
		ContactHandler:    handlers.NewContactHandler(baseHandler, contactService),
	}

	ginRouter := newGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, userRepo)
	return ginRouter
}

func newEmailSender(cfg *config.Config) email.Sender {
	emailConfig := email.Config{
		Service:   cfg.Email.Service,
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.Username,
		Password:  cfg.Email.Password,
		FromEmail: cfg.Email.FromEmail,
	}
	if err := emailConfig.Validate(); err != nil {
		logger.Warn("Email relay not configured, replies will only be logged", "reason", err.Error())
		return &logSender{}
	}

	sender, err := email.NewSMTPSender(emailConfig)
	if err != nil {
		logger.Fatal("Failed to initialize email sender", "error", err)
	}
	return sender
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

	if cfg.Storage.Type == "local" {
		router.Static("/files", cfg.Storage.BasePath)
	}

	return router
}
