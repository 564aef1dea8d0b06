package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campus-hq/college-admin-api/internal/config"
	"github.com/campus-hq/college-admin-api/internal/database"
	"github.com/campus-hq/college-admin-api/internal/handler"
	"github.com/campus-hq/college-admin-api/internal/middleware"
	"github.com/campus-hq/college-admin-api/internal/repository"
	"github.com/campus-hq/college-admin-api/internal/router"
	"github.com/campus-hq/college-admin-api/internal/service"
	cloud "github.com/campus-hq/college-admin-api/pkg/cloudinary"
	"github.com/campus-hq/college-admin-api/pkg/twilio"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	uploader, err := cloud.New(cloud.Config{
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
		Folder:    cfg.CloudinaryUploadFolder,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create cloudinary client: %v", err)
	}

	dispatcher, err := twilio.New(twilio.Config{
		AccountSID:   cfg.TwilioAccountSID,
		AuthToken:    cfg.TwilioAuthToken,
		SMSFrom:      cfg.TwilioSMSFrom,
		WhatsAppFrom: cfg.TwilioWhatsAppFrom,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create twilio client: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	academicRepo := repository.NewAcademicRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	leaveRepo := repository.NewLeaveRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	resultRepo := repository.NewResultRepository(db)

	userService := service.NewUserService(userRepo, validate, uploader, cfg.PhotoMaxSizeMB, logger)
	academicService := service.NewAcademicService(academicRepo, validate, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, academicRepo, validate, logger)
	leaveService := service.NewLeaveService(leaveRepo, userRepo, validate, logger)
	feedbackService := service.NewFeedbackService(feedbackRepo, userRepo, validate, logger)
	notificationService := service.NewNotificationService(notificationRepo, userRepo, dispatcher, cfg, validate, logger)
	resultService := service.NewResultService(resultRepo, userRepo, validate, logger)
	dashboardService := service.NewDashboardService(attendanceRepo, redisClient, cfg.DashboardCacheTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, router.Dependencies{
		Config:        cfg,
		Logger:        logger,
		Auth:          handler.NewAuthHandler(userService, cfg, logger),
		Users:         handler.NewUserHandler(userService, logger),
		Academics:     handler.NewAcademicHandler(academicService, logger),
		Attendance:    handler.NewAttendanceHandler(attendanceService, logger),
		Leaves:        handler.NewLeaveHandler(leaveService, logger),
		Feedback:      handler.NewFeedbackHandler(feedbackService, logger),
		Notifications: handler.NewNotificationHandler(notificationService, logger),
		Results:       handler.NewResultHandler(resultService, logger),
		Dashboard:     handler.NewDashboardHandler(dashboardService, logger),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
