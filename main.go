// File: courtshare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"courtshare/config"
	"courtshare/cron"
	"courtshare/database"
	bookingRepoPkg "courtshare/database/repository/booking"
	courtRepoPkg "courtshare/database/repository/court"
	userRepoPkg "courtshare/database/repository/user"
	"courtshare/handlers"
	"courtshare/middleware"
	"courtshare/routes"
	bookingSvc "courtshare/services/booking"
	courtSvc "courtshare/services/court"
	"courtshare/services/notification"
	userSvc "courtshare/services/user"
	"courtshare/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()
	utils.RegisterValidators()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	courtRepo := courtRepoPkg.NewMongoCourtRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	if err := courtRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure court indexes: %v", err)
	}
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// services.
	userService := &userSvc.DefaultUserService{
		Repo: userRepo,
	}

	var mailer notification.Mailer
	if config.AppConfig.SMTPAddr != "" {
		mailer = &notification.SMTPMailer{
			Addr: config.AppConfig.SMTPAddr,
			From: config.AppConfig.SMTPFrom,
		}
	}
	notificationService := &notification.DefaultNotificationService{
		Users:  userService,
		Mailer: mailer,
	}

	courtService := &courtSvc.DefaultCourtService{
		Repo:    courtRepo,
		Storage: storageService,
	}

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer taskClient.Close()

	bookingService := &bookingSvc.DefaultBookingService{
		CourtRepo:   courtRepo,
		Repo:        bookingRepo,
		Notifier:    notificationService,
		TaskClient:  taskClient,
		MaxDuration: config.AppConfig.MaxBookingDurationMinutes,
		HoldTTL:     time.Duration(config.AppConfig.HoldTTLMinutes) * time.Minute,
	}

	// Background worker for unpaid hold expiry.
	cron.InitHoldExpiryWorker(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserHandler:    &handlers.UserHandler{UserService: userService},
		CourtHandler:   &handlers.CourtHandler{CourtService: courtService},
		BookingHandler: &handlers.BookingHandler{BookingService: bookingService},
		WebhookHandler: &handlers.WebhookHandler{BookingService: bookingService},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
