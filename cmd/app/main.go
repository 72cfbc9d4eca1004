package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitcircle/internal/auth"
	"fitcircle/internal/config"
	"fitcircle/internal/db"
	"fitcircle/internal/facility"
	"fitcircle/internal/gym"
	"fitcircle/internal/location"
	"fitcircle/internal/logger"
	"fitcircle/internal/notification"
	"fitcircle/internal/payment"
	"fitcircle/internal/plan"
	"fitcircle/internal/payment/gateway"
	"fitcircle/internal/server"
	"fitcircle/internal/subscription"
	"fitcircle/internal/trainer"
	"fitcircle/internal/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// @title FitCircle API
// @version 1.0
// @description Gyms, facilities, trainers, subscriptions, payments and training plans.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	defer logger.Sync()
	logger.Info("Starting FitCircle application")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := notification.NewQueue(rdb, notification.NewSMTPSender(notification.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Pass:     cfg.SMTPPass,
		From:     cfg.EmailFrom,
		FromName: cfg.EmailFromName,
	}))
	go queue.Run(ctx)
	go queue.MonitorLength(ctx, 30*time.Second)

	var users user.Service
	notifier := notification.NewNotifier(queue, notification.DirectoryFunc(
		func(ctx context.Context, id uuid.UUID) (notification.Recipient, error) {
			return users.Recipient(ctx, id)
		}))
	users = user.NewService(user.NewRepository(database), auth.NewLoginLimiter(rdb), notifier, cfg.JWTSecret)

	locations := location.NewService(location.NewRepository(database))
	gyms := gym.NewService(gym.NewRepository(database), locations, gym.PriceBands(cfg.Tiers))
	facilities := facility.NewService(facility.NewRepository(database), gyms)
	trainers := trainer.NewService(trainer.NewRepository(database), gyms)
	subscriptions := subscription.NewService(subscription.NewRepository(database), gyms, trainers, notifier, cfg.DefaultCurrency)

	var gw payment.Gateway
	if cfg.MPAccessToken != "" {
		mp, err := gateway.NewMercadoPago(cfg.MPAccessToken, cfg.MPNotificationURL)
		if err != nil {
			logger.Fatalf("Failed to configure MercadoPago: %v", err)
		}
		gw = mp
		logger.Info("MercadoPago checkout enabled")
	}
	payments := payment.NewService(payment.NewRepository(database), subscriptions, gw, notifier)

	srv := server.New(cfg, server.Handlers{
		User:         user.NewHandler(users),
		Location:     location.NewHandler(locations),
		Gym:          gym.NewHandler(gyms),
		Facility:     facility.NewHandler(facilities),
		Trainer:      trainer.NewHandler(trainers),
		Subscription: subscription.NewHandler(subscriptions),
		Payment:      payment.NewHandler(payments),
		Plan:         plan.NewHandler(plan.NewService(plan.NewRepository(database), trainers)),
	}, database)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
