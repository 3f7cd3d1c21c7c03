package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"freightops/cmd"
	"freightops/internal/adapters/out/postgres"
	"freightops/internal/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultOfferTTLMinutes = 60

func main() {
	configs := getConfigs()
	logger := logging.NewLogger(configs.LogLevel)

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listener := root.CreateChangeFeedListener(logger)
	defer listener.Close()

	consumer := root.CreateRealtimeConsumer(listener, logger)
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("realtime consumer stopped", "error", err)
			stop()
		}
	}()

	jobManager := root.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	root.CreateHTTPServer().RegisterRoutes(e)
	e.GET("/ws", root.CreateWebSocketHub(logger).Handle)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			logger.Error("web server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("web server shutdown failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	// Missing .env is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		DBHost:          envOrDefault("DB_HOST", "localhost"),
		DBPort:          envOrDefault("DB_PORT", "5432"),
		DBUser:          envOrDefault("DB_USER", "postgres"),
		DBPassword:      envOrDefault("DB_PASSWORD", "postgres"),
		DBName:          envOrDefault("DB_NAME", "freightops"),
		DBSslMode:       envOrDefault("DB_SSLMODE", "disable"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		OfferTTLMinutes: defaultOfferTTLMinutes,
	}

	if raw := os.Getenv("OFFER_TTL_MINUTES"); raw != "" {
		ttl, err := strconv.Atoi(raw)
		if err != nil || ttl <= 0 {
			log.Fatalf("Invalid OFFER_TTL_MINUTES: %q", raw)
		}
		config.OfferTTLMinutes = ttl
	}

	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
