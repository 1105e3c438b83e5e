package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"procurement/cmd"
	httpadapter "procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = app.Close() }()

	if err := app.Bootstrap(ctx); err != nil {
		log.Fatalf("failed to bootstrap user: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	loadDotEnv()
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT", "8080"),
		DBHost:               goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:               goDotEnvVariable("DB_PORT", "5432"),
		DBUser:               goDotEnvVariable("DB_USER", ""),
		DBPassword:           goDotEnvVariable("DB_PASSWORD", ""),
		DBName:               goDotEnvVariable("DB_NAME", ""),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE", "disable"),
		SessionBackend:       goDotEnvVariable("SESSION_BACKEND", cmd.SessionBackendMemory),
		RedisAddress:         goDotEnvVariable("REDIS_ADDRESS", ""),
		SessionIdleTimeout:   durationVariable("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		LockTimeout:          durationVariable("LOCK_TIMEOUT", 3*time.Second),
		ReceiptRetryAttempts: uintVariable("RECEIPT_RETRY_ATTEMPTS", 3),
		SweepSchedule:        goDotEnvVariable("SWEEP_SCHEDULE", "@every 15m"),
		BootstrapUserID:      goDotEnvVariable("BOOTSTRAP_USER_ID", ""),
		BootstrapPassword:    goDotEnvVariable("BOOTSTRAP_PASSWORD", ""),
	}
	return config
}

// loadDotEnv reads .env when present. Real environment variables win.
func loadDotEnv() {
	err := godotenv.Load(".env")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func goDotEnvVariable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return d
}

func uintVariable(key string, fallback uint64) uint64 {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return n
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := httpadapter.NewEcho(logger)
	if err := app.CreateServer().RegisterRoutes(e); err != nil {
		log.Fatalf("register routes: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", slog.Any("error", err))
	}
}
