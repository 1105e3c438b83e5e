package cmd

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Session backends accepted by Config.SessionBackend.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Config holds the process settings read from the environment by main.
// Durations use time.ParseDuration syntax.
type Config struct {
	HTTPPort   string `validate:"required,numeric"`
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required,numeric"`
	DBUser     string `validate:"required"`
	DBPassword string
	DBName     string `validate:"required"`
	DBSslMode  string `validate:"oneof=disable allow prefer require verify-ca verify-full"`

	SessionBackend     string        `validate:"oneof=memory redis"`
	RedisAddress       string        `validate:"required_if=SessionBackend redis"`
	SessionIdleTimeout time.Duration `validate:"gt=0"`

	LockTimeout          time.Duration `validate:"gt=0"`
	ReceiptRetryAttempts uint64        `validate:"min=1,max=10"`
	SweepSchedule        string        `validate:"required"`

	// Optional account created or updated at startup.
	BootstrapUserID   string
	BootstrapPassword string `validate:"required_with=BootstrapUserID"`
}

// Validate checks every field against its tag.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// DSN formats the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
