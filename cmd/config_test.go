package cmd_test

import (
	"testing"
	"time"

	"procurement/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:             "8082",
		DBHost:               "localhost",
		DBPort:               "5432",
		DBUser:               "username",
		DBPassword:           "secret",
		DBName:               "procurement",
		DBSslMode:            "disable",
		SessionBackend:       cmd.SessionBackendMemory,
		SessionIdleTimeout:   30 * time.Minute,
		LockTimeout:          2 * time.Second,
		ReceiptRetryAttempts: 3,
		SweepSchedule:        "*/15 * * * *",
	}
}

func TestConfig_Valid(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *cmd.Config)
	}{
		{"missing port", func(c *cmd.Config) { c.HTTPPort = "" }},
		{"port not numeric", func(c *cmd.Config) { c.DBPort = "pg" }},
		{"unknown ssl mode", func(c *cmd.Config) { c.DBSslMode = "sometimes" }},
		{"unknown backend", func(c *cmd.Config) { c.SessionBackend = "memcached" }},
		{"redis without address", func(c *cmd.Config) { c.SessionBackend = cmd.SessionBackendRedis }},
		{"zero idle timeout", func(c *cmd.Config) { c.SessionIdleTimeout = 0 }},
		{"zero lock timeout", func(c *cmd.Config) { c.LockTimeout = 0 }},
		{"no attempts", func(c *cmd.Config) { c.ReceiptRetryAttempts = 0 }},
		{"bootstrap user without password", func(c *cmd.Config) { c.BootstrapUserID = "admin" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.modify(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestConfig_RedisWithAddress(t *testing.T) {
	c := validConfig()
	c.SessionBackend = cmd.SessionBackendRedis
	c.RedisAddress = "localhost:6379"

	assert.NoError(t, c.Validate())
}

func TestConfig_DSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=username password=secret dbname=procurement sslmode=disable",
		validConfig().DSN())
}
