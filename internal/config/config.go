package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the stock exchange server.
type Config struct {
	Port              int           // trading socket
	AdminPort         int           // admin HTTP surface
	LogLevel          string
	MaxConnections    int           // 0 = unbounded admission
	WireReadTimeout   time.Duration // 0 = no deadline
	WireWriteTimeout  time.Duration // 0 = no deadline
	AdminReadTimeout  time.Duration
	AdminWriteTimeout time.Duration
	AdminIdleTimeout  time.Duration
	ShutdownTimeout   time.Duration
}

// Load reads configuration from environment variables, applies defaults,
// and validates values. It returns an error for any invalid value.
func Load() (*Config, error) {
	port, err := getInt("PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	adminPort, err := getInt("ADMIN_PORT", 8081)
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_PORT: %w", err)
	}

	logLevel := getStr("LOG_LEVEL", "info")
	if !isValidLogLevel(logLevel) {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %q, must be one of: debug, info, warn, error", logLevel)
	}

	maxConns, err := getInt("MAX_CONNECTIONS", 256)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_CONNECTIONS: %w", err)
	}
	if maxConns < 0 {
		return nil, fmt.Errorf("invalid MAX_CONNECTIONS: must be >= 0, got %d", maxConns)
	}

	wireReadTimeout, err := getDuration("WIRE_READ_TIMEOUT", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid WIRE_READ_TIMEOUT: %w", err)
	}

	wireWriteTimeout, err := getDuration("WIRE_WRITE_TIMEOUT", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid WIRE_WRITE_TIMEOUT: %w", err)
	}

	adminReadTimeout, err := getDuration("ADMIN_READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_READ_TIMEOUT: %w", err)
	}

	adminWriteTimeout, err := getDuration("ADMIN_WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_WRITE_TIMEOUT: %w", err)
	}

	adminIdleTimeout, err := getDuration("ADMIN_IDLE_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_IDLE_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	return &Config{
		Port:              port,
		AdminPort:         adminPort,
		LogLevel:          logLevel,
		MaxConnections:    maxConns,
		WireReadTimeout:   wireReadTimeout,
		WireWriteTimeout:  wireWriteTimeout,
		AdminReadTimeout:  adminReadTimeout,
		AdminWriteTimeout: adminWriteTimeout,
		AdminIdleTimeout:  adminIdleTimeout,
		ShutdownTimeout:   shutdownTimeout,
	}, nil
}

func getStr(key, defaultVal string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v
}

func getInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(v)
}

func getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(v)
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
