package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const defaultHost = "0.0.0.0"
const defaultPort = 5000
const defaultMaxAmount = "99999999"
const defaultLogLevel = "info"
const defaultShutdownTimeout = 10 * time.Second

type Config struct {
	Host               string
	Port               int
	MaxAmount          decimal.Decimal
	LogLevel           string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads the process environment, after merging a .env file from the
// working directory when one exists. Variables already set win over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	host := envOr(getenv, "HOST", defaultHost)

	port := defaultPort
	if raw := envOr(getenv, "PORT", ""); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 1 || p > 65535 {
			return Config{}, fmt.Errorf("PORT must be a number between 1 and 65535, got %q", raw)
		}
		port = p
	}

	maxAmount, err := decimal.NewFromString(envOr(getenv, "MAX_AMOUNT", defaultMaxAmount))
	if err != nil {
		return Config{}, fmt.Errorf("MAX_AMOUNT: %w", err)
	}
	if !maxAmount.IsPositive() {
		return Config{}, fmt.Errorf("MAX_AMOUNT must be greater than zero")
	}

	shutdownTimeout := defaultShutdownTimeout
	if raw := envOr(getenv, "SHUTDOWN_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT must be a positive duration, got %q", raw)
		}
		shutdownTimeout = d
	}

	return Config{
		Host:               host,
		Port:               port,
		MaxAmount:          maxAmount,
		LogLevel:           envOr(getenv, "LOG_LEVEL", defaultLogLevel),
		CORSAllowedOrigins: splitList(envOr(getenv, "CORS_ALLOWED_ORIGINS", "*")),
		ShutdownTimeout:    shutdownTimeout,
	}, nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
