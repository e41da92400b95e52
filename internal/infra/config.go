package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	DatabaseURL        string
	JWTSecret          string
	DemoMode           bool
	AllowedEmailDomain string
	SSOIssuer          string
	SSOClientID        string
	SSOJWKSURL         string
	GeoIPDBPath        string
	MinGoalMinor       int64
	MinDonationMinor   int64
	CORSOrigins        []string
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed. DATABASE_URL and JWT_SECRET are required unless
// demo mode is on, which runs against the in-memory store.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		DemoMode:           getEnv("DEMO_MODE", "0") == "1",
		AllowedEmailDomain: getEnv("ALLOWED_EMAIL_DOMAIN", "university.edu"),
		SSOIssuer:          getEnv("SSO_ISSUER", "https://accounts.google.com"),
		SSOClientID:        os.Getenv("SSO_CLIENT_ID"),
		SSOJWKSURL:         getEnv("SSO_JWKS_URL", "https://www.googleapis.com/oauth2/v3/certs"),
		GeoIPDBPath:        os.Getenv("GEOIP_DB_PATH"),
		MinGoalMinor:       getEnvInt64("MIN_GOAL_MINOR", 50_00),
		MinDonationMinor:   getEnvInt64("MIN_DONATION_MINOR", 5_00),
		CORSOrigins:        splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	if cfg.DemoMode {
		if cfg.JWTSecret == "" {
			cfg.JWTSecret = "campus-demo-secret"
		}
		return cfg, nil
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
