package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig aggregates runtime configuration. Everything is injected through
// environment variables once at startup; nothing reads the environment later.
type AppConfig struct {
	HTTPAddr string
	DBPath   string

	RedisAddr string
	RedisDB   int

	// Local token verifier.
	JWTSecret string
	JWTTTL    time.Duration

	// Emails promoted to admin on every authentication event.
	AdminEmails []string

	// Payment gateway.
	StripeSecretKey string
	Currency        string

	// Rate limit on order placement and payment endpoints.
	OrderRateLimit  int
	OrderRateWindow time.Duration

	MenuCacheTTL time.Duration

	// Policy knobs for behaviors the product left open.
	StrictStatusFlow      bool
	AllowUnavailableItems bool

	BcryptCost int
}

// Load reads and validates configuration, falling back to defaults.
func Load() (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		DBPath:          getEnv("DB_PATH", "skyhi_pos.db"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         0,
		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTTTL:          24 * time.Hour,
		AdminEmails:     splitCSV(getEnv("ADMIN_EMAILS", "")),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		Currency:        strings.ToLower(getEnv("CURRENCY", "usd")),
		OrderRateLimit:  30,
		OrderRateWindow: time.Minute,
		MenuCacheTTL:    5 * time.Minute,
		BcryptCost:      0,
	}

	if cfg.JWTSecret == "" {
		return AppConfig{}, fmt.Errorf("JWT_SECRET must not be empty")
	}
	if cfg.StripeSecretKey == "" {
		return AppConfig{}, fmt.Errorf("STRIPE_SECRET_KEY must not be empty")
	}

	redisDB, err := getEnvInt("REDIS_DB", cfg.RedisDB)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = redisDB

	ttlHour, err := getEnvInt("JWT_TTL_HOUR", int(cfg.JWTTTL.Hours()))
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid JWT_TTL_HOUR: %w", err)
	}
	if ttlHour <= 0 {
		return AppConfig{}, fmt.Errorf("JWT_TTL_HOUR must be > 0")
	}
	cfg.JWTTTL = time.Duration(ttlHour) * time.Hour

	rateLimit, err := getEnvInt("ORDER_RATE_LIMIT", cfg.OrderRateLimit)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid ORDER_RATE_LIMIT: %w", err)
	}
	if rateLimit <= 0 {
		return AppConfig{}, fmt.Errorf("ORDER_RATE_LIMIT must be > 0")
	}
	cfg.OrderRateLimit = rateLimit

	rateWindowSec, err := getEnvInt("ORDER_RATE_WINDOW_SEC", int(cfg.OrderRateWindow.Seconds()))
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid ORDER_RATE_WINDOW_SEC: %w", err)
	}
	if rateWindowSec <= 0 {
		return AppConfig{}, fmt.Errorf("ORDER_RATE_WINDOW_SEC must be > 0")
	}
	cfg.OrderRateWindow = time.Duration(rateWindowSec) * time.Second

	cacheTTLMin, err := getEnvInt("MENU_CACHE_TTL_MIN", int(cfg.MenuCacheTTL.Minutes()))
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid MENU_CACHE_TTL_MIN: %w", err)
	}
	if cacheTTLMin <= 0 {
		return AppConfig{}, fmt.Errorf("MENU_CACHE_TTL_MIN must be > 0")
	}
	cfg.MenuCacheTTL = time.Duration(cacheTTLMin) * time.Minute

	cfg.StrictStatusFlow, err = getEnvBool("STRICT_STATUS_FLOW", false)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid STRICT_STATUS_FLOW: %w", err)
	}
	cfg.AllowUnavailableItems, err = getEnvBool("ALLOW_UNAVAILABLE_ITEMS", false)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid ALLOW_UNAVAILABLE_ITEMS: %w", err)
	}

	cost, err := getEnvInt("BCRYPT_COST", cfg.BcryptCost)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}
	if cost < 0 {
		return AppConfig{}, fmt.Errorf("BCRYPT_COST must be >= 0")
	}
	cfg.BcryptCost = cost

	return cfg, nil
}

// getEnv reads a string env var, returning fallback when empty.
func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

// getEnvInt reads an integer env var, returning fallback when empty.
func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

// getEnvBool reads a boolean env var, returning fallback when empty.
func getEnvBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseBool(v)
}

// splitCSV parses a comma separated string into a slice.
func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
