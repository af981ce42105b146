// Package config loads runtime settings from the environment.
// File: config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the hub.
type Config struct {
	Port           int
	AppEnv         string
	ApplicationURL string
	WebsocketURL   string
	SessionSecret  string
	LogDir         string

	// MapsAPIKey is optional; without it the map endpoints report a configuration error.
	MapsAPIKey string

	CheckInResetDelay time.Duration
	GalleryImageTTL   time.Duration // 0 keeps uploads until restart
	ScanRateLimit     float64       // requests per second per client
	ScanRateBurst     int

	// TrustedProxies lists proxy IPs or CIDRs whose forwarding headers are believed. Empty means
	// client IPs always come from the socket.
	TrustedProxies []string

	CloudWatchEnabled bool
	XRayEnabled       bool
}

// Load reads the optional .env file, then the environment, applying defaults.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		ApplicationURL: getEnv("APPLICATION_URL", "http://localhost:8080"),
		WebsocketURL:   getEnv("WEBSOCKET_URL", "ws://localhost:8080/ws"),
		SessionSecret:  getEnv("SESSION_SECRET", "secret"),
		LogDir:         getEnv("LOG_DIR", "logs"),
		MapsAPIKey:     os.Getenv("MAPS_API_KEY"),
		TrustedProxies: getList("TRUSTED_PROXIES"),
	}

	var err error
	if cfg.Port, err = getInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}

	if cfg.CheckInResetDelay, err = getDuration("CHECKIN_RESET_DELAY", 3*time.Second); err != nil {
		return nil, err
	}
	if cfg.CheckInResetDelay <= 0 {
		return nil, fmt.Errorf("CHECKIN_RESET_DELAY must be positive, got %s", cfg.CheckInResetDelay)
	}

	if cfg.GalleryImageTTL, err = getDuration("GALLERY_IMAGE_TTL", 0); err != nil {
		return nil, err
	}
	if cfg.GalleryImageTTL < 0 {
		return nil, fmt.Errorf("GALLERY_IMAGE_TTL must not be negative, got %s", cfg.GalleryImageTTL)
	}

	if cfg.ScanRateLimit, err = getFloat("SCAN_RATE_LIMIT", 2); err != nil {
		return nil, err
	}
	if cfg.ScanRateBurst, err = getInt("SCAN_RATE_BURST", 5); err != nil {
		return nil, err
	}
	if cfg.ScanRateLimit <= 0 || cfg.ScanRateBurst <= 0 {
		return nil, fmt.Errorf("SCAN_RATE_LIMIT and SCAN_RATE_BURST must be positive")
	}

	if cfg.CloudWatchEnabled, err = getBool("CLOUDWATCH_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.XRayEnabled, err = getBool("XRAY_ENABLED", false); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// IsProduction reports whether the hub runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getList splits a comma separated variable, dropping blanks.
func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return f, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return d, nil
}
