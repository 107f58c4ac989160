package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPayvesselBaseURL = "https://api.payvessel.com"
	defaultPayvesselTimeout = 15 * time.Second
)

type Config struct {
	AppPort      string
	AppEnv       string
	BridgeSecret string
	Payvessel    PayvesselConfig
	RateLimit    RateLimitConfig

	// TrustProxy makes X-Forwarded-For / X-Real-IP the client address. Only
	// enable it behind a proxy that overwrites those headers.
	TrustProxy bool
}

type PayvesselConfig struct {
	BaseURL    string
	APIKey     string
	SecretKey  string
	BusinessID string
	Timeout    time.Duration
}

// HasCredentials reports whether both gateway keys are set.
func (p PayvesselConfig) HasCredentials() bool {
	return p.APIKey != "" && p.SecretKey != ""
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:      getEnv("APP_PORT", "8080"),
		AppEnv:       getEnv("APP_ENV", "development"),
		BridgeSecret: os.Getenv("BRIDGE_SECRET"),
		TrustProxy:   getBool("TRUST_PROXY", false),
		Payvessel: PayvesselConfig{
			BaseURL:    getEnv("PAYVESSEL_BASE_URL", defaultPayvesselBaseURL),
			APIKey:     os.Getenv("PAYVESSEL_API_KEY"),
			SecretKey:  os.Getenv("PAYVESSEL_SECRET_KEY"),
			BusinessID: os.Getenv("PAYVESSEL_BUSINESS_ID"),
			Timeout:    getDuration("PAYVESSEL_TIMEOUT", defaultPayvesselTimeout),
		},
		RateLimit: RateLimitConfig{
			RPS:   getFloat("RATE_LIMIT_RPS", 10),
			Burst: getInt("RATE_LIMIT_BURST", 20),
		},
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		log.Printf("invalid %s=%q, using %g", key, v, fallback)
		return fallback
	}
	return f
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %t", key, v, fallback)
		return fallback
	}
	return b
}
