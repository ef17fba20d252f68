// Package config loads process configuration from the environment.
package config

import (
	"os"
	"strings"
	"time"
)

// Config holds every runtime setting of the storefront backend.
type Config struct {
	HTTPAddr        string
	GCSBucket       string
	JWTSecret       string
	JWTExpiration   time.Duration
	StripeSecretKey string
	RedisHost       string
	RedisPort       string
	RedisPassword   string
	AllowedOrigins  []string
	ProductCacheTTL time.Duration
}

// Load reads the configuration from the environment, applying development
// defaults for everything except the secrets.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		GCSBucket:       getenv("GCS_BUCKET", "celestialcenter"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTExpiration:   getduration("JWT_EXPIRATION", 24*time.Hour),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		RedisHost:       os.Getenv("REDIS_HOST"),
		RedisPort:       getenv("REDIS_PORT", "6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		AllowedOrigins: splitCSV(getenv("ALLOWED_ORIGINS",
			"https://store.garrettstrange.com,http://localhost:3000")),
		ProductCacheTTL: getduration("PRODUCT_CACHE_TTL", 5*time.Minute),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getduration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
