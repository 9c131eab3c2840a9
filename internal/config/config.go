package config

import (
	"errors"
	"os"
	"strings"
)

// Config is the environment-driven application configuration.
type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	JWTSecret     string
	RedisAddr     string
	MapsAPIKey    string
	CORSOrigins   []string
	SweepSchedule string
}

// Load reads configuration from environment variables and validates the
// fields the server cannot run without.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		MongoURI:      os.Getenv("MONGO_URI"),
		DBName:        getEnvOrDefault("DB_NAME", "nextgenfut"),
		JWTSecret:     getEnvOrDefault("JWT_SECRET", "dev"),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		MapsAPIKey:    os.Getenv("MAPS_API_KEY"),
		CORSOrigins:   splitOrigins(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		SweepSchedule: getEnvOrDefault("AVAILABILITY_SWEEP_SCHEDULE", "@every 5m"),
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.MongoURI == "" {
		return errors.New("MONGO_URI is required")
	}
	return nil
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
