package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings read once at startup.
type Config struct {
	Port          string
	DatabaseURL   string
	AdminPassword string
	BaseURL       string
	LogMode       string
	CORSOrigins   []string

	OtelEnabled     bool
	OtelServiceName string
	OtelEndpoint    string
	OtelInsecure    bool
	OtelSampleRatio float64
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests can supply their own.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:            get("PORT", "8080"),
		DatabaseURL:     get("DATABASE_URL", ""),
		AdminPassword:   getenv("ADMIN_PASSWORD"),
		LogMode:         get("LOG_MODE", "development"),
		CORSOrigins:     splitList(get("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		OtelEnabled:     truthy(getenv("OTEL_ENABLED")),
		OtelServiceName: get("OTEL_SERVICE_NAME", "inspectrack"),
		OtelEndpoint:    get("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OtelInsecure:    truthy(getenv("OTEL_EXPORTER_OTLP_INSECURE")),
		OtelSampleRatio: 1,
	}
	cfg.BaseURL = strings.TrimRight(get("BASE_URL", "http://localhost:"+cfg.Port), "/")

	if raw := strings.TrimSpace(getenv("OTEL_SAMPLER_RATIO")); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("OTEL_SAMPLER_RATIO: %w", err)
		}
		cfg.OtelSampleRatio = min(max(f, 0), 1)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT %q is not a number", c.Port)
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("BASE_URL %q must start with http:// or https://", c.BaseURL)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
