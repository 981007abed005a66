package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable through STORAGE_BACKEND.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StorageBackend string
	MigrationsPath string

	JWTSecret string
	JWTIssuer string // empty disables the issuer check

	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"
	RequestTimeout     time.Duration
	CORSAllowedOrigins []string

	// DefaultCustomsAccountID funds customs fees when a declaration selects no account.
	DefaultCustomsAccountID string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORAGE_BACKEND", StoragePostgres)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "sfb-backend")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("REQUEST_TIMEOUT", "15s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("DEFAULT_CUSTOMS_ACCOUNT_ID", "")

	// Environment variables override the defaults (and whatever .env exported).
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:             v.GetString("PGSQL_URL"),
		Port:                    v.GetString("PORT"),
		IsProduction:            v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:           v.GetBool("ENABLE_DB_CHECK"),
		StorageBackend:          strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND"))),
		MigrationsPath:          v.GetString("MIGRATIONS_PATH"),
		JWTSecret:               v.GetString("JWT_SECRET"),
		JWTIssuer:               v.GetString("JWT_ISSUER"),
		RateLimit:               v.GetString("RATE_LIMIT"),
		DefaultCustomsAccountID: v.GetString("DEFAULT_CUSTOMS_ACCOUNT_ID"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageBackend {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_BACKEND is %s", StoragePostgres)
		}
	case StorageMemory:
		log.Println("Warning: using the in-memory store, data is lost on restart.")
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}
	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		return nil, fmt.Errorf("JWT_SECRET must be changed in production")
	}

	timeoutStr := v.GetString("REQUEST_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
		log.Printf("Warning: Invalid value for REQUEST_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.RequestTimeout = timeout

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.DefaultCustomsAccountID == "" {
		log.Println("Warning: DEFAULT_CUSTOMS_ACCOUNT_ID not set. Declarations must name an account.")
	}

	return cfg, nil
}
