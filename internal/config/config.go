package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Default configuration values.
const (
	DefaultPort            = "8080"
	DefaultDBHost          = "localhost"
	DefaultDBPort          = 5432
	DefaultDBUser          = "postgres"
	DefaultDBName          = "launchhub"
	DefaultDBSSLMode       = "disable"
	DefaultTokenTTL        = 24 * time.Hour
	DefaultGenerationModel = "gemini-2.5-flash"
	DefaultGenTimeout      = 30 * time.Second
	DefaultSweepInterval   = time.Hour
	DefaultPublicBaseURL   = "http://localhost:8080"
	DefaultLogLevel        = "info"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string
	TokenTTL  time.Duration

	GeminiAPIKey      string
	GenerationModel   string
	GenerationTimeout time.Duration

	SweepInterval time.Duration
	PublicBaseURL string
	LogLevel      string
}

// Load reads .env if present, then builds the Config from environment
// variables with defaults applied.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on environment")
	}

	return &Config{
		Port: GetEnvString("PORT", DefaultPort),

		DBHost:     GetEnvString("DB_HOST", DefaultDBHost),
		DBPort:     GetEnvInt("DB_PORT", DefaultDBPort),
		DBUser:     GetEnvString("DB_USER", DefaultDBUser),
		DBPassword: GetEnvString("DB_PASSWORD", ""),
		DBName:     GetEnvString("DB_NAME", DefaultDBName),
		DBSSLMode:  GetEnvString("DB_SSLMODE", DefaultDBSSLMode),

		JWTSecret: GetEnvString("JWT_SECRET", ""),
		TokenTTL:  GetEnvDuration("TOKEN_TTL", DefaultTokenTTL),

		GeminiAPIKey:      GetEnvString("GEMINI_API_KEY", ""),
		GenerationModel:   GetEnvString("GENERATION_MODEL", DefaultGenerationModel),
		GenerationTimeout: GetEnvDuration("GENERATION_TIMEOUT", DefaultGenTimeout),

		SweepInterval: GetEnvDuration("SWEEP_INTERVAL", DefaultSweepInterval),
		PublicBaseURL: GetEnvString("PUBLIC_BASE_URL", DefaultPublicBaseURL),
		LogLevel:      GetEnvString("LOG_LEVEL", DefaultLogLevel),
	}
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// GetEnvString returns the environment variable or a default.
func GetEnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt returns the environment variable parsed as int, or a default.
func GetEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer in environment, using default")
		return fallback
	}
	return n
}

// GetEnvDuration returns the environment variable parsed as a Go
// duration string (e.g. "30s", "1h"), or a default.
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid duration in environment, using default")
		return fallback
	}
	return d
}
