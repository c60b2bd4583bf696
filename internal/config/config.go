package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Security    SecurityConfig
	Leaderboard LeaderboardConfig
	Seed        SeedConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
	// PublicBaseURL overrides the request-derived origin used in the API index.
	PublicBaseURL      string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	SQLitePath  string
	AutoMigrate bool
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration. An empty URL disables Redis.
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// SecurityConfig holds password hashing settings
type SecurityConfig struct {
	PasswordHashCost int
}

// LeaderboardConfig controls the aggregator
type LeaderboardConfig struct {
	// RefreshInterval enables the in-process refresh job when positive.
	RefreshInterval time.Duration
	LockTTL         time.Duration
}

// SeedConfig controls the populate-db command
type SeedConfig struct {
	// RandomSeed makes reseeding reproducible when non-zero.
	RandomSeed int64
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "8000"),
			Env:                getEnv("SERVER_ENV", "development"),
			PublicBaseURL:      strings.TrimRight(getEnv("PUBLIC_BASE_URL", ""), "/"),
			CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			ShutdownTimeout:    getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:      getEnv("DB_DRIVER", "postgres"),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnvAsInt("DB_PORT", 5432),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			DBName:      getEnv("DB_NAME", "octofit_db"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			SQLitePath:  getEnv("DB_SQLITE_PATH", "octofit.db"),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		Security: SecurityConfig{
			PasswordHashCost: getEnvAsInt("PASSWORD_HASH_COST", 12),
		},
		Leaderboard: LeaderboardConfig{
			RefreshInterval: getEnvAsDuration("LEADERBOARD_REFRESH_INTERVAL", 0),
			LockTTL:         getEnvAsDuration("LEADERBOARD_LOCK_TTL", 2*time.Minute),
		},
		Seed: SeedConfig{
			RandomSeed: int64(getEnvAsInt("SEED_RANDOM_SEED", 0)),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
