package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Auth        AuthConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// DatabaseConfig holds database configuration. URL selects the PostgreSQL
// engine when set; the remaining fields describe the local MySQL fallback.
type DatabaseConfig struct {
	URL string

	Host     string
	Port     int
	User     string
	Password string
	Name     string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnectTimeout  time.Duration
}

// AuthConfig holds token issuance configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("PORT", 3000),
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "travelease_user"),
			Password:        getEnv("DB_PASSWORD", "travelease123"),
			Name:            getEnv("DB_NAME", "travelease"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", 30*time.Second),
			ConnectTimeout:  getEnvAsDuration("DB_CONNECT_TIMEOUT", 2*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "travelease-dev-secret"),
			TokenTTL:  getEnvAsDuration("TOKEN_TTL", 7*24*time.Hour),
		},
	}, nil
}

// IsDevelopment reports whether the process runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Addr returns the listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MySQLDSN returns the MySQL connection string for the local fallback engine
func (c *DatabaseConfig) MySQLDSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?parseTime=true&timeout=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.ConnectTimeout,
	)
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList gets a comma-separated environment variable with a default value
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// getEnvAsDuration gets an environment variable as a duration with a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
