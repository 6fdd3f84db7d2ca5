package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	DataMode string
	LoanMode string
	Port     string
	Database DatabaseConfig
	Session  SessionConfig
	Loan     LoanConfig
}

// DatabaseConfig holds database configuration (db data mode only)
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// SessionConfig holds the session cookie configuration
type SessionConfig struct {
	Secret   string
	Secure   bool
	SameSite string
	Domain   string
}

// LoanConfig holds loan evaluator configuration
type LoanConfig struct {
	RemoteURL string
}

// Data modes: fixed at process start, no runtime fallback between them
const (
	DataModeMock = "mock"
	DataModeDB   = "db"
)

// Loan evaluator modes
const (
	LoanModeLocal  = "local"
	LoanModeRemote = "remote"
)

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	dataMode := strings.TrimSpace(getEnv("DATA_MODE", DataModeMock))
	if dataMode != DataModeMock && dataMode != DataModeDB {
		return nil, fmt.Errorf("invalid DATA_MODE: '%s' (must be 'mock' or 'db')", dataMode)
	}

	loanMode := strings.TrimSpace(getEnv("LOAN_MODE", LoanModeLocal))
	if loanMode != LoanModeLocal && loanMode != LoanModeRemote {
		return nil, fmt.Errorf("invalid LOAN_MODE: '%s' (must be 'local' or 'remote')", loanMode)
	}

	config := &Config{
		AppMode:  appMode,
		DataMode: dataMode,
		LoanMode: loanMode,
		Port:     getEnv("PORT", "8000"),
		Database: loadDatabaseConfig(appMode),
		Session:  loadSessionConfig(appMode),
		Loan: LoanConfig{
			RemoteURL: getEnv("LOAN_API_URL", ""),
		},
	}

	if config.LoanMode == LoanModeRemote && config.Loan.RemoteURL == "" {
		return nil, fmt.Errorf("LOAN_MODE is 'remote' but LOAN_API_URL is not set")
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded [MODE: %s | DATA: %s | LOAN: %s]", appMode, dataMode, loanMode)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "smartbank"),
	}
}

// loadSessionConfig loads session cookie config based on mode
func loadSessionConfig(mode string) SessionConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return SessionConfig{
		Secret:   getEnv(prefix+"SESSION_SECRET", "default_session_secret"),
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// IsMock returns true if data is served from in-process fixtures
func (c *Config) IsMock() bool {
	return c.DataMode == DataModeMock
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		// Default production origin
		return "https://dashboard.smartbank.example.com"
	}
	return origins
}
