package app

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
)

type Config struct {
	BaseURL         string        // Required: API base address, e.g. https://api.example.com/api/v1
	CredentialStore string        // Optional: credential store driver (memory, sqlite, file) (default: sqlite)
	DatabaseFile    string        // Optional: path to SQLite database file (default: ./console.db)
	CredentialFile  string        // Optional: path to sealed token file for the file driver (default: ./.console-token)
	MasterKeyPath   string        // Optional: path to master key file (default: console.key next to the store)
	MasterKey       string        // Optional: master key material, takes precedence over MasterKeyPath
	HTTPTimeout     time.Duration // Optional: HTTP client timeout (default: 30s)
	SignInURL       string        // Optional: sign-in entry point shown after a session reset (default: /login)
	Env             string        // Environment (dev, staging, prod) (default: dev)
	LogLevel        string        // Log level (debug, info, warn, error) (default: info)
	LogFormat       string        // Log format (json, text) (default: text)
}

func LoadConfig() Config {
	return Config{
		BaseURL:         os.Getenv("CONSOLE_API_BASE_URL"),
		CredentialStore: getEnvOrDefault("CONSOLE_CREDENTIAL_STORE", "sqlite"),
		DatabaseFile:    getEnvOrDefault("CONSOLE_DATABASE_FILE", "console.db"),
		CredentialFile:  getEnvOrDefault("CONSOLE_CREDENTIAL_FILE", ".console-token"),
		MasterKeyPath:   os.Getenv("CONSOLE_MASTER_KEY_PATH"),
		MasterKey:       os.Getenv("CONSOLE_MASTER_KEY"),
		HTTPTimeout:     getEnvDurationOrDefault("CONSOLE_HTTP_TIMEOUT", consolesdk.DefaultTimeout),
		SignInURL:       getEnvOrDefault("CONSOLE_SIGN_IN_URL", consolesdk.DefaultSignInURL),
		Env:             getEnvOrDefault("ENV", "dev"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

// Validate reports configuration that would make every command fail.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("CONSOLE_API_BASE_URL is required")
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("CONSOLE_HTTP_TIMEOUT must be positive")
	}
	return nil
}

// masterKeyPath returns the configured key path, or console.key in the
// directory of the selected store file.
func (c Config) masterKeyPath() string {
	if c.MasterKeyPath != "" {
		return c.MasterKeyPath
	}

	storeFile := c.DatabaseFile
	if c.CredentialStore == "file" {
		storeFile = c.CredentialFile
	}
	return filepath.Join(filepath.Dir(storeFile), "console.key")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "30s", "1m")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
