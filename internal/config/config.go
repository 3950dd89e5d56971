package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port            string
	CORSAllowOrigin string

	// Database
	SQLiteDBPath string

	// OpenAI (optional: empty key means the upgrade path is unavailable)
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAITimeout time.Duration

	// AMQP (optional: empty URL disables event publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Recurring worker
	RecurringInterval time.Duration

	// Google Sheets export (optional)
	GoogleSpreadsheetID   string
	GoogleSheetName       string
	GoogleCredentialsJSON string
	GoogleCredentialsFile string

	// Logging
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/budget.db"),

		OpenAIAPIKey:  NormalizeAPIKey(getEnv("OPENAI_API_KEY", "")),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITimeout: getEnvDuration("OPENAI_TIMEOUT", 10*time.Second),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "budget"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "expense_events"),

		RecurringInterval: getEnvDuration("RECURRING_INTERVAL", time.Hour),

		GoogleSpreadsheetID:   getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:       getEnv("GOOGLE_SHEET_NAME", "Expenses"),
		GoogleCredentialsJSON: getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		GoogleCredentialsFile: getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg
}

// placeholderKeys are sentinel values shipped in example configuration.
// A key matching any of them (case-insensitive) is treated as unset.
var placeholderKeys = []string{
	"your_openai_api_key_here",
	"your_key_here",
	"none",
	"null",
}

// NormalizeAPIKey strips surrounding quotes and whitespace and collapses
// known placeholder values to the empty string, so that a shipped example
// .env never looks like a real credential.
func NormalizeAPIKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.Trim(key, `"'`)
	key = strings.TrimSpace(key)
	for _, placeholder := range placeholderKeys {
		if strings.EqualFold(key, placeholder) {
			return ""
		}
	}
	return key
}

// AIEnabled reports whether a usable generative-service credential is
// configured.
func (c *Config) AIEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// SheetsExportEnabled reports whether the Google Sheets export target is
// fully configured.
func (c *Config) SheetsExportEnabled() bool {
	return c.GoogleSpreadsheetID != "" &&
		(c.GoogleCredentialsJSON != "" || c.GoogleCredentialsFile != "")
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty")
	} else {
		dir := filepath.Dir(c.SQLiteDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.OpenAITimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid OpenAI timeout %v: must be at least 1 second", c.OpenAITimeout))
	} else if c.OpenAITimeout > 2*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid OpenAI timeout %v: must be at most 2 minutes", c.OpenAITimeout))
	}

	if c.RecurringInterval < time.Second {
		errors = append(errors, fmt.Sprintf("invalid recurring interval %v: must be at least 1 second", c.RecurringInterval))
	} else if c.RecurringInterval > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid recurring interval %v: must be at most 24 hours", c.RecurringInterval))
	}

	if c.GoogleSpreadsheetID != "" {
		if c.GoogleCredentialsJSON == "" && c.GoogleCredentialsFile == "" {
			errors = append(errors, "either GOOGLE_SERVICE_ACCOUNT_JSON or GOOGLE_SERVICE_ACCOUNT_FILE must be provided when a spreadsheet ID is set")
		}
		if c.GoogleCredentialsFile != "" {
			if _, err := os.Stat(c.GoogleCredentialsFile); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("Google service account file does not exist: %s", c.GoogleCredentialsFile))
			}
		}
		if c.GoogleSheetName == "" {
			errors = append(errors, "Google sheet name cannot be empty when a spreadsheet ID is set")
		}
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
