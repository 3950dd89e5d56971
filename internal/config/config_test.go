package config

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizeAPIKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "real key passes through", input: "sk-abc123", want: "sk-abc123"},
		{name: "surrounding quotes stripped", input: `"sk-abc123"`, want: "sk-abc123"},
		{name: "single quotes stripped", input: "'sk-abc123'", want: "sk-abc123"},
		{name: "whitespace trimmed", input: "  sk-abc123  ", want: "sk-abc123"},
		{name: "empty stays empty", input: "", want: ""},
		{name: "placeholder collapses", input: "your_openai_api_key_here", want: ""},
		{name: "placeholder case-insensitive", input: "YOUR_KEY_HERE", want: ""},
		{name: "none collapses", input: "none", want: ""},
		{name: "null collapses", input: "Null", want: ""},
		{name: "quoted placeholder collapses", input: `"your_key_here"`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAPIKey(tt.input); got != tt.want {
				t.Errorf("NormalizeAPIKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %s, want gpt-4o-mini", cfg.OpenAIModel)
	}
	if cfg.OpenAITimeout != 10*time.Second {
		t.Errorf("OpenAITimeout = %v, want 10s", cfg.OpenAITimeout)
	}
	if cfg.AIEnabled() {
		t.Error("AIEnabled() = true with no key configured, want false")
	}
	if cfg.SheetsExportEnabled() {
		t.Error("SheetsExportEnabled() = true with no spreadsheet configured, want false")
	}
}

func TestLoadPlaceholderKeyDisablesAI(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "your_openai_api_key_here")

	cfg := Load()
	if cfg.AIEnabled() {
		t.Error("AIEnabled() = true with placeholder key, want false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(c *Config) { c.SQLiteDBPath = "budget.db" },
		},
		{
			name: "non-numeric port",
			modify: func(c *Config) {
				c.SQLiteDBPath = "budget.db"
				c.Port = "abc"
			},
			wantErr: "invalid port",
		},
		{
			name: "port out of range",
			modify: func(c *Config) {
				c.SQLiteDBPath = "budget.db"
				c.Port = "70000"
			},
			wantErr: "invalid port",
		},
		{
			name: "bad AMQP scheme",
			modify: func(c *Config) {
				c.SQLiteDBPath = "budget.db"
				c.AMQPURL = "http://localhost:5672/"
			},
			wantErr: "invalid AMQP URL scheme",
		},
		{
			name: "recurring interval too small",
			modify: func(c *Config) {
				c.SQLiteDBPath = "budget.db"
				c.RecurringInterval = 100 * time.Millisecond
			},
			wantErr: "invalid recurring interval",
		},
		{
			name: "spreadsheet without credentials",
			modify: func(c *Config) {
				c.SQLiteDBPath = "budget.db"
				c.GoogleSpreadsheetID = "sheet-id"
			},
			wantErr: "GOOGLE_SERVICE_ACCOUNT_JSON",
		},
		{
			name: "unknown log level",
			modify: func(c *Config) {
				c.SQLiteDBPath = "budget.db"
				c.LogLevel = "verbose"
			},
			wantErr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
