// Package config loads the application configuration from environment
// variables.
package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DefaultCredentialsFile is the default path to the Google service
// account JSON file.
const DefaultCredentialsFile = "credentials.json"

// Config holds the application configuration loaded from environment
// variables.
type Config struct {
	// BotToken is the Telegram bot API token.
	// Environment variable: BOT_TOKEN
	BotToken string `koanf:"BOT_TOKEN"`

	// SpreadsheetName is the spreadsheet title, used to create a new
	// spreadsheet when SpreadsheetID is empty.
	// Environment variable: SPREADSHEET_NAME
	SpreadsheetName string `koanf:"SPREADSHEET_NAME"`

	// SpreadsheetID is the ID of an existing spreadsheet to use.
	// Environment variable: SPREADSHEET_ID
	SpreadsheetID string `koanf:"SPREADSHEET_ID"`

	// SheetName is the name of the sheet/tab within the spreadsheet.
	// Environment variable: SHEET_NAME
	SheetName string `koanf:"SHEET_NAME"`

	// GoogleCredentialsFile is the path to the service account JSON file.
	// Environment variable: GOOGLE_CREDENTIALS_FILE
	GoogleCredentialsFile string `koanf:"GOOGLE_CREDENTIALS_FILE"`

	// GoogleCredentialsJSON is the raw service account JSON, used when
	// the credentials file does not exist.
	// Environment variable: GOOGLE_CREDENTIALS_JSON
	GoogleCredentialsJSON string `koanf:"GOOGLE_CREDENTIALS_JSON"`

	// Store selects the ledger backend: sheets, postgres, csv or json.
	// Environment variable: STORE
	Store string `koanf:"STORE"`

	// CSVPath is the ledger file path for the csv store.
	// Environment variable: CSV_PATH
	CSVPath string `koanf:"CSV_PATH"`

	// JSONPath is the ledger file path for the json store.
	// Environment variable: JSON_PATH
	JSONPath string `koanf:"JSON_PATH"`

	// HTTPAddr is the listen address for the health endpoints.
	// Environment variable: HTTP_ADDR
	HTTPAddr string `koanf:"HTTP_ADDR"`

	// RestartDelaySeconds is the fixed backoff before relaunching the
	// bot after a crash.
	// Environment variable: RESTART_DELAY
	RestartDelaySeconds int `koanf:"RESTART_DELAY"`

	// Postgres configuration (used by the postgres store).
	Postgres PostgresConfig
}

// PostgresConfig holds PostgreSQL connection configuration.
type PostgresConfig struct {
	Host     string `koanf:"POSTGRES_HOST"`
	Port     int    `koanf:"POSTGRES_PORT"`
	Database string `koanf:"POSTGRES_DB"`
	User     string `koanf:"POSTGRES_USER"`
	Password string `koanf:"POSTGRES_PASSWORD"`
	SSLMode  string `koanf:"POSTGRES_SSLMODE"`
}

// Load reads configuration from the environment and applies defaults.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return Config{}, fmt.Errorf("loading config from environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.SpreadsheetName == "" {
		cfg.SpreadsheetName = "Personal Finance Tracker"
	}
	if cfg.SheetName == "" {
		cfg.SheetName = "Sheet1"
	}
	if cfg.GoogleCredentialsFile == "" {
		cfg.GoogleCredentialsFile = DefaultCredentialsFile
	}
	if cfg.Store == "" {
		cfg.Store = "sheets"
	}
	if cfg.CSVPath == "" {
		cfg.CSVPath = "ledger.csv"
	}
	if cfg.JSONPath == "" {
		cfg.JSONPath = "ledger.json"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":5000"
	}
	if cfg.RestartDelaySeconds <= 0 {
		cfg.RestartDelaySeconds = 30
	}

	return cfg, nil
}
