package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported key-value store backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	KV        KVConfig
	Sheets    SheetsConfig
	Weather   WeatherConfig
	Retention RetentionConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// KVConfig selects and parameterizes the key-value store backend.
type KVConfig struct {
	Backend     string
	RedisAddr   string
	MongoURI    string
	MongoDBName string
}

// SheetsConfig configures the optional ledger spreadsheet export. Export is
// disabled when either field is empty.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// WeatherConfig configures the optional upstream forecast provider. The
// synthetic generator is used when BaseURL is empty.
type WeatherConfig struct {
	BaseURL string
}

// RetentionConfig holds audit-log pruning settings.
type RetentionConfig struct {
	CronSchedule string
	AuditKeep    int
	Timezone     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	auditKeep, err := strconv.Atoi(getenvWithDefault("AUDIT_RETENTION", "100"))
	if err != nil {
		return nil, fmt.Errorf("AUDIT_RETENTION must be an integer: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		KV: KVConfig{
			Backend:     getenvWithDefault("KV_BACKEND", BackendMemory),
			RedisAddr:   getenvWithDefault("REDIS_ADDR", "localhost:6379"),
			MongoURI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			MongoDBName: getenvWithDefault("MONGODB_DB_NAME", "krishimitra"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_LEDGER_ID"),
		},
		Weather: WeatherConfig{
			BaseURL: os.Getenv("WEATHER_API_URL"),
		},
		Retention: RetentionConfig{
			CronSchedule: getenvWithDefault("AUDIT_PRUNE_SCHEDULE", "30 2 * * *"),
			AuditKeep:    auditKeep,
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Kolkata"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch c.KV.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.KV.RedisAddr == "" {
			return errors.New("REDIS_ADDR must be provided for the redis backend")
		}
	case BackendMongo:
		if c.KV.MongoURI == "" {
			return errors.New("MONGODB_URI must be provided for the mongo backend")
		}
		if c.KV.MongoDBName == "" {
			return errors.New("MONGODB_DB_NAME must be provided for the mongo backend")
		}
	default:
		return fmt.Errorf("unknown KV_BACKEND %q", c.KV.Backend)
	}

	// Sheets export requires both values or neither.
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_LEDGER_ID must be set together")
	}

	if c.Retention.CronSchedule == "" {
		return errors.New("AUDIT_PRUNE_SCHEDULE must be provided")
	}
	if c.Retention.AuditKeep < 1 {
		return errors.New("AUDIT_RETENTION must be at least 1")
	}
	if c.Retention.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
