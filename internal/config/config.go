package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
	DriverBrowser  = "browser" // window.localStorage, js/wasm builds only
)

// S3 addresses the bucket used for remote backups.
type S3 struct {
	Endpoint  string `json:"endpoint"`
	Region    string `json:"region"`
	Bucket    string `json:"bucket"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

// Config holds runtime settings for the SkillVerse CLI.
type Config struct {
	StoreDriver  string `json:"store_driver"`
	StoreDSN     string `json:"store_dsn"`
	DigestScheme string `json:"digest_scheme"`
	LogLevel     string `json:"log_level"`
	LogFormat    string `json:"log_format"`
	LogBackend   string `json:"log_backend"`
	BackupDir    string `json:"backup_dir"`
	S3           S3     `json:"s3"`
}

func dataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "skillverse")
	}
	return ".skillverse"
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	dir := dataDir()
	c.StoreDriver = DriverSQLite
	c.StoreDSN = filepath.Join(dir, "skillverse.db")
	c.DigestScheme = "argon2id"
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.LogBackend = "slog"
	c.BackupDir = filepath.Join(dir, "backups")
	c.S3 = S3{Region: "us-east-1", Bucket: "skillverse"}
}

func Defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

// Validate checks enumerated values that no later component checks itself.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverSQLite, DriverPostgres, DriverMemory, DriverBrowser:
	default:
		return fmt.Errorf("config: unknown store driver %q", c.StoreDriver)
	}
	if (c.StoreDriver == DriverSQLite || c.StoreDriver == DriverPostgres) && c.StoreDSN == "" {
		return fmt.Errorf("config: store dsn is empty")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}

// field links one string setting to its environment variable and flag.
type field struct {
	flag  string
	env   string
	usage string
	dst   *string
}

func (c *Config) fields() []field {
	return []field{
		{"store", "STORE_DRIVER", "store backend: sqlite, postgres, memory or browser (js/wasm)", &c.StoreDriver},
		{"dsn", "STORE_DSN", "sqlite file path or postgres connection string", &c.StoreDSN},
		{"digest", "DIGEST_SCHEME", "password digest for new passwords: argon2id, bcrypt or legacy", &c.DigestScheme},
		{"log-level", "LOG_LEVEL", "log level: debug, info, warn, error", &c.LogLevel},
		{"log-format", "LOG_FORMAT", "log format: text or json", &c.LogFormat},
		{"log-backend", "LOG_BACKEND", "log backend: slog or zerolog", &c.LogBackend},
		{"backup-dir", "BACKUP_DIR", "directory for local backups", &c.BackupDir},
		{"s3-endpoint", "S3_ENDPOINT", "S3-compatible endpoint URL", &c.S3.Endpoint},
		{"s3-region", "S3_REGION", "S3 region", &c.S3.Region},
		{"s3-bucket", "S3_BUCKET", "S3 bucket for backups", &c.S3.Bucket},
		{"s3-access-key", "S3_ACCESS_KEY", "S3 access key", &c.S3.AccessKey},
		{"s3-secret-key", "S3_SECRET_KEY", "S3 secret key", &c.S3.SecretKey},
	}
}
