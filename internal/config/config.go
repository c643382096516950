package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	StorageBackendAuto     = "auto"
	StorageBackendCSV      = "csv"
	StorageBackendPostgres = "postgres"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	LogMaxSizeMB  int    `toml:"log_max_size_mb"`
	LogMaxBackups int    `toml:"log_max_backups"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// storage
	Storage        string `toml:"storage_backend"`
	DataDir        string `toml:"data_dir"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis, auth
	RedisHost               string `toml:"redis_host"`
	RedisPort               string `toml:"redis_port"`
	AuthEnabled             bool   `toml:"auth_enabled"`
	WriteRateLimitPerMinute int    `toml:"write_rate_limit_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	cfg.Environment = strings.ToLower(env)
	return cfg, nil
}

// Load reads the TOML file at path and returns the config for the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return errors.New("port must be set")
	}
	switch c.StorageBackend() {
	case StorageBackendCSV:
		if c.DataDir == "" {
			return errors.New("data_dir must be set for csv storage")
		}
	case StorageBackendPostgres:
		if c.PostgresHost == "" || c.PostgresDBName == "" {
			return errors.New("postgres_host and postgres_db_name must be set for postgres storage")
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage)
	}
	return nil
}

// StorageBackend resolves which store the log and the XP ledger live in.
// With no explicit choice, postgres wins when it is configured.
func (c *Config) StorageBackend() string {
	switch strings.ToLower(c.Storage) {
	case "", StorageBackendAuto:
		if c.PostgresHost != "" {
			return StorageBackendPostgres
		}
		return StorageBackendCSV
	default:
		return strings.ToLower(c.Storage)
	}
}
