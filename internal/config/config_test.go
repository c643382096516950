package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigToml = `
[development]
host = "localhost"
port = 9000
log_level = "debug"
log_to_stdout = true
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "9001"
data_dir = "./data"
redis_host = "localhost"
redis_port = "6379"
write_rate_limit_per_min = 30

[production]
host = "0.0.0.0"
port = 8080
log_level = "info"
logs_path = "/var/log/training/service"
log_format_json = true
log_max_backups = 30
storage_backend = "auto"
postgres_host = "db"
postgres_port = "5432"
postgres_db_name = "training"
auth_enabled = true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, testConfigToml)

	devCfg, err := Load("dev", path)
	require.NoError(t, err)
	assert.Equal(t, "dev", devCfg.Environment)
	assert.Equal(t, 9000, devCfg.Port)
	assert.Equal(t, "debug", devCfg.LogLevel)
	assert.Equal(t, "./data", devCfg.DataDir)
	assert.Equal(t, 30, devCfg.WriteRateLimitPerMinute)
	assert.Equal(t, StorageBackendCSV, devCfg.StorageBackend())
	assert.False(t, devCfg.AuthEnabled)

	prodCfg, err := Load("production", path)
	require.NoError(t, err)
	assert.Equal(t, 8080, prodCfg.Port)
	assert.True(t, prodCfg.LogFormatJSON)
	assert.Equal(t, 30, prodCfg.LogMaxBackups)
	assert.Zero(t, prodCfg.LogMaxSizeMB)
	assert.Equal(t, StorageBackendPostgres, prodCfg.StorageBackend())
	assert.True(t, prodCfg.AuthEnabled)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("dev", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	path := writeConfig(t, testConfigToml)
	_, err = Load("staging", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown env")

	path = writeConfig(t, `
[development]
port = 9000
storage_backend = "csv"
`)
	_, err = Load("dev", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data_dir")

	path = writeConfig(t, `
[development]
port = 9000
storage_backend = "sqlite"
`)
	_, err = Load("dev", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}

func TestConfig_StorageBackend(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      Config
		expected string
	}{
		{name: "EmptyNoPostgres", cfg: Config{}, expected: StorageBackendCSV},
		{name: "AutoWithPostgres", cfg: Config{Storage: "auto", PostgresHost: "db"}, expected: StorageBackendPostgres},
		{name: "ExplicitCSV", cfg: Config{Storage: "CSV", PostgresHost: "db"}, expected: StorageBackendCSV},
		{name: "ExplicitPostgres", cfg: Config{Storage: "postgres"}, expected: StorageBackendPostgres},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cfg.StorageBackend())
		})
	}
}
