package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/campusauth/internal/crypto"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, "data/users.json", cfg.Storage.Path)
	assert.Equal(t, crypto.DefaultIterations, cfg.Security.Iterations)
	assert.Equal(t, crypto.DefaultSaltSize, cfg.Security.SaltSize)
	assert.Equal(t, crypto.DefaultTokenLength, cfg.Security.TokenLength)
	assert.Equal(t, time.Hour, cfg.Security.TokenTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_NilFlagSet(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load(newFlagSet(t, "--storage", "bolt", "--log-level", "debug", "--log-format", "json"))
	require.NoError(t, err)

	assert.Equal(t, BackendBolt, cfg.Storage.Backend)
	// Для bolt путь по умолчанию - .db файл
	assert.Equal(t, "data/users.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CAMPUSAUTH_STORAGE_BACKEND", "sqlite")
	t.Setenv("CAMPUSAUTH_STORAGE_PATH", "/tmp/campus.db")
	t.Setenv("CAMPUSAUTH_SECURITY_TOKEN_TTL", "30m")
	t.Setenv("CAMPUSAUTH_SECURITY_ITERATIONS", "150000")

	cfg, err := Load(newFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/campus.db", cfg.Storage.Path)
	assert.Equal(t, 30*time.Minute, cfg.Security.TokenTTL)
	assert.Equal(t, 150000, cfg.Security.Iterations)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("CAMPUSAUTH_STORAGE_BACKEND", "sqlite")

	cfg, err := Load(newFlagSet(t, "--storage", "json"))
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campusauth.yaml")
	content := `
storage:
  backend: bolt
  path: /var/lib/campusauth/users.db
security:
  token_length: 40
  token_ttl: 2h
log:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(newFlagSet(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, BackendBolt, cfg.Storage.Backend)
	assert.Equal(t, "/var/lib/campusauth/users.db", cfg.Storage.Path)
	assert.Equal(t, 40, cfg.Security.TokenLength)
	assert.Equal(t, 2*time.Hour, cfg.Security.TokenTTL)
	assert.Equal(t, "json", cfg.Log.Format)
	// Не указанные в файле значения берутся по умолчанию
	assert.Equal(t, crypto.DefaultIterations, cfg.Security.Iterations)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(newFlagSet(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		args   []string
		errMsg string
	}{
		{name: "unknown backend", args: []string{"--storage", "redis"}, errMsg: "unknown storage backend"},
		{name: "weak iterations", env: map[string]string{"CAMPUSAUTH_SECURITY_ITERATIONS": "1000"}, errMsg: "iterations must be at least"},
		{name: "short salt", env: map[string]string{"CAMPUSAUTH_SECURITY_SALT_SIZE": "8"}, errMsg: "salt size must be at least"},
		{name: "short token", env: map[string]string{"CAMPUSAUTH_SECURITY_TOKEN_LENGTH": "10"}, errMsg: "token length must be at least"},
		{name: "negative ttl", env: map[string]string{"CAMPUSAUTH_SECURITY_TOKEN_TTL": "-1m"}, errMsg: "token ttl must be positive"},
		{name: "bad log format", args: []string{"--log-format", "xml"}, errMsg: "unknown log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(newFlagSet(t, tt.args...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
