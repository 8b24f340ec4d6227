// Package config loads campusauth settings.
//
// Sources, lowest to highest priority: built-in defaults, an optional config
// file (YAML, JSON or TOML), CAMPUSAUTH_* environment variables and
// command-line flags. Nested keys map to env vars with dots replaced by
// underscores, e.g. security.token_ttl -> CAMPUSAUTH_SECURITY_TOKEN_TTL.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iudanet/campusauth/internal/crypto"
)

// Storage backends
const (
	BackendJSON   = "json"
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// EnvPrefix - префикс переменных окружения
const EnvPrefix = "CAMPUSAUTH"

const (
	defaultJSONPath = "data/users.json"
	defaultDBPath   = "data/users.db"
)

// Config holds runtime settings.
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"`
	Log      LogConfig      `mapstructure:"log"`
	Security SecurityConfig `mapstructure:"security"`
}

// StorageConfig selects where the credential document lives.
type StorageConfig struct {
	Backend string `mapstructure:"backend"` // json, bolt или sqlite
	Path    string `mapstructure:"path"`    // путь к файлу документа
}

// SecurityConfig holds hashing and reset-token parameters.
type SecurityConfig struct {
	Iterations  int           `mapstructure:"iterations"`
	SaltSize    int           `mapstructure:"salt_size"`
	TokenLength int           `mapstructure:"token_length"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text или json
}

// flag name -> config key
var flagKeys = map[string]string{
	"storage":    "storage.backend",
	"path":       "storage.path",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to config file (yaml, json or toml)")
	fs.String("storage", BackendJSON, "Storage backend: json, bolt or sqlite")
	fs.String("path", "", "Path to the credential document (default depends on backend)")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")
	fs.String("log-format", "text", "Log format: text or json")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", BackendJSON)
	v.SetDefault("storage.path", "")
	v.SetDefault("security.iterations", crypto.DefaultIterations)
	v.SetDefault("security.salt_size", crypto.DefaultSaltSize)
	v.SetDefault("security.token_length", crypto.DefaultTokenLength)
	v.SetDefault("security.token_ttl", time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load builds the configuration from defaults, the config file named by the
// --config flag, the environment and the flags in fs. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Переменные окружения CAMPUSAUTH_*
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := ""
	if fs != nil {
		for name, key := range flagKeys {
			if flag := fs.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
		if flag := fs.Lookup("config"); flag != nil {
			configFile = flag.Value.String()
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.applyDerivedDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDerivedDefaults подставляет путь по умолчанию в зависимости от backend
func (c *Config) applyDerivedDefaults() {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Path != "" {
		return
	}
	if c.Storage.Backend == BackendJSON {
		c.Storage.Path = defaultJSONPath
	} else {
		c.Storage.Path = defaultDBPath
	}
}

// HashParams returns the password hashing parameters.
func (c *Config) HashParams() crypto.Params {
	return crypto.Params{
		Iterations: c.Security.Iterations,
		SaltSize:   c.Security.SaltSize,
	}
}

// Validate checks the configuration for values the store would reject.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendBolt, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if err := c.HashParams().Validate(); err != nil {
		return fmt.Errorf("invalid security config: %w", err)
	}
	if c.Security.TokenLength < crypto.MinTokenLength {
		return fmt.Errorf("invalid security config: token length must be at least %d", crypto.MinTokenLength)
	}
	if c.Security.TokenTTL <= 0 {
		return fmt.Errorf("invalid security config: token ttl must be positive")
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	return nil
}
