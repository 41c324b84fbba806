package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	env "github.com/Netflix/go-env"
	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendNone     = "none"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
)

const (
	defaultThreshold          = 0.6
	defaultFallbackConfidence = 0.75
	defaultBatchWorkers       = 4
	defaultLogLevel           = "INFO"
)

// Config holds the application configuration.
type Config struct {
	ModelPath          string      `yaml:"model_path"`
	LazyLoad           bool        `yaml:"lazy_load"`
	FallbackThreshold  float64     `yaml:"fallback_threshold"`
	FallbackConfidence float64     `yaml:"fallback_confidence"`
	BatchWorkers       int         `yaml:"batch_workers"`
	LogLevel           string      `yaml:"log_level"`
	EvidenceDir        string      `yaml:"evidence_dir"`
	Store              StoreConfig `yaml:"store"`
	ConfigDir          string      `yaml:"-"`
}

// StoreConfig selects where analyzed records are persisted.
type StoreConfig struct {
	Backend     string `yaml:"backend"`
	BadgerPath  string `yaml:"badger_path"`
	IndexPath   string `yaml:"index_path"`
	PostgresDSN string `yaml:"postgres_dsn"`
}

// envOverrides are read from MEDTRIAGE_* variables. Unset variables leave the file value.
type envOverrides struct {
	ModelPath          *string  `env:"MEDTRIAGE_MODEL_PATH"`
	LazyLoad           *bool    `env:"MEDTRIAGE_LAZY_LOAD"`
	FallbackThreshold  *float64 `env:"MEDTRIAGE_FALLBACK_THRESHOLD"`
	FallbackConfidence *float64 `env:"MEDTRIAGE_FALLBACK_CONFIDENCE"`
	BatchWorkers       *int     `env:"MEDTRIAGE_BATCH_WORKERS"`
	LogLevel           *string  `env:"MEDTRIAGE_LOG_LEVEL"`
	EvidenceDir        *string  `env:"MEDTRIAGE_EVIDENCE_DIR"`
	StoreBackend       *string  `env:"MEDTRIAGE_STORE_BACKEND"`
	BadgerPath         *string  `env:"MEDTRIAGE_BADGER_PATH"`
	IndexPath          *string  `env:"MEDTRIAGE_INDEX_PATH"`
	PostgresDSN        *string  `env:"MEDTRIAGE_POSTGRES_DSN"`
}

// Default returns the built-in configuration rooted at configDir.
func Default(configDir string) *Config {
	cfg := &Config{ConfigDir: configDir}
	applyDefaults(cfg)
	return cfg
}

// Load reads ~/.medtriage/config.yaml when present and applies environment overrides.
// Environment variables take precedence over file configuration.
func Load() (*Config, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := &Config{ConfigDir: configDir}
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
		applyDefaults(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile reads configuration from a YAML file and applies environment overrides.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.ConfigDir = filepath.Dir(path)
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and backend requirements.
func (c *Config) Validate() error {
	if c.FallbackThreshold <= 0 || c.FallbackThreshold > 1 {
		return fmt.Errorf("fallback_threshold must be in (0, 1], got %v", c.FallbackThreshold)
	}
	if c.FallbackConfidence <= 0 || c.FallbackConfidence > 1 {
		return fmt.Errorf("fallback_confidence must be in (0, 1], got %v", c.FallbackConfidence)
	}
	if c.BatchWorkers < 1 {
		return fmt.Errorf("batch_workers must be at least 1, got %d", c.BatchWorkers)
	}
	switch c.Store.Backend {
	case BackendNone, BackendBadger:
	case BackendPostgres:
		if c.Store.PostgresDSN == "" {
			return fmt.Errorf("store.postgres_dsn is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	return nil
}

// Persistent reports whether analyzed records should be stored.
func (c *Config) Persistent() bool {
	return c.Store.Backend != BackendNone
}

func applyEnv(cfg *Config) error {
	var o envOverrides
	if _, err := env.UnmarshalFromEnviron(&o); err != nil {
		return fmt.Errorf("config env error: %w", err)
	}
	setIf(&cfg.ModelPath, o.ModelPath)
	setIf(&cfg.LazyLoad, o.LazyLoad)
	setIf(&cfg.FallbackThreshold, o.FallbackThreshold)
	setIf(&cfg.FallbackConfidence, o.FallbackConfidence)
	setIf(&cfg.BatchWorkers, o.BatchWorkers)
	setIf(&cfg.LogLevel, o.LogLevel)
	setIf(&cfg.EvidenceDir, o.EvidenceDir)
	setIf(&cfg.Store.Backend, o.StoreBackend)
	setIf(&cfg.Store.BadgerPath, o.BadgerPath)
	setIf(&cfg.Store.IndexPath, o.IndexPath)
	setIf(&cfg.Store.PostgresDSN, o.PostgresDSN)
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.FallbackThreshold == 0 {
		cfg.FallbackThreshold = defaultThreshold
	}
	if cfg.FallbackConfidence == 0 {
		cfg.FallbackConfidence = defaultFallbackConfidence
	}
	if cfg.BatchWorkers == 0 {
		cfg.BatchWorkers = defaultBatchWorkers
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	cfg.LogLevel = strings.ToUpper(cfg.LogLevel)
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = BackendNone
	}
	cfg.Store.Backend = strings.ToLower(cfg.Store.Backend)
	if cfg.Store.BadgerPath == "" {
		cfg.Store.BadgerPath = filepath.Join(cfg.ConfigDir, "store")
	}
	if cfg.Store.IndexPath == "" {
		cfg.Store.IndexPath = filepath.Join(cfg.ConfigDir, "index")
	}
}

func getConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".medtriage")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", err
	}
	return configDir, nil
}
