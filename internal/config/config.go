package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete trackmig configuration (v1 schema)
type Config struct {
	Version     int      `json:"version" mapstructure:"version"`
	BaseDir     string   `json:"baseDir" mapstructure:"baseDir"`
	ExcludeDirs []string `json:"excludeDirs" mapstructure:"excludeDirs"`

	ReportPath     string `json:"reportPath" mapstructure:"reportPath"`
	GuidePath      string `json:"guidePath" mapstructure:"guidePath"`
	MappingOverlay string `json:"mappingOverlay" mapstructure:"mappingOverlay"`

	Database DatabaseConfig `json:"database" mapstructure:"database"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
}

// DatabaseConfig contains tracking database configuration
type DatabaseConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		BaseDir: ".",
		ExcludeDirs: []string{
			"venv", "env", ".venv", ".git", "node_modules", "logs", "components",
		},
		ReportPath:     "import_scan_report.json",
		GuidePath:      "MIGRATION_GUIDE.md",
		MappingOverlay: ".trackmig/mappings.toml",
		Database: DatabaseConfig{
			Path: "logs/ai_logs.db",
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .trackmig/config.json under repoRoot.
// A missing config file yields the defaults.
func LoadConfig(repoRoot string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("version", defaults.Version)
	v.SetDefault("baseDir", defaults.BaseDir)
	v.SetDefault("excludeDirs", defaults.ExcludeDirs)
	v.SetDefault("reportPath", defaults.ReportPath)
	v.SetDefault("guidePath", defaults.GuidePath)
	v.SetDefault("mappingOverlay", defaults.MappingOverlay)
	v.SetDefault("database.path", defaults.Database.Path)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(repoRoot, ".trackmig"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to .trackmig/config.json under repoRoot.
func (c *Config) Save(repoRoot string) error {
	dir := filepath.Join(repoRoot, ".trackmig")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.BaseDir == "" {
		return &ConfigError{Field: "baseDir", Message: "base directory must not be empty"}
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "unknown log level"}
	}
	switch c.Logging.Format {
	case "", "human", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "unknown log format"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
