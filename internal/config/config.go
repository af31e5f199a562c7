package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel      = "warn"
	defaultLogEncoding   = EncodingJSON
	defaultFormat        = FormatText
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 28

	envPrefix = "INDEXURL_"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Log encodings.
const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

var (
	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("format must be one of text, json, yaml")
	// ErrInvalidLogLevel is returned for an unknown log level.
	ErrInvalidLogLevel = errors.New("log level must be one of debug, info, warn, error")
	// ErrInvalidLogEncoding is returned for an unknown log encoding.
	ErrInvalidLogEncoding = errors.New("log encoding must be json or console")
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds the settings of the indexurl command itself. It never affects
// how the index URL is resolved, only how the answer and diagnostics are
// reported.
// Precedence: CLI flags > Environment variables > YAML config > Defaults
type Config struct {
	LogLevel      string
	LogEncoding   string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	Format        string
	Explain       bool
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Log    yamlLog    `yaml:"log"`
	Output yamlOutput `yaml:"output"`
}

// yamlLog represents the log section in YAML.
type yamlLog struct {
	Level      string `yaml:"level"`
	Encoding   string `yaml:"encoding"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age"`
}

// yamlOutput represents the output section in YAML.
type yamlOutput struct {
	Format  string `yaml:"format"`
	Explain *bool  `yaml:"explain"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile  string
	LogLevel    *string
	LogEncoding *string
	LogFile     *string
	Format      *string
	Explain     *bool
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > Environment variables > YAML config > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	applyEnvConfig(&cfg)

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	normalizeConfig(&cfg)
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		LogLevel:      defaultLogLevel,
		LogEncoding:   defaultLogEncoding,
		LogMaxSizeMB:  defaultLogMaxSizeMB,
		LogMaxBackups: defaultLogMaxBackups,
		LogMaxAgeDays: defaultLogMaxAgeDays,
		Format:        defaultFormat,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.Log.Level != "" {
		cfg.LogLevel = yamlCfg.Log.Level
	}

	if yamlCfg.Log.Encoding != "" {
		cfg.LogEncoding = yamlCfg.Log.Encoding
	}

	if yamlCfg.Log.File != "" {
		cfg.LogFile = yamlCfg.Log.File
	}

	if yamlCfg.Log.MaxSizeMB > 0 {
		cfg.LogMaxSizeMB = yamlCfg.Log.MaxSizeMB
	}

	if yamlCfg.Log.MaxBackups > 0 {
		cfg.LogMaxBackups = yamlCfg.Log.MaxBackups
	}

	if yamlCfg.Log.MaxAgeDays > 0 {
		cfg.LogMaxAgeDays = yamlCfg.Log.MaxAgeDays
	}

	if yamlCfg.Output.Format != "" {
		cfg.Format = yamlCfg.Output.Format
	}

	if yamlCfg.Output.Explain != nil {
		cfg.Explain = *yamlCfg.Output.Explain
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if level := lookupEnv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if encoding := lookupEnv("LOG_ENCODING"); encoding != "" {
		cfg.LogEncoding = encoding
	}

	if file := lookupEnv("LOG_FILE"); file != "" {
		cfg.LogFile = file
	}

	if format := lookupEnv("FORMAT"); format != "" {
		cfg.Format = format
	}

	if explain := lookupEnv("EXPLAIN"); explain != "" {
		if value, err := strconv.ParseBool(explain); err == nil {
			cfg.Explain = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	if overrides.LogEncoding != nil && *overrides.LogEncoding != "" {
		cfg.LogEncoding = *overrides.LogEncoding
	}

	if overrides.LogFile != nil && *overrides.LogFile != "" {
		cfg.LogFile = *overrides.LogFile
	}

	if overrides.Format != nil && *overrides.Format != "" {
		cfg.Format = *overrides.Format
	}

	if overrides.Explain != nil {
		cfg.Explain = *overrides.Explain
	}
}

// normalizeConfig lower-cases the enumerated settings.
func normalizeConfig(cfg *Config) {
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.LogEncoding = strings.ToLower(cfg.LogEncoding)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	switch cfg.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}

	switch cfg.LogEncoding {
	case EncodingJSON, EncodingConsole:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogEncoding, cfg.LogEncoding)
	}

	if !slices.Contains(logLevels, cfg.LogLevel) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	return nil
}

func lookupEnv(name string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + name))
}
