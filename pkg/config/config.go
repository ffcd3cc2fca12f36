package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feynman.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Matcher MatcherConfig `yaml:"matcher" json:"matcher" jsonschema:"description=Pattern matcher configuration"`

	Annotator string `yaml:"annotator" json:"annotator" jsonschema:"default=数据标注专家,description=Annotator identity recorded on saved annotations"`
}

// MatcherConfig holds pattern matcher and suggestion settings
type MatcherConfig struct {
	Debounce       time.Duration `yaml:"debounce" json:"debounce" jsonschema:"default=500ms,description=Delay after input stops changing before suggestions recompute"`
	MinTextLength  int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=20,minimum=1,description=Minimum trimmed input length to trigger matching"`
	MaxSuggestions int           `yaml:"max_suggestions" json:"max_suggestions" jsonschema:"default=3,minimum=1,description=Maximum suggestions returned to the caller"`
	RulesFile      string        `yaml:"rules_file" json:"rules_file" jsonschema:"description=Optional path to a custom pattern rules JSON file (bundled rules used when empty)"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:feynman.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// set defaults for matcher
	if c.Matcher.Debounce == 0 {
		c.Matcher.Debounce = 500 * time.Millisecond
	}
	if c.Matcher.MinTextLength == 0 {
		c.Matcher.MinTextLength = 20
	}
	if c.Matcher.MaxSuggestions == 0 {
		c.Matcher.MaxSuggestions = 3
	}

	if c.Annotator == "" {
		c.Annotator = "数据标注专家"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate matcher config
	if cfg.Matcher.MinTextLength < 1 {
		return fmt.Errorf("matcher.min_text_length must be at least 1")
	}
	if cfg.Matcher.MaxSuggestions < 1 {
		return fmt.Errorf("matcher.max_suggestions must be at least 1")
	}
	if cfg.Matcher.Debounce < 0 {
		return fmt.Errorf("matcher.debounce must be non-negative")
	}
	if cfg.Matcher.RulesFile != "" {
		if _, err := os.Stat(cfg.Matcher.RulesFile); err != nil {
			return fmt.Errorf("matcher.rules_file not accessible: %w", err)
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetMatcherConfig returns pattern matcher configuration
func (c *Config) GetMatcherConfig() MatcherConfig {
	return c.Matcher
}

// GetAnnotator returns the annotator identity recorded on saved annotations
func (c *Config) GetAnnotator() string {
	return c.Annotator
}
