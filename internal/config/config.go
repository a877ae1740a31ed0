// Package config provides configuration management for the converter.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInputPath = errors.New("input.path is required")
	ErrMissingOutputDir = errors.New("output.dir is required")
	ErrInvalidLogLevel  = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat = errors.New("logging.format must be 'text' or 'json'")
	ErrMissingOwner     = errors.New("publish.owner is required")
	ErrMissingRepo      = errors.New("publish.repo is required")
	ErrMissingBranch    = errors.New("publish.branch is required")
	ErrMissingTokenEnv  = errors.New("publish.token_env is required")
)

// Config is the complete converter configuration.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Sanitize SanitizeConfig `yaml:"sanitize"`
	Logging  LoggingConfig  `yaml:"logging"`
	Publish  PublishConfig  `yaml:"publish"`
}

// InputConfig locates the compressed XML export.
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig defines where the CSV tree is written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// SanitizeConfig configures the free-text sanitizer.
type SanitizeConfig struct {
	KeepComments       bool `yaml:"keep_comments"`
	PreserveWhitespace bool `yaml:"preserve_whitespace"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// PublishConfig identifies the repository the CSV tree is published to.
type PublishConfig struct {
	Owner         string `yaml:"owner"`
	Repo          string `yaml:"repo"`
	Branch        string `yaml:"branch"`
	CommitMessage string `yaml:"commit_message"`
	TokenEnv      string `yaml:"token_env"`
	APIBase       string `yaml:"api_base"`
}

// LoadConfig loads configuration from a YAML file and applies defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = "out"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	if c.Publish.Branch == "" {
		c.Publish.Branch = "main"
	}

	if c.Publish.CommitMessage == "" {
		c.Publish.CommitMessage = "Update state program report exports"
	}

	if c.Publish.TokenEnv == "" {
		c.Publish.TokenEnv = "GITHUB_TOKEN"
	}

	if c.Publish.APIBase == "" {
		c.Publish.APIBase = "https://api.github.com"
	}
}

// Validate checks the fields every command depends on.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return ErrMissingInputPath
	}

	if c.Output.Dir == "" {
		return ErrMissingOutputDir
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// ValidatePublish checks the fields the publish command depends on.
func (c *Config) ValidatePublish() error {
	if c.Publish.Owner == "" {
		return ErrMissingOwner
	}

	if c.Publish.Repo == "" {
		return ErrMissingRepo
	}

	if c.Publish.Branch == "" {
		return ErrMissingBranch
	}

	if c.Publish.TokenEnv == "" {
		return ErrMissingTokenEnv
	}

	return nil
}

// Token reads the publish token from the configured environment variable.
func (c *Config) Token() string {
	return os.Getenv(c.Publish.TokenEnv)
}

// String returns a short description of the config.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Input: %s, Output: %s, Publish: %s/%s@%s}",
		c.Input.Path,
		c.Output.Dir,
		c.Publish.Owner,
		c.Publish.Repo,
		c.Publish.Branch,
	)
}
