// ============================================================================
// lambda - Parser toolkit for a minimal lambda language
// ============================================================================
//
// Package:     config
// Description: TOML/YAML configuration for the lambda command line tool
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/lambda/foundation/core/error"
	mdwlog "github.com/msto63/lambda/foundation/core/log"
)

// EnvVar names the environment variable holding the config file path
const EnvVar = "LAMBDA_CONFIG"

// Config holds the complete tool configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Check   CheckConfig   `toml:"check" yaml:"check"`

	// Source is the file the configuration was read from, empty for defaults
	Source string `toml:"-" yaml:"-"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig holds parser limits. Negative values disable a limit.
type ParserConfig struct {
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`
	MaxDepth       int `toml:"max_depth" yaml:"max_depth"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format    string `toml:"format" yaml:"format"`
	Color     string `toml:"color" yaml:"color"`
	Indent    int    `toml:"indent" yaml:"indent"`
	Multiline bool   `toml:"multiline" yaml:"multiline"`
}

// CheckConfig holds batch checking settings
type CheckConfig struct {
	Workers int      `toml:"workers" yaml:"workers"`
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

// Output formats accepted by the parse command
var OutputFormats = []string{"tree", "sexpr", "ctor", "json", "yaml", "source"}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Wrap(err, "config file not found").
				WithCode(mdwerror.CodeMissingConfig).
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeIO).
			WithDetail("path", path)
	}

	var cfg Config
	switch format := detectFormat(path); format {
	case "toml":
		err = toml.Unmarshal(data, &cfg)
	case "yaml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, mdwerror.Newf("unsupported config format %q", filepath.Ext(path)).
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Source = path
	return &cfg, nil
}

// LoadFromEnv loads the file named by LAMBDA_CONFIG, else the first of
// ./lambda.toml, ./lambda.yaml and ~/.config/lambda/config.toml that exists.
// Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{"./lambda.toml", "./lambda.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "lambda", "config.toml"))
	}
	return paths
}

func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Parser
	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = 1 << 20
	}
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = 10000
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "tree"
	}
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
	if c.Output.Indent == 0 {
		c.Output.Indent = 2
	}

	// Check
	if c.Check.Timeout.Duration == 0 {
		c.Check.Timeout.Duration = 30 * time.Second
	}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}, reason string) error {
		return mdwerror.Newf("invalid config value for %s: %s", field, reason).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err.Error())
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err.Error())
	}
	if !contains(OutputFormats, c.Output.Format) {
		return invalid("output.format", c.Output.Format, "must be one of "+strings.Join(OutputFormats, ", "))
	}
	if !contains([]string{"auto", "always", "never"}, c.Output.Color) {
		return invalid("output.color", c.Output.Color, "must be auto, always or never")
	}
	if c.Output.Indent < 1 || c.Output.Indent > 16 {
		return invalid("output.indent", c.Output.Indent, "must be between 1 and 16")
	}
	if c.Check.Workers < 0 || c.Check.Workers > 1024 {
		return invalid("check.workers", c.Check.Workers, "must be between 0 and 1024")
	}
	if c.Check.Timeout.Duration < 0 {
		return invalid("check.timeout", c.Check.Timeout.String(), "must not be negative")
	}

	return nil
}

// WriteTOML writes the configuration as TOML
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
