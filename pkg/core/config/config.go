// ============================================================================
// tmplkit - Project Template Toolkit
// ============================================================================
//
// Package:     config
// Description: Checker configuration. Values are layered as defaults, then a
//              TOML or YAML file, then TMPLCHECK_* environment variables,
//              and the result is validated before use.
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	tkerror "github.com/tmplkit/tmplkit/foundation/core/error"
	"github.com/tmplkit/tmplkit/foundation/utils/timex"
)

// EnvPrefix is the prefix of all environment overrides
const EnvPrefix = "TMPLCHECK"

// EnvConfigPath names a config file when no path is given explicitly
const EnvConfigPath = "TMPLCHECK_CONFIG"

// Config holds the complete checker configuration
type Config struct {
	Project ProjectConfig `toml:"project" yaml:"project" envconfig:"PROJECT"`
	Checker CheckerConfig `toml:"checker" yaml:"checker" envconfig:"CHECKER"`
	Logging LoggingConfig `toml:"logging" yaml:"logging" envconfig:"LOGGING"`
	Steps   []StepConfig  `toml:"steps" yaml:"steps" ignored:"true" validate:"required,min=1,dive"`
}

// ProjectConfig describes the project copied into the workspace
type ProjectConfig struct {
	Dir     string   `toml:"dir" yaml:"dir" envconfig:"DIR" validate:"required"`
	Exclude []string `toml:"exclude" yaml:"exclude" envconfig:"EXCLUDE"`
}

// CheckerConfig holds pipeline settings
type CheckerConfig struct {
	KeepWorkspace    bool     `toml:"keep_workspace" yaml:"keep_workspace" envconfig:"KEEP_WORKSPACE"`
	WorkspacePattern string   `toml:"workspace_pattern" yaml:"workspace_pattern" envconfig:"WORKSPACE_PATTERN" validate:"required"`
	StepTimeout      Duration `toml:"step_timeout" yaml:"step_timeout" envconfig:"STEP_TIMEOUT" validate:"gte=0"`
	OutputTailLines  int      `toml:"output_tail_lines" yaml:"output_tail_lines" envconfig:"OUTPUT_TAIL_LINES" validate:"gte=0"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" envconfig:"LEVEL" validate:"oneof=trace debug info warn error fatal"`
	Format string `toml:"format" yaml:"format" envconfig:"FORMAT" validate:"oneof=console json text"`
}

// StepConfig describes one external command of the pipeline
type StepConfig struct {
	Name    string            `toml:"name" yaml:"name" validate:"required"`
	Command string            `toml:"command" yaml:"command" validate:"required"`
	Assert  *bool             `toml:"assert,omitempty" yaml:"assert,omitempty"`
	Env     map[string]string `toml:"env,omitempty" yaml:"env,omitempty"`
}

// Asserted reports whether a non-zero exit of the step fails the run.
// Steps assert unless configured otherwise.
func (s StepConfig) Asserted() bool {
	return s.Assert == nil || *s.Assert
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string such as "90s" or "2 minutes"
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = timex.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultExcludes are never copied into the workspace
var DefaultExcludes = []string{".venv", "__pycache__", ".mypy_cache", ".pytest_cache"}

// DefaultSteps returns the quality gate pipeline of the project template
func DefaultSteps() []StepConfig {
	notAsserted := false
	return []StepConfig{
		{Name: "uv venv", Command: "python -m uv venv"},
		{Name: "uv sync", Command: "python -m uv sync"},
		{Name: "pre-commit install", Command: "pre-commit install"},
		{Name: "pre-commit run", Command: "pre-commit run --all-files"},
		{Name: "mypy", Command: "mypy src/my_package"},
		{Name: "pytest", Command: "pytest", Assert: &notAsserted},
	}
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		Project: ProjectConfig{
			Dir:     ".",
			Exclude: append([]string(nil), DefaultExcludes...),
		},
		Checker: CheckerConfig{
			WorkspacePattern: "tmplcheck-*",
			OutputTailLines:  200,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Steps: DefaultSteps(),
	}
}

// Load builds the configuration. An empty path falls back to
// TMPLCHECK_CONFIG and then to the default file locations; when none
// exists, defaults and environment overrides are used alone.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	} else {
		path = os.ExpandEnv(path)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, tkerror.Newf("config file not found: %s", path).
				WithCode(tkerror.CodeNotFound).
				WithOperation("config.load").
				WithDetail("path", path)
		}
	}

	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, tkerror.Wrap(err, "failed to load config from env").
			WithCode(tkerror.CodeConfigError).
			WithOperation("config.load")
	}

	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile returns the first existing default location or ""
func findConfigFile() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return os.ExpandEnv(p)
	}

	defaultPaths := []string{
		"./tmplcheck.toml",
		"./tmplcheck.yaml",
		"./tmplcheck.yml",
		"./configs/tmplcheck.toml",
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// decodeFile overlays the file at path onto cfg. Keys missing from the file
// keep their current values.
func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return tkerror.Wrap(err, "failed to read config").
			WithCode(tkerror.CodeConfigError).
			WithOperation("config.load").
			WithDetail("path", path)
	}

	// a file that lists steps replaces the default pipeline entirely
	steps := cfg.Steps
	cfg.Steps = nil

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return tkerror.Newf("unsupported config format %q", ext).
			WithCode(tkerror.CodeConfigError).
			WithOperation("config.load").
			WithDetail("path", path)
	}
	if err != nil {
		return tkerror.Wrap(err, "failed to parse config").
			WithCode(tkerror.CodeConfigError).
			WithOperation("config.load").
			WithDetail("path", path)
	}

	if len(cfg.Steps) == 0 {
		cfg.Steps = steps
	}
	return nil
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Project.Dir = os.ExpandEnv(c.Project.Dir)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(Duration); ok {
			return int64(d.Duration)
		}
		return nil
	}, Duration{})
	return v
}

// Validate checks the configuration and reports every violation at once
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return c.checkStepNames()
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return tkerror.Wrap(err, "config validation failed").
			WithCode(tkerror.CodeInvalidConfig).
			WithOperation("config.validate")
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, formatValidationError(fe))
	}
	return tkerror.Newf("config validation failed: %s", strings.Join(messages, "; ")).
		WithCode(tkerror.CodeInvalidConfig).
		WithOperation("config.validate").
		WithDetail("violations", messages)
}

func (c *Config) checkStepNames() error {
	seen := make(map[string]bool, len(c.Steps))
	for _, s := range c.Steps {
		if seen[s.Name] {
			return tkerror.Newf("config validation failed: duplicate step name %q", s.Name).
				WithCode(tkerror.CodeInvalidConfig).
				WithOperation("config.validate").
				WithDetail("step", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// formatValidationError formats validation error messages
func formatValidationError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// WriteTOML encodes the configuration as TOML
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
