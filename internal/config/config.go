// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides option resolution and validation for convertml.
package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatMathML  = "mathml"
	FormatBraille = "braille"
	FormatDots    = "dots"
	FormatYAML    = "yaml"
	FormatJSON    = "json"
)

// Config represents the convertml options.
type Config struct {
	// Format selects what is printed for the expression
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// Inline renders in inline mode instead of display mode
	Inline bool `mapstructure:"inline" yaml:"inline" json:"inline"`

	// Verbose enables debug diagnostics on stderr
	Verbose bool `mapstructure:"verbose" yaml:"verbose" json:"verbose"`
}

// supportedFormats is the list of supported output formats.
var supportedFormats = []string{
	FormatMathML,
	FormatBraille,
	FormatDots,
	FormatYAML,
	FormatJSON,
}

// SupportedFormats returns the accepted values of Format.
func SupportedFormats() []string {
	return append([]string(nil), supportedFormats...)
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("config validation errors:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Field)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Format:  FormatMathML,
		Inline:  false,
		Verbose: false,
	}
}

// Load resolves the configuration from defaults and the given command-line
// flags. Flags that were not set on the command line keep their default.
// A nil flag set yields the defaults.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))

	return &cfg, nil
}

// setDefaults sets the default values for viper.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("format", d.Format)
	v.SetDefault("inline", d.Inline)
	v.SetDefault("verbose", d.Verbose)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if !lo.Contains(supportedFormats, c.Format) {
		errs = append(errs, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported format %q, must be one of: %s", c.Format, strings.Join(supportedFormats, ", ")),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DisplayMode reports whether expressions are rendered as display math.
func (c *Config) DisplayMode() bool {
	return !c.Inline
}
