// Package config carries the run configuration for a validation batch.
// Values come from, in increasing precedence: defaults, a YAML config file,
// SCHEMAX_VALIDATE_* environment variables, and CLI flags (applied through
// the setters).
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/schemax/schemax/schema"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

type OutputLevel string

const (
	LevelSilent  OutputLevel = "silent"
	LevelQuiet   OutputLevel = "quiet"
	LevelVerbose OutputLevel = "verbose"
)

type FailMode string

const (
	FailFast  FailMode = "fail_fast"
	FailNever FailMode = "fail_never"
	FailAfter FailMode = "fail_after"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = ".schemax.yaml"

// Config is the resolved configuration for one CLI invocation.
type Config struct {
	OutputFormat OutputFormat
	OutputLevel  OutputLevel
	FailMode     FailMode
	NoCacheRead  bool
	NoCacheWrite bool

	RuleApply  []string
	RuleIgnore []string

	ModelRequiredAttributes  []string
	ColumnRequiredAttributes map[string][]string
}

// Default returns the built-in configuration: text output, quiet level,
// fail-after mode, cache enabled, default rules, no promotions.
func Default() *Config {
	return &Config{
		OutputFormat: FormatText,
		OutputLevel:  LevelQuiet,
		FailMode:     FailAfter,
	}
}

// fileConfig mirrors the validate section of the YAML config file.
type fileConfig struct {
	Validate struct {
		OutputFormat             string              `yaml:"output_format"`
		OutputLevel              string              `yaml:"output_level"`
		FailMode                 string              `yaml:"fail_mode"`
		NoCacheRead              bool                `yaml:"no_cache_read"`
		NoCacheWrite             bool                `yaml:"no_cache_write"`
		RuleApply                []string            `yaml:"rule_apply"`
		RuleIgnore               []string            `yaml:"rule_ignore"`
		ModelRequiredAttributes  []string            `yaml:"model_required_attributes"`
		ColumnRequiredAttributes map[string][]string `yaml:"column_required_attributes"`
	} `yaml:"validate"`
}

// LoadFile merges settings from a YAML config file. A missing file is only
// an error when required is true, so the default lookup stays best-effort.
func (c *Config) LoadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	v := fc.Validate
	if v.OutputFormat != "" {
		if err := c.SetOutputFormat(v.OutputFormat, false); err != nil {
			return err
		}
	}
	if v.OutputLevel != "" {
		if err := c.setLevel(v.OutputLevel); err != nil {
			return err
		}
	}
	if v.FailMode != "" {
		if err := c.setFailMode(v.FailMode); err != nil {
			return err
		}
	}
	if v.NoCacheRead {
		c.NoCacheRead = true
	}
	if v.NoCacheWrite {
		c.NoCacheWrite = true
	}
	if len(v.RuleApply) > 0 {
		c.RuleApply = v.RuleApply
	}
	if len(v.RuleIgnore) > 0 {
		c.RuleIgnore = v.RuleIgnore
	}
	if len(v.ModelRequiredAttributes) > 0 {
		c.ModelRequiredAttributes = v.ModelRequiredAttributes
	}
	if len(v.ColumnRequiredAttributes) > 0 {
		c.ColumnRequiredAttributes = v.ColumnRequiredAttributes
	}
	return nil
}

// ApplyEnv merges SCHEMAX_VALIDATE_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("SCHEMAX_VALIDATE_OUTPUT_FORMAT"); v != "" {
		if err := c.SetOutputFormat(v, false); err != nil {
			return err
		}
	}
	if v := os.Getenv("SCHEMAX_VALIDATE_OUTPUT_LEVEL"); v != "" {
		if err := c.setLevel(v); err != nil {
			return err
		}
	}
	if v := os.Getenv("SCHEMAX_VALIDATE_FAIL_MODE"); v != "" {
		if err := c.setFailMode(v); err != nil {
			return err
		}
	}
	if v := os.Getenv("SCHEMAX_VALIDATE_RULE_APPLY"); v != "" {
		c.RuleApply = splitList(v)
	}
	if v := os.Getenv("SCHEMAX_VALIDATE_RULE_IGNORE"); v != "" {
		c.RuleIgnore = splitList(v)
	}
	return nil
}

// SetOutputFormat applies the -out/-json flags; useJSON overrides format.
func (c *Config) SetOutputFormat(format string, useJSON bool) error {
	if useJSON {
		c.OutputFormat = FormatJSON
		return nil
	}
	switch OutputFormat(format) {
	case "":
	case FormatText, FormatJSON:
		c.OutputFormat = OutputFormat(format)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

// SetOutputLevel applies the -verbose/-silent flags; silent wins.
func (c *Config) SetOutputLevel(verbose, silent bool) {
	switch {
	case silent:
		c.OutputLevel = LevelSilent
	case verbose:
		c.OutputLevel = LevelVerbose
	}
}

// SetFailMode applies the -fail-fast/-fail-never flags; fail-fast wins.
func (c *Config) SetFailMode(failFast, failNever bool) {
	switch {
	case failFast:
		c.FailMode = FailFast
	case failNever:
		c.FailMode = FailNever
	}
}

// SetCache applies the cache flags; noCache disables both directions.
func (c *Config) SetCache(noRead, noWrite, noCache bool) {
	c.NoCacheRead = c.NoCacheRead || noRead || noCache
	c.NoCacheWrite = c.NoCacheWrite || noWrite || noCache
}

// Overrides returns the required-attribute promotion sets for the model
// builder.
func (c *Config) Overrides() schema.Overrides {
	return schema.Overrides{
		Root:   c.ModelRequiredAttributes,
		Column: c.ColumnRequiredAttributes,
	}
}

func (c *Config) setLevel(level string) error {
	switch OutputLevel(level) {
	case LevelSilent, LevelQuiet, LevelVerbose:
		c.OutputLevel = OutputLevel(level)
	default:
		return fmt.Errorf("unknown output level %q", level)
	}
	return nil
}

func (c *Config) setFailMode(mode string) error {
	switch FailMode(mode) {
	case FailFast, FailNever, FailAfter:
		c.FailMode = FailMode(mode)
	default:
		return fmt.Errorf("unknown fail mode %q", mode)
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
