package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/opmodel/renderings/internal/output"
	"github.com/opmodel/renderings/internal/rendering"
)

// ConfigSource indicates where a configuration value came from.
//
//nolint:revive // config.ConfigSource reads fine at call sites
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a single configuration value and where it came from.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// resolveString picks the first non-empty value of flag > env > config >
// default and records the values it shadowed.
func resolveString(key, flagValue, envVar, configValue, defaultValue string) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, os.Getenv(envVar)},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		if c.source != SourceDefault {
			rv.Shadowed[c.source] = c.value
		}
	}
	return rv
}

// ResolveAllOptions carries flag values and the loaded config file.
type ResolveAllOptions struct {
	// ConfigFlag is the --config flag value.
	ConfigFlag string
	// EnvironmentFlag is the --environment flag value.
	EnvironmentFlag string
	// StrictFlag is the --strict flag value; nil when the flag was not set.
	StrictFlag *bool
	// OutputFlag is the --output flag value; empty when not set.
	OutputFlag string
	// Config is the loaded config file, possibly nil.
	Config *Config
}

// ResolvedConfig is the effective configuration for a command run.
type ResolvedConfig struct {
	ConfigPath  string
	Environment string
	Strict      *bool
	Output      output.OutputFormat
	Policy      rendering.Policy
	Values      []ResolvedValue
}

// ResolveAll resolves every setting with flag > env > config > default
// precedence and derives the resolution policy.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	defaultPath := ""
	if paths, err := DefaultPaths(); err == nil {
		defaultPath = paths.ConfigFile
	}

	configPath := resolveString("config", opts.ConfigFlag, "RNDR_CONFIG", "", defaultPath)
	environment := resolveString("environment", opts.EnvironmentFlag, "RNDR_ENVIRONMENT", cfg.Environment, "")
	outputFormat := resolveString("output", opts.OutputFlag, "RNDR_OUTPUT", cfg.Output, DefaultConfig().Output)

	format, ok := output.ParseOutputFormat(outputFormat.Value)
	if !ok {
		return nil, &ValidationError{
			Field:   "output",
			Message: fmt.Sprintf("unknown format %q (valid: %v)", outputFormat.Value, output.ValidFormats()),
		}
	}

	var configStrict string
	if cfg.Strict != nil {
		configStrict = strconv.FormatBool(*cfg.Strict)
	}
	var flagStrict string
	if opts.StrictFlag != nil {
		flagStrict = strconv.FormatBool(*opts.StrictFlag)
	}
	strictValue := resolveString("strict", flagStrict, "RNDR_STRICT", configStrict, "")

	var strict *bool
	if strictValue.Value != "" {
		b, err := strconv.ParseBool(strictValue.Value)
		if err != nil {
			return nil, &ValidationError{Field: "strict", Message: fmt.Sprintf("not a boolean: %q", strictValue.Value)}
		}
		strict = &b
	}

	return &ResolvedConfig{
		ConfigPath:  configPath.Value,
		Environment: environment.Value,
		Strict:      strict,
		Output:      format,
		Policy:      rendering.PolicyFor(environment.Value, strict),
		Values:      []ResolvedValue{configPath, environment, strictValue, outputFormat},
	}, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
