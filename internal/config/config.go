// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the rndr configuration file.
type Config struct {
	// Environment names the deployment environment, e.g. "production" or
	// "development". Unset or "production" selects the lenient resolution
	// policy; anything else is strict.
	// Env: RNDR_ENVIRONMENT
	Environment string `json:"environment,omitempty" yaml:"environment,omitempty" mapstructure:"environment"`

	// Strict overrides the policy derived from Environment when set.
	// Env: RNDR_STRICT
	Strict *bool `json:"strict,omitempty" yaml:"strict,omitempty" mapstructure:"strict"`

	// Output is the default output format.
	// Env: RNDR_OUTPUT, Default: yaml
	Output string `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `rndr config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Environment: "production",
		Output:      "yaml",
	}
}

// WithDefaults returns a copy of c with unset fields filled from DefaultConfig.
// Environment is left as is: an unset environment is meaningful.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Output == "" {
		out.Output = DefaultConfig().Output
	}
	return &out
}
