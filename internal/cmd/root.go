// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/renderings/internal/config"
	"github.com/opmodel/renderings/internal/output"
	"github.com/opmodel/renderings/internal/rendering"
)

var (
	// Global flags
	configFlag       string
	environmentFlag  string
	strictFlag       bool
	outputFormatFlag string
	verboseFlag      bool
	timestampsFlag   bool

	// Resolved configuration (loaded during PersistentPreRunE)
	loadedConfig   *config.Config
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the rndr CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rndr",
		Short: "View-model alias resolution and related-link conversion",
		Long: `rndr inspects the view-model registry of a rendering pipeline and converts
related-link documents into typed view models.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: RNDR_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&environmentFlag, "environment", "", "Deployment environment, selects the resolution policy (env: RNDR_ENVIRONMENT)")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "Fail on unresolved aliases and types regardless of environment (env: RNDR_STRICT)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "", "Output format: yaml, json, table, debug (env: RNDR_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewAliasCmd())
	rootCmd.AddCommand(NewLinksCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		if !configOptional(cmd) {
			return &ExitError{Code: ExitValidationError, Err: err}
		}
		// config commands inspect or replace a broken file themselves
		output.Debug("config load error", "error", err)
		cfg = nil
	}
	loadedConfig = cfg

	opts := config.ResolveAllOptions{
		ConfigFlag:      configFlag,
		EnvironmentFlag: environmentFlag,
		OutputFlag:      outputFormatFlag,
		Config:          cfg,
	}
	if cmd.Flags().Changed("strict") {
		opts.StrictFlag = output.BoolPtr(strictFlag)
	}

	resolved, err := config.ResolveAll(opts)
	if err != nil {
		return &ExitError{Code: ExitValidationError, Err: err}
	}
	resolvedConfig = resolved

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg != nil && cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	// else: nil means SetupLogging defaults to true

	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", resolved.ConfigPath,
			"environment", resolved.Environment,
			"policy", resolved.Policy,
			"output", resolved.Output,
		)
		config.LogResolvedValues(resolved.Values)
	}

	return nil
}

// configOptionalAnnotation marks commands that run even when the config
// file is unreadable or invalid. Subcommands inherit it.
const configOptionalAnnotation = "rndr/config-optional"

func configOptional(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[configOptionalAnnotation]; ok {
			return true
		}
	}
	return false
}

// loadConfig reads the config file and validates it against the schema. A
// missing file is not an error.
func loadConfig() (*config.Config, error) {
	path := configFlag
	if path == "" {
		p, err := config.GetConfigFile()
		if err != nil {
			output.Debug("no config path", "error", err)
			return nil, nil
		}
		path = p
	}

	cfg, err := config.NewLoader().Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if exists, _ := config.FileExists(path); !exists {
		return cfg, nil
	}

	v, err := config.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := v.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() *config.ResolvedConfig {
	return resolvedConfig
}

// GetConfigPath returns the resolved config path value.
func GetConfigPath() string {
	if resolvedConfig != nil {
		return resolvedConfig.ConfigPath
	}
	return configFlag
}

// GetPolicy returns the resolved failure policy. Commands run without the
// root command fall back to the lenient policy.
func GetPolicy() rendering.Policy {
	if resolvedConfig != nil {
		return resolvedConfig.Policy
	}
	return rendering.Lenient
}

// GetOutputFormat returns the resolved output format, falling back to def
// when nothing was configured.
func GetOutputFormat(def output.OutputFormat) output.OutputFormat {
	if resolvedConfig == nil {
		if f, ok := output.ParseOutputFormat(outputFormatFlag); ok {
			return f
		}
		return def
	}
	for _, v := range resolvedConfig.Values {
		if v.Key == "output" && v.Source == config.SourceDefault {
			return def
		}
	}
	return resolvedConfig.Output
}
