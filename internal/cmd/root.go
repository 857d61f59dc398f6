// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pwagen/cli/internal/config"
	"github.com/pwagen/cli/internal/output"
	"github.com/pwagen/cli/internal/prompt"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (set during PersistentPreRunE). A load
	// failure is stashed so commands that don't need config still run.
	loadedConfig  *config.Config
	configLoadErr error

	// promptDriver backs interactive mode. Tests swap in a script driver.
	promptDriver prompt.Driver = prompt.NewSurveyDriver()
)

// NewRootCmd creates the root command for the pwagen CLI.
// The root command itself generates the PWA files; subcommands cover
// metadata and configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pwagen <project-name>",
		Short: "Generate PWA configuration for a Next.js project",
		Long: `pwagen scaffolds Progressive Web App configuration files for a
Next.js project: the web app manifest, a service worker (Serwist-based
or hand-written), and optional push notification handlers and offline
fallback files.

Examples:
  # Serwist service worker (recommended)
  pwagen my-app --approach serwist

  # Hand-written service worker with push and offline support
  pwagen my-app --approach manual --push --offline

  # Answer prompts instead of passing flags
  pwagen --interactive

  # Show what would be written without touching the filesystem
  pwagen my-app --approach serwist --dry-run`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return NewExitError(err, ExitValidationError)
			}
			return nil
		},
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeGlobals(cmd)
			return nil
		},
		RunE: runGenerate,
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (default ~/.pwagen/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return NewExitError(err, ExitValidationError)
	})

	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(NewApproachesCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) {
	loadedConfig, configLoadErr = config.NewLoader().Load(configFlag)
	if configLoadErr != nil {
		loadedConfig = &config.Config{}
	}

	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	}

	output.SetupLogging(logCfg)

	if configLoadErr != nil {
		output.Debug("config load failed", "error", configLoadErr)
	}
}
