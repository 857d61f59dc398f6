package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pwagen/cli/internal/config"
	pwaerrors "github.com/pwagen/cli/internal/errors"
	"github.com/pwagen/cli/internal/output"
)

var configInitForce bool

const configFileHeader = `# pwagen configuration
# Values here are defaults; command-line flags take precedence.

`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the pwagen configuration file at ~/.pwagen/config.yaml.

The configuration provides defaults for the service worker approach,
the output directory, and web app manifest appearance fields.

Examples:
  # Initialize configuration
  pwagen config init

  # Overwrite existing configuration
  pwagen config init --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	paths, err := config.DefaultPaths()
	if err != nil {
		return pwaerrors.Wrap(pwaerrors.ErrNotFound, "could not determine home directory")
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !configInitForce {
		return &pwaerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: paths.ConfigFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    pwaerrors.ErrValidation,
		}
	}

	// Config directory and file are user-only
	if err := os.MkdirAll(paths.HomeDir, 0o700); err != nil {
		return pwaerrors.NewPermissionError("could not create config directory", paths.HomeDir)
	}

	content, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return err
	}

	if err := os.WriteFile(paths.ConfigFile, append([]byte(configFileHeader), content...), 0o600); err != nil {
		return pwaerrors.NewPermissionError("could not write config file", paths.ConfigFile)
	}

	output.Println("Configuration initialized at " + paths.ConfigFile)
	output.Println("")
	output.Println("Review the defaults with: " + output.StyleCommand.Render("pwagen config show"))

	return nil
}
