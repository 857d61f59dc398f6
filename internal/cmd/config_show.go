package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pwagen/cli/internal/config"
	pwaerrors "github.com/pwagen/cli/internal/errors"
	"github.com/pwagen/cli/internal/output"
)

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long: `Show the effective configuration and where each value comes from.

Values set in the config file are marked (config); everything else
falls back to built-in defaults.`,
		RunE: runConfigShow,
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if configLoadErr != nil {
		return configLoadErr
	}

	path := configFlag
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return pwaerrors.Wrap(pwaerrors.ErrNotFound, "could not determine home directory")
		}
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return err
	}

	if exists {
		output.Println("Config file: " + path)
	} else {
		output.Println("Config file: " + path + output.StyleDim.Render(" (not found, defaults apply)"))
	}
	output.Println("")

	defaults := config.DefaultConfig()

	printConfigValue("approach", loadedConfig.Approach, "")
	printConfigValue("output", loadedConfig.Output, ".")
	output.Println("manifest:")
	printConfigValue("  description", loadedConfig.Manifest.Description, defaults.Manifest.Description)
	printConfigValue("  theme_color", loadedConfig.Manifest.ThemeColor, defaults.Manifest.ThemeColor)
	printConfigValue("  background_color", loadedConfig.Manifest.BackgroundColor, defaults.Manifest.BackgroundColor)

	return nil
}

// printConfigValue prints one key with its resolved value and source.
func printConfigValue(key, configValue, defaultValue string) {
	res := config.Resolve(key, "", configValue, defaultValue)

	if res.Value == "" {
		output.Println(fmt.Sprintf("%s: %s", key, output.StyleDim.Render("(not set)")))
		return
	}

	output.Println(fmt.Sprintf("%s: %s  %s",
		key, res.Value, output.StyleDim.Render("("+string(res.Source)+")")))
}
