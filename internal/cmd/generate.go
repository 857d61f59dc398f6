package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pwagen/cli/internal/config"
	pwaerrors "github.com/pwagen/cli/internal/errors"
	"github.com/pwagen/cli/internal/output"
	"github.com/pwagen/cli/internal/prompt"
	"github.com/pwagen/cli/internal/templates"
)

var (
	approachFlag    approachValue
	pushFlag        bool
	offlineFlag     bool
	outputDirFlag   string
	dryRunFlag      bool
	interactiveFlag bool
)

// approachValue restricts --approach to registered approaches, so a bad
// value fails during flag parsing like any other usage error.
type approachValue string

func (a *approachValue) String() string { return string(*a) }

func (a *approachValue) Set(value string) error {
	if !templates.IsValidApproach(value) {
		return fmt.Errorf("must be one of: %s", strings.Join(templates.Names(), ", "))
	}
	*a = approachValue(value)
	return nil
}

func (a *approachValue) Type() string { return "string" }

// addGenerateFlags registers the generation flags on the root command.
func addGenerateFlags(cmd *cobra.Command) {
	// Var, unlike StringVar, does not reset the target on registration.
	approachFlag = ""
	cmd.Flags().VarP(&approachFlag, "approach", "a",
		fmt.Sprintf("Service worker approach (%s)", strings.Join(templates.Names(), ", ")))
	cmd.Flags().BoolVar(&pushFlag, "push", false, "Include push notification handlers")
	cmd.Flags().BoolVar(&offlineFlag, "offline", false, "Include offline page and online status hook")
	cmd.Flags().StringVarP(&outputDirFlag, "output", "o", "", "Output directory (default: current directory)")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Show what would be written without writing")
	cmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "Prompt for missing values")
}

// runGenerate is the root command: it renders and writes the PWA files.
func runGenerate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if configLoadErr != nil {
		return configLoadErr
	}

	req, resolved, err := buildRequest(cmd, args)
	if err != nil {
		return err
	}

	if verboseFlag {
		config.LogResolvedValues(resolved)
	}

	gen := templates.NewGenerator(req)

	if dryRunFlag {
		files, err := gen.Files()
		if err != nil {
			return err
		}

		targetDir, err := filepath.Abs(req.OutputDir)
		if err != nil {
			return fmt.Errorf("resolving output directory: %w", err)
		}

		printHeader(req, targetDir)
		printFileTree(targetDir, files)
		output.Println(output.StyleDim.Render("Dry run: no files were written."))
		return nil
	}

	var result *templates.Result
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var genErr error
		result, genErr = gen.Generate()
		return genErr
	}, output.WithTitle("Generating PWA files..."))
	if err != nil {
		return err
	}

	printHeader(req, result.TargetDir)
	printFileTree(result.TargetDir, result.Files)
	output.Println(output.FormatCheckmark("Files generated successfully."))
	printFollowUps(req)

	return nil
}

// buildRequest resolves the generation request from args, flags, config,
// and (in interactive mode) prompts.
func buildRequest(cmd *cobra.Command, args []string) (templates.Request, []config.ResolvedValue, error) {
	ctx := cmd.Context()
	var resolved []config.ResolvedValue

	projectName := ""
	if len(args) > 0 {
		projectName = args[0]
	}
	if projectName == "" && interactiveFlag {
		name, err := promptDriver.Input(ctx, prompt.InputConfig{
			Message:   "Project name",
			Help:      "Used for the manifest name and short_name",
			Validator: templates.ValidateProjectName,
		})
		if err != nil {
			return templates.Request{}, nil, err
		}
		projectName = name
	}
	if err := templates.ValidateProjectName(projectName); err != nil {
		return templates.Request{}, nil, err
	}

	approachRes := config.Resolve("approach", string(approachFlag), loadedConfig.Approach, "")
	resolved = append(resolved, approachRes)
	approachName := approachRes.Value

	if approachName == "" && interactiveFlag {
		name, err := promptApproach(cmd)
		if err != nil {
			return templates.Request{}, nil, err
		}
		approachName = name
	}
	if approachName == "" {
		return templates.Request{}, nil, pwaerrors.NewValidationError(
			"approach is required",
			"pass --approach serwist or --approach manual, or run with --interactive")
	}
	if _, err := templates.Get(approachName); err != nil {
		return templates.Request{}, nil, err
	}

	push := pushFlag
	if interactiveFlag && !cmd.Flags().Changed("push") {
		answer, err := promptDriver.Confirm(ctx, prompt.ConfirmConfig{
			Message: "Include push notification handlers?",
		})
		if err != nil {
			return templates.Request{}, nil, err
		}
		push = answer
	}

	offline := offlineFlag
	if interactiveFlag && !cmd.Flags().Changed("offline") {
		answer, err := promptDriver.Confirm(ctx, prompt.ConfirmConfig{
			Message: "Include offline page and online status hook?",
		})
		if err != nil {
			return templates.Request{}, nil, err
		}
		offline = answer
	}

	outputRes := config.Resolve("output", outputDirFlag, loadedConfig.Output, ".")
	resolved = append(resolved, outputRes)

	req := templates.Request{
		ProjectName: projectName,
		Approach:    templates.Approach(approachName),
		Push:        push,
		Offline:     offline,
		OutputDir:   outputRes.Value,
		Appearance: templates.Appearance{
			Description:     loadedConfig.Manifest.Description,
			ThemeColor:      loadedConfig.Manifest.ThemeColor,
			BackgroundColor: loadedConfig.Manifest.BackgroundColor,
		},
	}

	return req, resolved, nil
}

// promptApproach asks the user to pick an approach, recommended first.
func promptApproach(cmd *cobra.Command) (string, error) {
	infos := templates.List()
	options := make([]string, len(infos))
	descriptions := make([]string, len(infos))
	defaultIdx := 0
	for i, info := range infos {
		options[i] = string(info.Name)
		descriptions[i] = info.Description
		if info.Recommended {
			defaultIdx = i
		}
	}

	idx, err := promptDriver.Select(cmd.Context(), prompt.SelectConfig{
		Message:      "Service worker approach",
		Options:      options,
		Descriptions: descriptions,
		DefaultIndex: defaultIdx,
	})
	if err != nil {
		return "", err
	}
	return options[idx], nil
}

func printHeader(req templates.Request, targetDir string) {
	output.Println(fmt.Sprintf("Generating PWA config for %s (%s approach)",
		output.StyleNoun.Render("'"+req.ProjectName+"'"), req.Approach))
	output.Println(output.StyleDim.Render("Output directory: " + targetDir))
	output.Println("")
}

func printFileTree(targetDir string, files []templates.File) {
	entries := make(map[string]string, len(files))
	for _, f := range files {
		entries[f.Path] = f.Description
	}
	output.Print(output.RenderFileTree(filepath.Base(targetDir), entries))
	output.Println("")
}
