package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pwagen/cli/internal/output"
	"github.com/pwagen/cli/internal/templates"
)

// NewApproachesCmd creates the approaches command.
func NewApproachesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approaches",
		Short: "List available service worker approaches",
		Long: `List the service worker approaches pwagen can generate.

The approach determines which files are produced and whether the
generated project needs npm dependencies.`,
		RunE: runApproaches,
	}
}

func runApproaches(cmd *cobra.Command, args []string) error {
	tbl := output.NewTable("APPROACH", "WORKER", "NPM DEPS", "DESCRIPTION")

	for _, info := range templates.List() {
		name := string(info.Name)
		if info.Recommended {
			name += " (recommended)"
		}

		deps := "none"
		if len(info.Dependencies) > 0 {
			deps = strings.Join(info.Dependencies, ", ")
		}

		tbl.Row(name, info.WorkerPath, deps, info.Description)
	}

	output.Println(tbl.String())

	return nil
}
