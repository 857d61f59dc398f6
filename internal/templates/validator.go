package templates

import (
	"strings"

	pwaerrors "github.com/pwagen/cli/internal/errors"
)

// ValidateProjectName checks if a project name is usable.
// Names are substituted into templates verbatim, so only emptiness is
// rejected.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return pwaerrors.NewValidationError(
			"project name must not be empty",
			"pass a project name, e.g.: pwagen my-app --approach serwist")
	}
	return nil
}

// ValidateRequest checks that a generation request is complete.
func ValidateRequest(req Request) error {
	if err := ValidateProjectName(req.ProjectName); err != nil {
		return err
	}

	if _, err := Get(string(req.Approach)); err != nil {
		return err
	}

	if req.OutputDir == "" {
		return pwaerrors.NewValidationError(
			"output directory must not be empty",
			"pass --output or leave it unset to use the current directory")
	}

	return nil
}
