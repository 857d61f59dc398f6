package templates

import (
	"fmt"

	pwaerrors "github.com/pwagen/cli/internal/errors"
)

// ApproachInfo describes an available service worker approach.
type ApproachInfo struct {
	// Name is the approach identifier.
	Name Approach

	// Description explains the approach in one line.
	Description string

	// UseCase describes when to choose this approach.
	UseCase string

	// WorkerPath is where the service worker file is generated.
	WorkerPath string

	// Dependencies lists npm packages the generated code needs.
	Dependencies []string

	// Recommended marks the approach suggested to new users.
	Recommended bool
}

// approaches is the internal registry of available approaches.
var approaches = map[Approach]ApproachInfo{
	ApproachSerwist: {
		Name:         ApproachSerwist,
		Description:  "Serwist toolchain - precaching, runtime caching, offline fallback",
		UseCase:      "Production apps that want a maintained service worker toolchain",
		WorkerPath:   "app/sw.ts",
		Dependencies: []string{"@serwist/next", "serwist"},
		Recommended:  true,
	},
	ApproachManual: {
		Name:        ApproachManual,
		Description: "Hand-written service worker - no dependencies",
		UseCase:     "Full control over caching behavior, zero npm dependencies",
		WorkerPath:  "public/sw.js",
	},
}

// Get returns approach metadata by name.
func Get(name string) (ApproachInfo, error) {
	info, ok := approaches[Approach(name)]
	if !ok {
		return ApproachInfo{}, pwaerrors.NewValidationError(
			fmt.Sprintf("unknown approach %q", name),
			"valid approaches: serwist, manual")
	}
	return info, nil
}

// List returns all available approaches, recommended first.
func List() []ApproachInfo {
	return []ApproachInfo{
		approaches[ApproachSerwist],
		approaches[ApproachManual],
	}
}

// Names returns all approach names.
func Names() []string {
	return []string{string(ApproachSerwist), string(ApproachManual)}
}

// IsValidApproach checks if an approach name is valid.
func IsValidApproach(name string) bool {
	_, ok := approaches[Approach(name)]
	return ok
}
