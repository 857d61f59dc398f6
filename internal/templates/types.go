// Package templates provides the PWA file templates and generation.
package templates

// Approach identifies a service worker strategy.
type Approach string

const (
	// ApproachSerwist uses the Serwist toolchain for the service worker.
	ApproachSerwist Approach = "serwist"

	// ApproachManual uses a hand-written service worker with no dependencies.
	ApproachManual Approach = "manual"
)

// String returns the approach name.
func (a Approach) String() string {
	return string(a)
}

// Appearance contains web app manifest appearance fields.
// Empty fields fall back to the template defaults.
type Appearance struct {
	// Description is the manifest description string.
	Description string

	// ThemeColor is the manifest theme color.
	ThemeColor string

	// BackgroundColor is the manifest background color.
	BackgroundColor string
}

// Request describes a single generation run.
type Request struct {
	// ProjectName is the project name substituted into templates.
	ProjectName string

	// Approach is the service worker strategy.
	Approach Approach

	// Push includes push notification handlers in the service worker.
	Push bool

	// Offline includes the offline fallback page and online status hook.
	Offline bool

	// OutputDir is the directory files are written under.
	OutputDir string

	// Appearance overrides manifest appearance fields.
	Appearance Appearance
}

// File is a single generated output file.
type File struct {
	// Path is the output path relative to OutputDir, with forward slashes.
	Path string

	// Content is the complete file content.
	Content []byte

	// Description is a short human-readable summary for listings.
	Description string
}

// Result contains the outcome of a generation run.
type Result struct {
	// Files is the list of files that were produced, in emission order.
	Files []File

	// TargetDir is the absolute directory files were written under.
	TargetDir string

	// Approach is the service worker strategy that was used.
	Approach Approach
}
