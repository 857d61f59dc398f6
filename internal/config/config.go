// Package config provides configuration loading and management.
package config

// ManifestConfig contains web app manifest appearance overrides.
type ManifestConfig struct {
	// Description is the manifest description string.
	// Default: "A Progressive Web App built with Next.js"
	Description string `mapstructure:"description" yaml:"description,omitempty"`

	// ThemeColor is the manifest theme color.
	// Default: "#000000"
	ThemeColor string `mapstructure:"theme_color" yaml:"theme_color,omitempty"`

	// BackgroundColor is the manifest background color.
	// Default: "#ffffff"
	BackgroundColor string `mapstructure:"background_color" yaml:"background_color,omitempty"`
}

// Config represents the pwagen CLI configuration.
// Loaded from ~/.pwagen/config.yaml. All fields are optional; unset
// fields fall back to built-in defaults.
type Config struct {
	// Approach is the default service worker approach ("serwist" or "manual").
	Approach string `mapstructure:"approach" yaml:"approach,omitempty"`

	// Output is the default output directory for generated files.
	Output string `mapstructure:"output" yaml:"output,omitempty"`

	// Manifest contains web app manifest appearance overrides.
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest,omitempty"`
}

// DefaultConfig returns a Config with the documented default values.
// Used by `pwagen config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Approach: "serwist",
		Output:   ".",
		Manifest: ManifestConfig{
			Description:     "A Progressive Web App built with Next.js",
			ThemeColor:      "#000000",
			BackgroundColor: "#ffffff",
		},
	}
}
