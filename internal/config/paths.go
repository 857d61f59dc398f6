package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for pwagen.
type Paths struct {
	// ConfigFile is the path to the config file (~/.pwagen/config.yaml).
	ConfigFile string

	// HomeDir is the pwagen home directory (~/.pwagen).
	HomeDir string
}

// DefaultPaths returns the default paths for pwagen.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	pwagenHome := filepath.Join(homeDir, ".pwagen")

	return &Paths{
		ConfigFile: filepath.Join(pwagenHome, "config.yaml"),
		HomeDir:    pwagenHome,
	}, nil
}

// GetConfigFile returns the default config file path.
func GetConfigFile() (string, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// EnsureHomeDir creates the pwagen home directory if it doesn't exist.
// The directory is user-only since the config may carry personal defaults.
func EnsureHomeDir() error {
	paths, err := DefaultPaths()
	if err != nil {
		return err
	}

	return os.MkdirAll(paths.HomeDir, 0o700)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
