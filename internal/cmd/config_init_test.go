package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pwagen/cli/internal/config"
	pwaerrors "github.com/pwagen/cli/internal/errors"
	"github.com/pwagen/cli/internal/testutil"
)

func TestConfigInitCreatesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	stdout, err := executeCommand(t, "config", "init")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration initialized at")
	assert.Contains(t, stdout, "pwagen config show")

	configPath := filepath.Join(home, ".pwagen", "config.yaml")
	require.FileExists(t, configPath)

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Join(home, ".pwagen"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	content := testutil.ReadFile(t, home, ".pwagen/config.yaml")
	assert.Contains(t, content, "# pwagen configuration")

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(content), &cfg))
	assert.Equal(t, config.DefaultConfig(), &cfg)
}

func TestConfigInitAlreadyExists(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := executeCommand(t, "config", "init")
	require.NoError(t, err)

	_, err = executeCommand(t, "config", "init")
	require.Error(t, err)
	assert.ErrorIs(t, err, pwaerrors.ErrValidation)
	assert.Contains(t, err.Error(), "configuration already exists")
	assert.Contains(t, err.Error(), "--force")
}

func TestConfigInitForceOverwrites(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	testutil.WriteFile(t, home, ".pwagen/config.yaml", "approach: manual\n")

	_, err := executeCommand(t, "config", "init", "--force")

	require.NoError(t, err)
	content := testutil.ReadFile(t, home, ".pwagen/config.yaml")
	assert.Contains(t, content, "approach: serwist")
}

func TestConfigInitOutputIsLoadable(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := executeCommand(t, "config", "init")
	require.NoError(t, err)

	cfg, err := config.NewLoader().Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

// Generating with the initialized config must match generating with no
// config at all: the file seeds the same values the templates fall back
// to.
func TestConfigInitDefaultsMatchBuiltins(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	bare := t.TempDir()
	_, err := executeCommand(t, "shop", "--approach", "serwist", "--output", bare)
	require.NoError(t, err)

	_, err = executeCommand(t, "config", "init")
	require.NoError(t, err)

	seeded := t.TempDir()
	_, err = executeCommand(t, "shop", "--output", seeded)
	require.NoError(t, err)

	assert.Equal(t,
		testutil.ReadFile(t, bare, "app/manifest.ts"),
		testutil.ReadFile(t, seeded, "app/manifest.ts"))
	assert.Equal(t,
		testutil.ReadFile(t, bare, "app/sw.ts"),
		testutil.ReadFile(t, seeded, "app/sw.ts"))
}
