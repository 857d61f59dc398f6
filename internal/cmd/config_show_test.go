package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pwaerrors "github.com/pwagen/cli/internal/errors"
	"github.com/pwagen/cli/internal/testutil"
)

func TestConfigShowNoFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	stdout, err := executeCommand(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Config file: "+filepath.Join(home, ".pwagen", "config.yaml"))
	assert.Contains(t, stdout, "(not found, defaults apply)")
	assert.Contains(t, stdout, "approach: (not set)")
	assert.Contains(t, stdout, "output: .  (default)")
	assert.Contains(t, stdout, "description: A Progressive Web App built with Next.js  (default)")
	assert.Contains(t, stdout, "theme_color: #000000  (default)")
	assert.Contains(t, stdout, "background_color: #ffffff  (default)")
}

func TestConfigShowWithFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	testutil.WriteFile(t, home, ".pwagen/config.yaml", `approach: manual
manifest:
  theme_color: "#112233"
`)

	stdout, err := executeCommand(t, "config", "show")

	require.NoError(t, err)
	assert.NotContains(t, stdout, "(not found")
	assert.Contains(t, stdout, "approach: manual  (config)")
	assert.Contains(t, stdout, "theme_color: #112233  (config)")
	assert.Contains(t, stdout, "background_color: #ffffff  (default)")
}

func TestConfigShowExplicitPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := testutil.WriteFile(t, t.TempDir(), "custom.yaml", "output: /srv/www\n")

	stdout, err := executeCommand(t, "config", "show", "--config", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Config file: "+path)
	assert.Contains(t, stdout, "output: /srv/www  (config)")
}

func TestConfigShowMalformedConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	testutil.WriteFile(t, home, ".pwagen/config.yaml", "manifest: [broken\n")

	_, err := executeCommand(t, "config", "show")

	require.Error(t, err)
	assert.ErrorIs(t, err, pwaerrors.ErrValidation)
}
