package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproachesListsBoth(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	stdout, err := executeCommand(t, "approaches")

	require.NoError(t, err)
	assert.Contains(t, stdout, "serwist (recommended)")
	assert.Contains(t, stdout, "app/sw.ts")
	assert.Contains(t, stdout, "@serwist/next, serwist")
	assert.Contains(t, stdout, "manual")
	assert.Contains(t, stdout, "public/sw.js")
	assert.Contains(t, stdout, "none")
}
