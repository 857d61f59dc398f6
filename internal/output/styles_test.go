package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCheckmark(t *testing.T) {
	s := FormatCheckmark("Generated 3 files")
	assert.Contains(t, s, "✔")
	assert.Contains(t, s, "Generated 3 files")
}

func TestStylesRenderContent(t *testing.T) {
	// Styles may or may not emit ANSI codes depending on the test terminal;
	// the rendered text itself must always survive.
	assert.Contains(t, StyleNoun.Render("my-app"), "my-app")
	assert.Contains(t, StyleDim.Render("Web app manifest"), "Web app manifest")
	assert.Contains(t, StyleCommand.Render("npm install"), "npm install")
}
