package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTreeEmpty(t *testing.T) {
	result := RenderFileTree("app", map[string]string{})
	assert.Empty(t, result)
}

func TestRenderFileTreeSingleFile(t *testing.T) {
	files := map[string]string{
		"manifest.ts": "Web app manifest",
	}

	result := RenderFileTree("my-app", files)

	assert.Contains(t, result, "my-app/")
	assert.Contains(t, result, "└── manifest.ts")
	assert.Contains(t, result, "Web app manifest")
}

func TestRenderFileTreeNestedDirectories(t *testing.T) {
	files := map[string]string{
		"app/manifest.ts":      "Web app manifest",
		"app/offline/page.tsx": "Offline fallback page",
		"public/sw.js":         "Service worker",
	}

	result := RenderFileTree("shop", files)

	assert.Contains(t, result, "shop/")
	assert.Contains(t, result, "app/")
	assert.Contains(t, result, "offline/")
	assert.Contains(t, result, "public/")
	assert.Contains(t, result, "page.tsx")
	assert.Contains(t, result, "sw.js")
}

func TestRenderFileTreeDirectoriesFirst(t *testing.T) {
	files := map[string]string{
		"zz.ts":      "Last file",
		"app/one.ts": "Nested file",
	}

	result := RenderFileTree("proj", files)

	appIdx := strings.Index(result, "app/")
	zzIdx := strings.Index(result, "zz.ts")
	assert.Less(t, appIdx, zzIdx, "directories should sort before files")
}

func TestRenderFileTreeConnectors(t *testing.T) {
	files := map[string]string{
		"a.ts": "First",
		"b.ts": "Second",
	}

	result := RenderFileTree("proj", files)

	assert.Contains(t, result, "├── a.ts")
	assert.Contains(t, result, "└── b.ts")
}

func TestRenderFileTreeDescriptionAlignment(t *testing.T) {
	files := map[string]string{
		"a.ts":        "Short name",
		"longname.ts": "Longer name",
	}

	result := RenderFileTree("proj", files)

	for _, line := range strings.Split(result, "\n") {
		if strings.Contains(line, "Short name") || strings.Contains(line, "Longer name") {
			// Descriptions start at the same column for short entries.
			idx := strings.Index(line, "  ")
			assert.Greater(t, idx, 0)
		}
	}
}
