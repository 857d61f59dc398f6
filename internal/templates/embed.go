package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed all:assets
var assetsFS embed.FS

// readAsset returns the raw bytes of an embedded asset.
func readAsset(name string) ([]byte, error) {
	content, err := fs.ReadFile(assetsFS, path.Join("assets", name))
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", name, err)
	}
	return content, nil
}

// ListAssets returns all embedded asset paths relative to the assets root.
// Rendered templates carry a .tmpl suffix; everything else is copied
// verbatim.
func ListAssets() ([]string, error) {
	var assets []string

	err := fs.WalkDir(assetsFS, "assets", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		assets = append(assets, strings.TrimPrefix(p, "assets/"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}

	return assets, nil
}
