package templates

import (
	"bytes"
	"fmt"
	"path"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// TemplateData holds the data passed to template rendering.
type TemplateData struct {
	// Name is the project name, substituted verbatim.
	Name string

	// Description is the manifest description (empty uses the template default).
	Description string

	// ThemeColor is the manifest theme color (empty uses the template default).
	ThemeColor string

	// BackgroundColor is the manifest background color (empty uses the template default).
	BackgroundColor string

	// PushHandlers is the pre-rendered push handler block spliced into the
	// service worker, or empty when push is disabled.
	PushHandlers string
}

var templateCache sync.Map

// templateFuncs returns the function map available to templates.
func templateFuncs() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["truncRunes"] = truncRunes
	return funcs
}

// truncRunes truncates s to at most n runes.
// Truncation counts code points, never producing invalid UTF-8.
func truncRunes(n int, s string) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// loadTemplate parses an embedded .tmpl asset, caching the result.
func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}

	content, err := readAsset(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(path.Base(name)).Funcs(templateFuncs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	templateCache.Store(name, tmpl)
	return tmpl, nil
}

// renderAsset renders an embedded .tmpl asset with the given data.
func renderAsset(name string, data TemplateData) ([]byte, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

// staticAsset returns an embedded asset verbatim.
// Static assets are not parsed as templates; the offline page contains
// JSX expressions that collide with template delimiters.
func staticAsset(name string) ([]byte, error) {
	return readAsset(name)
}
