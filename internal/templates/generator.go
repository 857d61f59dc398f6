package templates

import (
	"fmt"
	"os"
	"path/filepath"

	pwaerrors "github.com/pwagen/cli/internal/errors"
	"github.com/pwagen/cli/internal/output"
)

// Generator produces PWA configuration files from a request.
type Generator struct {
	req Request
}

// NewGenerator creates a new generator for the given request.
func NewGenerator(req Request) *Generator {
	return &Generator{req: req}
}

// Files renders the full file set for the request without touching the
// filesystem. Files are returned in emission order: manifest, service
// worker files, offline files.
func (g *Generator) Files() ([]File, error) {
	if err := ValidateRequest(g.req); err != nil {
		return nil, err
	}

	data := TemplateData{
		Name:            g.req.ProjectName,
		Description:     g.req.Appearance.Description,
		ThemeColor:      g.req.Appearance.ThemeColor,
		BackgroundColor: g.req.Appearance.BackgroundColor,
	}

	pushBlock, err := pushHandlers(g.req.Approach, g.req.Push)
	if err != nil {
		return nil, err
	}
	data.PushHandlers = pushBlock

	var files []File

	manifest, err := renderAsset("manifest.ts.tmpl", data)
	if err != nil {
		return nil, err
	}
	files = append(files, File{
		Path:        "app/manifest.ts",
		Content:     manifest,
		Description: "Web app manifest",
	})

	switch g.req.Approach {
	case ApproachSerwist:
		sw, err := renderAsset("serwist/sw.ts.tmpl", data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Path:        "app/sw.ts",
			Content:     sw,
			Description: "Serwist service worker",
		})

		nextConfig, err := staticAsset("serwist/next.config.ts")
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Path:        "next.config.ts",
			Content:     nextConfig,
			Description: "Next.js config with Serwist",
		})

	case ApproachManual:
		sw, err := renderAsset("manual/sw.js.tmpl", data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Path:        "public/sw.js",
			Content:     sw,
			Description: "Hand-written service worker",
		})

		registration, err := staticAsset("manual/ServiceWorkerRegistration.tsx")
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Path:        "app/components/ServiceWorkerRegistration.tsx",
			Content:     registration,
			Description: "Registers the service worker",
		})
	}

	if g.req.Offline {
		page, err := staticAsset("offline/page.tsx")
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Path:        "app/offline/page.tsx",
			Content:     page,
			Description: "Offline fallback page",
		})

		hook, err := staticAsset("offline/useOnlineStatus.ts")
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Path:        "hooks/useOnlineStatus.ts",
			Content:     hook,
			Description: "Online status React hook",
		})
	}

	return files, nil
}

// Generate renders the file set and writes it under the output directory.
// Existing files are overwritten. On partial failure, files already
// written are left in place.
func (g *Generator) Generate() (*Result, error) {
	files, err := g.Files()
	if err != nil {
		return nil, err
	}

	targetDir, err := filepath.Abs(g.req.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}

	if err := checkTargetDir(targetDir); err != nil {
		return nil, err
	}

	output.Debug("generating PWA config",
		"project", g.req.ProjectName,
		"approach", g.req.Approach,
		"push", g.req.Push,
		"offline", g.req.Offline,
		"target", targetDir)

	for _, f := range files {
		targetPath := filepath.Join(targetDir, filepath.FromSlash(f.Path))

		parentDir := filepath.Dir(targetPath)
		if err := os.MkdirAll(parentDir, 0o755); err != nil {
			if os.IsPermission(err) {
				return nil, pwaerrors.NewPermissionError("cannot create directory", parentDir)
			}
			return nil, fmt.Errorf("creating directory %s: %w", parentDir, err)
		}

		if err := os.WriteFile(targetPath, f.Content, 0o644); err != nil {
			if os.IsPermission(err) {
				return nil, pwaerrors.NewPermissionError("cannot write file", targetPath)
			}
			return nil, fmt.Errorf("writing %s: %w", targetPath, err)
		}

		output.Debug("created file", "path", f.Path)
	}

	return &Result{
		Files:     files,
		TargetDir: targetDir,
		Approach:  g.req.Approach,
	}, nil
}

// pushHandlers returns the push handler block for the approach, or an
// empty string when push is disabled. The block starts with a newline so
// it splices cleanly after the preceding worker section.
func pushHandlers(approach Approach, push bool) (string, error) {
	if !push {
		return "", nil
	}

	name := "partials/push-serwist.ts"
	if approach == ApproachManual {
		name = "partials/push-manual.js"
	}

	content, err := staticAsset(name)
	if err != nil {
		return "", err
	}

	return "\n" + string(content), nil
}

// checkTargetDir validates the output directory.
func checkTargetDir(targetDir string) error {
	info, err := os.Stat(targetDir)
	if os.IsNotExist(err) {
		// Directory doesn't exist, will be created
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking output directory: %w", err)
	}

	if !info.IsDir() {
		return pwaerrors.NewValidationError(
			fmt.Sprintf("output path %s is not a directory", targetDir),
			"pass --output pointing at a directory")
	}

	return nil
}
