// Package assets provides access to built-in section templates with
// optional filesystem overrides. Templates are raw YAML; decoding into the
// public configuration types happens in the root package to keep this
// package free of upward dependencies.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed templates/*.yaml
var embeddedTemplates embed.FS

// DefaultTemplateName is the template used when none is configured.
const DefaultTemplateName = "default"

// Sentinel errors for asset loading.
var (
	ErrTemplateNotFound = errors.New("assets: template not found")
	ErrInvalidBasePath  = errors.New("assets: invalid base path")
)

// Loader resolves a template name to raw YAML content.
type Loader interface {
	LoadTemplate(name string) ([]byte, error)
}

// EmbeddedLoader serves the templates compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader returns a loader over the embedded templates.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate returns the embedded template with the given name.
func (l *EmbeddedLoader) LoadTemplate(name string) ([]byte, error) {
	data, err := embeddedTemplates.ReadFile("templates/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrTemplateNotFound, name, strings.Join(Available(), ", "))
	}
	return data, nil
}

// Available lists the embedded template names.
func Available() []string {
	entries, err := fs.ReadDir(embeddedTemplates, "templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names
}

// DirLoader resolves templates from a directory, falling back to the
// embedded set for names not present on disk.
type DirLoader struct {
	base     string
	fallback *EmbeddedLoader
}

// NewDirLoader validates the directory and returns a loader over it.
func NewDirLoader(dir string) (*DirLoader, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, dir)
	}
	return &DirLoader{base: dir, fallback: NewEmbeddedLoader()}, nil
}

// LoadTemplate tries <base>/<name>.yaml then <base>/<name>.yml, then the
// embedded templates.
func (l *DirLoader) LoadTemplate(name string) ([]byte, error) {
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(l.base, name+ext)
		data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided by design
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading template %q: %w", path, err)
		}
	}
	return l.fallback.LoadTemplate(name)
}
