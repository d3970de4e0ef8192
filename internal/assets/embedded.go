package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

//go:embed templates
var templates embed.FS

// EmbeddedLoader loads template sets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplateSet loads an embedded template set by name.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	dir := path.Join("templates", name)
	if _, err := fs.Stat(templates, dir); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}

	files := make(map[string]string, len(templateFiles))
	for _, file := range templateFiles {
		content, err := templates.ReadFile(path.Join(dir, file))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, file)
			}
			return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
		}
		files[file] = string(content)
	}

	return newTemplateSet(name, files), nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
