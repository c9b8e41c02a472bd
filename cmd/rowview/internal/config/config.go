// Package config resolves the project a rowview command runs in: its root,
// module path and row catalog.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/go-drift/rowkit/pkg/style"
)

// Resolved contains resolved project values.
type Resolved struct {
	Root        string
	ModulePath  string
	ProjectName string
	CatalogPath string
}

// Resolve finds the project containing dir. An explicit catalog path wins
// over rowview.yaml at the project root. Outside a Go module the catalog
// path must be explicit.
func Resolve(fs afero.Fs, dir, catalog string) (*Resolved, error) {
	root, err := FindProjectRoot(fs, dir)
	if err != nil {
		if catalog == "" {
			return nil, err
		}
		return &Resolved{ProjectName: projectName("", filepath.Dir(catalog)), CatalogPath: catalog}, nil
	}

	modPath, err := modulePath(fs, root)
	if err != nil {
		return nil, err
	}
	if catalog == "" {
		catalog = filepath.Join(root, style.DefaultFileName)
	}
	return &Resolved{
		Root:        root,
		ModulePath:  modPath,
		ProjectName: projectName(modPath, root),
		CatalogPath: catalog,
	}, nil
}

// LoadCatalog reads the resolved catalog.
func (r *Resolved) LoadCatalog(fs afero.Fs) (*style.Catalog, error) {
	return style.Load(fs, r.CatalogPath)
}

// FindProjectRoot walks up from dir to the first directory holding go.mod.
func FindProjectRoot(fs afero.Fs, dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := fs.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(fs afero.Fs, dir string) (string, error) {
	data, err := afero.ReadFile(fs, filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// projectName is the last element of the module path without its major
// version suffix, or the directory name.
func projectName(modulePath, dir string) string {
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok && prefix != "" {
		parts := strings.Split(prefix, "/")
		return parts[len(parts)-1]
	}
	base := filepath.Base(dir)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "rows"
	}
	return base
}
