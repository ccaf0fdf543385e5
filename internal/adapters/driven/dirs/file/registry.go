// Package file provides a TOML-backed root-override registry.
//
// A roots file pins any subset of the four symbolic roots to fixed
// locations, which is useful for deployments whose directory layout never
// moves and for reproducing conversions from another machine:
//
//	[roots]
//	app-caches = "file:///var/cache/myapp/"
//	app-documents = "file:///srv/documents/"
//
// Roots not named in the file are delegated to a fallback registry.
package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/algal/PersistableURL/internal/core/domain"
	"github.com/algal/PersistableURL/internal/core/ports/driven"
	"github.com/algal/PersistableURL/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.DirectoryRegistry = (*Registry)(nil)

// rootsFile is the on-disk shape of a roots override file.
type rootsFile struct {
	Roots map[string]string `toml:"roots"`
}

// Registry overrides selected roots from a TOML file and delegates the
// rest to a fallback registry. The file is read once at construction.
type Registry struct {
	overrides map[domain.SymbolicRoot]string
	fallback  driven.DirectoryRegistry
}

// NewRegistry loads overrides from the TOML file at path. Keys in the
// [roots] table must be marker tokens; unknown keys are rejected so a typo
// cannot silently leave a root unpinned.
func NewRegistry(path string, fallback driven.DirectoryRegistry) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roots file: %w", err)
	}

	var parsed rootsFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing roots file %s: %w", path, err)
	}

	overrides := make(map[domain.SymbolicRoot]string, len(parsed.Roots))
	for marker, uri := range parsed.Roots {
		root, ok := domain.RootForMarker(marker)
		if !ok {
			return nil, fmt.Errorf("%w: unknown root key %q in %s", domain.ErrInvalidInput, marker, path)
		}
		if !domain.IsFileURI(uri) {
			return nil, fmt.Errorf("%w: root %q must be a file URI, got %q", domain.ErrInvalidInput, marker, uri)
		}
		overrides[root] = uri
	}
	logger.Info("loaded %d root override(s) from %s", len(overrides), path)

	return &Registry{overrides: overrides, fallback: fallback}, nil
}

// RootFor returns the pinned location when the root is overridden,
// otherwise delegates to the fallback registry.
func (r *Registry) RootFor(root domain.SymbolicRoot) (string, error) {
	if uri, ok := r.overrides[root]; ok {
		return uri, nil
	}
	if r.fallback == nil {
		return "", fmt.Errorf("%w: %s not pinned and no fallback registry", domain.ErrRootUnavailable, root)
	}
	return r.fallback.RootFor(root)
}
