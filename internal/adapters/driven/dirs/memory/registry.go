// Package memory provides a fixed in-memory implementation of
// driven.DirectoryRegistry for testing and composition.
package memory

import (
	"fmt"

	"github.com/algal/PersistableURL/internal/core/domain"
	"github.com/algal/PersistableURL/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.DirectoryRegistry = (*Registry)(nil)

// Registry answers root lookups from a fixed map. Roots absent from the
// map report domain.ErrRootUnavailable, which makes it easy to exercise
// failure paths in tests.
type Registry struct {
	roots map[domain.SymbolicRoot]string
}

// NewRegistry creates a registry over the given root map. The map is not
// copied; callers must not mutate it after construction.
func NewRegistry(roots map[domain.SymbolicRoot]string) *Registry {
	return &Registry{roots: roots}
}

// RootFor returns the configured absolute URI for the root.
func (r *Registry) RootFor(root domain.SymbolicRoot) (string, error) {
	uri, ok := r.roots[root]
	if !ok {
		return "", fmt.Errorf("%w: no %s root configured", domain.ErrRootUnavailable, root)
	}
	return uri, nil
}
