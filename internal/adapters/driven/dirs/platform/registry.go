// Package platform resolves the four symbolic storage roots from the host
// operating system's conventions:
//
//   - BundleResource: the directory containing the running executable
//   - Documents: the Documents directory under the user's home
//   - ApplicationSupport: the user's config directory (os.UserConfigDir)
//   - Caches: the user's cache directory (os.UserCacheDir)
//
// Each root is resolved lazily on first lookup and cached for the rest of
// the process run; the platform may assign different locations to the next
// run, which is exactly why persistable URIs exist.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/algal/PersistableURL/internal/core/domain"
	"github.com/algal/PersistableURL/internal/core/ports/driven"
	"github.com/algal/PersistableURL/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.DirectoryRegistry = (*Registry)(nil)

// Registry is the platform-backed directory registry. Lookups never create
// directories; they only report where the platform says each root lives.
type Registry struct {
	mu    sync.Mutex
	roots map[domain.SymbolicRoot]string
}

// NewRegistry creates a platform registry with no roots resolved yet.
func NewRegistry() *Registry {
	return &Registry{roots: make(map[domain.SymbolicRoot]string)}
}

// RootFor returns the current absolute file URI for the root, resolving it
// on first use. The cached snapshot is immutable for the rest of the run.
func (r *Registry) RootFor(root domain.SymbolicRoot) (string, error) {
	if !root.IsValid() {
		return "", fmt.Errorf("%w: unknown root %q", domain.ErrRootUnavailable, string(root))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if uri, ok := r.roots[root]; ok {
		return uri, nil
	}

	dir, err := resolve(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrRootUnavailable, root, err)
	}

	uri := "file://" + filepath.ToSlash(dir) + "/"
	r.roots[root] = uri
	logger.Debug("resolved %s root to %s", root, uri)
	return uri, nil
}

// resolve asks the OS for the directory backing a symbolic root.
func resolve(root domain.SymbolicRoot) (string, error) {
	switch root {
	case domain.BundleResource:
		exe, err := os.Executable()
		if err != nil {
			return "", err
		}
		return filepath.Dir(exe), nil
	case domain.Documents:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Documents"), nil
	case domain.ApplicationSupport:
		return os.UserConfigDir()
	case domain.Caches:
		return os.UserCacheDir()
	}
	return "", fmt.Errorf("unknown root %q", string(root))
}

// ScratchDir creates a fresh, uniquely named temporary directory and
// returns its absolute file URI. Unlike root lookups this deliberately
// creates the directory; each call yields a new one.
func ScratchDir() (string, error) {
	dir := filepath.Join(os.TempDir(), "persisturl-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("creating scratch directory: %w", err)
	}
	return "file://" + filepath.ToSlash(dir) + "/", nil
}
