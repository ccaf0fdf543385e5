package driven

import (
	"github.com/algal/PersistableURL/internal/core/domain"
)

// DirectoryRegistry resolves the current absolute location of each symbolic
// storage root. Implementations query the host platform once per root per
// process run and treat the result as immutable for the rest of the run;
// after resolution the snapshot may be read concurrently without
// coordination.
//
// Lookups must never create directories as a side effect.
type DirectoryRegistry interface {
	// RootFor returns the current absolute file URI for the given root,
	// with a trailing slash. Returns an error wrapping
	// domain.ErrRootUnavailable when the platform cannot resolve the root;
	// implementations must fail rather than substitute a guessed path.
	RootFor(root domain.SymbolicRoot) (string, error)
}
