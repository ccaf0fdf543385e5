package driving

import (
	"context"

	"github.com/algal/PersistableURL/internal/core/domain"
)

// BookmarkService manages named locations that survive process restarts.
// URIs are converted to persistable form before storage and resolved back
// to absolute form on retrieval, so bookmarks stay valid when the platform
// relocates the sandbox between runs.
type BookmarkService interface {
	// Save stores uri under name. The URI may be absolute or already
	// persistable; returns domain.ErrNotConvertible when it is neither
	// under a known root nor persistable.
	Save(ctx context.Context, name, uri string) (*domain.Bookmark, error)

	// Resolve returns the bookmark and its current absolute location.
	Resolve(ctx context.Context, name string) (*domain.Bookmark, string, error)

	// List returns all bookmarks ordered by name.
	List(ctx context.Context) ([]domain.Bookmark, error)

	// Delete removes a bookmark by name.
	Delete(ctx context.Context, name string) error
}
