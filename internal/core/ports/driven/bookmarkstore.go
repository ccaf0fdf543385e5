package driven

import (
	"context"

	"github.com/algal/PersistableURL/internal/core/domain"
)

// BookmarkStore persists named persistable locations.
// Backed by SQLite for on-disk storage.
type BookmarkStore interface {
	// Save stores a bookmark. Returns domain.ErrAlreadyExists when the
	// name is taken.
	Save(ctx context.Context, bookmark domain.Bookmark) error

	// Get retrieves a bookmark by name. Returns domain.ErrNotFound when
	// no bookmark has that name.
	Get(ctx context.Context, name string) (*domain.Bookmark, error)

	// List returns all bookmarks ordered by name.
	List(ctx context.Context) ([]domain.Bookmark, error)

	// Delete removes a bookmark by name. Returns domain.ErrNotFound when
	// no bookmark has that name.
	Delete(ctx context.Context, name string) error
}
