package services

import (
	"context"
	"fmt"
	"time"

	"github.com/algal/PersistableURL/internal/core/domain"
	"github.com/algal/PersistableURL/internal/core/ports/driven"
	"github.com/algal/PersistableURL/internal/core/ports/driving"
)

// Ensure BookmarkService implements the interface.
var _ driving.BookmarkService = (*BookmarkService)(nil)

// BookmarkService stores named locations in persistable form and resolves
// them back to absolute URIs on retrieval.
type BookmarkService struct {
	store     driven.BookmarkStore
	converter driving.URIConverter
}

// NewBookmarkService creates a new bookmark service.
func NewBookmarkService(store driven.BookmarkStore, converter driving.URIConverter) *BookmarkService {
	return &BookmarkService{
		store:     store,
		converter: converter,
	}
}

// Save converts uri to persistable form and stores it under name.
func (s *BookmarkService) Save(ctx context.Context, name, uri string) (*domain.Bookmark, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: bookmark name must not be empty", domain.ErrInvalidInput)
	}

	persistable, ok, err := s.converter.ToPersistable(uri)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q is outside all known storage roots", domain.ErrNotConvertible, uri)
	}

	bookmark := domain.Bookmark{
		Name:      name,
		Location:  persistable,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(ctx, bookmark); err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// Resolve loads a bookmark and converts its location to an absolute URI
// against the current registry snapshot.
func (s *BookmarkService) Resolve(ctx context.Context, name string) (*domain.Bookmark, string, error) {
	bookmark, err := s.store.Get(ctx, name)
	if err != nil {
		return nil, "", err
	}

	abs, ok, err := s.converter.ToAbsolute(bookmark.Location)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		// Stored locations are always persistable, so this means the
		// record was corrupted outside our control.
		return nil, "", fmt.Errorf("%w: stored location %q", domain.ErrNotConvertible, bookmark.Location)
	}
	return bookmark, abs, nil
}

// List returns all bookmarks ordered by name.
func (s *BookmarkService) List(ctx context.Context) ([]domain.Bookmark, error) {
	return s.store.List(ctx)
}

// Delete removes a bookmark by name.
func (s *BookmarkService) Delete(ctx context.Context, name string) error {
	return s.store.Delete(ctx, name)
}
