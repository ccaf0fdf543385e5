// Package memory provides in-memory implementations of storage ports
// for testing.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/algal/PersistableURL/internal/core/domain"
	"github.com/algal/PersistableURL/internal/core/ports/driven"
)

// Ensure BookmarkStore implements the interface.
var _ driven.BookmarkStore = (*BookmarkStore)(nil)

// BookmarkStore is an in-memory implementation of driven.BookmarkStore.
type BookmarkStore struct {
	mu        sync.RWMutex
	bookmarks map[string]domain.Bookmark
}

// NewBookmarkStore creates a new in-memory bookmark store.
func NewBookmarkStore() *BookmarkStore {
	return &BookmarkStore{
		bookmarks: make(map[string]domain.Bookmark),
	}
}

// Save stores a bookmark.
func (s *BookmarkStore) Save(ctx context.Context, bookmark domain.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookmarks[bookmark.Name]; ok {
		return domain.ErrAlreadyExists
	}
	s.bookmarks[bookmark.Name] = bookmark
	return nil
}

// Get retrieves a bookmark by name.
func (s *BookmarkStore) Get(ctx context.Context, name string) (*domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookmark, ok := s.bookmarks[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &bookmark, nil
}

// List returns all bookmarks ordered by name.
func (s *BookmarkStore) List(ctx context.Context) ([]domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Bookmark, 0, len(s.bookmarks))
	for _, b := range s.bookmarks {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// Delete removes a bookmark by name.
func (s *BookmarkStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookmarks[name]; !ok {
		return domain.ErrNotFound
	}
	delete(s.bookmarks, name)
	return nil
}
