package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algal/PersistableURL/internal/adapters/driven/storage/memory"
	"github.com/algal/PersistableURL/internal/core/domain"
)

func newBookmarkService() *BookmarkService {
	converter := NewConverterService(testRegistry())
	return NewBookmarkService(memory.NewBookmarkStore(), converter)
}

func TestBookmarkService_Save_ConvertsToPersistable(t *testing.T) {
	svc := newBookmarkService()
	ctx := context.Background()

	bookmark, err := svc.Save(ctx, "thumbs", cachesRoot+"thumbs/v2")
	require.NoError(t, err)
	assert.Equal(t, "app-caches:thumbs/v2", bookmark.Location)
}

func TestBookmarkService_Save_AcceptsPersistableInput(t *testing.T) {
	svc := newBookmarkService()

	bookmark, err := svc.Save(context.Background(), "notes", "app-documents:notes.md")
	require.NoError(t, err)
	assert.Equal(t, "app-documents:notes.md", bookmark.Location)
}

func TestBookmarkService_Save_RejectsForeignURI(t *testing.T) {
	svc := newBookmarkService()

	_, err := svc.Save(context.Background(), "web", "http://example.com/page")
	assert.ErrorIs(t, err, domain.ErrNotConvertible)
}

func TestBookmarkService_Save_RejectsOutsideRoots(t *testing.T) {
	svc := newBookmarkService()

	_, err := svc.Save(context.Background(), "stray", "file:///usr/share/other/file")
	assert.ErrorIs(t, err, domain.ErrNotConvertible)
}

func TestBookmarkService_Save_RejectsEmptyName(t *testing.T) {
	svc := newBookmarkService()

	_, err := svc.Save(context.Background(), "", "app-caches:x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBookmarkService_Resolve(t *testing.T) {
	svc := newBookmarkService()
	ctx := context.Background()

	_, err := svc.Save(ctx, "thumbs", "app-caches:thumbs/v2")
	require.NoError(t, err)

	bookmark, abs, err := svc.Resolve(ctx, "thumbs")
	require.NoError(t, err)
	assert.Equal(t, "app-caches:thumbs/v2", bookmark.Location)
	assert.Equal(t, cachesRoot+"thumbs/v2", abs)
}

func TestBookmarkService_Resolve_NotFound(t *testing.T) {
	svc := newBookmarkService()

	_, _, err := svc.Resolve(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookmarkService_ListAndDelete(t *testing.T) {
	svc := newBookmarkService()
	ctx := context.Background()

	_, err := svc.Save(ctx, "b", "app-caches:b")
	require.NoError(t, err)
	_, err = svc.Save(ctx, "a", "app-caches:a")
	require.NoError(t, err)

	bookmarks, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, bookmarks, 2)
	assert.Equal(t, "a", bookmarks[0].Name)

	require.NoError(t, svc.Delete(ctx, "a"))
	bookmarks, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bookmarks, 1)
}
