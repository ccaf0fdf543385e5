package platform

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algal/PersistableURL/internal/core/domain"
)

func TestRegistry_RootFor_AllRootsResolve(t *testing.T) {
	reg := NewRegistry()

	for _, root := range domain.Roots() {
		t.Run(string(root), func(t *testing.T) {
			uri, err := reg.RootFor(root)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(uri, "file://"), "got %q", uri)
			assert.True(t, strings.HasSuffix(uri, "/"), "roots carry a trailing slash, got %q", uri)
		})
	}
}

func TestRegistry_RootFor_CachedPerRun(t *testing.T) {
	reg := NewRegistry()

	first, err := reg.RootFor(domain.Caches)
	require.NoError(t, err)
	second, err := reg.RootFor(domain.Caches)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRegistry_RootFor_UnknownRoot(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.RootFor(domain.SymbolicRoot("app-unknown"))
	assert.ErrorIs(t, err, domain.ErrRootUnavailable)
}

func TestRegistry_RootFor_DoesNotCreateDirectories(t *testing.T) {
	reg := NewRegistry()

	uri, err := reg.RootFor(domain.Documents)
	require.NoError(t, err)

	// Lookup reports where the root lives; it must not have created it.
	path := strings.TrimSuffix(strings.TrimPrefix(uri, "file://"), "/")
	existedBefore := true
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		existedBefore = false
	}

	_, err = reg.RootFor(domain.Documents)
	require.NoError(t, err)

	if !existedBefore {
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "lookup must not create %s", path)
	}
}

func TestScratchDir_CreatesUniqueDirectories(t *testing.T) {
	first, err := ScratchDir()
	require.NoError(t, err)
	second, err := ScratchDir()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	for _, uri := range []string{first, second} {
		require.True(t, strings.HasPrefix(uri, "file://"))
		path := strings.TrimSuffix(strings.TrimPrefix(uri, "file://"), "/")
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		_ = os.RemoveAll(path)
	}
}
