package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistCmd_Use(t *testing.T) {
	assert.Equal(t, "persist [uri]", persistCmd.Use)
}

func TestResolveCmd_Use(t *testing.T) {
	assert.Equal(t, "resolve [uri]", resolveCmd.Use)
}

func TestPersistCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("persist")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestPersistCmd_ConvertsURI(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("persist", testCachesRoot+"thumbs/a.png")
	require.NoError(t, err)
	assert.Contains(t, out, "app-caches:thumbs/a.png")
}

func TestPersistCmd_OutsideRootsFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("persist", "file:///elsewhere/file.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside all known storage roots")
}

func TestResolveCmd_ResolvesURI(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("resolve", "app-caches:thumbs/a.png")
	require.NoError(t, err)
	assert.Contains(t, out, testCachesRoot+"thumbs/a.png")
}

func TestResolveCmd_ForeignSchemeFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute("resolve", "http://example.com/x")
	assert.Error(t, err)
}

func TestCheckCmd_ReportsPersistable(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("check", "app-documents:notes.md")
	require.NoError(t, err)
	assert.Contains(t, out, "persistable")

	out, err = execute("check", "file:///srv/app/Documents/notes.md")
	require.NoError(t, err)
	assert.Contains(t, out, "not persistable")
}

func TestPersistCmd_WithoutServices(t *testing.T) {
	cleanup := setupTestServices()
	cleanup()

	_, err := execute("persist", "file:///x")
	assert.ErrorIs(t, err, errNoConverter)
}
