package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dirsmem "github.com/algal/PersistableURL/internal/adapters/driven/dirs/memory"
	"github.com/algal/PersistableURL/internal/core/domain"
)

func TestRootsCmd_Use(t *testing.T) {
	assert.Equal(t, "roots", rootsCmd.Use)
}

func TestRootsCmd_PrintsAllRoots(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("roots")
	require.NoError(t, err)
	for _, root := range domain.Roots() {
		assert.Contains(t, out, root.Marker())
	}
	assert.Contains(t, out, testCachesRoot)
}

func TestRootsCmd_ReportsUnavailableRoots(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	// Registry that cannot resolve anything.
	SetServices(Services{Registry: dirsmem.NewRegistry(nil)})

	out, err := execute("roots")
	require.Error(t, err)
	assert.Contains(t, out, "unavailable")
}
