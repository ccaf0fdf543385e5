package cli

import (
	"bytes"

	dirsmem "github.com/algal/PersistableURL/internal/adapters/driven/dirs/memory"
	storagemem "github.com/algal/PersistableURL/internal/adapters/driven/storage/memory"
	"github.com/algal/PersistableURL/internal/core/domain"
	"github.com/algal/PersistableURL/internal/core/services"
)

const testCachesRoot = "file:///srv/app/Library/Caches/"

// setupTestServices wires the commands to in-memory adapters and returns a
// cleanup that restores the package state.
func setupTestServices() func() {
	registry := dirsmem.NewRegistry(map[domain.SymbolicRoot]string{
		domain.BundleResource:     "file:///srv/app/bundle/",
		domain.Documents:          "file:///srv/app/Documents/",
		domain.ApplicationSupport: "file:///srv/app/Library/Application Support/",
		domain.Caches:             testCachesRoot,
	})
	converter := services.NewConverterService(registry)
	bookmarks := services.NewBookmarkService(storagemem.NewBookmarkStore(), converter)

	SetServices(Services{
		Converter: converter,
		Bookmarks: bookmarks,
		Registry:  registry,
	})

	return func() {
		SetServices(Services{})
	}
}

// execute runs the root command with args and captures combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
