// Command persisturl converts file locations between absolute file URIs,
// valid only for the current run, and persistable URIs that survive
// sandbox relocation.
package main

import (
	"fmt"
	"os"

	dirsfile "github.com/algal/PersistableURL/internal/adapters/driven/dirs/file"
	"github.com/algal/PersistableURL/internal/adapters/driven/dirs/platform"
	"github.com/algal/PersistableURL/internal/adapters/driven/storage/sqlite"
	"github.com/algal/PersistableURL/internal/adapters/driving/cli"
	"github.com/algal/PersistableURL/internal/core/ports/driven"
	"github.com/algal/PersistableURL/internal/core/services"
)

func main() {
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildServices wires the adapters once flags are parsed. When rootsFile is
// set, the TOML overrides take precedence over the platform's directories.
func buildServices(rootsFile string) (cli.Services, error) {
	var registry driven.DirectoryRegistry = platform.NewRegistry()
	if rootsFile != "" {
		overlay, err := dirsfile.NewRegistry(rootsFile, registry)
		if err != nil {
			return cli.Services{}, err
		}
		registry = overlay
	}

	converter := services.NewConverterService(registry)

	store, err := sqlite.NewStore("")
	if err != nil {
		return cli.Services{}, fmt.Errorf("opening bookmark store: %w", err)
	}

	return cli.Services{
		Converter: converter,
		Bookmarks: services.NewBookmarkService(store, converter),
		Registry:  registry,
	}, nil
}
