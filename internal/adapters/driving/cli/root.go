// Package cli implements the persisturl command line interface.
//
// Commands are package-level cobra vars registered in init(). Service
// construction stays out of this package: main injects a factory via
// SetServiceFactory, and the root command invokes it once flags are parsed
// (the --roots flag changes which directory registry backs the services).
// Tests inject ready-made services with SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/algal/PersistableURL/internal/core/ports/driven"
	"github.com/algal/PersistableURL/internal/core/ports/driving"
	"github.com/algal/PersistableURL/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. Populated by SetServices, or by the factory during
// PersistentPreRunE.
var (
	converterService driving.URIConverter
	bookmarkService  driving.BookmarkService
	directoryService driven.DirectoryRegistry
)

// Services bundles everything the commands need.
type Services struct {
	Converter driving.URIConverter
	Bookmarks driving.BookmarkService
	Registry  driven.DirectoryRegistry
}

// serviceFactory builds the services once flags are parsed. rootsFile is
// the --roots flag value, empty when unset.
var serviceFactory func(rootsFile string) (Services, error)

var (
	verboseFlag   bool
	rootsFileFlag string
)

var rootCmd = &cobra.Command{
	Use:   "persisturl",
	Short: "Convert between absolute and persistable file URIs",
	Long: `persisturl maps file locations between two URI forms: an absolute
file:// URI, valid only for the current run, and a persistable URI that
encodes a symbolic storage root plus a relative path and stays valid when
the platform relocates the sandbox between runs.

Persistable URIs use one of four marker schemes:
  app-bundleResource, app-documents, app-appSupport, app-caches`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if converterService == nil && serviceFactory != nil {
			services, err := serviceFactory(rootsFileFlag)
			if err != nil {
				return err
			}
			SetServices(services)
		}
		return nil
	},
}

// SetServices injects ready-made services. Used by tests and by the
// factory path.
func SetServices(s Services) {
	converterService = s.Converter
	bookmarkService = s.Bookmarks
	directoryService = s.Registry
}

// SetServiceFactory defers service construction until flags are parsed.
func SetServiceFactory(factory func(rootsFile string) (Services, error)) {
	serviceFactory = factory
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print conversion decisions to stderr")
	rootCmd.PersistentFlags().StringVar(&rootsFileFlag, "roots", "", "TOML file pinning storage roots to fixed locations")
}
