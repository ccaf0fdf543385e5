package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/algal/PersistableURL/internal/core/domain"
)

var rootsCmd = &cobra.Command{
	Use:   "roots",
	Short: "Print the current absolute location of each storage root",
	Long: `Prints each of the four symbolic storage roots with the absolute
location the platform currently assigns it. These locations may differ
between runs, which is why persistable URIs record the marker instead.`,
	RunE: runRoots,
}

func init() {
	rootCmd.AddCommand(rootsCmd)
}

func runRoots(cmd *cobra.Command, _ []string) error {
	if directoryService == nil {
		return errors.New("directory registry not configured")
	}

	var failures []error
	for _, root := range domain.Roots() {
		uri, err := directoryService.RootFor(root)
		if err != nil {
			cmd.Printf("%-22s (unavailable: %v)\n", root.Marker(), err)
			failures = append(failures, err)
			continue
		}
		cmd.Printf("%-22s %s\n", root.Marker(), uri)
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d root(s) unavailable", len(failures))
	}
	return nil
}
