package cli

import (
	"github.com/spf13/cobra"

	"github.com/algal/PersistableURL/internal/adapters/driven/dirs/platform"
)

var scratchCmd = &cobra.Command{
	Use:   "scratch",
	Short: "Create a fresh unique temporary directory and print its URI",
	Long: `Creates a new uniquely named directory under the system temporary
location and prints its absolute file URI. Scratch directories are never
persistable; their contents do not outlive cleanup.`,
	RunE: runScratch,
}

func init() {
	rootCmd.AddCommand(scratchCmd)
}

func runScratch(cmd *cobra.Command, _ []string) error {
	uri, err := platform.ScratchDir()
	if err != nil {
		return err
	}
	cmd.Println(uri)
	return nil
}
