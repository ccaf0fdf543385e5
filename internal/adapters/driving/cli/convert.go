package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNoConverter = errors.New("converter service not configured")

var persistCmd = &cobra.Command{
	Use:   "persist [uri]",
	Short: "Convert an absolute file URI to its persistable form",
	Long: `Rewrites an absolute file:// URI under one of the four storage roots
into a persistable URI (marker scheme plus relative path). A URI that is
already persistable is printed unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runPersist,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [uri]",
	Short: "Convert a persistable URI to an absolute file URI",
	Long: `Resolves a persistable URI against the current storage roots and
prints the absolute file:// URI. An absolute file URI is printed unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

var checkCmd = &cobra.Command{
	Use:   "check [uri]",
	Short: "Report whether a URI is in persistable form",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(persistCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(checkCmd)
}

func runPersist(cmd *cobra.Command, args []string) error {
	if converterService == nil {
		return errNoConverter
	}

	persistable, ok, err := converterService.ToPersistable(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("uri is outside all known storage roots")
	}
	cmd.Println(persistable)
	return nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	if converterService == nil {
		return errNoConverter
	}

	abs, ok, err := converterService.ToAbsolute(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("uri is neither persistable nor an absolute file uri")
	}
	cmd.Println(abs)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	if converterService == nil {
		return errNoConverter
	}

	if converterService.IsPersistable(args[0]) {
		cmd.Println("persistable")
		return nil
	}
	cmd.Println("not persistable")
	return nil
}
