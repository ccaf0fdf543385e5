package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var errNoBookmarks = errors.New("bookmark service not configured")

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Manage named locations that survive sandbox relocation",
	Long: `Bookmarks store a location in persistable form, so the name keeps
working even when the platform assigns the storage roots new absolute
locations on the next run.`,
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add [name] [uri]",
	Short: "Save a location under a name",
	Args:  cobra.ExactArgs(2),
	RunE:  runBookmarkAdd,
}

var bookmarkResolveCmd = &cobra.Command{
	Use:   "resolve [name]",
	Short: "Print a bookmark's current absolute location",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarkResolve,
}

var bookmarkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all bookmarks",
	RunE:  runBookmarkList,
}

var bookmarkRemoveCmd = &cobra.Command{
	Use:   "rm [name]",
	Short: "Remove a bookmark",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarkRemove,
}

func init() {
	bookmarkCmd.AddCommand(bookmarkAddCmd)
	bookmarkCmd.AddCommand(bookmarkResolveCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd)
	bookmarkCmd.AddCommand(bookmarkRemoveCmd)
	rootCmd.AddCommand(bookmarkCmd)
}

func runBookmarkAdd(cmd *cobra.Command, args []string) error {
	if bookmarkService == nil {
		return errNoBookmarks
	}

	bookmark, err := bookmarkService.Save(context.Background(), args[0], args[1])
	if err != nil {
		return err
	}
	cmd.Printf("%s -> %s\n", bookmark.Name, bookmark.Location)
	return nil
}

func runBookmarkResolve(cmd *cobra.Command, args []string) error {
	if bookmarkService == nil {
		return errNoBookmarks
	}

	_, abs, err := bookmarkService.Resolve(context.Background(), args[0])
	if err != nil {
		return err
	}
	cmd.Println(abs)
	return nil
}

func runBookmarkList(cmd *cobra.Command, _ []string) error {
	if bookmarkService == nil {
		return errNoBookmarks
	}

	bookmarks, err := bookmarkService.List(context.Background())
	if err != nil {
		return err
	}
	if len(bookmarks) == 0 {
		cmd.Println("no bookmarks")
		return nil
	}
	for _, b := range bookmarks {
		cmd.Printf("%-20s %s\n", b.Name, b.Location)
	}
	return nil
}

func runBookmarkRemove(cmd *cobra.Command, args []string) error {
	if bookmarkService == nil {
		return errNoBookmarks
	}

	if err := bookmarkService.Delete(context.Background(), args[0]); err != nil {
		return err
	}
	cmd.Printf("removed %s\n", args[0])
	return nil
}
