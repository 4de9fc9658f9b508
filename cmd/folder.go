package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	folderParent string
)

var folderCmd = &cobra.Command{
	Use:   "folder <name>",
	Short: "Find a Drive folder, creating it when missing",
	Args:  cobra.ExactArgs(1),
	RunE:  runFolder,
}

func init() {
	folderCmd.Flags().StringVar(&folderParent, "parent", "", "Parent folder ID (default anywhere / My Drive)")
}

func runFolder(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	folder, err := s.store.FindOrCreateFolder(ctx, args[0], folderParent)
	if err != nil {
		return fmt.Errorf("Failed to find or create folder: %w", err)
	}
	fmt.Printf("%s %s (%s)\n", success("Folder"), folder.Name, folder.ID)
	return nil
}
