package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"worksheet-docs/models"
	"worksheet-docs/storage"

	"github.com/spf13/cobra"
)

var (
	filesParent string
	deleteForce bool
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Manage worksheet files in Google Drive",
}

var filesFindCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Find a file by exact name",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesFind,
}

var filesListCmd = &cobra.Command{
	Use:   "list <folder-id>",
	Short: "List the files in a folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesList,
}

var filesRenameCmd = &cobra.Command{
	Use:   "rename <file-id> <name>",
	Short: "Rename a file",
	Args:  cobra.ExactArgs(2),
	RunE:  runFilesRename,
}

var filesMoveCmd = &cobra.Command{
	Use:   "move <file-id> <folder-id>",
	Short: "Move a file into another folder",
	Args:  cobra.ExactArgs(2),
	RunE:  runFilesMove,
}

var filesCopyCmd = &cobra.Command{
	Use:   "copy <file-id> <name>",
	Short: "Copy a file, optionally into --parent",
	Args:  cobra.ExactArgs(2),
	RunE:  runFilesCopy,
}

var filesDeleteCmd = &cobra.Command{
	Use:   "delete <file-id>",
	Short: "Permanently delete a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesDelete,
}

func init() {
	filesFindCmd.Flags().StringVar(&filesParent, "parent", "", "Restrict the search to this folder ID")
	filesCopyCmd.Flags().StringVar(&filesParent, "parent", "", "Destination folder ID")
	filesDeleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")

	filesCmd.AddCommand(filesFindCmd)
	filesCmd.AddCommand(filesListCmd)
	filesCmd.AddCommand(filesRenameCmd)
	filesCmd.AddCommand(filesMoveCmd)
	filesCmd.AddCommand(filesCopyCmd)
	filesCmd.AddCommand(filesDeleteCmd)
}

func printRef(i int, ref *models.FileRef) {
	fmt.Printf("%d. %s (%s) %s\n", i, ref.Name, ref.ID, ref.MimeType)
}

func runFilesFind(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	ref, err := s.store.FindFile(ctx, args[0], filesParent)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Printf("No file named %q\n", args[0])
		return nil
	}
	if err != nil {
		return fmt.Errorf("Failed to search Drive: %w", err)
	}
	printRef(1, ref)
	return nil
}

func runFilesList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	refs, err := s.store.ListFolder(ctx, args[0])
	if err != nil {
		return fmt.Errorf("Failed to list folder: %w", err)
	}

	fmt.Printf("Total files in folder: %d\n\n", len(refs))
	for i, ref := range refs {
		printRef(i+1, ref)
	}
	return nil
}

func runFilesRename(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	ref, err := s.store.RenameFile(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("Failed to rename file: %w", err)
	}
	fmt.Printf("%s %s\n", success("Renamed"), ref.Name)
	return nil
}

func runFilesMove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	if _, err := s.store.MoveFile(ctx, args[0], args[1]); err != nil {
		return fmt.Errorf("Failed to move file: %w", err)
	}
	fmt.Println(success("Moved"))
	return nil
}

func runFilesCopy(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	ref, err := s.store.CopyDocument(ctx, args[0], args[1], filesParent)
	if err != nil {
		return fmt.Errorf("Failed to copy file: %w", err)
	}
	fmt.Printf("%s %s (%s)\n", success("Copied"), ref.Name, ref.ID)
	return nil
}

func runFilesDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if !deleteForce {
		fmt.Printf("Are you sure you want to delete %s? (yes/no): ", args[0])
		var response string
		fmt.Scanln(&response)

		if strings.ToLower(response) != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	if err := s.store.DeleteFile(ctx, args[0]); err != nil {
		return fmt.Errorf("Failed to delete file: %w", err)
	}
	fmt.Println(success("Deleted"))
	return nil
}
