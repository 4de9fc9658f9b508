package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	createFolder string
)

var createCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create an empty document",
	Long:  "Create an empty Google Docs document, optionally inside a Drive folder.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createFolder, "folder", "", "Drive folder to create the document in")
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	doc, err := s.newDocument(ctx, args[0], createFolder)
	if err != nil {
		return fmt.Errorf("Failed to create document: %w", err)
	}

	fmt.Printf("%s %s\n", success("Created"), doc.ID())
	fmt.Println(doc.URL())
	return nil
}
