package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	fetchDoc string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Print a document as JSON, including every tab",
	Args:  cobra.NoArgs,
	RunE:  runFetch,
}

func init() {
	addDocumentFlag(fetchCmd, &fetchDoc)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	doc, err := s.document(fetchDoc).Fetch(ctx)
	if err != nil {
		return fmt.Errorf("Failed to fetch document: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
