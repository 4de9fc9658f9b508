package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	markdownDoc   string
	markdownTab   string
	markdownIndex int64
	markdownDrive bool
	tableDoc      string
	tableRows     int64
	tableCols     int64
	tableHeaders  []string
	imageDoc      string
	imageWidth    float64
	imageHeight   float64
)

var markdownCmd = &cobra.Command{
	Use:   "markdown <file>",
	Short: "Insert Markdown as formatted document content",
	Long: `Convert a Markdown file into headings, lists, code blocks and styled text.
Use "-" to read from stdin, or --drive to read a markdown, text or Docs
file from Google Drive by ID. Content is appended unless --index is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runMarkdown,
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Append a table",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

var imageCmd = &cobra.Command{
	Use:   "image <uri>",
	Short: "Append an inline image from a public URI",
	Args:  cobra.ExactArgs(1),
	RunE:  runImage,
}

func init() {
	addDocumentFlag(markdownCmd, &markdownDoc)
	markdownCmd.Flags().StringVar(&markdownTab, "tab", "", "Tab ID (default first tab)")
	markdownCmd.Flags().Int64Var(&markdownIndex, "index", 0, "Insert at this index instead of appending")
	markdownCmd.Flags().BoolVar(&markdownDrive, "drive", false, "Treat <file> as a Google Drive file ID")

	addDocumentFlag(tableCmd, &tableDoc)
	tableCmd.Flags().Int64VarP(&tableRows, "rows", "r", 2, "Number of rows")
	tableCmd.Flags().Int64VarP(&tableCols, "cols", "c", 2, "Number of columns")
	tableCmd.Flags().StringSliceVar(&tableHeaders, "headers", nil, "Comma separated header row")

	addDocumentFlag(imageCmd, &imageDoc)
	imageCmd.Flags().Float64Var(&imageWidth, "width", 0, "Width in EMU (0 keeps the natural size)")
	imageCmd.Flags().Float64Var(&imageHeight, "height", 0, "Height in EMU (0 keeps the natural size)")
}

func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("Failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func runMarkdown(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	var src string
	if markdownDrive {
		src, err = s.store.ReadText(ctx, args[0])
	} else {
		src, err = readSource(args[0])
	}
	if err != nil {
		return err
	}
	doc := s.document(markdownDoc)

	if markdownIndex > 0 {
		_, err = doc.InsertMarkdown(ctx, markdownTab, markdownIndex, src)
	} else {
		_, err = doc.AppendMarkdown(ctx, markdownTab, src)
	}
	if err != nil {
		return fmt.Errorf("Failed to insert markdown: %w", err)
	}
	fmt.Println(success("Markdown inserted"))
	return nil
}

func runTable(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if tableRows < 1 || tableCols < 1 {
		return fmt.Errorf("rows and cols must be positive, got %dx%d", tableRows, tableCols)
	}

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	if _, err := s.document(tableDoc).CreateTable(ctx, tableRows, tableCols, tableHeaders); err != nil {
		return fmt.Errorf("Failed to create table: %w", err)
	}
	fmt.Printf("%s %dx%d\n", success("Table created"), tableRows, tableCols)
	return nil
}

func runImage(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	if _, err := s.document(imageDoc).InsertImage(ctx, args[0], imageWidth, imageHeight); err != nil {
		return fmt.Errorf("Failed to insert image: %w", err)
	}
	fmt.Println(success("Image inserted"))
	return nil
}
