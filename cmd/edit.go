package cmd

import (
	"context"
	"fmt"

	"worksheet-docs/document"

	"github.com/spf13/cobra"
)

var (
	textDoc     string
	textTab     string
	textFormat  formatOptions
	headerDoc   string
	headerLevel int
	replaceDoc  string
	replaceFmt  formatOptions
	equationDoc string
)

var textCmd = &cobra.Command{
	Use:   "text <text>",
	Short: "Append text to a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runText,
}

var headerCmd = &cobra.Command{
	Use:   "header <text>",
	Short: "Append a heading to a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runHeader,
}

var replaceCmd = &cobra.Command{
	Use:   "replace <placeholder> <replacement>",
	Short: "Replace every occurrence of a placeholder",
	Long:  "Replace a placeholder in all tabs and optionally style the replacement text.",
	Args:  cobra.ExactArgs(2),
	RunE:  runReplace,
}

var equationCmd = &cobra.Command{
	Use:   "equation <latex>",
	Short: "Append a math equation placeholder",
	Args:  cobra.ExactArgs(1),
	RunE:  runEquation,
}

func init() {
	addDocumentFlag(textCmd, &textDoc)
	textCmd.Flags().StringVar(&textTab, "tab", "", "Tab ID (default first tab)")
	addFormatFlags(textCmd, &textFormat)

	addDocumentFlag(headerCmd, &headerDoc)
	headerCmd.Flags().IntVarP(&headerLevel, "level", "l", 1, "Heading level 1-6")

	addDocumentFlag(replaceCmd, &replaceDoc)
	addFormatFlags(replaceCmd, &replaceFmt)

	addDocumentFlag(equationCmd, &equationDoc)
}

func runText(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	format, err := textFormat.format()
	if err != nil {
		return err
	}
	s, err := connect(ctx)
	if err != nil {
		return err
	}

	if _, err := s.document(textDoc).AppendText(ctx, textTab, args[0], format); err != nil {
		return fmt.Errorf("Failed to insert text: %w", err)
	}
	fmt.Println(success("Text inserted"))
	return nil
}

func runHeader(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	if _, err := s.document(headerDoc).CreateHeader(ctx, args[0], headerLevel); err != nil {
		return fmt.Errorf("Failed to create header: %w", err)
	}
	fmt.Println(success("Header created"))
	return nil
}

func runReplace(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	format, err := replaceFmt.format()
	if err != nil {
		return err
	}
	s, err := connect(ctx)
	if err != nil {
		return err
	}

	resp, err := s.document(replaceDoc).ReplaceText(ctx, args[0], args[1], format)
	if err != nil {
		return fmt.Errorf("Failed to replace text: %w", err)
	}
	fmt.Printf("%s %d occurrence(s)\n", success("Replaced"), document.OccurrencesChanged(resp))
	return nil
}

func runEquation(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	if _, err := s.document(equationDoc).AddMathEquation(ctx, args[0]); err != nil {
		return fmt.Errorf("Failed to add equation: %w", err)
	}
	fmt.Println(success("Equation added"))
	return nil
}
