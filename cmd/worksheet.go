package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"worksheet-docs/config"

	"github.com/spf13/cobra"
)

var (
	worksheetAnswers bool
	worksheetFolder  string
)

var worksheetCmd = &cobra.Command{
	Use:   "worksheet <definition.yaml>",
	Short: "Build a math worksheet from a YAML definition",
	Long: `Create a worksheet document with a centered title and numbered problems.
With --answers, an answer sheet is created next to it from the answers list.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorksheet,
}

func init() {
	worksheetCmd.Flags().BoolVarP(&worksheetAnswers, "answers", "a", false, "Also create an answer sheet")
	worksheetCmd.Flags().StringVar(&worksheetFolder, "folder", "", "Drive folder (overrides the definition)")
}

func runWorksheet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	ws, err := config.LoadWorksheet(args[0])
	if err != nil {
		return err
	}
	if worksheetAnswers && len(ws.Answers) == 0 {
		return errors.New("--answers given but the definition has no answers")
	}

	folder := ws.Folder
	if worksheetFolder != "" {
		folder = worksheetFolder
	}

	s, err := connect(ctx)
	if err != nil {
		return err
	}

	doc, err := s.newDocument(ctx, ws.Title, folder)
	if err != nil {
		return fmt.Errorf("Failed to create worksheet: %w", err)
	}
	if err := doc.CreateWorksheet(ctx, ws.Title, ws.Problems, ws.Page.Width, ws.Page.Height); err != nil {
		return fmt.Errorf("Failed to write worksheet: %w", err)
	}
	fmt.Printf("%s %s\n", success("Worksheet"), doc.URL())

	if !worksheetAnswers {
		return nil
	}

	title := ws.Title + " Answers"
	answers, err := s.newDocument(ctx, title, folder)
	if err != nil {
		return fmt.Errorf("Failed to create answer sheet: %w", err)
	}
	numbers := make([]string, len(ws.Problems))
	for i := range ws.Problems {
		numbers[i] = strconv.Itoa(i + 1)
	}
	if _, err := answers.GenerateAnswerSheet(ctx, title, numbers, ws.Answers); err != nil {
		return fmt.Errorf("Failed to write answer sheet: %w", err)
	}
	fmt.Printf("%s %s\n", success("Answer sheet"), answers.URL())
	return nil
}
