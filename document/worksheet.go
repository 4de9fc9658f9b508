package document

import (
	"context"
	"fmt"

	"worksheet-docs/docreq"
	"worksheet-docs/models"

	"google.golang.org/api/docs/v1"
)

const (
	answerHeader    = "Problem\tAnswer\n"
	answerSeparator = "-------\t-------\n"
)

// CreateWorksheet sets the page size, writes a centered title and appends
// the problems numbered from 1. Width and height are in points; zero means
// the default page.
func (d *Document) CreateWorksheet(ctx context.Context, title string, problems []string, width, height float64) error {
	if width <= 0 {
		width = models.DefaultPageWidth
	}
	if height <= 0 {
		height = models.DefaultPageHeight
	}

	doc, err := d.Fetch(ctx)
	if err != nil {
		return err
	}
	tabID := docreq.FirstTabID(doc)
	if tabID == "" {
		return ErrNoTabs
	}

	if _, err := d.SetPageSize(ctx, width, height); err != nil {
		return err
	}
	if err := d.writeTitle(ctx, tabID, title); err != nil {
		return err
	}

	for i, problem := range problems {
		if _, err := d.AppendText(ctx, tabID, fmt.Sprintf("%d. %s\n\n", i+1, problem), models.TextFormat{}); err != nil {
			return fmt.Errorf("failed to add problem %d: %w", i+1, err)
		}
	}

	d.log.Infof("worksheet %q written with %d problems", title, len(problems))
	return nil
}

// GenerateAnswerSheet writes a title followed by one tab separated
// problem/answer line per problem.
func (d *Document) GenerateAnswerSheet(ctx context.Context, title string, problems, answers []string) (*docs.Document, error) {
	if len(problems) != len(answers) {
		return nil, ErrAnswerMismatch
	}

	doc, err := d.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	tabID := docreq.FirstTabID(doc)
	if tabID == "" {
		return nil, ErrNoTabs
	}

	if err := d.writeTitle(ctx, tabID, title); err != nil {
		return nil, err
	}

	lines := []string{answerHeader, answerSeparator}
	for i := range problems {
		lines = append(lines, fmt.Sprintf("%s\t%s\n", problems[i], answers[i]))
	}
	for _, line := range lines {
		if _, err := d.AppendText(ctx, tabID, line, models.TextFormat{}); err != nil {
			return nil, err
		}
	}

	d.log.Infof("answer sheet %q written with %d answers", title, len(answers))
	return d.Fetch(ctx)
}

// writeTitle opens the body with an empty paragraph, appends the bold title
// and styles the title paragraph as TITLE, centered.
func (d *Document) writeTitle(ctx context.Context, tabID, title string) error {
	if _, err := d.BatchUpdate(ctx, []*docs.Request{
		docreq.InsertText(docreq.Location(1, tabID), "\n"),
	}); err != nil {
		return err
	}

	end, err := d.EndIndex(ctx, tabID)
	if err != nil {
		return err
	}
	start := end - 1
	if _, err := d.InsertText(ctx, docreq.Location(start, tabID), title+"\n\n", models.TextFormat{Bold: true}); err != nil {
		return err
	}

	_, err = d.BatchUpdate(ctx, []*docs.Request{
		docreq.TitleStyle(start, start+docreq.Len(title), tabID),
	})
	return err
}
