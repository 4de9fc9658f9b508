package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorksheet(t *testing.T) {
	f, d := newTestDocument(t, "\n")

	err := d.CreateWorksheet(context.Background(), "Quiz", []string{"1+1", "2+2"}, 0, 0)
	require.NoError(t, err)

	batches := f.Batches()
	require.Len(t, batches, 6)

	page := batches[0][0].UpdateDocumentStyle
	require.NotNil(t, page)
	assert.Equal(t, "pageSize", page.Fields)
	assert.Equal(t, 500.0, page.DocumentStyle.PageSize.Width.Magnitude)
	assert.Equal(t, 700.0, page.DocumentStyle.PageSize.Height.Magnitude)

	opening := batches[1][0].InsertText
	assert.Equal(t, int64(1), opening.Location.Index)
	assert.Equal(t, "t.0", opening.Location.TabId)
	assert.Equal(t, "\n", opening.Text)

	title := batches[2]
	require.Len(t, title, 2)
	assert.Equal(t, "Quiz\n\n", title[0].InsertText.Text)
	assert.Equal(t, int64(2), title[0].InsertText.Location.Index)
	assert.Equal(t, "bold", title[1].UpdateTextStyle.Fields)

	titleStyle := batches[3][0].UpdateParagraphStyle
	require.NotNil(t, titleStyle)
	assert.Equal(t, "TITLE", titleStyle.ParagraphStyle.NamedStyleType)
	assert.Equal(t, "CENTER", titleStyle.ParagraphStyle.Alignment)
	assert.Equal(t, int64(2), titleStyle.Range.StartIndex)
	assert.Equal(t, int64(6), titleStyle.Range.EndIndex)

	assert.Equal(t, "1. 1+1\n\n", batches[4][0].InsertText.Text)
	assert.Equal(t, int64(8), batches[4][0].InsertText.Location.Index)
	assert.Equal(t, "2. 2+2\n\n", batches[5][0].InsertText.Text)

	assert.Equal(t, "\nQuiz\n\n1. 1+1\n\n2. 2+2\n\n\n", f.Text())
}

func TestCreateWorksheet_CustomPage(t *testing.T) {
	f, d := newTestDocument(t, "\n")

	require.NoError(t, d.CreateWorksheet(context.Background(), "Q", []string{"a"}, 612, 792))

	page := f.Batches()[0][0].UpdateDocumentStyle.DocumentStyle.PageSize
	assert.Equal(t, 612.0, page.Width.Magnitude)
	assert.Equal(t, 792.0, page.Height.Magnitude)
}

func TestCreateWorksheet_NoTabs(t *testing.T) {
	f, d := newTestDocument(t, "\n")
	f.noTabs = true

	err := d.CreateWorksheet(context.Background(), "Quiz", []string{"1+1"}, 0, 0)
	assert.ErrorIs(t, err, ErrNoTabs)
	assert.Empty(t, f.Batches())
}

func TestGenerateAnswerSheet(t *testing.T) {
	f, d := newTestDocument(t, "\n")

	doc, err := d.GenerateAnswerSheet(context.Background(), "Answers", []string{"1", "2"}, []string{"2", "4"})
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Len(t, f.Batches(), 7)
	assert.Equal(t, "\nAnswers\n\nProblem\tAnswer\n-------\t-------\n1\t2\n2\t4\n\n", f.Text())
}

func TestGenerateAnswerSheet_Mismatch(t *testing.T) {
	f, d := newTestDocument(t, "\n")

	_, err := d.GenerateAnswerSheet(context.Background(), "Answers", []string{"1", "2"}, []string{"2"})
	assert.ErrorIs(t, err, ErrAnswerMismatch)
	assert.Zero(t, f.gets)
	assert.Empty(t, f.Batches())
}
