package docreq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"
)

func insertAt(t *testing.T, r *docs.Request) (int64, string) {
	t.Helper()
	require.NotNil(t, r.InsertText, "expected insertText request")
	return r.InsertText.Location.Index, r.InsertText.Text
}

func styledRange(t *testing.T, r *docs.Request) (int64, int64, string) {
	t.Helper()
	require.NotNil(t, r.UpdateTextStyle, "expected updateTextStyle request")
	return r.UpdateTextStyle.Range.StartIndex, r.UpdateTextStyle.Range.EndIndex, r.UpdateTextStyle.Fields
}

func TestMarkdown_HeadingAndInline(t *testing.T) {
	reqs := Markdown("# Title\n\nSome **bold** and *it* text.\n", 1)
	require.Len(t, reqs, 5)

	idx, text := insertAt(t, reqs[0])
	assert.Equal(t, int64(1), idx)
	assert.Equal(t, "Title\n", text)

	heading := reqs[1].UpdateParagraphStyle
	require.NotNil(t, heading)
	assert.Equal(t, "HEADING_1", heading.ParagraphStyle.NamedStyleType)
	assert.Equal(t, int64(1), heading.Range.StartIndex)
	assert.Equal(t, int64(7), heading.Range.EndIndex)

	idx, text = insertAt(t, reqs[2])
	assert.Equal(t, int64(7), idx)
	assert.Equal(t, "Some bold and it text.\n", text)

	start, end, fields := styledRange(t, reqs[3])
	assert.Equal(t, []any{int64(12), int64(16), "bold"}, []any{start, end, fields})

	start, end, fields = styledRange(t, reqs[4])
	assert.Equal(t, []any{int64(21), int64(23), "italic"}, []any{start, end, fields})
}

func TestMarkdown_HeadingLevels(t *testing.T) {
	reqs := Markdown("### Third\n", 5)
	require.Len(t, reqs, 2)
	assert.Equal(t, "HEADING_3", reqs[1].UpdateParagraphStyle.ParagraphStyle.NamedStyleType)
}

func TestMarkdown_NestedBulletList(t *testing.T) {
	reqs := Markdown("- one\n- two\n  - nested\n\nafter\n", 1)
	require.Len(t, reqs, 5)

	idx, text := insertAt(t, reqs[0])
	assert.Equal(t, int64(1), idx)
	assert.Equal(t, "one\n", text)

	idx, text = insertAt(t, reqs[1])
	assert.Equal(t, int64(5), idx)
	assert.Equal(t, "two\n", text)

	idx, text = insertAt(t, reqs[2])
	assert.Equal(t, int64(9), idx)
	assert.Equal(t, "\tnested\n", text)

	bullets := reqs[3].CreateParagraphBullets
	require.NotNil(t, bullets)
	assert.Equal(t, BULLET_DISC_CIRCLE_SQUARE, bullets.BulletPreset)
	assert.Equal(t, int64(1), bullets.Range.StartIndex)
	assert.Equal(t, int64(17), bullets.Range.EndIndex)

	// the nesting tab is removed by the bullets request
	idx, text = insertAt(t, reqs[4])
	assert.Equal(t, int64(16), idx)
	assert.Equal(t, "after\n", text)
}

func TestMarkdown_ParagraphAfterNestedList(t *testing.T) {
	reqs := Markdown("- a\n\n  - b\n\n  tail\n", 1)
	require.Len(t, reqs, 4)

	idx, text := insertAt(t, reqs[0])
	assert.Equal(t, int64(1), idx)
	assert.Equal(t, "a\n", text)

	idx, text = insertAt(t, reqs[1])
	assert.Equal(t, int64(3), idx)
	assert.Equal(t, "\tb\n", text)

	idx, text = insertAt(t, reqs[2])
	assert.Equal(t, int64(6), idx)
	assert.Equal(t, "tail\n", text)

	bullets := reqs[3].CreateParagraphBullets
	require.NotNil(t, bullets)
	assert.Equal(t, int64(1), bullets.Range.StartIndex)
	assert.Equal(t, int64(11), bullets.Range.EndIndex)
}

func TestMarkdown_OrderedList(t *testing.T) {
	reqs := Markdown("1. first\n2. second\n", 1)
	require.Len(t, reqs, 3)

	bullets := reqs[2].CreateParagraphBullets
	require.NotNil(t, bullets)
	assert.Equal(t, NUMBERED_DECIMAL_ALPHA_ROMAN, bullets.BulletPreset)
	assert.Equal(t, int64(14), bullets.Range.EndIndex)
}

func TestMarkdown_CodeAndLink(t *testing.T) {
	reqs := Markdown("Use `x+1` or [docs](https://example.com)\n", 10)
	require.Len(t, reqs, 3)

	_, text := insertAt(t, reqs[0])
	assert.Equal(t, "Use x+1 or docs\n", text)

	start, end, fields := styledRange(t, reqs[1])
	assert.Equal(t, int64(14), start)
	assert.Equal(t, int64(17), end)
	assert.Equal(t, "weightedFontFamily,backgroundColor", fields)
	assert.Equal(t, CodeFontFamily, reqs[1].UpdateTextStyle.TextStyle.WeightedFontFamily.FontFamily)

	start, end, fields = styledRange(t, reqs[2])
	assert.Equal(t, int64(21), start)
	assert.Equal(t, int64(25), end)
	assert.Equal(t, "link", fields)
	assert.Equal(t, "https://example.com", reqs[2].UpdateTextStyle.TextStyle.Link.Url)
}

func TestMarkdown_Table(t *testing.T) {
	reqs := Markdown("| x | y |\n|---|---|\n| 1 | 3 |\n", 1)
	require.Len(t, reqs, 3)

	_, text := insertAt(t, reqs[0])
	assert.Equal(t, "x\ty\n", text)

	start, end, fields := styledRange(t, reqs[1])
	assert.Equal(t, []any{int64(1), int64(4), "bold"}, []any{start, end, fields})

	idx, text := insertAt(t, reqs[2])
	assert.Equal(t, int64(5), idx)
	assert.Equal(t, "1\t3\n", text)
}

func TestMarkdown_FencedCode(t *testing.T) {
	reqs := Markdown("```\na = 1\nb = 2\n```\n", 1)
	require.Len(t, reqs, 2)

	_, text := insertAt(t, reqs[0])
	assert.Equal(t, "a = 1\vb = 2\n", text)

	start, end, _ := styledRange(t, reqs[1])
	assert.Equal(t, int64(1), start)
	assert.Equal(t, int64(12), end)
}

func TestMarkdown_SoftBreaksJoinLines(t *testing.T) {
	reqs := Markdown("line one\nline two\n", 1)
	require.Len(t, reqs, 1)
	_, text := insertAt(t, reqs[0])
	assert.Equal(t, "line one line two\n", text)
}

func TestMarkdown_Empty(t *testing.T) {
	assert.Empty(t, Markdown("", 1))
	assert.Empty(t, Markdown("\n\n", 1))
}
