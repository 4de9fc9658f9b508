// Package docreq builds Google Docs batchUpdate requests. Nothing in this
// package talks to the network.
package docreq

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"worksheet-docs/models"

	"google.golang.org/api/docs/v1"
)

// Len returns the length of s in UTF-16 code units, the unit Docs uses for
// every index.
func Len(s string) int64 {
	return int64(len(utf16.Encode([]rune(s))))
}

func Location(index int64, tabID string) *docs.Location {
	return &docs.Location{Index: index, TabId: tabID}
}

func Range(start, end int64, tabID string) *docs.Range {
	return &docs.Range{StartIndex: start, EndIndex: end, TabId: tabID}
}

func InsertText(loc *docs.Location, text string) *docs.Request {
	return &docs.Request{
		InsertText: &docs.InsertTextRequest{
			Location: loc,
			Text:     text,
		},
	}
}

// TextStyle converts a format into a Docs text style and its field mask.
func TextStyle(f models.TextFormat) (*docs.TextStyle, string) {
	style := &docs.TextStyle{}
	var fields []string

	if f.Bold {
		style.Bold = true
		fields = append(fields, "bold")
	}
	if f.Italic {
		style.Italic = true
		fields = append(fields, "italic")
	}
	if f.Size > 0 {
		style.FontSize = &docs.Dimension{Magnitude: f.Size, Unit: UnitPT}
		fields = append(fields, "fontSize")
	}
	if f.Color != nil {
		style.ForegroundColor = rgb(f.Color.Red, f.Color.Green, f.Color.Blue)
		fields = append(fields, "foregroundColor")
	}

	return style, strings.Join(fields, ",")
}

// UpdateTextStyle returns nil when the format sets nothing.
func UpdateTextStyle(rng *docs.Range, f models.TextFormat) *docs.Request {
	style, fields := TextStyle(f)
	if fields == "" {
		return nil
	}
	return styleRequest(rng, style, fields)
}

func styleRequest(rng *docs.Range, style *docs.TextStyle, fields string) *docs.Request {
	return &docs.Request{
		UpdateTextStyle: &docs.UpdateTextStyleRequest{
			Range:     rng,
			TextStyle: style,
			Fields:    fields,
		},
	}
}

// InsertFormattedText inserts text at loc and styles exactly the inserted
// range when the format is non-empty.
func InsertFormattedText(loc *docs.Location, text string, f models.TextFormat) []*docs.Request {
	reqs := []*docs.Request{InsertText(loc, text)}
	rng := Range(loc.Index, loc.Index+Len(text), loc.TabId)
	if style := UpdateTextStyle(rng, f); style != nil {
		reqs = append(reqs, style)
	}
	return reqs
}

func ReplaceAllText(placeholder, replacement string) *docs.Request {
	return &docs.Request{
		ReplaceAllText: &docs.ReplaceAllTextRequest{
			ContainsText: &docs.SubstringMatchCriteria{
				Text:      placeholder,
				MatchCase: true,
			},
			ReplaceText: replacement,
		},
	}
}

// HeadingStyle maps 1..6 to HEADING_N; anything else is HEADING_1.
func HeadingStyle(level int) string {
	if level < 1 || level > 6 {
		level = 1
	}
	return fmt.Sprintf("HEADING_%d", level)
}

func ParagraphStyle(rng *docs.Range, namedStyle string) *docs.Request {
	return &docs.Request{
		UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
			Range:          rng,
			ParagraphStyle: &docs.ParagraphStyle{NamedStyleType: namedStyle},
			Fields:         "namedStyleType",
		},
	}
}

func TitleStyle(start, end int64, tabID string) *docs.Request {
	return &docs.Request{
		UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
			Range: Range(start, end, tabID),
			ParagraphStyle: &docs.ParagraphStyle{
				NamedStyleType: StyleTitle,
				Alignment:      AlignmentCenter,
			},
			Fields: "namedStyleType,alignment",
		},
	}
}

// Heading inserts text as its own paragraph at index and applies the
// heading style over it.
func Heading(index int64, text string, level int, tabID string) []*docs.Request {
	line := text + "\n"
	return []*docs.Request{
		InsertText(Location(index, tabID), line),
		ParagraphStyle(Range(index, index+Len(line), tabID), HeadingStyle(level)),
	}
}

// Table inserts a newline at index and a rows x cols table after it.
func Table(index int64, rows, cols int64, tabID string) []*docs.Request {
	return []*docs.Request{
		InsertText(Location(index, tabID), "\n"),
		{
			InsertTable: &docs.InsertTableRequest{
				Location: Location(index+1, tabID),
				Rows:     rows,
				Columns:  cols,
			},
		},
	}
}

// InlineImage sizes the image in EMU only when both width and height are set.
func InlineImage(index int64, uri string, width, height float64, tabID string) *docs.Request {
	req := &docs.InsertInlineImageRequest{
		Location: Location(index, tabID),
		Uri:      uri,
	}
	if width > 0 && height > 0 {
		req.ObjectSize = &docs.Size{
			Width:  &docs.Dimension{Magnitude: width, Unit: UnitEMU},
			Height: &docs.Dimension{Magnitude: height, Unit: UnitEMU},
		}
	}
	return &docs.Request{InsertInlineImage: req}
}

// MathEquation inserts the LaTeX source as a marked text paragraph; the Docs
// API has no equation insertion request.
func MathEquation(index int64, latex, tabID string) *docs.Request {
	return InsertText(Location(index, tabID), fmt.Sprintf(mathEquationText, latex))
}

func PageSize(width, height float64) *docs.Request {
	return &docs.Request{
		UpdateDocumentStyle: &docs.UpdateDocumentStyleRequest{
			DocumentStyle: &docs.DocumentStyle{
				PageSize: &docs.Size{
					Width:  &docs.Dimension{Magnitude: width, Unit: UnitPT},
					Height: &docs.Dimension{Magnitude: height, Unit: UnitPT},
				},
			},
			Fields: "pageSize",
		},
	}
}

func ParagraphBullets(rng *docs.Range, preset string) *docs.Request {
	return &docs.Request{
		CreateParagraphBullets: &docs.CreateParagraphBulletsRequest{
			Range:        rng,
			BulletPreset: preset,
		},
	}
}

// WithTab stamps tabID into every location and range of reqs.
func WithTab(reqs []*docs.Request, tabID string) []*docs.Request {
	for _, r := range reqs {
		switch {
		case r.InsertText != nil && r.InsertText.Location != nil:
			r.InsertText.Location.TabId = tabID
		case r.UpdateTextStyle != nil && r.UpdateTextStyle.Range != nil:
			r.UpdateTextStyle.Range.TabId = tabID
		case r.UpdateParagraphStyle != nil && r.UpdateParagraphStyle.Range != nil:
			r.UpdateParagraphStyle.Range.TabId = tabID
		case r.CreateParagraphBullets != nil && r.CreateParagraphBullets.Range != nil:
			r.CreateParagraphBullets.Range.TabId = tabID
		case r.InsertTable != nil && r.InsertTable.Location != nil:
			r.InsertTable.Location.TabId = tabID
		case r.InsertInlineImage != nil && r.InsertInlineImage.Location != nil:
			r.InsertInlineImage.Location.TabId = tabID
		}
	}
	return reqs
}

func rgb(red, green, blue float64) *docs.OptionalColor {
	return &docs.OptionalColor{
		Color: &docs.Color{
			RgbColor: &docs.RgbColor{Red: red, Green: green, Blue: blue},
		},
	}
}

func codeStyle() (*docs.TextStyle, string) {
	return &docs.TextStyle{
		WeightedFontFamily: &docs.WeightedFontFamily{FontFamily: CodeFontFamily},
		BackgroundColor:    rgb(codeBackground, codeBackground, codeBackground),
	}, "weightedFontFamily,backgroundColor"
}
