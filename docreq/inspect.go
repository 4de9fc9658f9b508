package docreq

import (
	"unicode/utf16"

	"google.golang.org/api/docs/v1"
)

// FirstTabID returns the ID of the document's first tab, or "" when the
// document was fetched without tab content.
func FirstTabID(doc *docs.Document) string {
	if doc == nil || len(doc.Tabs) == 0 || doc.Tabs[0].TabProperties == nil {
		return ""
	}
	return doc.Tabs[0].TabProperties.TabId
}

// TabIDs lists every tab in the document, child tabs included, in order.
func TabIDs(doc *docs.Document) []string {
	if doc == nil {
		return nil
	}
	var ids []string
	var walk func(tabs []*docs.Tab)
	walk = func(tabs []*docs.Tab) {
		for _, tab := range tabs {
			if tab.TabProperties != nil {
				ids = append(ids, tab.TabProperties.TabId)
			}
			walk(tab.ChildTabs)
		}
	}
	walk(doc.Tabs)
	return ids
}

// Body returns the body of the tab with tabID, the first tab when tabID is
// empty, or the legacy document body when there are no tabs.
func Body(doc *docs.Document, tabID string) *docs.Body {
	if doc == nil {
		return nil
	}
	if tab := findTab(doc.Tabs, tabID); tab != nil && tab.DocumentTab != nil {
		return tab.DocumentTab.Body
	}
	return doc.Body
}

func findTab(tabs []*docs.Tab, tabID string) *docs.Tab {
	for _, tab := range tabs {
		if tabID == "" {
			return tab
		}
		if tab.TabProperties != nil && tab.TabProperties.TabId == tabID {
			return tab
		}
		if child := findTab(tab.ChildTabs, tabID); child != nil {
			return child
		}
	}
	return nil
}

// EndIndex is the end index of the last structural element of the body,
// or 1 for an empty body.
func EndIndex(doc *docs.Document, tabID string) int64 {
	body := Body(doc, tabID)
	if body == nil || len(body.Content) == 0 {
		return 1
	}
	end := body.Content[len(body.Content)-1].EndIndex
	if end < 1 {
		return 1
	}
	return end
}

// FindText returns the ranges where text occurs in the body. Matches never
// overlap and never span a gap between text runs.
func FindText(doc *docs.Document, tabID, text string) []*docs.Range {
	needle := utf16.Encode([]rune(text))
	body := Body(doc, tabID)
	if len(needle) == 0 || body == nil {
		return nil
	}

	var units []uint16
	var index []int64
	collectRuns(body.Content, &units, &index)

	var ranges []*docs.Range
	n := len(needle)
	for i := 0; i+n <= len(units); {
		if equalUnits(units[i:i+n], needle) && index[i+n-1]-index[i] == int64(n-1) {
			ranges = append(ranges, Range(index[i], index[i]+int64(n), tabID))
			i += n
			continue
		}
		i++
	}
	return ranges
}

func collectRuns(content []*docs.StructuralElement, units *[]uint16, index *[]int64) {
	for _, el := range content {
		switch {
		case el.Paragraph != nil:
			for _, pe := range el.Paragraph.Elements {
				if pe.TextRun == nil {
					continue
				}
				for k, u := range utf16.Encode([]rune(pe.TextRun.Content)) {
					*units = append(*units, u)
					*index = append(*index, pe.StartIndex+int64(k))
				}
			}
		case el.Table != nil:
			for _, row := range el.Table.TableRows {
				for _, cell := range row.TableCells {
					collectRuns(cell.Content, units, index)
				}
			}
		}
	}
}

func equalUnits(a, b []uint16) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TableCellStarts returns the insertion index of every cell in the first
// row of the first table that starts at or after from.
func TableCellStarts(doc *docs.Document, tabID string, from int64) []int64 {
	body := Body(doc, tabID)
	if body == nil {
		return nil
	}
	for _, el := range body.Content {
		if el.Table == nil || el.StartIndex < from || len(el.Table.TableRows) == 0 {
			continue
		}
		var starts []int64
		for _, cell := range el.Table.TableRows[0].TableCells {
			if len(cell.Content) == 0 {
				starts = append(starts, cell.StartIndex+1)
				continue
			}
			starts = append(starts, cell.Content[0].StartIndex)
		}
		return starts
	}
	return nil
}
