package document

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"worksheet-docs/docreq"
	"worksheet-docs/models"

	"go.uber.org/zap"
	"google.golang.org/api/docs/v1"
)

const editURL = "https://docs.google.com/document/d/%s/edit"

var (
	ErrNoTabs           = errors.New("document has no tabs")
	ErrAnswerMismatch   = errors.New("number of problems must match number of answers")
	ErrTableNotFound    = errors.New("inserted table not found")
	ErrNothingToConvert = errors.New("markdown produced no content")
)

// Document edits one remote document. It keeps the most recently fetched
// copy so that appends land at the current end of the body.
type Document struct {
	service  *docs.Service
	id       string
	snapshot *docs.Document
	log      *zap.SugaredLogger
}

func New(service *docs.Service, id string, log *zap.SugaredLogger) *Document {
	return &Document{service: service, id: id, log: log}
}

// Create makes an empty document in the caller's root folder.
func Create(ctx context.Context, service *docs.Service, title string, log *zap.SugaredLogger) (*Document, error) {
	created, err := service.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create document %q: %w", title, err)
	}
	log.Infof("created document %q (%s)", title, created.DocumentId)
	return New(service, created.DocumentId, log), nil
}

func (d *Document) ID() string {
	return d.id
}

func (d *Document) URL() string {
	return fmt.Sprintf(editURL, d.id)
}

// Fetch returns the full document, tab content included.
func (d *Document) Fetch(ctx context.Context) (*docs.Document, error) {
	doc, err := d.service.Documents.Get(d.id).IncludeTabsContent(true).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document %s: %w", d.id, err)
	}
	d.snapshot = doc
	return doc, nil
}

// BatchUpdate sends reqs as one batch and refetches the document.
func (d *Document) BatchUpdate(ctx context.Context, reqs []*docs.Request) (*docs.BatchUpdateDocumentResponse, error) {
	d.log.Debugf("sending %d requests to document %s", len(reqs), d.id)
	resp, err := d.service.Documents.BatchUpdate(d.id, &docs.BatchUpdateDocumentRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("batch update of document %s failed: %w", d.id, err)
	}

	if _, err := d.Fetch(ctx); err != nil {
		return nil, err
	}
	return resp, nil
}

// EndIndex returns the end index of the tab body, fetching the document
// only when no copy is cached.
func (d *Document) EndIndex(ctx context.Context, tabID string) (int64, error) {
	if d.snapshot == nil {
		if _, err := d.Fetch(ctx); err != nil {
			return 0, err
		}
	}
	return docreq.EndIndex(d.snapshot, tabID), nil
}

func (d *Document) InsertText(ctx context.Context, loc *docs.Location, text string, format models.TextFormat) (*docs.BatchUpdateDocumentResponse, error) {
	return d.BatchUpdate(ctx, docreq.InsertFormattedText(loc, text, format))
}

// AppendText inserts text before the final newline of the tab body.
func (d *Document) AppendText(ctx context.Context, tabID, text string, format models.TextFormat) (*docs.BatchUpdateDocumentResponse, error) {
	end, err := d.EndIndex(ctx, tabID)
	if err != nil {
		return nil, err
	}
	return d.InsertText(ctx, docreq.Location(end-1, tabID), text, format)
}

func (d *Document) InsertMarkdown(ctx context.Context, tabID string, index int64, markdown string) (*docs.BatchUpdateDocumentResponse, error) {
	reqs := docreq.Markdown(markdown, index)
	if len(reqs) == 0 {
		return nil, ErrNothingToConvert
	}
	return d.BatchUpdate(ctx, docreq.WithTab(reqs, tabID))
}

// AppendMarkdown converts markdown at the end of the tab body.
func (d *Document) AppendMarkdown(ctx context.Context, tabID, markdown string) (*docs.BatchUpdateDocumentResponse, error) {
	end, err := d.EndIndex(ctx, tabID)
	if err != nil {
		return nil, err
	}
	return d.InsertMarkdown(ctx, tabID, end-1, markdown)
}

// ReplaceText replaces every case-sensitive match of placeholder. When a
// format is given, only the ranges the replacement lands in are styled.
func (d *Document) ReplaceText(ctx context.Context, placeholder, replacement string, format models.TextFormat) (*docs.BatchUpdateDocumentResponse, error) {
	var hits map[string][]*docs.Range
	if !format.IsZero() && replacement != "" {
		doc, err := d.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		hits = placeholderHits(doc, placeholder)
	}

	resp, err := d.BatchUpdate(ctx, []*docs.Request{docreq.ReplaceAllText(placeholder, replacement)})
	if err != nil {
		return nil, err
	}

	changed := OccurrencesChanged(resp)
	d.log.Infof("replaced %d occurrence(s) of %s", changed, placeholder)
	if changed == 0 || len(hits) == 0 {
		return resp, nil
	}

	styles := replacedRanges(hits, docreq.Len(placeholder), docreq.Len(replacement), format)
	if len(styles) == 0 {
		return resp, nil
	}

	if _, err := d.BatchUpdate(ctx, styles); err != nil {
		return nil, fmt.Errorf("failed to format replacement for %s: %w", placeholder, err)
	}
	return resp, nil
}

func placeholderHits(doc *docs.Document, placeholder string) map[string][]*docs.Range {
	tabs := docreq.TabIDs(doc)
	if len(tabs) == 0 {
		tabs = []string{""}
	}
	hits := map[string][]*docs.Range{}
	for _, tabID := range tabs {
		if found := docreq.FindText(doc, tabID, placeholder); len(found) > 0 {
			hits[tabID] = found
		}
	}
	return hits
}

// replacedRanges maps placeholder matches taken before the replace onto
// the ranges the replacement occupies after it. Each earlier match in the
// same tab shifts later ones by the length difference.
func replacedRanges(hits map[string][]*docs.Range, oldLen, newLen int64, format models.TextFormat) []*docs.Request {
	shift := oldLen - newLen
	var styles []*docs.Request
	for tabID, ranges := range hits {
		for k, rng := range ranges {
			start := rng.StartIndex - int64(k)*shift
			if req := docreq.UpdateTextStyle(docreq.Range(start, start+newLen, tabID), format); req != nil {
				styles = append(styles, req)
			}
		}
	}
	sort.Slice(styles, func(i, j int) bool {
		a, b := styles[i].UpdateTextStyle.Range, styles[j].UpdateTextStyle.Range
		if a.TabId != b.TabId {
			return a.TabId < b.TabId
		}
		return a.StartIndex < b.StartIndex
	})
	return styles
}

// OccurrencesChanged sums the replace replies of a batch response.
func OccurrencesChanged(resp *docs.BatchUpdateDocumentResponse) int64 {
	var total int64
	for _, reply := range resp.Replies {
		if reply != nil && reply.ReplaceAllText != nil {
			total += reply.ReplaceAllText.OccurrencesChanged
		}
	}
	return total
}

// CreateHeader appends text as a HEADING_<level> paragraph.
func (d *Document) CreateHeader(ctx context.Context, text string, level int) (*docs.BatchUpdateDocumentResponse, error) {
	end, err := d.freshEndIndex(ctx)
	if err != nil {
		return nil, err
	}
	return d.BatchUpdate(ctx, docreq.Heading(end-1, text, level, ""))
}

// CreateTable appends a rows x cols table. With headers, an extra first row
// is added and filled with the bold header text; headers are skipped when
// there are more of them than columns.
func (d *Document) CreateTable(ctx context.Context, rows, cols int64, headers []string) (*docs.BatchUpdateDocumentResponse, error) {
	end, err := d.freshEndIndex(ctx)
	if err != nil {
		return nil, err
	}

	total := rows
	if len(headers) > 0 {
		total++
	}

	resp, err := d.BatchUpdate(ctx, docreq.Table(end-1, total, cols, ""))
	if err != nil {
		return nil, err
	}

	if len(headers) == 0 || int64(len(headers)) > cols {
		return resp, nil
	}

	starts := docreq.TableCellStarts(d.snapshot, "", end)
	if len(starts) < len(headers) {
		return nil, ErrTableNotFound
	}

	// Fill from the last cell backwards so earlier indexes stay valid.
	var reqs []*docs.Request
	for i := len(headers) - 1; i >= 0; i-- {
		if headers[i] == "" {
			continue
		}
		reqs = append(reqs, docreq.InsertFormattedText(docreq.Location(starts[i], ""), headers[i], models.TextFormat{Bold: true})...)
	}
	if len(reqs) == 0 {
		return resp, nil
	}
	if _, err := d.BatchUpdate(ctx, reqs); err != nil {
		return nil, fmt.Errorf("failed to fill table headers: %w", err)
	}
	return resp, nil
}

// InsertImage appends an inline image; width and height are in EMU.
func (d *Document) InsertImage(ctx context.Context, uri string, width, height float64) (*docs.BatchUpdateDocumentResponse, error) {
	end, err := d.freshEndIndex(ctx)
	if err != nil {
		return nil, err
	}
	return d.BatchUpdate(ctx, []*docs.Request{docreq.InlineImage(end-1, uri, width, height, "")})
}

func (d *Document) AddMathEquation(ctx context.Context, latex string) (*docs.BatchUpdateDocumentResponse, error) {
	end, err := d.freshEndIndex(ctx)
	if err != nil {
		return nil, err
	}
	return d.BatchUpdate(ctx, []*docs.Request{docreq.MathEquation(end-1, latex, "")})
}

// SetPageSize sets the page size in points.
func (d *Document) SetPageSize(ctx context.Context, width, height float64) (*docs.BatchUpdateDocumentResponse, error) {
	return d.BatchUpdate(ctx, []*docs.Request{docreq.PageSize(width, height)})
}

func (d *Document) freshEndIndex(ctx context.Context) (int64, error) {
	doc, err := d.Fetch(ctx)
	if err != nil {
		return 0, err
	}
	return docreq.EndIndex(doc, ""), nil
}
