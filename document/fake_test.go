package document

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/option"
)

// fakeDocs keeps the body of a single-tab document as plain text and applies
// the subset of requests the package sends.
type fakeDocs struct {
	mu      sync.Mutex
	text    string
	noTabs  bool
	table   *docs.StructuralElement
	tabled  bool
	batches [][]*docs.Request
	gets    int
	created *docs.Document
}

func newFakeDocs(t *testing.T, text string) (*fakeDocs, *docs.Service) {
	t.Helper()
	f := &fakeDocs{text: text}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	service, err := docs.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return f, service
}

func newTestDocument(t *testing.T, text string) (*fakeDocs, *Document) {
	f, service := newFakeDocs(t, text)
	return f, New(service, "doc-1", zap.NewNop().Sugar())
}

func (f *fakeDocs) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/v1/documents":
		var doc docs.Document
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.created = &doc
		json.NewEncoder(w).Encode(&docs.Document{DocumentId: "new-doc", Title: doc.Title})

	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":batchUpdate"):
		var body docs.BatchUpdateDocumentRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.batches = append(f.batches, body.Requests)
		resp := &docs.BatchUpdateDocumentResponse{DocumentId: "doc-1"}
		for _, req := range body.Requests {
			resp.Replies = append(resp.Replies, f.apply(req))
		}
		json.NewEncoder(w).Encode(resp)

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v1/documents/"):
		f.gets++
		json.NewEncoder(w).Encode(f.document())

	default:
		http.Error(w, "unexpected "+r.Method+" "+r.URL.Path, http.StatusNotFound)
	}
}

func (f *fakeDocs) apply(req *docs.Request) *docs.Response {
	switch {
	case req.InsertText != nil:
		pos := int(req.InsertText.Location.Index) - 1
		if pos < 0 {
			pos = 0
		}
		if pos > len(f.text) {
			pos = len(f.text)
		}
		f.text = f.text[:pos] + req.InsertText.Text + f.text[pos:]
	case req.ReplaceAllText != nil:
		needle := req.ReplaceAllText.ContainsText.Text
		n := strings.Count(f.text, needle)
		f.text = strings.ReplaceAll(f.text, needle, req.ReplaceAllText.ReplaceText)
		return &docs.Response{ReplaceAllText: &docs.ReplaceAllTextResponse{OccurrencesChanged: int64(n)}}
	case req.InsertTable != nil:
		f.tabled = true
	}
	return &docs.Response{}
}

func (f *fakeDocs) document() *docs.Document {
	end := int64(1 + len(f.text))
	content := []*docs.StructuralElement{
		{EndIndex: 1, SectionBreak: &docs.SectionBreak{}},
		{
			StartIndex: 1,
			EndIndex:   end,
			Paragraph: &docs.Paragraph{Elements: []*docs.ParagraphElement{{
				StartIndex: 1,
				EndIndex:   end,
				TextRun:    &docs.TextRun{Content: f.text},
			}}},
		},
	}
	if f.tabled && f.table != nil {
		content = append(content, f.table)
	}

	body := &docs.Body{Content: content}
	if f.noTabs {
		return &docs.Document{DocumentId: "doc-1", Body: body}
	}
	return &docs.Document{
		DocumentId: "doc-1",
		Tabs: []*docs.Tab{{
			TabProperties: &docs.TabProperties{TabId: "t.0"},
			DocumentTab:   &docs.DocumentTab{Body: body},
		}},
	}
}

func (f *fakeDocs) Batches() [][]*docs.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.batches
}

func (f *fakeDocs) Text() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text
}
