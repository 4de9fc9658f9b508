package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// fakeWorkspace serves the Drive files endpoint and the Docs documents
// endpoint from one server. Documents are kept as plain text bodies.
type fakeWorkspace struct {
	mu     sync.Mutex
	files  []*drive.File
	bodies map[string]string
}

func (f *fakeWorkspace) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/files":
		var folders []*drive.File
		for _, file := range f.files {
			if file.MimeType == "application/vnd.google-apps.folder" {
				folders = append(folders, file)
			}
		}
		json.NewEncoder(w).Encode(&drive.FileList{Files: folders})

	case r.Method == http.MethodPost && r.URL.Path == "/files":
		var file drive.File
		if err := json.NewDecoder(r.Body).Decode(&file); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		file.Id = fmt.Sprintf("file-%d", len(f.files)+1)
		f.files = append(f.files, &file)
		if file.MimeType == "application/vnd.google-apps.document" {
			f.bodies[file.Id] = "\n"
		}
		json.NewEncoder(w).Encode(&file)

	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":batchUpdate"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v1/documents/"), ":batchUpdate")
		var body docs.BatchUpdateDocumentRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for _, req := range body.Requests {
			if req.InsertText == nil {
				continue
			}
			text := f.bodies[id]
			pos := int(req.InsertText.Location.Index) - 1
			f.bodies[id] = text[:pos] + req.InsertText.Text + text[pos:]
		}
		json.NewEncoder(w).Encode(&docs.BatchUpdateDocumentResponse{DocumentId: id})

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v1/documents/"):
		id := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
		json.NewEncoder(w).Encode(fakeDocument(id, f.bodies[id]))

	default:
		http.Error(w, "unexpected "+r.Method+" "+r.URL.Path, http.StatusNotFound)
	}
}

func fakeDocument(id, text string) *docs.Document {
	end := int64(1 + len(text))
	body := &docs.Body{Content: []*docs.StructuralElement{
		{EndIndex: 1, SectionBreak: &docs.SectionBreak{}},
		{
			StartIndex: 1,
			EndIndex:   end,
			Paragraph: &docs.Paragraph{Elements: []*docs.ParagraphElement{{
				StartIndex: 1,
				EndIndex:   end,
				TextRun:    &docs.TextRun{Content: text},
			}}},
		},
	}}
	return &docs.Document{
		DocumentId: id,
		Tabs: []*docs.Tab{{
			TabProperties: &docs.TabProperties{TabId: "t.0"},
			DocumentTab:   &docs.DocumentTab{Body: body},
		}},
	}
}

func (f *fakeWorkspace) Files() []*drive.File {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.files
}

func (f *fakeWorkspace) Body(id string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[id]
}

// useFakeWorkspace points every command at a fake server for the test.
func useFakeWorkspace(t *testing.T) *fakeWorkspace {
	t.Helper()
	f := &fakeWorkspace{bodies: map[string]string{}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	logger = zap.NewNop().Sugar()
	connect = func(ctx context.Context) (*session, error) {
		return newSession(ctx, option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	}
	t.Cleanup(func() { connect = authenticate })

	_, err := connect(context.Background())
	require.NoError(t, err)
	return f
}
