// Package render derives everything shown to the user from workspace
// state: the three builder pages, the printable paper, the standalone print
// document and the clipboard transcript.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"question-paper/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Assets returns the static files served under /static.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// NoticeKind distinguishes confirmations from warnings.
type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeWarning NoticeKind = "warning"
)

// Notice is a transient message shown over the page.
type Notice struct {
	Text string
	Kind NoticeKind
	// DismissAfter is how long the notice stays on screen; zero keeps it
	// until the next navigation.
	DismissAfter time.Duration
}

func (n Notice) DismissAfterMS() int64 {
	return n.DismissAfter.Milliseconds()
}

// ClipboardPayload is text the browser should put on the clipboard as soon
// as the page loads. Legacy selects the selection-copy path.
type ClipboardPayload struct {
	Text   string
	Legacy bool
}

// PaperData is the input of the printable paper.
type PaperData struct {
	Meta          domain.PaperMetadata
	Questions     []domain.Question
	TotalMarks    int
	StylesheetURL string
}

// PageData is the input of a full builder page.
type PageData struct {
	Page          domain.Page
	Units         []domain.Unit
	Selected      map[string]bool
	SelectedCount int
	Loading       bool
	Paper         PaperData
	Transcript    string
	StylesheetURL string
	Notice        *Notice
	Clipboard     *ClipboardPayload
}

// Renderer renders pages and documents with fixed paper metadata.
type Renderer struct {
	templates     *template.Template
	meta          domain.PaperMetadata
	stylesheetURL string
}

func NewRenderer(meta domain.PaperMetadata, stylesheetURL string) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{templates: tmpl, meta: meta, stylesheetURL: stylesheetURL}, nil
}

func (r *Renderer) Meta() domain.PaperMetadata {
	return r.meta
}

// Paper assembles the printable paper input for a question list.
func (r *Renderer) Paper(questions []domain.Question) PaperData {
	return PaperData{
		Meta:          r.meta,
		Questions:     questions,
		TotalMarks:    TotalMarks(questions),
		StylesheetURL: r.stylesheetURL,
	}
}

// Transcript renders the clipboard transcript with the renderer's metadata.
func (r *Renderer) Transcript(questions []domain.Question) string {
	return Transcript(questions, r.meta)
}

// PrintableDocument renders the numbered paper as an HTML fragment.
func (r *Renderer) PrintableDocument(questions []domain.Question) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "printable", r.Paper(questions)); err != nil {
		return "", fmt.Errorf("rendering printable paper: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// StandaloneDocument renders a complete HTML page carrying its own
// stylesheet link and print rules. Opened in its own window it prints
// itself and closes once printing finishes or is cancelled.
func (r *Renderer) StandaloneDocument(questions []domain.Question) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "print", r.Paper(questions)); err != nil {
		return nil, fmt.Errorf("rendering print document: %w", err)
	}
	return buf.Bytes(), nil
}

// Page renders a full builder page. Missing paper and stylesheet fields
// are filled from the renderer.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	if data.StylesheetURL == "" {
		data.StylesheetURL = r.stylesheetURL
	}
	if data.Paper.Meta == (domain.PaperMetadata{}) {
		data.Paper = r.Paper(data.Paper.Questions)
	}
	if data.Page == domain.PagePaper && data.Transcript == "" {
		data.Transcript = r.Transcript(data.Paper.Questions)
	}
	if err := r.templates.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("rendering %s page: %w", data.Page, err)
	}
	return nil
}
