package rendering

import (
	"bytes"
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Page template names.
const (
	PageHome       = "home"
	PageAuth       = "auth"
	PageIntake     = "request_report"
	PageReport     = "report"
	PageContractor = "contractors"
	PageDashboard  = "dashboard"
	PageNotFound   = "not_found"
	PageError      = "error"
)

var pageNames = []string{
	PageHome, PageAuth, PageIntake, PageReport,
	PageContractor, PageDashboard, PageNotFound, PageError,
}

// Renderer holds one parsed template set per page, each sharing the layout.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every embedded page.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").
			Funcs(funcMap()).
			ParseFS(templateFiles, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, &TemplateError{Page: name, Message: "failed to parse template", Cause: err}
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render executes a page into w. The page is rendered into a buffer first so
// a failing template never produces a partial page.
func (r *Renderer) Render(w io.Writer, name string, page *Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return &RenderError{Message: "unknown page " + name}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return &TemplateError{Page: name, Message: "failed to execute template", Cause: err}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &RenderError{Message: "failed to write page", Cause: err}
	}
	return nil
}
