package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"mytodos/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// EmptyMessage is shown in place of the list when there is nothing to draw.
const EmptyMessage = "Looks like there are no tasks here."

// PageData is everything the page template needs.
type PageData struct {
	Title      string
	Tasks      []models.Task
	Filter     models.Filter
	Priority   models.Priority
	DraftText  string
	DraftDate  string
	Editing    bool
	EditingID  int64
	Filters    []models.Filter
	Priorities []models.Priority
}

// Renderer draws the task page from embedded templates.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		"stripeClass":    PriorityStripeClass,
		"cardClass":      CardClass,
		"statusClass":    StatusButtonClass,
		"statusIcon":     StatusIcon,
		"icon":           Icon,
		"textClass":      TextClass,
		"priorityClass":  PriorityButtonClass,
		"filterClass":    FilterButtonClass,
		"emptyMessage":   func() string { return EmptyMessage },
		"actionValue":    func(kind string, id int64) string { return fmt.Sprintf("%s:%d", kind, id) },
		"priorityIntent": func(p models.Priority) string { return "priority:" + p.String() },
	}

	tmpl := template.New("").Funcs(funcMap)

	matches, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to glob templates: %w", err)
	}

	for _, match := range matches {
		content, err := templatesFS.ReadFile(match)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", match, err)
		}

		name := path.Base(match)
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}

	return &Renderer{templates: tmpl}, nil
}

// Page renders the full page.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	if data.Filters == nil {
		data.Filters = models.Filters
	}
	if data.Priorities == nil {
		data.Priorities = models.Priorities
	}
	return r.templates.ExecuteTemplate(w, "index.html", data)
}

// TaskList renders only the list region.
func (r *Renderer) TaskList(w io.Writer, tasks []models.Task) error {
	return r.templates.ExecuteTemplate(w, "task_list.html", tasks)
}
