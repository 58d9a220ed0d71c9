// Package view renders the projects page as HTML.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/GoSim-25-26J-441/projects-overview/internal/identity"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/fetchstate"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names.
const (
	PageTemplate     = "page"
	ProjectsTemplate = "projects"
)

// DefaultDateLayout is used when no layout is configured.
const DefaultDateLayout = "Jan 2, 2006"

// Renderer turns fetch outputs into HTML.
type Renderer struct {
	tmpl       *template.Template
	dateLayout string
	now        func() time.Time
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithClock overrides the clock used for relative times.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// NewRenderer parses the embedded templates.
func NewRenderer(dateLayout string, opts ...Option) (*Renderer, error) {
	if dateLayout == "" {
		dateLayout = DefaultDateLayout
	}

	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := &Renderer{tmpl: tmpl, dateLayout: dateLayout, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Template exposes the parsed set, e.g. for gin's SetHTMLTemplate.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// List builds the section model for out.
func (r *Renderer) List(out fetchstate.Output, forceError bool) ListModel {
	m := BuildList(out, r.dateLayout, r.now())
	m.ForceError = forceError
	return m
}

// Page builds the full page model.
func (r *Renderer) Page(user identity.User, list ListModel, liveURL string) PageData {
	return PageData{
		Title:     "Projects Overview",
		User:      NewUserModel(user),
		Projects:  list,
		LiveURL:   liveURL,
		StaticURL: StaticURL(list.ForceError),
	}
}

// RenderPage writes the full HTML document.
func (r *Renderer) RenderPage(w io.Writer, data PageData) error {
	return r.tmpl.ExecuteTemplate(w, PageTemplate, data)
}

// RenderProjects writes only the projects section, the unit swapped by
// live updates.
func (r *Renderer) RenderProjects(w io.Writer, list ListModel) error {
	return r.tmpl.ExecuteTemplate(w, ProjectsTemplate, list)
}

// ProjectsHTML renders the projects section to a string.
func (r *Renderer) ProjectsHTML(list ListModel) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderProjects(&buf, list); err != nil {
		return "", err
	}
	return buf.String(), nil
}
