// Package termview renders the projects list to a terminal.
package termview

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/GoSim-25-26J-441/projects-overview/internal/identity"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/domain"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/fetchstate"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/view"
)

// Config controls the terminal renderer.
type Config struct {
	NoColor    bool
	DateLayout string
	Now        func() time.Time
}

// Renderer writes frames for one list view.
type Renderer struct {
	w          io.Writer
	dateLayout string
	now        func() time.Time

	title    *color.Color
	muted    *color.Color
	failure  *color.Color
	active   *color.Color
	paused   *color.Color
	archived *color.Color
}

// New builds a renderer writing to w.
func New(w io.Writer, cfg Config) *Renderer {
	if cfg.DateLayout == "" {
		cfg.DateLayout = view.DefaultDateLayout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	r := &Renderer{
		w:          w,
		dateLayout: cfg.DateLayout,
		now:        cfg.Now,
		title:      color.New(color.FgCyan, color.Bold),
		muted:      color.New(color.FgHiBlack),
		failure:    color.New(color.FgRed, color.Bold),
		active:     color.New(color.FgGreen),
		paused:     color.New(color.FgYellow),
		archived:   color.New(color.FgHiBlack),
	}
	if cfg.NoColor {
		for _, c := range []*color.Color{r.title, r.muted, r.failure, r.active, r.paused, r.archived} {
			c.DisableColor()
		}
	}
	return r
}

// Header prints the navbar line.
func (r *Renderer) Header(u identity.User) error {
	_, err := fmt.Fprintf(r.w, "%s  %s %s\n\n",
		r.title.Sprint("Projects Overview"),
		u.DisplayName(),
		r.muted.Sprintf("(%s)", u.Initials()))
	return err
}

// Render prints one frame for out.
func (r *Renderer) Render(out fetchstate.Output) error {
	m := view.BuildList(out, r.dateLayout, r.now())

	var b strings.Builder
	if m.Mode == view.ModeError {
		b.WriteString(r.failure.Sprint("✖ Something went wrong") + "\n")
		b.WriteString("  " + m.ErrorMessage + "\n")
		b.WriteString(r.muted.Sprint("  Try again: run the command again") + "\n")
		_, err := io.WriteString(r.w, b.String())
		return err
	}

	b.WriteString(r.title.Sprint("Your Projects") + "\n")
	b.WriteString(r.muted.Sprint("Manage and keep track of your work in one place.") + "\n\n")

	switch m.Mode {
	case view.ModeLoading:
		for range m.Placeholders {
			b.WriteString(r.muted.Sprint("  ░░░░░░░░░░░░░░░░░░░░") + "\n")
		}
	case view.ModeEmpty:
		b.WriteString("  No projects yet\n")
		b.WriteString(r.muted.Sprint("  Get started by creating your first project.") + "\n")
	default:
		for _, c := range m.Cards {
			r.card(&b, c)
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) card(b *strings.Builder, c view.CardModel) {
	fmt.Fprintf(b, "  %s  %s\n", r.title.Sprint(c.Name), r.badge(c.Category).Sprintf("[%s]", c.Status))
	if c.Description != "" {
		fmt.Fprintf(b, "    %s\n", c.Description)
	}
	fmt.Fprintf(b, "    %s\n\n", r.muted.Sprintf("Updated %s (%s)", c.UpdatedLabel, c.Relative))
}

func (r *Renderer) badge(cat domain.StatusCategory) *color.Color {
	switch cat {
	case domain.CategoryActive:
		return r.active
	case domain.CategoryPaused:
		return r.paused
	default:
		return r.archived
	}
}
