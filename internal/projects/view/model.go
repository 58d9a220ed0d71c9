package view

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/GoSim-25-26J-441/projects-overview/internal/identity"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/domain"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/fetchstate"
)

// PlaceholderCount is the number of skeleton cards shown while loading.
const PlaceholderCount = 6

// List modes, in priority order.
const (
	ModeError   = "error"
	ModeLoading = "loading"
	ModeEmpty   = "empty"
	ModeGrid    = "grid"
)

// ListModel is everything the projects section template needs.
type ListModel struct {
	Mode         string
	ErrorMessage string
	Placeholders []int
	Cards        []CardModel
	// ForceError is carried into the retry form so a retry re-reads the
	// same failure signal as the page that rendered it.
	ForceError bool
}

// CardModel is the display form of one project.
type CardModel struct {
	ID           string
	Name         string
	Description  string
	Status       string
	Category     domain.StatusCategory
	BadgeClass   string
	DateTime     string
	UpdatedLabel string
	Relative     string
}

// UserModel is the navbar form of the mock user.
type UserModel struct {
	Name     string
	Initials string
}

// PageData feeds the full page template.
type PageData struct {
	Title    string
	User     UserModel
	Projects ListModel
	// LiveURL is the websocket path the page script connects to. Empty
	// disables the script and the page stays as rendered.
	LiveURL string
	// StaticURL serves the settled page without a socket. The script falls
	// back to it when the socket closes before the first render.
	StaticURL string
}

// StaticURL is the script-free page for the given failure signal.
func StaticURL(forceError bool) string {
	if forceError {
		return "/?static=1&error=1"
	}
	return "/?static=1"
}

// NewUserModel builds the navbar model for u.
func NewUserModel(u identity.User) UserModel {
	return UserModel{Name: u.DisplayName(), Initials: u.Initials()}
}

// BuildList maps a fetch output to exactly one list mode: an error wins
// over loading, loading wins over empty, and the grid keeps store order.
func BuildList(out fetchstate.Output, dateLayout string, now time.Time) ListModel {
	switch {
	case out.Error != nil:
		return ListModel{Mode: ModeError, ErrorMessage: out.Error.Error()}
	case out.Loading:
		return ListModel{Mode: ModeLoading, Placeholders: make([]int, PlaceholderCount)}
	case len(out.Data) == 0:
		return ListModel{Mode: ModeEmpty}
	}

	cards := make([]CardModel, 0, len(out.Data))
	for _, p := range out.Data {
		cards = append(cards, BuildCard(p, dateLayout, now))
	}
	return ListModel{Mode: ModeGrid, Cards: cards}
}

// BuildCard renders the fields of one project for display.
func BuildCard(p domain.Project, dateLayout string, now time.Time) CardModel {
	updated := p.UpdatedAt.UTC()
	return CardModel{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Status:       p.Status,
		Category:     p.Category(),
		BadgeClass:   "badge badge--" + p.Category().BadgeModifier(),
		DateTime:     updated.Format(time.RFC3339),
		UpdatedLabel: updated.Format(dateLayout),
		Relative:     humanize.RelTime(updated, now, "ago", "from now"),
	}
}
