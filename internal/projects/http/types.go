package http

import (
	"context"
	"time"

	"github.com/GoSim-25-26J-441/projects-overview/internal/identity"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/domain"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/view"
)

// ProjectLister is the read side the handlers need.
type ProjectLister interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	projects ProjectLister
	renderer *view.Renderer
	user     identity.User
}

func New(projects ProjectLister, renderer *view.Renderer, user identity.User) *Handler {
	return &Handler{projects: projects, renderer: renderer, user: user}
}

type projectDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedAtMS int64     `json:"updated_at_ms"`
}

func toProjectDTO(p domain.Project) projectDTO {
	return projectDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		Category:    p.Category().String(),
		UpdatedAt:   p.UpdatedAt.UTC(),
		UpdatedAtMS: p.UpdatedAtMillis(),
	}
}

type userDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Initials string `json:"initials"`
}
