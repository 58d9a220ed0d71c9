package repository

import (
	"context"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/domain"
)

// Lister reads the full project collection.
type Lister interface {
	List(ctx context.Context) ([]domain.Project, error)
}

// ProjectRepository serves a fixed in-memory project catalog.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects []domain.Project
}

// NewProjectRepository creates a repository holding a copy of projects.
func NewProjectRepository(projects []domain.Project) *ProjectRepository {
	return &ProjectRepository{projects: domain.CloneProjects(projects)}
}

// NewSampleRepository creates a repository seeded with the demo catalog.
func NewSampleRepository(now time.Time) *ProjectRepository {
	return NewProjectRepository(domain.SampleProjects(now))
}

// List returns a copy of the catalog in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.CloneProjects(r.projects), nil
}

// Len returns the catalog size.
func (r *ProjectRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.projects)
}
