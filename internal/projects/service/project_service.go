package service

import (
	"context"
	"errors"
	"time"

	"github.com/GoSim-25-26J-441/projects-overview/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/projects-overview/internal/logging"
	"github.com/GoSim-25-26J-441/projects-overview/internal/observability"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/domain"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/repository"
)

// genericFetchMessage replaces infrastructure errors that are not already a FetchError.
const genericFetchMessage = "Failed to fetch projects."

// ProjectService handles project-related business logic
type ProjectService struct {
	repo repository.Lister
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.Lister) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// ListProjects returns the full project collection.
// Every failure except context cancellation comes back as a *domain.FetchError.
func (s *ProjectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	start := time.Now()
	items, err := s.repo.List(ctx)
	took := time.Since(start)

	rid := middleware.GetRequestID(ctx)

	if err == nil {
		observability.RecordFetch(observability.OutcomeSuccess, took)
		logging.Debug().
			Str("request_id", rid).
			Int("count", len(items)).
			Dur("took", took).
			Msg("projects fetched")
		return items, nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		observability.RecordFetch(observability.OutcomeCancelled, took)
		logging.Debug().
			Str("request_id", rid).
			Dur("took", took).
			Msg("projects fetch cancelled")
		return nil, err
	}

	observability.RecordFetch(observability.OutcomeFailure, took)

	fe, ok := domain.AsFetchError(err)
	if !ok {
		logging.Error().
			Err(err).
			Str("request_id", rid).
			Msg("projects fetch failed")
		return nil, domain.NewFetchError(genericFetchMessage)
	}

	logging.Warn().
		Str("request_id", rid).
		Str("error", fe.Message).
		Dur("took", took).
		Msg("projects fetch failed")
	return nil, fe
}
