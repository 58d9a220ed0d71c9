package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/projects-overview/config"
	"github.com/GoSim-25-26J-441/projects-overview/internal/bootstrap"
	"github.com/GoSim-25-26J-441/projects-overview/internal/logging"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/domain"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/repository"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/service"
)

const (
	catalogMemory = "memory"
	catalogRedis  = "redis"
)

// app is the wired read path shared by serve and list.
type app struct {
	catalog   string
	redis     *redis.Client
	redisRepo *repository.RedisRepository
	projects  *service.ProjectService
}

func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	now := time.Now()
	a := &app{catalog: catalogMemory}

	var store repository.Lister = repository.NewSampleRepository(now)

	if cfg.Redis.URL != "" {
		client, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{URL: cfg.Redis.URL})
		if err != nil {
			return nil, err
		}

		repo := repository.NewRedisRepository(client, cfg.Redis.CatalogKey)
		seeded, err := repo.Seed(ctx, domain.SampleProjects(now))
		if err != nil {
			client.Close()
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		logging.Info().
			Str("key", cfg.Redis.CatalogKey).
			Bool("seeded", seeded).
			Msg("using redis catalog")

		a.catalog = catalogRedis
		a.redis = client
		a.redisRepo = repo
		store = repo
	}

	api := repository.NewMockAPI(store, cfg.Projects.FetchDelay, cfg.Projects.ForceError)
	a.projects = service.NewProjectService(api)
	return a, nil
}

func (a *app) Close() {
	if a.redis != nil {
		a.redis.Close()
	}
}
