package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/domain"
)

// ErrCatalogMissing is returned when the catalog key does not exist.
var ErrCatalogMissing = errors.New("project catalog not seeded")

// RedisRepository serves the read-only catalog from a single Redis key
// so several instances render the same sample data.
type RedisRepository struct {
	client *redis.Client
	key    string
}

// NewRedisRepository creates a new Redis-backed catalog.
func NewRedisRepository(client *redis.Client, key string) *RedisRepository {
	return &RedisRepository{client: client, key: key}
}

// Seed stores projects under the catalog key unless it already exists.
// It reports whether this call wrote the catalog.
func (r *RedisRepository) Seed(ctx context.Context, projects []domain.Project) (bool, error) {
	data, err := json.Marshal(projects)
	if err != nil {
		return false, fmt.Errorf("failed to marshal catalog: %w", err)
	}

	created, err := r.client.SetNX(ctx, r.key, data, 0).Result()
	if err != nil {
		return false, fmt.Errorf("failed to seed catalog: %w", err)
	}
	return created, nil
}

// List decodes the catalog into a fresh slice.
func (r *RedisRepository) List(ctx context.Context) ([]domain.Project, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCatalogMissing
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	out := make([]domain.Project, 0, 8)
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	return out, nil
}

// Ping checks the Redis connection.
func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
