package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-player/internal/entity"
)

var ErrRecommendationNotFound = errors.New("recommendation not found")

const keyPrefix = "recommendation:"

// RecommendationRepository caches search results. Results are a pure function
// of board size, player and move history, so entries never go stale.
type RecommendationRepository interface {
	Get(ctx context.Context, key string) (*entity.Recommendation, error)
	Save(ctx context.Context, key string, rec *entity.Recommendation) error
}

type dbRecommendation struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecommendationRepository(client *redis.Client, ttl time.Duration) RecommendationRepository {
	return &dbRecommendation{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbRecommendation) Save(ctx context.Context, key string, rec *entity.Recommendation) error {
	recJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("could not marshal recommendation: %w", err)
	}

	if err = that.client.Set(ctx, keyPrefix+key, recJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set recommendation: %w", err)
	}

	return nil
}

func (that *dbRecommendation) Get(ctx context.Context, key string) (*entity.Recommendation, error) {
	response, err := that.client.Get(ctx, keyPrefix+key).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrRecommendationNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get recommendation: %w", err)
	}

	var rec entity.Recommendation
	if err = json.Unmarshal([]byte(response), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recommendation: %w", err)
	}

	return &rec, nil
}

type nopRecommendation struct{}

// NewNopRecommendationRepository - a cache that never stores anything, used when Redis is disabled.
func NewNopRecommendationRepository() RecommendationRepository {
	return nopRecommendation{}
}

func (nopRecommendation) Get(context.Context, string) (*entity.Recommendation, error) {
	return nil, ErrRecommendationNotFound
}

func (nopRecommendation) Save(context.Context, string, *entity.Recommendation) error {
	return nil
}
