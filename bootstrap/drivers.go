package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"

	"feed-composer/config"
	"feed-composer/driver"
	"feed-composer/logger"
)

// initDatabaseDriver creates the Postgres driver.
func initDatabaseDriver(ctx context.Context, cfg *config.Config) (*driver.DatabaseDriver, error) {
	dbDriver, err := driver.NewDatabaseDriver(ctx, cfg.Database.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("database init: %w", err)
	}
	return dbDriver, nil
}

// initMeilisearchClient connects to Meilisearch, retrying with
// exponential backoff until it reports healthy.
func initMeilisearchClient(ctx context.Context, cfg *config.Config) (meilisearch.ServiceManager, error) {
	logger.Logger.Info("Connecting to Meilisearch", "host", cfg.Search.Host)

	client := meilisearch.New(cfg.Search.Host, meilisearch.WithAPIKey(cfg.Search.APIKey))

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if _, healthErr := client.Health(); healthErr != nil {
			logger.Logger.Warn("Meilisearch not ready, retrying", "err", healthErr)
			return struct{}{}, healthErr
		}
		return struct{}{}, nil
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(5),
		backoff.WithMaxElapsedTime(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("meilisearch health: %w", err)
	}

	logger.Logger.Info("Connected to Meilisearch successfully")
	return client, nil
}

// initRedisClient connects the feed-store Redis client.
func initRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
