package driver

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DatabaseDriver wraps the pgx pool behind the queries this service
// actually runs.
type DatabaseDriver struct {
	pool *pgxpool.Pool
}

func NewDatabaseDriver(ctx context.Context, databaseURL string) (*DatabaseDriver, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("database init: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}

	return &DatabaseDriver{pool: pool}, nil
}

func (d *DatabaseDriver) Close() {
	d.pool.Close()
}
