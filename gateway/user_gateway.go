package gateway

import (
	"context"

	"feed-composer/domain"
	"feed-composer/driver"
)

type UserDriver interface {
	GetActiveUser(ctx context.Context, userID string) (*driver.UserRow, error)
}

// UserGateway adapts the users query to the UserRepository port.
// A missing user stays (nil, nil): absence is not an error for the job.
type UserGateway struct {
	driver UserDriver
}

func NewUserGateway(driver UserDriver) *UserGateway {
	return &UserGateway{driver: driver}
}

func (g *UserGateway) FindActiveUser(ctx context.Context, userID string) (*domain.User, error) {
	row, err := g.driver.GetActiveUser(ctx, userID)
	if err != nil {
		return nil, &domain.RepositoryError{
			Op:  "FindActiveUser",
			Err: err.Error(),
		}
	}
	if row == nil {
		return nil, nil
	}

	return &domain.User{ID: row.ID, Active: row.Active}, nil
}
