package driver

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// UserRow mirrors the columns the refresh job needs from the users table.
type UserRow struct {
	ID     string
	Active bool
}

// GetActiveUser returns the user when it exists, nil when it does not.
func (d *DatabaseDriver) GetActiveUser(ctx context.Context, userID string) (*UserRow, error) {
	query := `
		SELECT id, status = 'ACTIVE'
		FROM users
		WHERE id = $1
	`

	var row UserRow
	err := d.pool.QueryRow(ctx, query, userID).Scan(&row.ID, &row.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &DriverError{Op: "GetActiveUser", Err: err.Error()}
	}

	return &row, nil
}
