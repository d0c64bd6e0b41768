package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectUserByIDQuery    = `SELECT id, username, email FROM users WHERE id=$1`
	selectUserByTokenQuery = `SELECT id, username, email FROM users WHERE api_token=$1`
)

// GetUserByID resolves a user by numeric id.
func (p *Postgres) GetUserByID(ctx context.Context, userID int64) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByIDQuery, userID).Scan(&u.ID, &u.Username, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", entities.ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetUserByToken resolves a user by opaque api token.
func (p *Postgres) GetUserByToken(ctx context.Context, token string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByTokenQuery, token).Scan(&u.ID, &u.Username, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by token: %w", err)
	}
	return &u, nil
}
