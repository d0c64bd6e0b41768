// Package identity resolves opaque credentials and numeric ids to users.
package identity

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Lookup resolves users for the core components.
type Lookup interface {
	ResolveByToken(ctx context.Context, token string) (*entities.User, error)
	ResolveByID(ctx context.Context, userID int64) (*entities.User, error)
}

// JWTLookup parses bearer JWTs and resolves the subject claim against the
// user repository.
type JWTLookup struct {
	log    *zap.SugaredLogger
	users  repository.UserInterface
	secret []byte
}

// New constructs a JWT-backed lookup.
func New(log *zap.SugaredLogger, users repository.UserInterface, secret string) *JWTLookup {
	return &JWTLookup{
		log:    log.Named("identity"),
		users:  users,
		secret: []byte(secret),
	}
}

// ResolveByToken verifies an HS256 JWT and resolves its subject user id.
func (l *JWTLookup) ResolveByToken(ctx context.Context, token string) (*entities.User, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer"))
	if raw == "" {
		return nil, fmt.Errorf("%w: missing token", entities.ErrUnauthorized)
	}

	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return l.secret, nil
	})
	if err != nil || !parsed.Valid {
		l.log.Debugw("token rejected", "error", err)
		return nil, fmt.Errorf("%w: invalid token", entities.ErrUnauthorized)
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("%w: missing subject", entities.ErrUnauthorized)
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", entities.ErrUnauthorized)
	}

	return l.users.GetUserByID(ctx, userID)
}

// ResolveByID resolves a numeric user id.
func (l *JWTLookup) ResolveByID(ctx context.Context, userID int64) (*entities.User, error) {
	return l.users.GetUserByID(ctx, userID)
}
