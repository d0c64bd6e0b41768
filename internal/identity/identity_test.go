package identity

import (
	"context"
	"testing"
	"time"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type usersStub struct {
	users map[int64]*entities.User
}

func (s *usersStub) GetUserByID(_ context.Context, userID int64) (*entities.User, error) {
	if u, ok := s.users[userID]; ok {
		return u, nil
	}
	return nil, entities.ErrUserNotFound
}

func (s *usersStub) GetUserByToken(_ context.Context, _ string) (*entities.User, error) {
	return nil, entities.ErrUserNotFound
}

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestResolveByToken(t *testing.T) {
	alice := &entities.User{ID: 1, Username: "alice", Email: "alice@example.com"}
	lookup := New(zap.NewNop().Sugar(), &usersStub{users: map[int64]*entities.User{1: alice}}, testSecret)

	user, err := lookup.ResolveByToken(context.Background(), "Bearer "+signToken(t, testSecret, "1"))
	require.NoError(t, err)
	require.Equal(t, alice, user)
}

func TestResolveByTokenWithoutBearerPrefix(t *testing.T) {
	alice := &entities.User{ID: 1, Username: "alice"}
	lookup := New(zap.NewNop().Sugar(), &usersStub{users: map[int64]*entities.User{1: alice}}, testSecret)

	user, err := lookup.ResolveByToken(context.Background(), signToken(t, testSecret, "1"))
	require.NoError(t, err)
	require.Equal(t, alice, user)
}

func TestResolveByTokenRejections(t *testing.T) {
	lookup := New(zap.NewNop().Sugar(), &usersStub{users: map[int64]*entities.User{}}, testSecret)

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"bearer only", "Bearer "},
		{"garbage", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", "1")},
		{"non-numeric subject", "Bearer " + signToken(t, testSecret, "alice")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lookup.ResolveByToken(context.Background(), tc.token)
			require.ErrorIs(t, err, entities.ErrUnauthorized)
		})
	}
}

func TestResolveByTokenUnknownUser(t *testing.T) {
	lookup := New(zap.NewNop().Sugar(), &usersStub{users: map[int64]*entities.User{}}, testSecret)

	_, err := lookup.ResolveByToken(context.Background(), "Bearer "+signToken(t, testSecret, "99"))
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestResolveByID(t *testing.T) {
	alice := &entities.User{ID: 1, Username: "alice"}
	lookup := New(zap.NewNop().Sugar(), &usersStub{users: map[int64]*entities.User{1: alice}}, testSecret)

	user, err := lookup.ResolveByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, alice, user)

	_, err = lookup.ResolveByID(context.Background(), 2)
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}
