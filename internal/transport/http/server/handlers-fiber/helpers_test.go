package handlers_fiber

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/dto"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type identStub struct {
	user *entities.User
}

func (s *identStub) ResolveByToken(_ context.Context, token string) (*entities.User, error) {
	if s.user == nil || token == "" {
		return nil, entities.ErrUnauthorized
	}
	return s.user, nil
}

func (s *identStub) ResolveByID(_ context.Context, _ int64) (*entities.User, error) {
	if s.user == nil {
		return nil, entities.ErrUserNotFound
	}
	return s.user, nil
}

func TestRequesterFromAuthorizationHeader(t *testing.T) {
	h := NewHandler(zap.NewNop().Sugar(), nil, &identStub{})

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if _, err := h.requester(c); err != nil {
			return writeError(c, err)
		}
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	h.ident = &identStub{user: &entities.User{ID: 1, Username: "alice"}}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer some-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"invalid argument", fmt.Errorf("%w: name is required", entities.ErrInvalidArgument), http.StatusBadRequest, dto.CodeInvalidArgument},
		{"unauthorized", entities.ErrUnauthorized, http.StatusUnauthorized, dto.CodeUnauthorized},
		{"permission denied", entities.ErrPermissionDenied, http.StatusForbidden, dto.CodePermissionDenied},
		{"user not found", entities.ErrUserNotFound, http.StatusNotFound, dto.CodeNotFound},
		{"project not found", fmt.Errorf("%w: id 7", entities.ErrProjectNotFound), http.StatusNotFound, dto.CodeNotFound},
		{"requirement not found", entities.ErrRequirementNotFound, http.StatusNotFound, dto.CodeNotFound},
		{"chat not found", entities.ErrChatNotFound, http.StatusNotFound, dto.CodeNotFound},
		{"comment not found", entities.ErrCommentNotFound, http.StatusNotFound, dto.CodeNotFound},
		{"unclassified", fmt.Errorf("connection refused"), http.StatusInternalServerError, dto.CodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tc.status, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tc.code, body.Error.Code)
			require.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestParamID(t *testing.T) {
	app := fiber.New()
	app.Get("/:projectId", func(c *fiber.Ctx) error {
		id, err := paramID(c, "projectId")
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(fiber.Map{"id": id})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/17", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, raw := range []string{"abc", "0", "-4"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+raw, nil))
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "param %q", raw)
	}
}

func TestOptionalQueryID(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		id, err := optionalQueryID(c, "assignee_id")
		if err != nil {
			return writeError(c, err)
		}
		if id == nil {
			return c.JSON(fiber.Map{"id": nil})
		}
		return c.JSON(fiber.Map{"id": *id})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?assignee_id=5", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?assignee_id=oops", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
