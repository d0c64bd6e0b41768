package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/dto"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.CodeInternal
	msg := err.Error()

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.CodeInvalidArgument
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = dto.CodeUnauthorized
	case errors.Is(err, entities.ErrPermissionDenied):
		status = http.StatusForbidden
		code = dto.CodePermissionDenied
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrRequirementNotFound),
		errors.Is(err, entities.ErrChatNotFound),
		errors.Is(err, entities.ErrCommentNotFound):
		status = http.StatusNotFound
		code = dto.CodeNotFound
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code dto.ErrorCode, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}

// requester resolves the caller from the Authorization header.
func (h *Handler) requester(c *fiber.Ctx) (*entities.User, error) {
	return h.ident.ResolveByToken(c.Context(), c.Get(fiber.HeaderAuthorization))
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, entities.ErrInvalidArgument
	}
	return id, nil
}

// optionalQuery returns a pointer to the query value, or nil when absent.
func optionalQuery(c *fiber.Ctx, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}

func optionalQueryID(c *fiber.Ctx, name string) (*int64, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, entities.ErrInvalidArgument
	}
	return &id, nil
}
