package handlers_fiber

import (
	"net/http"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/dto"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostComment attaches a comment to a requirement on behalf of the requester.
func (h *Handler) PostComment(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return writeError(c, err)
	}

	var body dto.CreateCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	comment, err := h.uc.CreateComment(c.Context(), body.RequirementID, user.ID, body.Content)
	if err != nil {
		h.log.Errorw("failed to create comment", "error", err.Error(), "requirement_id", body.RequirementID)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOComment(*comment))
}

// DeleteComment removes a comment; author only.
func (h *Handler) DeleteComment(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return writeError(c, err)
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteComment(c.Context(), commentID, user.ID); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.StatusResponse{Message: "comment deleted successfully"})
}

// GetCommentsByRequirement lists a requirement's comments in creation order.
func (h *Handler) GetCommentsByRequirement(c *fiber.Ctx) error {
	requirementID, err := paramID(c, "requirementId")
	if err != nil {
		return writeError(c, err)
	}

	comments, err := h.uc.CommentsByRequirement(c.Context(), requirementID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOCommentList(comments))
}
