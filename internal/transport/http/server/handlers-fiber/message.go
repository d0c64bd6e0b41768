package handlers_fiber

import (
	"net/http"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/dto"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostMessage appends a message to the project chat on behalf of the
// requester.
func (h *Handler) PostMessage(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return writeError(c, err)
	}

	var body dto.CreateMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	msg, err := h.uc.SendMessage(c.Context(), user.ID, body.ProjectID, body.Content)
	if err != nil {
		h.log.Errorw("failed to send message", "error", err.Error(), "project_id", body.ProjectID)
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOMessage(*msg))
}

// GetMessagesByProject returns the chat history in ascending creation order.
func (h *Handler) GetMessagesByProject(c *fiber.Ctx) error {
	projectID, err := paramID(c, "projectId")
	if err != nil {
		return writeError(c, err)
	}

	msgs, err := h.uc.MessagesByProject(c.Context(), projectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOMessageList(msgs))
}

// DeleteMessagesByProject purges the chat history; owner only.
func (h *Handler) DeleteMessagesByProject(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return writeError(c, err)
	}
	projectID, err := paramID(c, "projectId")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteAllMessages(c.Context(), projectID, user.ID); err != nil {
		h.log.Errorw("failed to delete chat history", "error", err.Error(), "project_id", projectID)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.StatusResponse{Message: "chat history deleted"})
}
