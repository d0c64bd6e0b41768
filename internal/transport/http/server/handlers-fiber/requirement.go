package handlers_fiber

import (
	"net/http"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/dto"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetRequirementsExcludingOwner lists requirements filed under projects the
// requester does not own.
func (h *Handler) GetRequirementsExcludingOwner(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return writeError(c, err)
	}

	reqs, err := h.uc.RequirementsExcludingOwner(c.Context(), user.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTORequirementList(reqs))
}

// GetRequirementSearch filters requirements by optional predicates.
func (h *Handler) GetRequirementSearch(c *fiber.Ctx) error {
	assigneeID, err := optionalQueryID(c, "assigneeId")
	if err != nil {
		return writeError(c, err)
	}
	filter := entities.RequirementFilter{
		Title:      optionalQuery(c, "title"),
		Status:     optionalQuery(c, "status"),
		Priority:   optionalQuery(c, "priority"),
		AssigneeID: assigneeID,
	}

	reqs, err := h.uc.SearchRequirements(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTORequirementList(reqs))
}

// GetRequirement returns a requirement by id.
func (h *Handler) GetRequirement(c *fiber.Ctx) error {
	requirementID, err := paramID(c, "requirementId")
	if err != nil {
		return writeError(c, err)
	}

	req, err := h.uc.Requirement(c.Context(), requirementID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTORequirement(*req))
}

// GetRequirementsByProject lists requirements of a project.
func (h *Handler) GetRequirementsByProject(c *fiber.Ctx) error {
	projectID, err := paramID(c, "projectId")
	if err != nil {
		return writeError(c, err)
	}

	reqs, err := h.uc.RequirementsByProject(c.Context(), projectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTORequirementList(reqs))
}

// GetRequirementsByAssignee lists requirements assigned to a user.
func (h *Handler) GetRequirementsByAssignee(c *fiber.Ctx) error {
	assigneeID, err := paramID(c, "assigneeId")
	if err != nil {
		return writeError(c, err)
	}

	reqs, err := h.uc.RequirementsByAssignee(c.Context(), assigneeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTORequirementList(reqs))
}

// PostRequirement files a requirement on behalf of the requester.
func (h *Handler) PostRequirement(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return writeError(c, err)
	}

	var body dto.CreateRequirementRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	req, err := h.uc.CreateRequirement(c.Context(), mapper.FromCreateRequirementRequest(body), user.ID)
	if err != nil {
		h.log.Errorw("failed to create requirement", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTORequirement(*req))
}

// PutRequirement applies a partial update to a requirement.
func (h *Handler) PutRequirement(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return writeError(c, err)
	}
	requirementID, err := paramID(c, "requirementId")
	if err != nil {
		return writeError(c, err)
	}

	var body dto.UpdateRequirementRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	req, err := h.uc.UpdateRequirement(c.Context(), requirementID, mapper.FromUpdateRequirementRequest(body), user.ID)
	if err != nil {
		h.log.Errorw("failed to update requirement", "error", err.Error(), "requirement_id", requirementID)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTORequirement(*req))
}

// DeleteRequirement removes a requirement.
func (h *Handler) DeleteRequirement(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return writeError(c, err)
	}
	requirementID, err := paramID(c, "requirementId")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteRequirement(c.Context(), requirementID, user.ID); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.StatusResponse{Message: "requirement deleted"})
}

// PutRequirementAssignee assigns a requirement to a user and triggers a
// notification.
func (h *Handler) PutRequirementAssignee(c *fiber.Ctx) error {
	requirementID, err := paramID(c, "requirementId")
	if err != nil {
		return writeError(c, err)
	}
	userID, err := paramID(c, "userId")
	if err != nil {
		return writeError(c, err)
	}

	req, err := h.uc.AssignRequirement(c.Context(), requirementID, userID)
	if err != nil {
		h.log.Errorw("failed to assign requirement", "error", err.Error(), "requirement_id", requirementID)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTORequirement(*req))
}

// PutRequirementStatus overwrites the status label.
func (h *Handler) PutRequirementStatus(c *fiber.Ctx) error {
	requirementID, err := paramID(c, "requirementId")
	if err != nil {
		return writeError(c, err)
	}

	req, err := h.uc.SetRequirementStatus(c.Context(), requirementID, c.Params("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTORequirement(*req))
}
