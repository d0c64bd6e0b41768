package handlers_fiber

import (
	"net/http"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/dto"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostProject creates a project owned by the requester.
func (h *Handler) PostProject(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return writeError(c, err)
	}

	var body dto.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	project, err := h.uc.CreateProject(c.Context(), mapper.FromCreateProjectRequest(body), user.ID)
	if err != nil {
		h.log.Errorw("failed to create project", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToDTOProject(*project))
}

// GetProjects lists every project with optional category/tag filters.
func (h *Handler) GetProjects(c *fiber.Ctx) error {
	projects, err := h.uc.Projects(c.Context(), optionalQuery(c, "category"), optionalQuery(c, "tag"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOProjectList(projects))
}

// GetProjectsForUser lists projects the requester owns or belongs to.
func (h *Handler) GetProjectsForUser(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return writeError(c, err)
	}

	projects, err := h.uc.ProjectsForUser(c.Context(), user.ID, optionalQuery(c, "category"), optionalQuery(c, "tag"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOProjectList(projects))
}

// GetProjectSearch finds the requester's projects by name keyword.
func (h *Handler) GetProjectSearch(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return writeError(c, err)
	}

	projects, err := h.uc.SearchProjects(c.Context(), c.Query("keyword"), user.ID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOProjectList(projects))
}

// GetProject returns a project by id.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	projectID, err := paramID(c, "projectId")
	if err != nil {
		return writeError(c, err)
	}

	project, err := h.uc.Project(c.Context(), projectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOProject(*project))
}

// PutProject applies a partial update to a project.
func (h *Handler) PutProject(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return writeError(c, err)
	}
	projectID, err := paramID(c, "projectId")
	if err != nil {
		return writeError(c, err)
	}

	var body dto.UpdateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.CodeInvalidArgument, "invalid body"))
	}

	project, err := h.uc.UpdateProject(c.Context(), projectID, mapper.FromUpdateProjectRequest(body), user.ID)
	if err != nil {
		h.log.Errorw("failed to update project", "error", err.Error(), "project_id", projectID)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOProject(*project))
}

// DeleteProject removes a project and everything bound to it.
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	user, err := h.requester(c)
	if err != nil {
		return writeError(c, err)
	}
	projectID, err := paramID(c, "projectId")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteProject(c.Context(), projectID, user.ID); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.StatusResponse{Message: "project deleted"})
}

// PostProjectMember adds a user to the project team and chat.
func (h *Handler) PostProjectMember(c *fiber.Ctx) error {
	projectID, err := paramID(c, "projectId")
	if err != nil {
		return writeError(c, err)
	}
	userID, err := paramID(c, "userId")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.AddMember(c.Context(), projectID, userID); err != nil {
		h.log.Errorw("failed to add member", "error", err.Error(), "project_id", projectID, "user_id", userID)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.StatusResponse{Message: "user added to project"})
}

// DeleteProjectMember removes a user from the project team and chat.
func (h *Handler) DeleteProjectMember(c *fiber.Ctx) error {
	projectID, err := paramID(c, "projectId")
	if err != nil {
		return writeError(c, err)
	}
	userID, err := paramID(c, "userId")
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.RemoveMember(c.Context(), projectID, userID); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.StatusResponse{Message: "user removed from project"})
}

// GetProjectChat returns the chat bound to a project.
func (h *Handler) GetProjectChat(c *fiber.Ctx) error {
	projectID, err := paramID(c, "projectId")
	if err != nil {
		return writeError(c, err)
	}

	chat, err := h.uc.ChatByProject(c.Context(), projectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOChat(*chat))
}

// GetProjectTeam returns the team roster of a project.
func (h *Handler) GetProjectTeam(c *fiber.Ctx) error {
	projectID, err := paramID(c, "projectId")
	if err != nil {
		return writeError(c, err)
	}

	project, err := h.uc.Project(c.Context(), projectID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOUserList(project.Team))
}
