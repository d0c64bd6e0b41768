// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/identity"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the HTTP API using the usecase layer.
type Handler struct {
	log   *zap.SugaredLogger
	uc    usecase.InterfaceUsecase
	ident identity.Lookup
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase, ident identity.Lookup) *Handler {
	return &Handler{
		log:   log,
		uc:    uc,
		ident: ident,
	}
}

// RegisterRoutes mounts the API under /api.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	projects := api.Group("/projects")
	projects.Post("/", h.PostProject)
	projects.Get("/", h.GetProjects)
	projects.Get("/user", h.GetProjectsForUser)
	projects.Get("/search", h.GetProjectSearch)
	projects.Get("/:projectId", h.GetProject)
	projects.Put("/:projectId", h.PutProject)
	projects.Delete("/:projectId", h.DeleteProject)
	projects.Post("/:projectId/members/:userId", h.PostProjectMember)
	projects.Delete("/:projectId/members/:userId", h.DeleteProjectMember)
	projects.Get("/:projectId/chat", h.GetProjectChat)
	projects.Get("/:projectId/team", h.GetProjectTeam)

	requirements := api.Group("/requirements")
	requirements.Get("/", h.GetRequirementsExcludingOwner)
	requirements.Get("/search", h.GetRequirementSearch)
	requirements.Get("/project/:projectId", h.GetRequirementsByProject)
	requirements.Get("/assignee/:assigneeId", h.GetRequirementsByAssignee)
	requirements.Get("/:requirementId", h.GetRequirement)
	requirements.Post("/", h.PostRequirement)
	requirements.Put("/:requirementId/assignee/:userId", h.PutRequirementAssignee)
	requirements.Put("/:requirementId/status/:status", h.PutRequirementStatus)
	requirements.Put("/:requirementId", h.PutRequirement)
	requirements.Delete("/:requirementId", h.DeleteRequirement)

	messages := api.Group("/messages")
	messages.Post("/send", h.PostMessage)
	messages.Get("/chat/:projectId", h.GetMessagesByProject)
	messages.Delete("/chat/:projectId", h.DeleteMessagesByProject)

	comments := api.Group("/comments")
	comments.Post("/", h.PostComment)
	comments.Delete("/:commentId", h.DeleteComment)
	comments.Get("/:requirementId", h.GetCommentsByRequirement)
}
