package usecase

import (
	"context"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"
)

// ProjectUsecaseInterface abstracts project and team operations for the
// delivery layer.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, project entities.Project, ownerID int64) (*entities.Project, error)
	Project(ctx context.Context, projectID int64) (*entities.Project, error)
	Projects(ctx context.Context, category, tag *string) ([]entities.Project, error)
	ProjectsForUser(ctx context.Context, userID int64, category, tag *string) ([]entities.Project, error)
	UpdateProject(ctx context.Context, projectID int64, upd entities.ProjectUpdate, requesterID int64) (*entities.Project, error)
	DeleteProject(ctx context.Context, projectID, requesterID int64) error
	SearchProjects(ctx context.Context, keyword string, userID int64) ([]entities.Project, error)
	AddMember(ctx context.Context, projectID, userID int64) error
	RemoveMember(ctx context.Context, projectID, userID int64) error
	ChatByProject(ctx context.Context, projectID int64) (*entities.Chat, error)
}

// RequirementUsecaseInterface abstracts requirement operations.
type RequirementUsecaseInterface interface {
	CreateRequirement(ctx context.Context, req entities.Requirement, requesterID int64) (*entities.Requirement, error)
	Requirement(ctx context.Context, requirementID int64) (*entities.Requirement, error)
	UpdateRequirement(ctx context.Context, requirementID int64, upd entities.RequirementUpdate, requesterID int64) (*entities.Requirement, error)
	DeleteRequirement(ctx context.Context, requirementID, requesterID int64) error
	AssignRequirement(ctx context.Context, requirementID, userID int64) (*entities.Requirement, error)
	SetRequirementStatus(ctx context.Context, requirementID int64, status string) (*entities.Requirement, error)
	SearchRequirements(ctx context.Context, filter entities.RequirementFilter) ([]entities.Requirement, error)
	RequirementsExcludingOwner(ctx context.Context, userID int64) ([]entities.Requirement, error)
	RequirementsByProject(ctx context.Context, projectID int64) ([]entities.Requirement, error)
	RequirementsByAssignee(ctx context.Context, assigneeID int64) ([]entities.Requirement, error)
}

// MessageUsecaseInterface abstracts chat message operations.
type MessageUsecaseInterface interface {
	SendMessage(ctx context.Context, senderID, projectID int64, content string) (*entities.Message, error)
	MessagesByProject(ctx context.Context, projectID int64) ([]entities.Message, error)
	DeleteAllMessages(ctx context.Context, projectID, requesterID int64) error
}

// CommentUsecaseInterface abstracts requirement comment operations.
type CommentUsecaseInterface interface {
	CreateComment(ctx context.Context, requirementID, userID int64, content string) (*entities.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID int64) error
	CommentsByRequirement(ctx context.Context, requirementID int64) ([]entities.Comment, error)
}
