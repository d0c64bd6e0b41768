// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user lookups backing identity resolution.
type UserInterface interface {
	GetUserByID(ctx context.Context, userID int64) (*entities.User, error)
	GetUserByToken(ctx context.Context, token string) (*entities.User, error)
}

// ProjectInterface exposes project and team operations.
type ProjectInterface interface {
	CreateProject(ctx context.Context, project entities.Project, ownerID int64) (*entities.Project, error)
	GetProject(ctx context.Context, projectID int64) (*entities.Project, error)
	ListProjects(ctx context.Context, category, tag *string) ([]entities.Project, error)
	ListProjectsForUser(ctx context.Context, userID int64, category, tag *string) ([]entities.Project, error)
	UpdateProject(ctx context.Context, projectID int64, upd entities.ProjectUpdate) (*entities.Project, error)
	DeleteProject(ctx context.Context, projectID int64) error
	SearchProjects(ctx context.Context, keyword string, userID int64) ([]entities.Project, error)
	AddProjectMember(ctx context.Context, projectID, userID int64) error
	RemoveProjectMember(ctx context.Context, projectID, userID int64) error
	GetChatByProject(ctx context.Context, projectID int64) (*entities.Chat, error)
}

// RequirementInterface exposes requirement operations.
type RequirementInterface interface {
	CreateRequirement(ctx context.Context, req entities.Requirement) (*entities.Requirement, error)
	GetRequirement(ctx context.Context, requirementID int64) (*entities.Requirement, error)
	UpdateRequirement(ctx context.Context, requirementID int64, upd entities.RequirementUpdate) (*entities.Requirement, error)
	DeleteRequirement(ctx context.Context, requirementID int64) error
	AssignRequirement(ctx context.Context, requirementID, userID int64) (*entities.Requirement, error)
	SetRequirementStatus(ctx context.Context, requirementID int64, status string) (*entities.Requirement, error)
	SearchRequirements(ctx context.Context, filter entities.RequirementFilter) ([]entities.Requirement, error)
	ListRequirementsExcludingOwner(ctx context.Context, ownerID int64) ([]entities.Requirement, error)
	ListRequirementsByProject(ctx context.Context, projectID int64) ([]entities.Requirement, error)
	ListRequirementsByAssignee(ctx context.Context, assigneeID int64) ([]entities.Requirement, error)
}

// MessageInterface exposes chat message operations.
type MessageInterface interface {
	CreateMessage(ctx context.Context, senderID, projectID int64, content string) (*entities.Message, error)
	ListMessagesByProject(ctx context.Context, projectID int64) ([]entities.Message, error)
	DeleteMessagesByProject(ctx context.Context, projectID int64) error
}

// CommentInterface exposes requirement comment operations.
type CommentInterface interface {
	CreateComment(ctx context.Context, requirementID, authorID int64, content string) (*entities.Comment, error)
	GetComment(ctx context.Context, commentID int64) (*entities.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
	ListCommentsByRequirement(ctx context.Context, requirementID int64) ([]entities.Comment, error)
}
