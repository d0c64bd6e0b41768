// Package domain contains application usecases orchestrating domain logic by project.
package domain

import (
	"context"
	"fmt"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"
)

// CreateProject creates a project owned by ownerID. The owner becomes the
// sole team member and sole chat participant.
func (u *Usecase) CreateProject(ctx context.Context, project entities.Project, ownerID int64) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if project.Name == "" {
		u.log.Errorw("failed to create project: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if _, err := u.ident.ResolveByID(ctx, ownerID); err != nil {
		return nil, err
	}
	return u.repo.CreateProject(ctx, project, ownerID)
}

// Project returns a project by id.
func (u *Usecase) Project(ctx context.Context, projectID int64) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.GetProject(ctx, projectID)
}

// Projects returns every project with optional category/tag filters.
func (u *Usecase) Projects(ctx context.Context, category, tag *string) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListProjects(ctx, category, tag)
}

// ProjectsForUser returns projects the user owns or belongs to.
func (u *Usecase) ProjectsForUser(ctx context.Context, userID int64, category, tag *string) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListProjectsForUser(ctx, userID, category, tag)
}

// UpdateProject applies a partial update after resolving the requester.
func (u *Usecase) UpdateProject(ctx context.Context, projectID int64, upd entities.ProjectUpdate, requesterID int64) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.ident.ResolveByID(ctx, requesterID); err != nil {
		return nil, err
	}
	return u.repo.UpdateProject(ctx, projectID, upd)
}

// DeleteProject deletes a project on behalf of any resolvable user.
func (u *Usecase) DeleteProject(ctx context.Context, projectID, requesterID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.ident.ResolveByID(ctx, requesterID); err != nil {
		return err
	}
	return u.repo.DeleteProject(ctx, projectID)
}

// SearchProjects returns projects whose name contains the keyword and whose
// team contains the user.
func (u *Usecase) SearchProjects(ctx context.Context, keyword string, userID int64) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword is required", entities.ErrInvalidArgument)
	}
	return u.repo.SearchProjects(ctx, keyword, userID)
}

// AddMember enrolls the user into the project team and the chat roster.
// Adding an existing member is a no-op.
func (u *Usecase) AddMember(ctx context.Context, projectID, userID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.AddProjectMember(ctx, projectID, userID)
}

// RemoveMember removes the user from the team and the chat roster. Removing
// a non-member is a no-op.
func (u *Usecase) RemoveMember(ctx context.Context, projectID, userID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.RemoveProjectMember(ctx, projectID, userID)
}

// ChatByProject returns the project chat with its participants.
func (u *Usecase) ChatByProject(ctx context.Context, projectID int64) (*entities.Chat, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.GetChatByProject(ctx, projectID)
}
