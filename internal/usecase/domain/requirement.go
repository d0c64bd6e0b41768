// Package domain contains application usecases orchestrating domain logic by requirement.
package domain

import (
	"context"
	"fmt"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"
)

const (
	assignmentSubject = "New Requirement Assigned To You"
	assignmentBody    = "A new requirement has been assigned to you."
)

// CreateRequirement files a requirement under a project; the assignee starts
// unset.
func (u *Usecase) CreateRequirement(ctx context.Context, req entities.Requirement, requesterID int64) (*entities.Requirement, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if req.Title == "" || req.ProjectID == 0 {
		u.log.Errorw("failed to create requirement: missing required fields")
		return nil, fmt.Errorf("%w: title and project_id are required", entities.ErrInvalidArgument)
	}
	if _, err := u.ident.ResolveByID(ctx, requesterID); err != nil {
		return nil, err
	}
	req.AssigneeID = nil
	return u.repo.CreateRequirement(ctx, req)
}

// Requirement returns a requirement by id.
func (u *Usecase) Requirement(ctx context.Context, requirementID int64) (*entities.Requirement, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.GetRequirement(ctx, requirementID)
}

// UpdateRequirement applies the subset of fields present in the update.
// A referenced project or assignee must exist.
func (u *Usecase) UpdateRequirement(ctx context.Context, requirementID int64, upd entities.RequirementUpdate, requesterID int64) (*entities.Requirement, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.ident.ResolveByID(ctx, requesterID); err != nil {
		return nil, err
	}
	return u.repo.UpdateRequirement(ctx, requirementID, upd)
}

// DeleteRequirement deletes a requirement on behalf of any resolvable user.
func (u *Usecase) DeleteRequirement(ctx context.Context, requirementID, requesterID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.ident.ResolveByID(ctx, requesterID); err != nil {
		return err
	}
	return u.repo.DeleteRequirement(ctx, requirementID)
}

// AssignRequirement sets the assignee and fires a non-blocking notification
// to the assignee. Delivery failure never affects the assignment.
func (u *Usecase) AssignRequirement(ctx context.Context, requirementID, userID int64) (*entities.Requirement, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	assignee, err := u.ident.ResolveByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	req, err := u.repo.AssignRequirement(ctx, requirementID, userID)
	if err != nil {
		return nil, err
	}

	u.dispatcher.Dispatch(assignee.Email, assignmentSubject, assignmentBody)
	return req, nil
}

// SetRequirementStatus overwrites the status label unconditionally.
func (u *Usecase) SetRequirementStatus(ctx context.Context, requirementID int64, status string) (*entities.Requirement, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if status == "" {
		return nil, fmt.Errorf("%w: status is required", entities.ErrInvalidArgument)
	}
	return u.repo.SetRequirementStatus(ctx, requirementID, status)
}

// SearchRequirements ANDs the provided predicates; no match yields an empty
// list, never an error.
func (u *Usecase) SearchRequirements(ctx context.Context, filter entities.RequirementFilter) ([]entities.Requirement, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.SearchRequirements(ctx, filter)
}

// RequirementsExcludingOwner returns requirements whose project owner is not
// the given user.
func (u *Usecase) RequirementsExcludingOwner(ctx context.Context, userID int64) ([]entities.Requirement, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListRequirementsExcludingOwner(ctx, userID)
}

// RequirementsByProject returns requirements of an existing project.
func (u *Usecase) RequirementsByProject(ctx context.Context, projectID int64) ([]entities.Requirement, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListRequirementsByProject(ctx, projectID)
}

// RequirementsByAssignee returns the user's assigned requirements.
func (u *Usecase) RequirementsByAssignee(ctx context.Context, assigneeID int64) ([]entities.Requirement, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListRequirementsByAssignee(ctx, assigneeID)
}
