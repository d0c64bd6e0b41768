// Package domain contains application usecases orchestrating domain logic by comment.
package domain

import (
	"context"
	"fmt"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"
)

// CreateComment appends a comment to a requirement.
func (u *Usecase) CreateComment(ctx context.Context, requirementID, userID int64, content string) (*entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if content == "" {
		return nil, fmt.Errorf("%w: content is required", entities.ErrInvalidArgument)
	}
	if _, err := u.ident.ResolveByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetRequirement(ctx, requirementID); err != nil {
		return nil, err
	}
	return u.repo.CreateComment(ctx, requirementID, userID, content)
}

// DeleteComment removes a comment. Only its author may delete it.
func (u *Usecase) DeleteComment(ctx context.Context, commentID, userID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.ident.ResolveByID(ctx, userID); err != nil {
		return err
	}
	comment, err := u.repo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID {
		u.log.Warnw("comment delete denied", "comment_id", commentID, "requester_id", userID)
		return fmt.Errorf("%w: only the author can delete a comment", entities.ErrPermissionDenied)
	}
	return u.repo.DeleteComment(ctx, commentID)
}

// CommentsByRequirement returns the requirement's comments in creation order.
func (u *Usecase) CommentsByRequirement(ctx context.Context, requirementID int64) ([]entities.Comment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListCommentsByRequirement(ctx, requirementID)
}
