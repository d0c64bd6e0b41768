// Package domain contains application usecases orchestrating domain logic by chat message.
package domain

import (
	"context"
	"fmt"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"
)

// SendMessage appends a message to the project chat on behalf of the sender.
func (u *Usecase) SendMessage(ctx context.Context, senderID, projectID int64, content string) (*entities.Message, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if content == "" {
		return nil, fmt.Errorf("%w: content is required", entities.ErrInvalidArgument)
	}
	if _, err := u.ident.ResolveByID(ctx, senderID); err != nil {
		return nil, err
	}
	return u.repo.CreateMessage(ctx, senderID, projectID, content)
}

// MessagesByProject returns the chat history in ascending creation order.
func (u *Usecase) MessagesByProject(ctx context.Context, projectID int64) ([]entities.Message, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListMessagesByProject(ctx, projectID)
}

// DeleteAllMessages purges the chat history. Only the project owner may
// invoke it.
func (u *Usecase) DeleteAllMessages(ctx context.Context, projectID, requesterID int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.ident.ResolveByID(ctx, requesterID); err != nil {
		return err
	}
	project, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	if project.OwnerID != requesterID {
		u.log.Warnw("chat purge denied", "project_id", projectID, "requester_id", requesterID)
		return fmt.Errorf("%w: only the project owner can delete chat history", entities.ErrPermissionDenied)
	}
	return u.repo.DeleteMessagesByProject(ctx, projectID)
}
