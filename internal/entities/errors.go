// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrProjectNotFound signals a missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrRequirementNotFound signals a missing requirement.
	ErrRequirementNotFound = errors.New("requirement not found")
	// ErrChatNotFound signals a missing project chat.
	ErrChatNotFound = errors.New("chat not found")
	// ErrCommentNotFound signals a missing comment.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrPermissionDenied signals an operation reserved for another user.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrUnauthorized signals a missing or unresolvable credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
)
