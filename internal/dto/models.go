// Package dto defines the JSON request and response models of the HTTP API.
package dto

import "time"

// User is the transport model of a user.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Project is the transport model of a project with its team and chat.
type Project struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	OwnerID     int64    `json:"owner_id"`
	Team        []User   `json:"team"`
	Chat        *Chat    `json:"chat,omitempty"`
}

// Chat is the transport model of a project chat.
type Chat struct {
	ID           int64  `json:"id"`
	ProjectID    int64  `json:"project_id"`
	Participants []User `json:"participants"`
}

// Requirement is the transport model of a requirement.
type Requirement struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ProjectID   int64      `json:"project_id"`
	AssigneeID  *int64     `json:"assignee_id,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// Message is the transport model of a chat message.
type Message struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	SenderID  int64     `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is the transport model of a requirement comment.
type Comment struct {
	ID            int64     `json:"id"`
	RequirementID int64     `json:"requirement_id"`
	AuthorID      int64     `json:"author_id"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateProjectRequest is the body of POST /api/projects.
type CreateProjectRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// UpdateProjectRequest is the body of PUT /api/projects/:projectId.
// Absent fields are left untouched.
type UpdateProjectRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// CreateRequirementRequest is the body of POST /api/requirements.
type CreateRequirementRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ProjectID   int64      `json:"project_id"`
}

// UpdateRequirementRequest is the body of PUT /api/requirements/:requirementId.
// Absent fields are left untouched.
type UpdateRequirementRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ProjectID   *int64     `json:"project_id,omitempty"`
	AssigneeID  *int64     `json:"assignee_id,omitempty"`
}

// CreateMessageRequest is the body of POST /api/messages/send.
type CreateMessageRequest struct {
	ProjectID int64  `json:"project_id"`
	Content   string `json:"content"`
}

// CreateCommentRequest is the body of POST /api/comments.
type CreateCommentRequest struct {
	RequirementID int64  `json:"requirement_id"`
	Content       string `json:"content"`
}

// ErrorCode is a stable machine-readable failure cause.
type ErrorCode string

const (
	// CodeNotFound marks a missing entity.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodePermissionDenied marks an operation reserved for another user.
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"
	// CodeUnauthorized marks a missing or invalid credential.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// CodeInvalidArgument marks failed input validation.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// CodeInternal marks an unexpected fault.
	CodeInternal ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine code and diagnostic message.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// StatusResponse confirms a mutation with no entity payload.
type StatusResponse struct {
	Message string `json:"message"`
}
