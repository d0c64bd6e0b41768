// Package entities contains core business entities.
package entities

import "time"

// Requirement is a trackable issue scoped to a project, optionally assigned
// to one user. Status is a free-form label.
type Requirement struct {
	ID          int64
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
	ProjectID   int64
	AssigneeID  *int64
	CreatedAt   *time.Time
}

// RequirementUpdate carries optional fields for a partial requirement update.
// Nil fields are left untouched.
type RequirementUpdate struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
	ProjectID   *int64
	AssigneeID  *int64
}

// RequirementFilter holds the optional search predicates. Every set predicate
// is ANDed; title matches as a case-insensitive substring.
type RequirementFilter struct {
	Title      *string
	Status     *string
	Priority   *string
	AssigneeID *int64
}
