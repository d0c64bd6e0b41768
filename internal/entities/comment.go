// Package entities contains core business entities.
package entities

import "time"

// Comment is a note attached to a requirement, deletable only by its author.
type Comment struct {
	ID            int64
	RequirementID int64
	AuthorID      int64
	Content       string
	CreatedAt     time.Time
}
