// Package entities contains core business entities.
package entities

import "time"

// Chat is the single messaging channel bound 1:1 to a project.
// Its participant set mirrors the project team.
type Chat struct {
	ID           int64
	ProjectID    int64
	Participants []User
}

// Message is one chat entry, ordered by creation time.
type Message struct {
	ID        int64
	ChatID    int64
	ProjectID int64
	SenderID  int64
	Content   string
	CreatedAt time.Time
}
