// Package entities contains core business entities.
package entities

// Project aggregates a team of users around shared requirements and a chat.
type Project struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Tags        []string
	OwnerID     int64
	Team        []User
	Chat        *Chat
}

// HasMember reports whether the user belongs to the project team.
func (p *Project) HasMember(userID int64) bool {
	for _, m := range p.Team {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// ProjectUpdate carries optional fields for a partial project update.
// Nil fields are left untouched.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Category    *string
	Tags        []string
}
