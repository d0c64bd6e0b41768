// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/dto"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"
)

// ToDTOUser maps entities.User to its transport model.
func ToDTOUser(u entities.User) dto.User {
	return dto.User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// ToDTOUserList maps a slice of users.
func ToDTOUserList(users []entities.User) []dto.User {
	res := make([]dto.User, 0, len(users))
	for _, u := range users {
		res = append(res, ToDTOUser(u))
	}
	return res
}

// ToDTOChat maps entities.Chat to its transport model.
func ToDTOChat(c entities.Chat) dto.Chat {
	return dto.Chat{
		ID:           c.ID,
		ProjectID:    c.ProjectID,
		Participants: ToDTOUserList(c.Participants),
	}
}

// ToDTOProject maps entities.Project to its transport model.
func ToDTOProject(p entities.Project) dto.Project {
	res := dto.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Tags:        p.Tags,
		OwnerID:     p.OwnerID,
		Team:        ToDTOUserList(p.Team),
	}
	if p.Chat != nil {
		chat := ToDTOChat(*p.Chat)
		res.Chat = &chat
	}
	return res
}

// ToDTOProjectList maps a slice of projects.
func ToDTOProjectList(list []entities.Project) []dto.Project {
	res := make([]dto.Project, 0, len(list))
	for _, p := range list {
		res = append(res, ToDTOProject(p))
	}
	return res
}

// FromCreateProjectRequest builds an entities.Project from the create body.
func FromCreateProjectRequest(src dto.CreateProjectRequest) entities.Project {
	return entities.Project{
		Name:        src.Name,
		Description: src.Description,
		Category:    src.Category,
		Tags:        src.Tags,
	}
}

// FromUpdateProjectRequest builds a partial project update.
func FromUpdateProjectRequest(src dto.UpdateProjectRequest) entities.ProjectUpdate {
	return entities.ProjectUpdate{
		Name:        src.Name,
		Description: src.Description,
		Category:    src.Category,
		Tags:        src.Tags,
	}
}

// ToDTORequirement maps entities.Requirement to its transport model.
func ToDTORequirement(r entities.Requirement) dto.Requirement {
	return dto.Requirement{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
		ProjectID:   r.ProjectID,
		AssigneeID:  r.AssigneeID,
		CreatedAt:   r.CreatedAt,
	}
}

// ToDTORequirementList maps a slice of requirements.
func ToDTORequirementList(list []entities.Requirement) []dto.Requirement {
	res := make([]dto.Requirement, 0, len(list))
	for _, r := range list {
		res = append(res, ToDTORequirement(r))
	}
	return res
}

// FromCreateRequirementRequest builds an entities.Requirement from the create body.
func FromCreateRequirementRequest(src dto.CreateRequirementRequest) entities.Requirement {
	return entities.Requirement{
		Title:       src.Title,
		Description: src.Description,
		Status:      src.Status,
		Priority:    src.Priority,
		DueDate:     src.DueDate,
		ProjectID:   src.ProjectID,
	}
}

// FromUpdateRequirementRequest builds a partial requirement update.
func FromUpdateRequirementRequest(src dto.UpdateRequirementRequest) entities.RequirementUpdate {
	return entities.RequirementUpdate{
		Title:       src.Title,
		Description: src.Description,
		Status:      src.Status,
		Priority:    src.Priority,
		DueDate:     src.DueDate,
		ProjectID:   src.ProjectID,
		AssigneeID:  src.AssigneeID,
	}
}

// ToDTOMessage maps entities.Message to its transport model.
func ToDTOMessage(m entities.Message) dto.Message {
	return dto.Message{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// ToDTOMessageList maps a slice of messages.
func ToDTOMessageList(list []entities.Message) []dto.Message {
	res := make([]dto.Message, 0, len(list))
	for _, m := range list {
		res = append(res, ToDTOMessage(m))
	}
	return res
}

// ToDTOComment maps entities.Comment to its transport model.
func ToDTOComment(c entities.Comment) dto.Comment {
	return dto.Comment{
		ID:            c.ID,
		RequirementID: c.RequirementID,
		AuthorID:      c.AuthorID,
		Content:       c.Content,
		CreatedAt:     c.CreatedAt,
	}
}

// ToDTOCommentList maps a slice of comments.
func ToDTOCommentList(list []entities.Comment) []dto.Comment {
	res := make([]dto.Comment, 0, len(list))
	for _, c := range list {
		res = append(res, ToDTOComment(c))
	}
	return res
}
