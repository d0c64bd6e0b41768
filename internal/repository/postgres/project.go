package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertProjectQuery = `INSERT INTO projects(name, description, category, owner_id) VALUES ($1,$2,$3,$4) RETURNING id`
	insertProjectTag   = `INSERT INTO project_tags(project_id, tag) VALUES ($1,$2) ON CONFLICT DO NOTHING`
	deleteProjectTags  = `DELETE FROM project_tags WHERE project_id=$1`
	insertMemberQuery  = `INSERT INTO project_members(project_id, user_id) VALUES ($1,$2) ON CONFLICT DO NOTHING`
	deleteMemberQuery  = `DELETE FROM project_members WHERE project_id=$1 AND user_id=$2`
	insertChatQuery    = `INSERT INTO chats(project_id) VALUES ($1) RETURNING id`

	insertParticipantQuery = `INSERT INTO chat_participants(chat_id, user_id) VALUES ($1,$2) ON CONFLICT DO NOTHING`
	deleteParticipantQuery = `DELETE FROM chat_participants WHERE chat_id=$1 AND user_id=$2`

	selectProjectQuery          = `SELECT id, name, description, category, owner_id FROM projects WHERE id=$1`
	selectProjectForUpdateQuery = `SELECT p.id, c.id FROM projects p JOIN chats c ON c.project_id = p.id WHERE p.id=$1 FOR UPDATE OF p`
	selectProjectTagsQuery      = `SELECT tag FROM project_tags WHERE project_id=$1 ORDER BY tag`
	selectTeamQuery             = `
SELECT u.id, u.username, u.email
FROM project_members m
JOIN users u ON u.id = m.user_id
WHERE m.project_id=$1
ORDER BY u.id`
	selectChatQuery         = `SELECT id, project_id FROM chats WHERE project_id=$1`
	selectParticipantsQuery = `
SELECT u.id, u.username, u.email
FROM chat_participants cp
JOIN users u ON u.id = cp.user_id
WHERE cp.chat_id=$1
ORDER BY u.id`

	countProjectsQuery = `SELECT COUNT(*) FROM projects`
	listProjectsQuery  = `
SELECT p.id FROM projects p
WHERE ($1::text IS NULL OR p.category = $1)
  AND ($2::text IS NULL OR EXISTS (SELECT 1 FROM project_tags t WHERE t.project_id = p.id AND t.tag = $2))
ORDER BY p.id`
	listProjectsForUserQuery = `
SELECT p.id FROM projects p
WHERE (p.owner_id = $1 OR EXISTS (SELECT 1 FROM project_members m WHERE m.project_id = p.id AND m.user_id = $1))
  AND ($2::text IS NULL OR p.category = $2)
  AND ($3::text IS NULL OR EXISTS (SELECT 1 FROM project_tags t WHERE t.project_id = p.id AND t.tag = $3))
ORDER BY p.id`
	searchProjectsQuery = `
SELECT p.id FROM projects p
WHERE POSITION($1 IN p.name) > 0
  AND EXISTS (SELECT 1 FROM project_members m WHERE m.project_id = p.id AND m.user_id = $2)
ORDER BY p.id`

	updateProjectQuery = `
UPDATE projects
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    category = COALESCE($4, category)
WHERE id=$1`
	deleteProjectQuery = `DELETE FROM projects WHERE id=$1`

	selectUserExistsQuery = `SELECT EXISTS (SELECT 1 FROM users WHERE id=$1)`
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so loaders can run
// inside or outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateProject inserts the project, enrolls the owner as sole team member
// and creates the linked chat with the owner as sole participant, all in one
// transaction so a chat failure never leaves a dangling project.
func (p *Postgres) CreateProject(ctx context.Context, project entities.Project, ownerID int64) (*entities.Project, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var projectID int64
	if err := tx.QueryRow(ctx, insertProjectQuery, project.Name, project.Description, project.Category, ownerID).Scan(&projectID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fmt.Errorf("%w: id %d", entities.ErrUserNotFound, ownerID)
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}

	for _, tag := range project.Tags {
		if _, err := tx.Exec(ctx, insertProjectTag, projectID, tag); err != nil {
			return nil, fmt.Errorf("insert tag: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, insertMemberQuery, projectID, ownerID); err != nil {
		return nil, fmt.Errorf("insert owner membership: %w", err)
	}

	var chatID int64
	if err := tx.QueryRow(ctx, insertChatQuery, projectID).Scan(&chatID); err != nil {
		return nil, fmt.Errorf("insert chat: %w", err)
	}
	if _, err := tx.Exec(ctx, insertParticipantQuery, chatID, ownerID); err != nil {
		return nil, fmt.Errorf("insert owner participant: %w", err)
	}

	created, err := p.loadProject(ctx, tx, projectID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("project created", "project_id", projectID, "owner_id", ownerID)
	return created, nil
}

// GetProject fetches a project with tags, team and chat roster.
func (p *Postgres) GetProject(ctx context.Context, projectID int64) (*entities.Project, error) {
	return p.loadProject(ctx, p.db, projectID)
}

// ListProjects returns every project matching the optional category/tag
// filters. An entirely empty store is reported as not found.
func (p *Postgres) ListProjects(ctx context.Context, category, tag *string) ([]entities.Project, error) {
	var total int64
	if err := p.db.QueryRow(ctx, countProjectsQuery).Scan(&total); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: no projects", entities.ErrProjectNotFound)
	}
	return p.loadProjectList(ctx, listProjectsQuery, category, tag)
}

// ListProjectsForUser returns projects the user owns or belongs to, with the
// same optional filters.
func (p *Postgres) ListProjectsForUser(ctx context.Context, userID int64, category, tag *string) ([]entities.Project, error) {
	return p.loadProjectList(ctx, listProjectsForUserQuery, userID, category, tag)
}

// SearchProjects returns projects whose name contains keyword and whose team
// contains the user.
func (p *Postgres) SearchProjects(ctx context.Context, keyword string, userID int64) ([]entities.Project, error) {
	return p.loadProjectList(ctx, searchProjectsQuery, keyword, userID)
}

// UpdateProject applies the non-nil fields and replaces tags when provided.
func (p *Postgres) UpdateProject(ctx context.Context, projectID int64, upd entities.ProjectUpdate) (*entities.Project, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ct, err := tx.Exec(ctx, updateProjectQuery, projectID, upd.Name, upd.Description, upd.Category)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: id %d", entities.ErrProjectNotFound, projectID)
	}

	if upd.Tags != nil {
		if _, err := tx.Exec(ctx, deleteProjectTags, projectID); err != nil {
			return nil, fmt.Errorf("clear tags: %w", err)
		}
		for _, tag := range upd.Tags {
			if _, err := tx.Exec(ctx, insertProjectTag, projectID, tag); err != nil {
				return nil, fmt.Errorf("insert tag: %w", err)
			}
		}
	}

	updated, err := p.loadProject(ctx, tx, projectID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("project updated", "project_id", projectID)
	return updated, nil
}

// DeleteProject removes the project; chat, membership, messages and
// requirements go with it via cascading foreign keys.
func (p *Postgres) DeleteProject(ctx context.Context, projectID int64) error {
	ct, err := p.db.Exec(ctx, deleteProjectQuery, projectID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", entities.ErrProjectNotFound, projectID)
	}
	p.log.Infow("project deleted", "project_id", projectID)
	return nil
}

// AddProjectMember inserts the user into both the team and the chat roster in
// one transaction, locking the project row so concurrent membership changes
// serialize. Re-adding an existing member is a no-op.
func (p *Postgres) AddProjectMember(ctx context.Context, projectID, userID int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	chatID, err := p.lockProject(ctx, tx, projectID)
	if err != nil {
		return err
	}
	if err := p.checkUserExists(ctx, tx, userID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, insertMemberQuery, projectID, userID); err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	if _, err := tx.Exec(ctx, insertParticipantQuery, chatID, userID); err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("member added", "project_id", projectID, "user_id", userID)
	return nil
}

// RemoveProjectMember deletes the user from both the team and the chat roster
// in one transaction. Removing a non-member is a no-op.
func (p *Postgres) RemoveProjectMember(ctx context.Context, projectID, userID int64) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	chatID, err := p.lockProject(ctx, tx, projectID)
	if err != nil {
		return err
	}
	if err := p.checkUserExists(ctx, tx, userID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, deleteMemberQuery, projectID, userID); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if _, err := tx.Exec(ctx, deleteParticipantQuery, chatID, userID); err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("member removed", "project_id", projectID, "user_id", userID)
	return nil
}

// GetChatByProject returns the chat with its participant roster.
func (p *Postgres) GetChatByProject(ctx context.Context, projectID int64) (*entities.Chat, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE id=$1)`, projectID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("project lookup: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: id %d", entities.ErrProjectNotFound, projectID)
	}
	return p.loadChat(ctx, p.db, projectID)
}

func (p *Postgres) lockProject(ctx context.Context, tx pgx.Tx, projectID int64) (chatID int64, err error) {
	var id int64
	if err := tx.QueryRow(ctx, selectProjectForUpdateQuery, projectID).Scan(&id, &chatID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: id %d", entities.ErrProjectNotFound, projectID)
		}
		return 0, fmt.Errorf("lock project: %w", err)
	}
	return chatID, nil
}

func (p *Postgres) checkUserExists(ctx context.Context, q querier, userID int64) error {
	var exists bool
	if err := q.QueryRow(ctx, selectUserExistsQuery, userID).Scan(&exists); err != nil {
		return fmt.Errorf("user lookup: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: id %d", entities.ErrUserNotFound, userID)
	}
	return nil
}

func (p *Postgres) loadProject(ctx context.Context, q querier, projectID int64) (*entities.Project, error) {
	var pr entities.Project
	if err := q.QueryRow(ctx, selectProjectQuery, projectID).
		Scan(&pr.ID, &pr.Name, &pr.Description, &pr.Category, &pr.OwnerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", entities.ErrProjectNotFound, projectID)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	tags, err := p.readTags(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	pr.Tags = tags

	team, err := p.readUsers(ctx, q, selectTeamQuery, projectID)
	if err != nil {
		return nil, err
	}
	pr.Team = team

	chat, err := p.loadChat(ctx, q, projectID)
	if err != nil && !errors.Is(err, entities.ErrChatNotFound) {
		return nil, err
	}
	pr.Chat = chat

	return &pr, nil
}

func (p *Postgres) loadChat(ctx context.Context, q querier, projectID int64) (*entities.Chat, error) {
	var chat entities.Chat
	if err := q.QueryRow(ctx, selectChatQuery, projectID).Scan(&chat.ID, &chat.ProjectID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: project %d", entities.ErrChatNotFound, projectID)
		}
		return nil, fmt.Errorf("get chat: %w", err)
	}

	participants, err := p.readUsers(ctx, q, selectParticipantsQuery, chat.ID)
	if err != nil {
		return nil, err
	}
	chat.Participants = participants
	return &chat, nil
}

func (p *Postgres) loadProjectList(ctx context.Context, query string, args ...any) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan project id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	projects := make([]entities.Project, 0, len(ids))
	for _, id := range ids {
		pr, err := p.loadProject(ctx, p.db, id)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *pr)
	}
	return projects, nil
}

func (p *Postgres) readTags(ctx context.Context, q querier, projectID int64) ([]string, error) {
	rows, err := q.Query(ctx, selectProjectTagsQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("select tags: %w", err)
	}
	defer rows.Close()

	tags := make([]string, 0)
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return tags, nil
}

func (p *Postgres) readUsers(ctx context.Context, q querier, query string, arg int64) ([]entities.User, error) {
	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
