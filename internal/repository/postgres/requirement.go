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
	insertRequirementQuery = `
INSERT INTO requirements(title, description, status, priority, due_date, project_id)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING id, created_at`
	selectRequirementQuery = `
SELECT id, title, description, status, priority, due_date, project_id, assignee_id, created_at
FROM requirements WHERE id=$1`
	updateRequirementQuery = `
UPDATE requirements
SET title = COALESCE($2, title),
    description = COALESCE($3, description),
    status = COALESCE($4, status),
    priority = COALESCE($5, priority),
    due_date = COALESCE($6, due_date),
    project_id = COALESCE($7, project_id),
    assignee_id = COALESCE($8, assignee_id)
WHERE id=$1`
	deleteRequirementQuery = `DELETE FROM requirements WHERE id=$1`
	assignRequirementQuery = `UPDATE requirements SET assignee_id=$2 WHERE id=$1`
	setStatusQuery         = `UPDATE requirements SET status=$2 WHERE id=$1`

	searchRequirementsQuery = `
SELECT id, title, description, status, priority, due_date, project_id, assignee_id, created_at
FROM requirements
WHERE ($1::text IS NULL OR LOWER(title) LIKE '%' || LOWER($1) || '%')
  AND ($2::text IS NULL OR status = $2)
  AND ($3::text IS NULL OR priority = $3)
  AND ($4::bigint IS NULL OR assignee_id = $4)
ORDER BY id`
	countRequirementsQuery         = `SELECT COUNT(*) FROM requirements`
	listExcludingOwnerQuery        = `
SELECT r.id, r.title, r.description, r.status, r.priority, r.due_date, r.project_id, r.assignee_id, r.created_at
FROM requirements r
JOIN projects p ON p.id = r.project_id
WHERE p.owner_id <> $1
ORDER BY r.id`
	listRequirementsByProjectQuery = `
SELECT id, title, description, status, priority, due_date, project_id, assignee_id, created_at
FROM requirements WHERE project_id=$1 ORDER BY id`
	listRequirementsByAssigneeQuery = `
SELECT id, title, description, status, priority, due_date, project_id, assignee_id, created_at
FROM requirements WHERE assignee_id=$1 ORDER BY id`
)

// CreateRequirement persists a new requirement bound to its project with no
// assignee.
func (p *Postgres) CreateRequirement(ctx context.Context, req entities.Requirement) (*entities.Requirement, error) {
	err := p.db.QueryRow(ctx, insertRequirementQuery,
		req.Title, req.Description, req.Status, req.Priority, req.DueDate, req.ProjectID).
		Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fmt.Errorf("%w: id %d", entities.ErrProjectNotFound, req.ProjectID)
		}
		return nil, fmt.Errorf("insert requirement: %w", err)
	}
	req.AssigneeID = nil

	p.log.Infow("requirement created", "requirement_id", req.ID, "project_id", req.ProjectID)
	return &req, nil
}

// GetRequirement fetches a requirement by id.
func (p *Postgres) GetRequirement(ctx context.Context, requirementID int64) (*entities.Requirement, error) {
	req, err := p.scanRequirement(p.db.QueryRow(ctx, selectRequirementQuery, requirementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", entities.ErrRequirementNotFound, requirementID)
		}
		return nil, fmt.Errorf("get requirement: %w", err)
	}
	return req, nil
}

// UpdateRequirement applies the non-nil fields. Referenced project and
// assignee are validated by foreign keys.
func (p *Postgres) UpdateRequirement(ctx context.Context, requirementID int64, upd entities.RequirementUpdate) (*entities.Requirement, error) {
	ct, err := p.db.Exec(ctx, updateRequirementQuery, requirementID,
		upd.Title, upd.Description, upd.Status, upd.Priority, upd.DueDate, upd.ProjectID, upd.AssigneeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if pgErr.ConstraintName == "requirements_assignee_id_fkey" {
				return nil, fmt.Errorf("%w: assignee", entities.ErrUserNotFound)
			}
			return nil, fmt.Errorf("%w: referenced project", entities.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("update requirement: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: id %d", entities.ErrRequirementNotFound, requirementID)
	}

	p.log.Infow("requirement updated", "requirement_id", requirementID)
	return p.GetRequirement(ctx, requirementID)
}

// DeleteRequirement removes the requirement and cascades its comments.
func (p *Postgres) DeleteRequirement(ctx context.Context, requirementID int64) error {
	ct, err := p.db.Exec(ctx, deleteRequirementQuery, requirementID)
	if err != nil {
		return fmt.Errorf("delete requirement: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", entities.ErrRequirementNotFound, requirementID)
	}
	p.log.Infow("requirement deleted", "requirement_id", requirementID)
	return nil
}

// AssignRequirement sets the assignee and returns the updated requirement.
func (p *Postgres) AssignRequirement(ctx context.Context, requirementID, userID int64) (*entities.Requirement, error) {
	ct, err := p.db.Exec(ctx, assignRequirementQuery, requirementID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fmt.Errorf("%w: id %d", entities.ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("assign requirement: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: id %d", entities.ErrRequirementNotFound, requirementID)
	}

	p.log.Infow("requirement assigned", "requirement_id", requirementID, "assignee_id", userID)
	return p.GetRequirement(ctx, requirementID)
}

// SetRequirementStatus unconditionally overwrites the status label.
func (p *Postgres) SetRequirementStatus(ctx context.Context, requirementID int64, status string) (*entities.Requirement, error) {
	ct, err := p.db.Exec(ctx, setStatusQuery, requirementID, status)
	if err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: id %d", entities.ErrRequirementNotFound, requirementID)
	}

	p.log.Infow("requirement status set", "requirement_id", requirementID, "status", status)
	return p.GetRequirement(ctx, requirementID)
}

// SearchRequirements ANDs the provided predicates; zero matches yield an
// empty list.
func (p *Postgres) SearchRequirements(ctx context.Context, filter entities.RequirementFilter) ([]entities.Requirement, error) {
	return p.listRequirements(ctx, searchRequirementsQuery,
		filter.Title, filter.Status, filter.Priority, filter.AssigneeID)
}

// ListRequirementsExcludingOwner returns requirements whose project owner is
// not the given user. An entirely empty store is reported as not found.
func (p *Postgres) ListRequirementsExcludingOwner(ctx context.Context, ownerID int64) ([]entities.Requirement, error) {
	var total int64
	if err := p.db.QueryRow(ctx, countRequirementsQuery).Scan(&total); err != nil {
		return nil, fmt.Errorf("count requirements: %w", err)
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: none exist", entities.ErrRequirementNotFound)
	}
	return p.listRequirements(ctx, listExcludingOwnerQuery, ownerID)
}

// ListRequirementsByProject returns requirements of an existing project.
func (p *Postgres) ListRequirementsByProject(ctx context.Context, projectID int64) ([]entities.Requirement, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE id=$1)`, projectID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("project lookup: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: id %d", entities.ErrProjectNotFound, projectID)
	}
	return p.listRequirements(ctx, listRequirementsByProjectQuery, projectID)
}

// ListRequirementsByAssignee returns the user's assigned requirements,
// possibly empty.
func (p *Postgres) ListRequirementsByAssignee(ctx context.Context, assigneeID int64) ([]entities.Requirement, error) {
	return p.listRequirements(ctx, listRequirementsByAssigneeQuery, assigneeID)
}

func (p *Postgres) listRequirements(ctx context.Context, query string, args ...any) ([]entities.Requirement, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	defer rows.Close()

	reqs := make([]entities.Requirement, 0)
	for rows.Next() {
		req, err := p.scanRequirement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan requirement: %w", err)
		}
		reqs = append(reqs, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requirements: %w", err)
	}
	return reqs, nil
}

func (p *Postgres) scanRequirement(row pgx.Row) (*entities.Requirement, error) {
	var req entities.Requirement
	if err := row.Scan(&req.ID, &req.Title, &req.Description, &req.Status, &req.Priority,
		&req.DueDate, &req.ProjectID, &req.AssigneeID, &req.CreatedAt); err != nil {
		return nil, err
	}
	return &req, nil
}
