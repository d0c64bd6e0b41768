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
	insertCommentQuery = `
INSERT INTO comments(requirement_id, author_id, content)
VALUES ($1,$2,$3)
RETURNING id, created_at`
	selectCommentQuery = `SELECT id, requirement_id, author_id, content, created_at FROM comments WHERE id=$1`
	deleteCommentQuery = `DELETE FROM comments WHERE id=$1`
	listCommentsQuery  = `
SELECT id, requirement_id, author_id, content, created_at
FROM comments
WHERE requirement_id=$1
ORDER BY created_at ASC, id ASC`
)

// CreateComment appends a comment to a requirement.
func (p *Postgres) CreateComment(ctx context.Context, requirementID, authorID int64, content string) (*entities.Comment, error) {
	c := entities.Comment{RequirementID: requirementID, AuthorID: authorID, Content: content}
	err := p.db.QueryRow(ctx, insertCommentQuery, requirementID, authorID, content).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, fmt.Errorf("%w: id %d", entities.ErrRequirementNotFound, requirementID)
		}
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	p.log.Infow("comment created", "comment_id", c.ID, "requirement_id", requirementID)
	return &c, nil
}

// GetComment fetches a comment by id.
func (p *Postgres) GetComment(ctx context.Context, commentID int64) (*entities.Comment, error) {
	var c entities.Comment
	err := p.db.QueryRow(ctx, selectCommentQuery, commentID).
		Scan(&c.ID, &c.RequirementID, &c.AuthorID, &c.Content, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", entities.ErrCommentNotFound, commentID)
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}

// DeleteComment removes a comment by id.
func (p *Postgres) DeleteComment(ctx context.Context, commentID int64) error {
	ct, err := p.db.Exec(ctx, deleteCommentQuery, commentID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", entities.ErrCommentNotFound, commentID)
	}
	p.log.Infow("comment deleted", "comment_id", commentID)
	return nil
}

// ListCommentsByRequirement returns comments in creation order.
func (p *Postgres) ListCommentsByRequirement(ctx context.Context, requirementID int64) ([]entities.Comment, error) {
	rows, err := p.db.Query(ctx, listCommentsQuery, requirementID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]entities.Comment, 0)
	for rows.Next() {
		var c entities.Comment
		if err := rows.Scan(&c.ID, &c.RequirementID, &c.AuthorID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}
