package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectChatIDQuery  = `SELECT id FROM chats WHERE project_id=$1`
	insertMessageQuery = `
INSERT INTO messages(chat_id, sender_id, content)
VALUES ($1,$2,$3)
RETURNING id, created_at`
	listMessagesQuery = `
SELECT m.id, m.chat_id, c.project_id, m.sender_id, m.content, m.created_at
FROM messages m
JOIN chats c ON c.id = m.chat_id
WHERE c.project_id=$1
ORDER BY m.created_at ASC, m.id ASC`
	deleteMessagesQuery = `DELETE FROM messages WHERE chat_id=$1`
)

// CreateMessage appends a message to the project chat.
func (p *Postgres) CreateMessage(ctx context.Context, senderID, projectID int64, content string) (*entities.Message, error) {
	var chatID int64
	if err := p.db.QueryRow(ctx, selectChatIDQuery, projectID).Scan(&chatID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: project %d", entities.ErrChatNotFound, projectID)
		}
		return nil, fmt.Errorf("chat lookup: %w", err)
	}

	msg := entities.Message{ChatID: chatID, ProjectID: projectID, SenderID: senderID, Content: content}
	if err := p.db.QueryRow(ctx, insertMessageQuery, chatID, senderID, content).Scan(&msg.ID, &msg.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	p.log.Infow("message sent", "project_id", projectID, "sender_id", senderID)
	return &msg, nil
}

// ListMessagesByProject returns the chat history in ascending creation order.
func (p *Postgres) ListMessagesByProject(ctx context.Context, projectID int64) ([]entities.Message, error) {
	rows, err := p.db.Query(ctx, listMessagesQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	msgs := make([]entities.Message, 0)
	for rows.Next() {
		var m entities.Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.ProjectID, &m.SenderID, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return msgs, nil
}

// DeleteMessagesByProject purges the whole chat history of a project.
func (p *Postgres) DeleteMessagesByProject(ctx context.Context, projectID int64) error {
	var chatID int64
	if err := p.db.QueryRow(ctx, selectChatIDQuery, projectID).Scan(&chatID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: project %d", entities.ErrChatNotFound, projectID)
		}
		return fmt.Errorf("chat lookup: %w", err)
	}
	if _, err := p.db.Exec(ctx, deleteMessagesQuery, chatID); err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}
	p.log.Infow("chat history purged", "project_id", projectID)
	return nil
}
