package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/comment"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ChatEnabled(ctx context.Context, domain string) (bool, error) {
	var enabled bool

	err := s.db.QueryRowContext(ctx,
		`SELECT chat_habilitado FROM config_dominios WHERE dominio = $1`, domain,
	).Scan(&enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}

	if err != nil {
		return false, fmt.Errorf("getting domain config: %w", err)
	}

	return enabled, nil
}

func (s *Store) CreateComment(ctx context.Context, c *comment.Comment) error {
	query := `
		INSERT INTO comentarios_dominio (dominio, user_id, user_name, user_email, mensagem, aprovado, moderado_por_ia, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Domain,
		c.UserID,
		c.UserName,
		c.UserEmail,
		c.Message,
		c.Approved,
		c.ModeratedByAI,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating comment: %w", err)
	}

	return nil
}

// ListUnmoderated returns published comments the model has not reviewed yet.
func (s *Store) ListUnmoderated(ctx context.Context, limit int) ([]*comment.Comment, error) {
	query := `
		SELECT id, dominio, user_id, user_name, user_email, mensagem, aprovado, moderado_por_ia, motivo_rejeicao, created_at
		FROM comentarios_dominio
		WHERE moderado_por_ia = FALSE AND aprovado = TRUE
		ORDER BY created_at ASC
		LIMIT $1
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer rows.Close()

	var comments []*comment.Comment

	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(
			&c.ID, &c.Domain, &c.UserID, &c.UserName, &c.UserEmail, &c.Message,
			&c.Approved, &c.ModeratedByAI, &c.RejectionReason, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}

		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating comments: %w", err)
	}

	return comments, nil
}

func (s *Store) MarkModerated(ctx context.Context, id uuid.UUID, approved bool, reason *string) error {
	query := `
		UPDATE comentarios_dominio
		SET aprovado = $1, moderado_por_ia = TRUE, motivo_rejeicao = $2
		WHERE id = $3
	`

	if _, err := s.db.ExecContext(ctx, query, approved, reason, id); err != nil {
		return fmt.Errorf("marking comment moderated: %w", err)
	}

	return nil
}
