package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/agent"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetAgent(ctx context.Context, id uuid.UUID) (*agent.Agent, error) {
	query := `SELECT id, nome, tipo, prompt, ativo, ultima_execucao FROM agentes_ia WHERE id = $1`

	var (
		a   agent.Agent
		typ string
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Name, &typ, &a.Prompt, &a.Active, &a.LastRunAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, agent.ErrNotFound
		}

		return nil, fmt.Errorf("getting agent: %w", err)
	}

	a.Type = agent.Type(typ)

	return &a, nil
}

func (s *Store) CreateExecution(ctx context.Context, e *agent.Execution) error {
	query := `
		INSERT INTO agentes_execucoes (agente_id, status, inicio)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, e.AgentID, e.Status, e.StartedAt).Scan(&e.ID); err != nil {
		return fmt.Errorf("creating execution: %w", err)
	}

	return nil
}

func (s *Store) FinishExecution(ctx context.Context, e *agent.Execution) error {
	var result []byte

	if e.Result != nil {
		b, err := json.Marshal(e.Result)
		if err != nil {
			return fmt.Errorf("encoding execution result: %w", err)
		}

		result = b
	}

	query := `
		UPDATE agentes_execucoes
		SET status = $1, fim = $2, resultado = $3, erro = $4, tokens_usados = $5
		WHERE id = $6
	`

	if _, err := s.db.ExecContext(ctx, query, e.Status, e.FinishedAt, result, e.Error, e.Tokens, e.ID); err != nil {
		return fmt.Errorf("finishing execution: %w", err)
	}

	return nil
}

func (s *Store) UpdateLastRun(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE agentes_ia SET ultima_execucao = $1 WHERE id = $2`, at, id); err != nil {
		return fmt.Errorf("updating last run: %w", err)
	}

	return nil
}
