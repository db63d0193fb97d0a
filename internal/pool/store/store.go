package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/pool"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectPoolColumns = `
	id, name, description, quota_value, sold_quotas, total_quotas, deadline, status, created_at
`

// Expected column order: selectPoolColumns.
func scanPool(s scanner) (*pool.Pool, error) {
	var p pool.Pool

	var total sql.NullInt64

	var status string

	if err := s.Scan(
		&p.ID, &p.Name, &p.Description, &p.QuotaValue, &p.SoldQuotas, &total, &p.Deadline, &status, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	if total.Valid {
		p.TotalQuotas = new(int(total.Int64))
	}

	p.Status = pool.Status(status)

	return &p, nil
}

func (s *Store) GetPool(ctx context.Context, id uuid.UUID) (*pool.Pool, error) {
	query := `SELECT ` + selectPoolColumns + ` FROM boloes WHERE id = $1`

	p, err := scanPool(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pool.ErrNotFound
		}

		return nil, fmt.Errorf("getting pool: %w", err)
	}

	return p, nil
}

func (s *Store) ListByStatus(ctx context.Context, status pool.Status, limit int) ([]*pool.Pool, error) {
	query := `SELECT ` + selectPoolColumns + `
		FROM boloes
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, status, limit)
	if err != nil {
		return nil, fmt.Errorf("listing pools: %w", err)
	}
	defer rows.Close()

	var pools []*pool.Pool

	for rows.Next() {
		p, err := scanPool(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning pool: %w", err)
		}

		pools = append(pools, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pools: %w", err)
	}

	return pools, nil
}

// ListParticipants aggregates quotas per user; a user may join the same pool
// more than once.
func (s *Store) ListParticipants(ctx context.Context, poolID uuid.UUID) ([]*pool.Participant, error) {
	query := `
		SELECT user_id, user_email, COALESCE(MAX(user_name), ''), SUM(quotas)
		FROM participacoes
		WHERE bolao_id = $1
		GROUP BY user_id, user_email
		ORDER BY MIN(created_at) ASC
	`

	rows, err := s.db.QueryContext(ctx, query, poolID)
	if err != nil {
		return nil, fmt.Errorf("listing participants: %w", err)
	}
	defer rows.Close()

	var participants []*pool.Participant

	for rows.Next() {
		var p pool.Participant
		if err := rows.Scan(&p.UserID, &p.Email, &p.Name, &p.Quotas); err != nil {
			return nil, fmt.Errorf("scanning participant: %w", err)
		}

		participants = append(participants, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating participants: %w", err)
	}

	return participants, nil
}
