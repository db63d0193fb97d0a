package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/bolao/internal/registration"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ActiveRules(ctx context.Context) ([]registration.Rule, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT tipo, valor FROM emails_autorizados WHERE ativo = TRUE`)
	if err != nil {
		return nil, fmt.Errorf("listing registration rules: %w", err)
	}
	defer rows.Close()

	var rules []registration.Rule

	for rows.Next() {
		var (
			r   registration.Rule
			typ string
		)

		if err := rows.Scan(&typ, &r.Value); err != nil {
			return nil, fmt.Errorf("scanning registration rule: %w", err)
		}

		r.Type = registration.RuleType(typ)
		rules = append(rules, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating registration rules: %w", err)
	}

	return rules, nil
}
