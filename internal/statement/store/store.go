package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/reconcile"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
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

const selectTransactionColumns = `
	id, bolao_id, lote_importacao, hash_transacao, data_transacao, valor, descricao_original,
	tipo_transacao, nome_pagador, documento_pagador, status, cotas_identificadas, confianca_ia,
	observacao_ia, motivo_rejeicao, user_email_sugerido, created_at, updated_at
`

// scanTransaction expects the column order of selectTransactionColumns.
func scanTransaction(s scanner) (*statement.Transaction, error) {
	var tx statement.Transaction

	var typeStr, statusStr string

	if err := s.Scan(
		&tx.ID, &tx.PoolID, &tx.BatchID, &tx.Hash, &tx.Date, &tx.Amount, &tx.Description,
		&typeStr, &tx.PayerName, &tx.PayerDocument, &statusStr, &tx.Quotas, &tx.Confidence,
		&tx.Note, &tx.RejectionReason, &tx.SuggestedEmail, &tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = reconcile.Type(typeStr)
	tx.Status = reconcile.Status(statusStr)

	return &tx, nil
}

func (s *Store) ListHashes(ctx context.Context, poolID uuid.UUID) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT hash_transacao FROM transacoes_importadas WHERE bolao_id = $1`, poolID)
	if err != nil {
		return nil, fmt.Errorf("listing hashes: %w", err)
	}
	defer rows.Close()

	var hashes []string

	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("scanning hash: %w", err)
		}

		hashes = append(hashes, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hashes: %w", err)
	}

	return hashes, nil
}

// InsertBatch inserts every row in one database transaction. A row whose hash
// was stored by a concurrent import is skipped and keeps a zero ID.
func (s *Store) InsertBatch(ctx context.Context, txs []*statement.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO transacoes_importadas (
			bolao_id, lote_importacao, hash_transacao, data_transacao, valor, descricao_original,
			tipo_transacao, nome_pagador, documento_pagador, status, cotas_identificadas, confianca_ia,
			observacao_ia, motivo_rejeicao, user_email_sugerido, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		ON CONFLICT (bolao_id, hash_transacao) DO NOTHING
		RETURNING id, created_at
	`

	for _, tx := range txs {
		err := dbTx.QueryRowContext(ctx, query,
			tx.PoolID,
			tx.BatchID,
			tx.Hash,
			tx.Date,
			tx.Amount,
			tx.Description,
			tx.Type,
			tx.PayerName,
			tx.PayerDocument,
			tx.Status,
			tx.Quotas,
			tx.Confidence,
			tx.Note,
			tx.RejectionReason,
			tx.SuggestedEmail,
		).Scan(&tx.ID, &tx.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}

		if err != nil {
			return fmt.Errorf("inserting transaction %s: %w", tx.Hash, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*statement.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transacoes_importadas WHERE id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, statement.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter statement.ListFilter) ([]*statement.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transacoes_importadas WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.PoolID != nil {
		query += fmt.Sprintf(" AND bolao_id = $%d", argIdx)

		args = append(args, *filter.PoolID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.BatchID != nil {
		query += fmt.Sprintf(" AND lote_importacao = $%d", argIdx)

		args = append(args, *filter.BatchID)
		argIdx++
	}

	query += " ORDER BY data_transacao ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*statement.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

// UpdateStatus moves a transaction from one status to another. It fails with
// statement.ErrInvalidTransition when the row is no longer in from.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, from, to reconcile.Status) error {
	query := `
		UPDATE transacoes_importadas
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	if n == 0 {
		return statement.ErrInvalidTransition
	}

	return nil
}

func (s *Store) RecentStats(ctx context.Context, limit int) (*statement.Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(valor), 0),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3)
		FROM (
			SELECT valor, status
			FROM transacoes_importadas
			ORDER BY created_at DESC
			LIMIT $4
		) recent
	`

	var st statement.Stats

	err := s.db.QueryRowContext(ctx, query,
		reconcile.StatusApproved,
		reconcile.StatusPending,
		reconcile.StatusInvalid,
		limit,
	).Scan(&st.Total, &st.Amount, &st.Approved, &st.Pending, &st.Invalid)
	if err != nil {
		return nil, fmt.Errorf("computing stats: %w", err)
	}

	return &st, nil
}
