package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/money"
	"github.com/MrJamesThe3rd/bolao/internal/reconcile"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
)

type transactionResponse struct {
	ID              uuid.UUID        `json:"id"`
	PoolID          uuid.UUID        `json:"bolao_id"`
	BatchID         uuid.UUID        `json:"lote_importacao"`
	Date            string           `json:"data_transacao"`
	Amount          float64          `json:"valor"`
	Description     string           `json:"descricao_original"`
	PayerName       string           `json:"nome_pagador"`
	PayerDocument   *string          `json:"documento_pagador,omitempty"`
	Type            reconcile.Type   `json:"tipo_transacao"`
	Quotas          int              `json:"cotas_identificadas"`
	Status          reconcile.Status `json:"status"`
	Confidence      float64          `json:"confianca_ia"`
	Note            string           `json:"observacao_ia,omitempty"`
	RejectionReason *string          `json:"motivo_rejeicao,omitempty"`
	SuggestedEmail  *string          `json:"user_email_sugerido,omitempty"`
	Hash            string           `json:"hash_transacao"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(tx *statement.Transaction) transactionResponse {
	return transactionResponse{
		ID:              tx.ID,
		PoolID:          tx.PoolID,
		BatchID:         tx.BatchID,
		Date:            tx.Date.Format(time.DateOnly),
		Amount:          money.ToFloat(tx.Amount),
		Description:     tx.Description,
		PayerName:       tx.PayerName,
		PayerDocument:   tx.PayerDocument,
		Type:            tx.Type,
		Quotas:          tx.Quotas,
		Status:          tx.Status,
		Confidence:      tx.Confidence,
		Note:            tx.Note,
		RejectionReason: tx.RejectionReason,
		SuggestedEmail:  tx.SuggestedEmail,
		Hash:            tx.Hash,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}

func toResponseList(txs []*statement.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
