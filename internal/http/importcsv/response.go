package importcsv

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/money"
	"github.com/MrJamesThe3rd/bolao/internal/reconcile"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
)

type transactionResponse struct {
	Date            string           `json:"data_transacao"`
	Amount          float64          `json:"valor"`
	Description     string           `json:"descricao_original"`
	PayerName       string           `json:"nome_pagador"`
	PayerDocument   *string          `json:"documento_pagador"`
	Type            reconcile.Type   `json:"tipo_transacao"`
	Quotas          int              `json:"cotas_identificadas"`
	Status          reconcile.Status `json:"status"`
	Confidence      float64          `json:"confianca_ia"`
	Note            string           `json:"observacao_ia"`
	RejectionReason *string          `json:"motivo_rejeicao"`
	SuggestedEmail  *string          `json:"user_email_sugerido"`
	Hash            string           `json:"hash_transacao"`
}

type summaryResponse struct {
	Deposits        int     `json:"total_depositos"`
	Total           float64 `json:"total_valor"`
	Quotas          int     `json:"cotas_identificadas"`
	Valid           int     `json:"depositos_validos"`
	Invalid         int     `json:"depositos_invalidos"`
	UserNotFound    int     `json:"usuarios_nao_encontrados"`
	AlreadyImported int     `json:"ja_processados"`
}

type analysisResponse struct {
	Transactions []transactionResponse `json:"transacoes"`
	Summary      summaryResponse       `json:"resumo"`
}

type importResponse struct {
	Success  bool             `json:"success"`
	BatchID  uuid.UUID        `json:"lote_id"`
	Analysis analysisResponse `json:"analise"`
	Saved    int              `json:"transacoes_salvas"`
	Ignored  int              `json:"transacoes_ignoradas"`
}

func toImportResponse(res *statement.ImportResult) importResponse {
	txs := make([]transactionResponse, len(res.Analysis.Transactions))
	for i, t := range res.Analysis.Transactions {
		txs[i] = toTxResponse(t)
	}

	s := res.Analysis.Summary

	return importResponse{
		Success: true,
		BatchID: res.BatchID,
		Analysis: analysisResponse{
			Transactions: txs,
			Summary: summaryResponse{
				Deposits:        s.Deposits,
				Total:           money.ToFloat(s.Total),
				Quotas:          s.Quotas,
				Valid:           s.Valid,
				Invalid:         s.Invalid,
				UserNotFound:    s.UserNotFound,
				AlreadyImported: s.AlreadyImported,
			},
		},
		Saved:   res.Saved,
		Ignored: res.Ignored,
	}
}

func toTxResponse(t reconcile.Transaction) transactionResponse {
	return transactionResponse{
		Date:            t.Date.Format(time.DateOnly),
		Amount:          money.ToFloat(t.Amount),
		Description:     t.Description,
		PayerName:       t.PayerName,
		PayerDocument:   t.PayerDocument,
		Type:            t.Type,
		Quotas:          t.Quotas,
		Status:          t.Status,
		Confidence:      t.Confidence,
		Note:            t.Note,
		RejectionReason: t.RejectionReason,
		SuggestedEmail:  t.SuggestedEmail,
		Hash:            t.Hash,
	}
}
