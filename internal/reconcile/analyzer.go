package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/bolao/internal/ai"
	"github.com/MrJamesThe3rd/bolao/internal/money"
)

var ErrInvalidModelOutput = errors.New("invalid model output")

var modelStatuses = map[Status]bool{
	StatusPending:      true,
	StatusInvalid:      true,
	StatusUserNotFound: true,
}

var modelDateLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04:05",
	time.RFC3339,
	brDateLayout,
}

// AIAnalyzer asks a generative model to classify the statement. The model's
// answer is validated strictly; anything off-schema is an error so the caller
// can fall back.
type AIAnalyzer struct {
	gen ai.Generator
}

func NewAIAnalyzer(gen ai.Generator) *AIAnalyzer {
	return &AIAnalyzer{gen: gen}
}

func (a *AIAnalyzer) Analyze(ctx context.Context, in Input) ([]Transaction, error) {
	resp, err := a.gen.Generate(ctx, buildPrompt(in), ai.Options{
		Temperature: ai.Temperature(0.1),
		JSON:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("generate analysis: %w", err)
	}

	return decodeAnalysis(resp.Text, in.Participants)
}

type modelAnalysis struct {
	Transactions []modelTransaction `json:"transacoes"`
	// The model's own summary is recomputed locally.
	Summary json.RawMessage `json:"resumo"`
}

type modelTransaction struct {
	Date            string  `json:"data_transacao"`
	Amount          float64 `json:"valor"`
	Description     string  `json:"descricao_original"`
	PayerName       string  `json:"nome_pagador"`
	PayerDocument   *string `json:"documento_pagador"`
	Type            Type    `json:"tipo_transacao"`
	Quotas          float64 `json:"cotas_identificadas"`
	Status          Status  `json:"status"`
	Confidence      float64 `json:"confianca_ia"`
	Note            string  `json:"observacao_ia"`
	RejectionReason *string `json:"motivo_rejeicao"`
	SuggestedEmail  *string `json:"user_email_sugerido"`
}

func decodeAnalysis(text string, roster []Participant) ([]Transaction, error) {
	dec := json.NewDecoder(strings.NewReader(ai.StripFences(text)))
	dec.DisallowUnknownFields()

	var out modelAnalysis
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModelOutput, err)
	}

	if out.Transactions == nil {
		return nil, fmt.Errorf("%w: missing transacoes", ErrInvalidModelOutput)
	}

	emails := make(map[string]string, len(roster))
	for _, p := range roster {
		emails[strings.ToLower(p.Email)] = p.Email
	}

	txs := make([]Transaction, 0, len(out.Transactions))

	for i, mt := range out.Transactions {
		tx, err := mt.validate(emails)
		if err != nil {
			return nil, fmt.Errorf("%w: transaction %d: %w", ErrInvalidModelOutput, i, err)
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

func (mt modelTransaction) validate(emails map[string]string) (Transaction, error) {
	if strings.TrimSpace(mt.Description) == "" {
		return Transaction{}, errors.New("empty description")
	}

	amount := money.FromFloat(mt.Amount)
	if amount <= 0 {
		return Transaction{}, fmt.Errorf("non-positive amount %v", mt.Amount)
	}

	if mt.Confidence < 0 || mt.Confidence > 1 {
		return Transaction{}, fmt.Errorf("confidence %v out of range", mt.Confidence)
	}

	if !modelStatuses[mt.Status] {
		return Transaction{}, fmt.Errorf("unexpected status %q", mt.Status)
	}

	if mt.Type != TypePixIn && mt.Type != TypeOther {
		return Transaction{}, fmt.Errorf("unexpected type %q", mt.Type)
	}

	date, err := parseModelDate(mt.Date)
	if err != nil {
		return Transaction{}, err
	}

	var suggested *string

	if mt.SuggestedEmail != nil && *mt.SuggestedEmail != "" {
		email, ok := emails[strings.ToLower(*mt.SuggestedEmail)]
		if !ok {
			return Transaction{}, fmt.Errorf("suggested email %q is not a participant", *mt.SuggestedEmail)
		}

		suggested = new(email)
	}

	payer := strings.TrimSpace(mt.PayerName)
	if payer == "" {
		payer = UnknownPayer
	}

	return Transaction{
		Date:            date,
		Amount:          amount,
		Description:     mt.Description,
		PayerName:       payer,
		PayerDocument:   mt.PayerDocument,
		Type:            mt.Type,
		Status:          mt.Status,
		Confidence:      mt.Confidence,
		Note:            mt.Note,
		RejectionReason: mt.RejectionReason,
		SuggestedEmail:  suggested,
	}, nil
}

func parseModelDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range modelDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
