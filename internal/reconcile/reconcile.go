// Package reconcile turns a raw bank statement CSV into classified deposit
// candidates for a pool.
//
// Classification is done by an Analyzer (normally model-backed) and falls back
// to a local heuristic when the analyzer is missing or fails. Both paths then go
// through the same post-processing: the quota rule is enforced, every row is
// hashed and rows already seen for the pool are marked ignored.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MrJamesThe3rd/bolao/internal/money"
)

// Status is the review state of an imported transaction. Values are stored and
// served as-is.
type Status string

const (
	StatusPending      Status = "pendente"
	StatusApproved     Status = "aprovado"
	StatusInvalid      Status = "invalido"
	StatusUserNotFound Status = "usuario_nao_encontrado"
	StatusIgnored      Status = "ignorado"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusInvalid, StatusUserNotFound, StatusIgnored:
		return true
	}

	return false
}

type Type string

const (
	TypePixIn Type = "pix_entrada"
	TypeOther Type = "outro"
)

// Path identifies which analyzer produced a classification.
type Path string

const (
	PathAI       Path = "ai"
	PathFallback Path = "fallback"
)

const (
	NoteDuplicate = "Transação já processada anteriormente"
	UnknownPayer  = "Não identificado"
)

type Participant struct {
	ID    string
	Email string
	Name  string
}

type Transaction struct {
	Date            time.Time
	Amount          int64 // Amount in cents
	Description     string
	PayerName       string
	PayerDocument   *string
	Type            Type
	Quotas          int
	Status          Status
	Confidence      float64
	Note            string
	RejectionReason *string
	SuggestedEmail  *string
	Hash            string
}

type Summary struct {
	Deposits        int
	Total           int64 // Amount in cents
	Quotas          int
	Valid           int
	Invalid         int
	UserNotFound    int
	AlreadyImported int
}

type Input struct {
	CSV            string
	QuotaValue     int64 // Amount in cents
	Participants   []Participant
	ExistingHashes []string
}

type Result struct {
	Transactions []Transaction
	Summary      Summary
	Path         Path
}

//go:generate mockgen -source=reconcile.go -destination=analyzer_mock.go -package=reconcile
type Analyzer interface {
	Analyze(ctx context.Context, in Input) ([]Transaction, error)
}

type Reconciler struct {
	primary  Analyzer
	fallback Analyzer
}

// New returns a Reconciler using primary when set and the local heuristic
// otherwise.
func New(primary Analyzer) *Reconciler {
	return &Reconciler{
		primary:  primary,
		fallback: NewFallback(time.Now),
	}
}

// Reconcile classifies the statement in in. It never fails: analyzer errors
// are logged and the local heuristic is used instead.
func (r *Reconciler) Reconcile(ctx context.Context, in Input) *Result {
	txs, path := r.analyze(ctx, in)

	seen := make(map[string]struct{}, len(in.ExistingHashes)+len(txs))
	for _, h := range in.ExistingHashes {
		seen[h] = struct{}{}
	}

	for i := range txs {
		t := &txs[i]

		enforceQuota(t, in.QuotaValue)

		t.Hash = Hash(t.Date, t.Amount, t.Description)
		if _, dup := seen[t.Hash]; dup {
			t.Status = StatusIgnored
			t.Note = NoteDuplicate

			continue
		}

		seen[t.Hash] = struct{}{}
	}

	return &Result{
		Transactions: txs,
		Summary:      Summarize(txs),
		Path:         path,
	}
}

func (r *Reconciler) analyze(ctx context.Context, in Input) ([]Transaction, Path) {
	if r.primary != nil {
		txs, err := r.primary.Analyze(ctx, in)
		if err == nil {
			return txs, PathAI
		}

		slog.Warn("statement analysis failed, using local heuristic", "error", err)
	}

	// The fallback is purely local and does not fail.
	txs, _ := r.fallback.Analyze(ctx, in)

	return txs, PathFallback
}

// enforceQuota applies the quota rule: an amount that is an exact multiple of
// the quota value yields amount/quota quotas and is never invalid; anything
// else is invalid with zero quotas.
func enforceQuota(t *Transaction, quota int64) {
	if quota <= 0 || t.Amount%quota != 0 {
		t.Status = StatusInvalid
		t.Quotas = 0
		t.RejectionReason = new(fmt.Sprintf("Valor %s não é múltiplo de %s",
			money.FormatBRL(t.Amount), money.FormatBRL(quota)))

		return
	}

	t.Quotas = int(t.Amount / quota)

	if t.Status != StatusInvalid {
		return
	}

	t.RejectionReason = nil
	t.Status = StatusPending

	if t.SuggestedEmail == nil {
		t.Status = StatusUserNotFound
		t.RejectionReason = new(payerNotFound(t.PayerName))
	}
}

func payerNotFound(name string) string {
	return fmt.Sprintf("Pagador %q não encontrado na lista de participantes", name)
}

// Summarize aggregates txs. Totals cover every row; status counters count each
// row under its final status.
func Summarize(txs []Transaction) Summary {
	s := Summary{Deposits: len(txs)}

	for _, t := range txs {
		s.Total += t.Amount
		s.Quotas += t.Quotas

		switch t.Status {
		case StatusPending:
			s.Valid++
		case StatusInvalid:
			s.Invalid++
		case StatusUserNotFound:
			s.UserNotFound++
		case StatusIgnored:
			s.AlreadyImported++
		}
	}

	return s
}
