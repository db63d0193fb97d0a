package statement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/metrics"
	"github.com/MrJamesThe3rd/bolao/internal/pool"
	"github.com/MrJamesThe3rd/bolao/internal/reconcile"
)

const noteConcurrentImport = "Transação importada por outro lote simultâneo"

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=statement
type Repository interface {
	ListHashes(ctx context.Context, poolID uuid.UUID) ([]string, error)
	// InsertBatch stores txs in a single database transaction. Rows whose hash
	// already exists for the pool are skipped and keep a zero ID.
	InsertBatch(ctx context.Context, txs []*Transaction) error
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to reconcile.Status) error
	RecentStats(ctx context.Context, limit int) (*Stats, error)
}

type PoolReader interface {
	Get(ctx context.Context, id uuid.UUID) (*pool.Pool, error)
	Participants(ctx context.Context, poolID uuid.UUID) ([]*pool.Participant, error)
}

type Reconciler interface {
	Reconcile(ctx context.Context, in reconcile.Input) *reconcile.Result
}

type Service struct {
	repo  Repository
	pools PoolReader
	rec   Reconciler
}

func NewService(repo Repository, pools PoolReader, rec Reconciler) *Service {
	return &Service{repo: repo, pools: pools, rec: rec}
}

type ListFilter struct {
	PoolID  *uuid.UUID
	Status  *reconcile.Status
	BatchID *uuid.UUID
}

type ImportResult struct {
	BatchID  uuid.UUID
	Analysis *reconcile.Result
	Saved    int
	Ignored  int
}

// Import reconciles csv against the pool's roster and stores every row that was
// not seen before under a new batch id.
func (s *Service) Import(ctx context.Context, poolID uuid.UUID, csv string) (*ImportResult, error) {
	p, err := s.pools.Get(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("get pool: %w", err)
	}

	participants, err := s.pools.Participants(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	hashes, err := s.repo.ListHashes(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("list hashes: %w", err)
	}

	res := s.rec.Reconcile(ctx, reconcile.Input{
		CSV:            csv,
		QuotaValue:     p.QuotaValue,
		Participants:   roster(participants),
		ExistingHashes: hashes,
	})

	batchID := uuid.New()

	var (
		rows    []*Transaction
		indexes []int
	)

	for i, t := range res.Transactions {
		if t.Status == reconcile.StatusIgnored {
			continue
		}

		rows = append(rows, &Transaction{PoolID: poolID, BatchID: batchID, Transaction: t})
		indexes = append(indexes, i)
	}

	if len(rows) > 0 {
		if err := s.repo.InsertBatch(ctx, rows); err != nil {
			return nil, fmt.Errorf("save transactions: %w", err)
		}
	}

	saved := 0

	for j, row := range rows {
		if row.ID != uuid.Nil {
			saved++
			continue
		}

		t := &res.Transactions[indexes[j]]
		t.Status = reconcile.StatusIgnored
		t.Note = noteConcurrentImport
	}

	if saved != len(rows) {
		res.Summary = reconcile.Summarize(res.Transactions)
	}

	metrics.ObserveImport(string(res.Path), statusCounts(res.Transactions))

	slog.Info("statement imported",
		"pool_id", poolID,
		"batch_id", batchID,
		"path", res.Path,
		"rows", len(res.Transactions),
		"saved", saved,
	)

	return &ImportResult{
		BatchID:  batchID,
		Analysis: res,
		Saved:    saved,
		Ignored:  len(res.Transactions) - saved,
	}, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

// Review applies an administrator decision. Only pending transactions can be
// approved or ignored.
func (s *Service) Review(ctx context.Context, id uuid.UUID, status reconcile.Status) (*Transaction, error) {
	if status != reconcile.StatusApproved && status != reconcile.StatusIgnored {
		return nil, fmt.Errorf("%w: to %q", ErrInvalidTransition, status)
	}

	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if tx.Status != reconcile.StatusPending {
		return nil, fmt.Errorf("%w: %q to %q", ErrInvalidTransition, tx.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, reconcile.StatusPending, status); err != nil {
		return nil, err
	}

	tx.Status = status

	return tx, nil
}

func (s *Service) Stats(ctx context.Context, limit int) (*Stats, error) {
	return s.repo.RecentStats(ctx, limit)
}

func roster(participants []*pool.Participant) []reconcile.Participant {
	out := make([]reconcile.Participant, len(participants))
	for i, p := range participants {
		out[i] = reconcile.Participant{ID: p.UserID.String(), Email: p.Email, Name: p.Name}
	}

	return out
}

func statusCounts(txs []reconcile.Transaction) map[string]int {
	counts := make(map[string]int)
	for _, t := range txs {
		counts[string(t.Status)]++
	}

	return counts
}
