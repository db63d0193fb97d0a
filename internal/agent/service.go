package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/ai"
	"github.com/MrJamesThe3rd/bolao/internal/comment"
	"github.com/MrJamesThe3rd/bolao/internal/metrics"
	"github.com/MrJamesThe3rd/bolao/internal/pool"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=agent
type Repository interface {
	GetAgent(ctx context.Context, id uuid.UUID) (*Agent, error)
	CreateExecution(ctx context.Context, e *Execution) error
	FinishExecution(ctx context.Context, e *Execution) error
	UpdateLastRun(ctx context.Context, id uuid.UUID, at time.Time) error
}

type PoolLister interface {
	ListOpen(ctx context.Context, limit int) ([]*pool.Pool, error)
}

type CommentReviewer interface {
	ReviewPending(ctx context.Context, instructions string, limit int) (*comment.ReviewResult, error)
}

type StatsReader interface {
	Stats(ctx context.Context, limit int) (*statement.Stats, error)
}

type Service struct {
	repo     Repository
	pools    PoolLister
	comments CommentReviewer
	stats    StatsReader
	gen      ai.Generator
	now      func() time.Time
}

// NewService wires the agent runner. gen may be nil; every task then returns
// its local result.
func NewService(repo Repository, pools PoolLister, comments CommentReviewer, stats StatsReader, gen ai.Generator) *Service {
	return &Service{
		repo:     repo,
		pools:    pools,
		comments: comments,
		stats:    stats,
		gen:      gen,
		now:      time.Now,
	}
}

// Execute runs the agent and records the execution. When the task itself fails
// the finished execution is returned together with an ErrExecutionFailed error.
func (s *Service) Execute(ctx context.Context, id uuid.UUID) (*Execution, error) {
	a, err := s.repo.GetAgent(ctx, id)
	if err != nil {
		return nil, err
	}

	if !a.Active {
		return nil, ErrInactive
	}

	exec := &Execution{
		AgentID:   a.ID,
		Status:    ExecutionRunning,
		StartedAt: s.now(),
	}

	if err := s.repo.CreateExecution(ctx, exec); err != nil {
		return nil, fmt.Errorf("create execution: %w", err)
	}

	result, runErr := s.run(ctx, a)

	exec.FinishedAt = new(s.now())

	if runErr != nil {
		exec.Status = ExecutionError
		exec.Error = new(runErr.Error())
	} else {
		exec.Status = ExecutionSuccess
		exec.Result = result.fields
		exec.Tokens = result.tokens
	}

	if err := s.repo.FinishExecution(ctx, exec); err != nil {
		return nil, fmt.Errorf("finish execution: %w", err)
	}

	metrics.ObserveAgent(string(a.Type), string(exec.Status))

	if runErr != nil {
		slog.Error("agent execution failed", "agent_id", a.ID, "type", a.Type, "error", runErr)
		return exec, fmt.Errorf("%w: %w", ErrExecutionFailed, runErr)
	}

	if err := s.repo.UpdateLastRun(ctx, a.ID, *exec.FinishedAt); err != nil {
		return nil, fmt.Errorf("update last run: %w", err)
	}

	slog.Info("agent executed", "agent_id", a.ID, "type", a.Type, "tokens", exec.Tokens)

	return exec, nil
}

type taskResult struct {
	fields map[string]any
	tokens int32
}

func (s *Service) run(ctx context.Context, a *Agent) (*taskResult, error) {
	switch a.Type {
	case TypeHomepage:
		return s.homepage(ctx, a.Prompt)
	case TypeModeration:
		return s.moderation(ctx, a.Prompt)
	case TypeCSVStats:
		return s.csvStats(ctx, a.Prompt)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownType, a.Type)
}
