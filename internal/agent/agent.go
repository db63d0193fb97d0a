package agent

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("agent not found")
	ErrInactive        = errors.New("agent is inactive")
	ErrUnknownType     = errors.New("unknown agent type")
	ErrExecutionFailed = errors.New("agent execution failed")
)

// Type selects the task an agent runs.
type Type string

const (
	TypeHomepage   Type = "homepage"
	TypeModeration Type = "moderacao"
	TypeCSVStats   Type = "csv_stats"
)

type ExecutionStatus string

const (
	ExecutionRunning ExecutionStatus = "running"
	ExecutionSuccess ExecutionStatus = "success"
	ExecutionError   ExecutionStatus = "error"
)

// Agent is an administrator-defined task backed by the generative model. Its
// prompt carries the task instructions.
type Agent struct {
	ID        uuid.UUID
	Name      string
	Type      Type
	Prompt    string
	Active    bool
	LastRunAt *time.Time
}

// Execution records one run of an agent.
type Execution struct {
	ID         uuid.UUID
	AgentID    uuid.UUID
	Status     ExecutionStatus
	StartedAt  time.Time
	FinishedAt *time.Time
	Result     map[string]any
	Error      *string
	Tokens     int32
}
