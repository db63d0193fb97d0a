package pool

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("pool not found")

// Status represents the lifecycle state of a pool.
type Status string

const (
	StatusOpen     Status = "aberto"
	StatusClosed   Status = "fechado"
	StatusFinished Status = "finalizado"
)

// Pool is a shared lottery entry whose quotas are sold at a fixed price.
type Pool struct {
	ID          uuid.UUID
	Name        string
	Description string
	QuotaValue  int64 // Amount in cents
	SoldQuotas  int
	TotalQuotas *int
	Deadline    *time.Time
	Status      Status
	CreatedAt   time.Time
}

// Participant is a user holding quotas in a pool.
type Participant struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Quotas int
}
