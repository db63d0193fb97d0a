package statement

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/reconcile"
)

var (
	ErrNotFound          = errors.New("transaction not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Transaction is a reconciled statement line persisted for a pool.
type Transaction struct {
	ID      uuid.UUID
	PoolID  uuid.UUID
	BatchID uuid.UUID
	reconcile.Transaction
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Stats aggregates the most recently imported transactions across pools.
type Stats struct {
	Total    int
	Amount   int64 // Amount in cents
	Approved int
	Pending  int
	Invalid  int
}
