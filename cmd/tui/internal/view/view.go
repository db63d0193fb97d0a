package view

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/reconcile"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

type Importer interface {
	Import(ctx context.Context, poolID uuid.UUID, csv string) (*statement.ImportResult, error)
}

type Reviewer interface {
	List(ctx context.Context, filter statement.ListFilter) ([]*statement.Transaction, error)
	Review(ctx context.Context, id uuid.UUID, status reconcile.Status) (*statement.Transaction, error)
}
