package view

import (
	"context"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/bolao/internal/money"
	"github.com/MrJamesThe3rd/bolao/internal/reconcile"
)

const dbTimeout = 5 * time.Second

// FormatAmount formats an amount stored as cents as Brazilian reais.
func FormatAmount(cents int64) string {
	return money.FormatBRL(cents)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

var statusColors = map[reconcile.Status]lipgloss.Color{
	reconcile.StatusPending:      "214",
	reconcile.StatusApproved:     "46",
	reconcile.StatusInvalid:      "196",
	reconcile.StatusUserNotFound: "205",
	reconcile.StatusIgnored:      "240",
}

func StatusStyle(s reconcile.Status) string {
	return lipgloss.NewStyle().Foreground(statusColors[s]).Render(string(s))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
