package view

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/reconcile"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
)

// ReviewModel walks through the pool's pending transactions so an
// administrator can approve or ignore each one.
type ReviewModel struct {
	CommonModel
	reviewer Reviewer
	poolID   uuid.UUID

	queue     []*statement.Transaction
	currentTx *statement.Transaction

	status     string
	loading    bool
	totalCount int
	approved   int
	ignored    int
}

func NewReviewModel(reviewer Reviewer, poolID uuid.UUID) ReviewModel {
	return ReviewModel{
		reviewer: reviewer,
		poolID:   poolID,
		loading:  true,
		status:   "Loading pending transactions...",
	}
}

func (m ReviewModel) Title() string { return "Review Pending" }

func (m ReviewModel) ShortHelp() string {
	return "a: approve | i: ignore | s: skip | Esc: back"
}

func (m ReviewModel) Init() tea.Cmd {
	return m.loadPendingCmd()
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.loading || m.currentTx == nil {
			return m, nil
		}

		switch msg.String() {
		case "a":
			m.loading = true
			return m, m.reviewCmd(m.currentTx.ID, reconcile.StatusApproved)
		case "i":
			m.loading = true
			return m, m.reviewCmd(m.currentTx.ID, reconcile.StatusIgnored)
		case "s":
			m.nextTx()
		}

	case loadPendingMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading transactions: %v", msg.err)
			break
		}

		m.queue = msg.txs
		m.totalCount = len(m.queue)
		m.nextTx()

	case reviewResultMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			break
		}

		if msg.status == reconcile.StatusApproved {
			m.approved++
		} else {
			m.ignored++
		}

		m.nextTx()
	}

	return m, nil
}

func (m *ReviewModel) nextTx() {
	if len(m.queue) == 0 {
		m.currentTx = nil
		m.status = fmt.Sprintf("All done! %d approved, %d ignored.", m.approved, m.ignored)

		return
	}

	m.currentTx = m.queue[0]
	m.queue = m.queue[1:]
	m.status = fmt.Sprintf("Reviewing %d/%d", m.totalCount-len(m.queue), m.totalCount)
}

func (m ReviewModel) View() string {
	style := lipgloss.NewStyle().Padding(2)
	if m.Width > 0 {
		style = style.Width(m.Width)
	}

	if m.currentTx == nil {
		return style.Render(m.status + "\n\n(Esc to back)")
	}

	tx := m.currentTx
	info := fmt.Sprintf(
		"Date:    %s\nAmount:  %s\nQuotas:  %d\nPayer:   %s\nEmail:   %s\nStatus:  %s\nConf.:   %.0f%%\nRaw:     %s\nNote:    %s\n",
		FormatDate(tx.Date),
		FormatAmount(tx.Amount),
		tx.Quotas,
		tx.PayerName,
		deref(tx.SuggestedEmail),
		StatusStyle(tx.Status),
		tx.Confidence*100,
		tx.Description,
		tx.Note,
	)

	return style.Render(fmt.Sprintf("%s\n\n%s\n%s", m.status, info, m.ShortHelp()))
}

type loadPendingMsg struct {
	txs []*statement.Transaction
	err error
}

func (m ReviewModel) loadPendingCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.reviewer.List(ctx, statement.ListFilter{
			PoolID: &m.poolID,
			Status: new(reconcile.StatusPending),
		})

		return loadPendingMsg{txs: txs, err: err}
	}
}

type reviewResultMsg struct {
	status reconcile.Status
	err    error
}

func (m ReviewModel) reviewCmd(id uuid.UUID, status reconcile.Status) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.reviewer.Review(ctx, id, status)

		return reviewResultMsg{status: status, err: err}
	}
}
