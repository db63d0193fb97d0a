package view

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/reconcile"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
)

var listStatuses = []reconcile.Status{
	reconcile.StatusPending,
	reconcile.StatusApproved,
	reconcile.StatusInvalid,
	reconcile.StatusUserNotFound,
	reconcile.StatusIgnored,
}

type ListModel struct {
	CommonModel
	reviewer Reviewer
	poolID   uuid.UUID

	table table.Model
	txs   []*statement.Transaction

	// Filter cycling; index 0 means no filter.
	statusFilterIdx int
	batchFilterIdx  int
	batches         []uuid.UUID

	filter  statement.ListFilter
	loading bool
	err     error
}

func NewListModel(reviewer Reviewer, poolID uuid.UUID) ListModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Status", Width: 24},
		{Title: "Amount", Width: 14},
		{Title: "Quotas", Width: 7},
		{Title: "Payer", Width: 28},
		{Title: "Email", Width: 30},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ListModel{
		reviewer: reviewer,
		poolID:   poolID,
		table:    t,
		filter:   statement.ListFilter{PoolID: &poolID},
		loading:  true,
	}
}

func (m ListModel) Title() string { return "Imported Transactions" }

func (m ListModel) ShortHelp() string {
	return "Esc: back | s: status filter | b: batch filter | r: refresh"
}

func (m ListModel) Init() tea.Cmd {
	return m.loadTxsCmd()
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadListMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.collectBatches()
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.Resize(msg)
		m.table.SetHeight(m.bodyHeight(10, 15))

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTxsCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % (len(listStatuses) + 1)
			m.applyFilter()

			return m, m.loadTxsCmd()
		case "b":
			m.batchFilterIdx = (m.batchFilterIdx + 1) % (len(m.batches) + 1)
			m.applyFilter()

			return m, m.loadTxsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	statusLabel := "All"
	if m.filter.Status != nil {
		statusLabel = string(*m.filter.Status)
	}

	batchLabel := "All"
	if m.filter.BatchID != nil {
		batchLabel = m.filter.BatchID.String()
	}

	header := fmt.Sprintf(
		"Filter: [s] Status: %s | [b] Batch: %s",
		activeStyle(statusLabel),
		activeStyle(batchLabel),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	))
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *ListModel) applyFilter() {
	m.filter.Status = nil
	if m.statusFilterIdx > 0 {
		m.filter.Status = &listStatuses[m.statusFilterIdx-1]
	}

	m.filter.BatchID = nil
	if m.batchFilterIdx > 0 {
		m.filter.BatchID = &m.batches[m.batchFilterIdx-1]
	}
}

// collectBatches remembers every batch seen so the batch filter can cycle
// through them even while a filter narrows the list.
func (m *ListModel) collectBatches() {
	for _, tx := range m.txs {
		if !slices.Contains(m.batches, tx.BatchID) {
			m.batches = append(m.batches, tx.BatchID)
		}
	}
}

func (m *ListModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Status),
			FormatAmount(tx.Amount),
			fmt.Sprintf("%d", tx.Quotas),
			tx.PayerName,
			deref(tx.SuggestedEmail),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadListMsg struct {
	txs []*statement.Transaction
	err error
}

func (m ListModel) loadTxsCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.reviewer.List(ctx, filter)

		return loadListMsg{txs: txs, err: err}
	}
}
