package view

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/bolao/internal/encoding"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
)

// Imports may wait on the model.
const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	importer Importer
	poolID   uuid.UUID

	state      importState
	filePicker filepicker.Model
	spinner    spinner.Model
	table      table.Model

	result *statement.ImportResult
	status string
	err    error
}

func NewImportModel(importer Importer, poolID uuid.UUID) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	s := spinner.New()
	s.Spinner = spinner.Dot

	return ImportModel{
		importer:   importer,
		poolID:     poolID,
		filePicker: fp,
		spinner:    s,
		table:      newResultTable(),
	}
}

func newResultTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Amount", Width: 14},
			{Title: "Quotas", Width: 7},
			{Title: "Status", Width: 24},
			{Title: "Payer", Width: 28},
			{Title: "Note", Width: 40},
		}),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m ImportModel) Title() string { return "Import Statement" }

func (m ImportModel) ShortHelp() string { return "Esc: back | Enter: select" }

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

	case tea.WindowSizeMsg:
		m.Resize(msg)
		m.filePicker.SetHeight(m.bodyHeight(8, 15))
		m.table.SetHeight(m.bodyHeight(12, 10))

		return m, nil

	case importResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.result = msg.result
		m.table.SetRows(resultRows(msg.result))

		return m, nil
	}

	switch m.state {
	case importStateImporting:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case importStateResult:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing %s...", path)

		return m, tea.Batch(m.spinner.Tick, m.importCmd(path))
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	if m.state == importStateResult {
		m.state = importStateFilePick
		m.err = nil
		m.result = nil
		m.status = ""

		return m, m.filePicker.Init()
	}

	return m, Back
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select statement to import into pool %s:\n\n%s", m.poolID, m.filePicker.View()),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.spinner.View() + " " + m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(1)
	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) +
				"\n\n(Esc to go back)",
		)
	}

	s := m.result.Analysis.Summary

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")).Render(
		fmt.Sprintf("Batch %s: %d saved, %d ignored (%s)", m.result.BatchID, m.result.Saved, m.result.Ignored, m.result.Analysis.Path),
	)

	summary := strings.Join([]string{
		fmt.Sprintf("Deposits:        %d", s.Deposits),
		fmt.Sprintf("Total:           %s", FormatAmount(s.Total)),
		fmt.Sprintf("Quotas:          %d", s.Quotas),
		fmt.Sprintf("Valid:           %d", s.Valid),
		fmt.Sprintf("Invalid:         %d", s.Invalid),
		fmt.Sprintf("User not found:  %d", s.UserNotFound),
		fmt.Sprintf("Already seen:    %d", s.AlreadyImported),
	}, "\n")

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		summary,
		"",
		m.table.View(),
		"",
		"(Esc to import another file)",
	))
}

func resultRows(res *statement.ImportResult) []table.Row {
	rows := make([]table.Row, 0, len(res.Analysis.Transactions))
	for _, tx := range res.Analysis.Transactions {
		note := tx.Note
		if tx.RejectionReason != nil {
			note = *tx.RejectionReason
		}

		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			FormatAmount(tx.Amount),
			fmt.Sprintf("%d", tx.Quotas),
			string(tx.Status),
			tx.PayerName,
			note,
		})
	}

	return rows
}

// Messages

type importResultMsg struct {
	result *statement.ImportResult
	err    error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		content, err := encoding.ReadString(f)
		if err != nil {
			return importResultMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		result, err := m.importer.Import(ctx, m.poolID, content)
		if err != nil {
			return importResultMsg{err: err}
		}

		return importResultMsg{result: result}
	}
}
