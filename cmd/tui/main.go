package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/bolao/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/bolao/internal/ai"
	"github.com/MrJamesThe3rd/bolao/internal/config"
	"github.com/MrJamesThe3rd/bolao/internal/database"
	"github.com/MrJamesThe3rd/bolao/internal/pool"
	poolStore "github.com/MrJamesThe3rd/bolao/internal/pool/store"
	"github.com/MrJamesThe3rd/bolao/internal/reconcile"
	"github.com/MrJamesThe3rd/bolao/internal/statement"
	statementStore "github.com/MrJamesThe3rd/bolao/internal/statement/store"
)

type model struct {
	poolService      *pool.Service
	statementService *statement.Service

	currentView View

	poolForm    *huh.Form
	pool        *pool.Pool
	loadingPool bool
	status      string

	importView view.ImportModel
	reviewView view.ReviewModel
	listView   view.ListModel

	size tea.WindowSizeMsg
}

type View int

const (
	ViewPool   View = 0
	ViewMenu   View = 1
	ViewImport View = 2
	ViewReview View = 3
	ViewList   View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	var analyzer reconcile.Analyzer

	if cfg.AIEnabled() {
		gemini, err := ai.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			slog.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}

		analyzer = reconcile.NewAIAnalyzer(gemini)
	}

	poolSvc := pool.NewService(poolStore.New(db))
	stmtSvc := statement.NewService(statementStore.New(db), poolSvc, reconcile.New(analyzer))

	return model{
		poolService:      poolSvc,
		statementService: stmtSvc,
		currentView:      ViewPool,
		poolForm:         newPoolForm(),
	}
}

func newPoolForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("pool_id").
				Title("Pool ID").
				Placeholder("00000000-0000-0000-0000-000000000000").
				Validate(func(s string) error {
					if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("not a valid pool id")
					}

					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m model) Init() tea.Cmd {
	return m.poolForm.Init()
}

type poolLoadedMsg struct {
	pool *pool.Pool
	err  error
}

func (m model) loadPoolCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := view.DbCtx()
		defer cancel()

		p, err := m.poolService.Get(ctx, id)

		return poolLoadedMsg{pool: p, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.size = msg
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "p":
				m.currentView = ViewPool
				m.poolForm = newPoolForm()

				return m, m.poolForm.Init()
			case "1":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.statementService, m.pool.ID)

				return m, tea.Batch(m.importView.Init(), m.resizeCmd())
			case "2":
				m.currentView = ViewReview
				m.reviewView = view.NewReviewModel(m.statementService, m.pool.ID)

				return m, tea.Batch(m.reviewView.Init(), m.resizeCmd())
			case "3":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.statementService, m.pool.ID)

				return m, tea.Batch(m.listView.Init(), m.resizeCmd())
			}
		}
	case poolLoadedMsg:
		m.loadingPool = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.poolForm = newPoolForm()

			return m, m.poolForm.Init()
		}

		m.pool = msg.pool
		m.status = ""
		m.currentView = ViewMenu

		return m, nil
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewPool:
		form, formCmd := m.poolForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.poolForm = f
		}

		if m.poolForm.State == huh.StateCompleted && !m.loadingPool {
			m.loadingPool = true
			id := uuid.MustParse(strings.TrimSpace(m.poolForm.GetString("pool_id")))
			return m, m.loadPoolCmd(id)
		}

		cmd = formCmd
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewReview:
		var newModel tea.Model
		newModel, cmd = m.reviewView.Update(msg)
		m.reviewView = newModel.(view.ReviewModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	}

	return m, cmd
}

// resizeCmd replays the last known terminal size to a freshly opened view.
func (m model) resizeCmd() tea.Cmd {
	if m.size.Width == 0 && m.size.Height == 0 {
		return nil
	}

	size := m.size

	return func() tea.Msg { return size }
}

func (m model) View() string {
	switch m.currentView {
	case ViewPool:
		s := "Bolão Admin\n\n" + m.poolForm.View()
		if m.status != "" {
			s += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status)
		}

		return lipgloss.NewStyle().Padding(2).Render(s)
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			fmt.Sprintf("Bolão Admin: %s (quota %s)\n\n", m.pool.Name, view.FormatAmount(m.pool.QuotaValue)) +
				"1. Import Statement\n" +
				"2. Review Pending Transactions\n" +
				"3. List Imported Transactions\n\n" +
				"p. Change Pool\n" +
				"q. Quit",
		)
	case ViewImport:
		return m.importView.View()
	case ViewReview:
		return m.reviewView.View()
	case ViewList:
		return m.listView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
