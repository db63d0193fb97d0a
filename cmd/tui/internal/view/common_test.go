package view

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestViews_WindowSize(t *testing.T) {
	size := tea.WindowSizeMsg{Width: 120, Height: 40}

	type testCase struct {
		name   string
		model  tea.Model
		common func(m tea.Model) CommonModel
	}

	tests := []testCase{
		{
			name:   "List",
			model:  NewListModel(nil, uuid.New()),
			common: func(m tea.Model) CommonModel { return m.(ListModel).CommonModel },
		},
		{
			name:   "Import",
			model:  NewImportModel(nil, uuid.New()),
			common: func(m tea.Model) CommonModel { return m.(ImportModel).CommonModel },
		},
		{
			name:   "Review",
			model:  NewReviewModel(nil, uuid.New()),
			common: func(m tea.Model) CommonModel { return m.(ReviewModel).CommonModel },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cmd := tt.model.Update(size)
			assert.Nil(t, cmd)

			assert.Equal(t, CommonModel{Width: 120, Height: 40}, tt.common(got))
		})
	}
}

func TestReviewModel_ViewUsesWidth(t *testing.T) {
	m := NewReviewModel(nil, uuid.New())
	m.loading = false
	m.status = "All done! 0 approved, 0 ignored."

	got, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	for line := range strings.Lines(got.View()) {
		assert.Equal(t, 60, lipgloss.Width(strings.TrimRight(line, "\n")))
	}
}

func TestCommonModel_BodyHeight(t *testing.T) {
	var c CommonModel
	assert.Equal(t, 15, c.bodyHeight(10, 15))

	c.Resize(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 14, c.bodyHeight(10, 15))

	c.Resize(tea.WindowSizeMsg{Width: 80, Height: 5})
	assert.Equal(t, 3, c.bodyHeight(10, 15))
}
