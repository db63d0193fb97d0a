package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommonModel tracks the terminal size shared by every view.
type CommonModel struct {
	Width  int
	Height int
}

func (c *CommonModel) Resize(msg tea.WindowSizeMsg) {
	c.Width = msg.Width
	c.Height = msg.Height
}

// bodyHeight is the room left after reserved lines, or def before the first
// resize.
func (c CommonModel) bodyHeight(reserved, def int) int {
	if c.Height == 0 {
		return def
	}

	return max(c.Height-reserved, 3)
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
