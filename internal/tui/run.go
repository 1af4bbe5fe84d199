package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sigscan/sigscan/internal/types"
)

// Run starts the interactive findings browser.
func Run(root string, findings []types.Finding, rescanFunc func() ([]types.Finding, error)) error {
	m := NewModel(root, findings, rescanFunc)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
