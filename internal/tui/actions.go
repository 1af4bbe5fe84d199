package tui

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// copyFinding copies the selected finding's details to the system clipboard.
func (m *Model) copyFinding() tea.Cmd {
	f := m.currentFinding()
	if f == nil {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Severity: %s\n", f.Severity))
	sb.WriteString(fmt.Sprintf("Category: %s\n", f.Category))
	sb.WriteString(fmt.Sprintf("Location: %s:%d\n", f.File, f.Line))
	sb.WriteString(fmt.Sprintf("Message:  %s\n", f.Message))
	sb.WriteString(fmt.Sprintf("Snippet:  %s\n", f.Snippet))
	if err := clipboard.WriteAll(sb.String()); err != nil {
		return func() tea.Msg { return statusMsg(fmt.Sprintf("Clipboard error: %v", err)) }
	}
	return func() tea.Msg { return statusMsg("Copied finding details to clipboard") }
}

// openInEditor opens the selected finding at its line in $EDITOR.
func (m *Model) openInEditor() tea.Cmd {
	f := m.currentFinding()
	if f == nil {
		return nil
	}
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	path := filepath.Join(m.root, f.File)

	var cmd *exec.Cmd
	switch filepath.Base(editor) {
	case "code":
		cmd = exec.Command(editor, "--goto", fmt.Sprintf("%s:%d", path, f.Line))
	default:
		cmd = exec.Command(editor, fmt.Sprintf("+%d", f.Line), path)
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			return statusMsg(fmt.Sprintf("Editor error: %v", err))
		}
		return statusMsg("Editor closed")
	})
}
