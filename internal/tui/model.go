package tui

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sigscan/sigscan/internal/types"
)

var (
	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	detailBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	markerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	sevCritStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	sevHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	sevMedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	sevLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// severityText returns plain text for severity (ANSI codes break table truncation).
func severityText(s types.Severity) string {
	switch s {
	case types.SevCritical:
		return "CRIT"
	case types.SevHigh:
		return "HIGH"
	case types.SevMedium:
		return "MED"
	case types.SevLow:
		return "LOW"
	default:
		return string(s)
	}
}

// Model holds the state of the findings browser.
type Model struct {
	table    table.Model
	viewport viewport.Model
	spinner  spinner.Model

	root             string
	findings         []types.Finding
	filteredFindings []types.Finding // nil = no filter active
	rescanFunc       func() ([]types.Finding, error)

	searchMode     bool
	searchInput    textinput.Model
	searchQuery    string
	severityFilter types.Severity

	ready         bool
	scanning      bool
	quitting      bool
	width         int
	height        int
	statusMessage string
	contextLines  int
}

// NewModel initializes the browser with a finding list and a rescan callback.
func NewModel(root string, findings []types.Finding, rescanFunc func() ([]types.Finding, error)) Model {
	columns := []table.Column{
		{Title: "Sev", Width: 6},
		{Title: "Category", Width: 24},
		{Title: "Location", Width: 34},
		{Title: "Snippet", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(findingRows(findings)),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("15")).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Left)
	s.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("208")).
		Bold(true).
		Padding(0, 1)
	s.Cell = lipgloss.NewStyle().Padding(0, 1)
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	ti := textinput.New()
	ti.Placeholder = "Search file, category, or snippet..."
	ti.CharLimit = 100
	ti.Width = 50
	ti.Prompt = "/ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	return Model{
		table:         t,
		spinner:       sp,
		root:          root,
		findings:      findings,
		rescanFunc:    rescanFunc,
		searchInput:   ti,
		contextLines:  3,
		statusMessage: "q: quit | j/k: navigate | /: search | c/h/m/l: severity | r: rescan | y: copy | o: open",
	}
}

func findingRows(findings []types.Finding) []table.Row {
	rows := make([]table.Row, len(findings))
	for i, f := range findings {
		rows[i] = table.Row{
			severityText(f.Severity),
			f.Category,
			fmt.Sprintf("%s:%d", f.File, f.Line),
			f.Snippet,
		}
	}
	return rows
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

type findingsMsg []types.Finding
type statusMsg string

func (m *Model) rescan() tea.Cmd {
	return func() tea.Msg {
		if m.rescanFunc == nil {
			return statusMsg("Rescan not available")
		}
		fresh, err := m.rescanFunc()
		if err != nil {
			return statusMsg(fmt.Sprintf("Scan error: %v", err))
		}
		return findingsMsg(fresh)
	}
}

func (m *Model) applyFilters() {
	hasSearch := m.searchQuery != ""
	hasSeverity := m.severityFilter != ""
	if !hasSearch && !hasSeverity {
		m.filteredFindings = nil
		m.rebuildRows()
		return
	}

	var filtered []types.Finding
	query := strings.ToLower(m.searchQuery)
	for _, f := range m.findings {
		if hasSeverity && f.Severity != m.severityFilter {
			continue
		}
		if hasSearch {
			if !strings.Contains(strings.ToLower(f.File), query) &&
				!strings.Contains(strings.ToLower(f.Category), query) &&
				!strings.Contains(strings.ToLower(f.Snippet), query) {
				continue
			}
		}
		filtered = append(filtered, f)
	}
	m.filteredFindings = filtered
	m.rebuildRows()
}

func (m *Model) clearFilters() {
	m.searchQuery = ""
	m.severityFilter = ""
	m.filteredFindings = nil
	m.rebuildRows()
}

func (m *Model) rebuildRows() {
	findings := m.displayFindings()
	m.table.SetRows(findingRows(findings))
	if m.table.Cursor() >= len(findings) {
		m.table.SetCursor(0)
	}
	m.updateDetail()
}

func (m *Model) displayFindings() []types.Finding {
	if m.filteredFindings != nil {
		return m.filteredFindings
	}
	return m.findings
}

func (m *Model) currentFinding() *types.Finding {
	findings := m.displayFindings()
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(findings) {
		return nil
	}
	return &findings[idx]
}

func (m *Model) toggleSeverityFilter(s types.Severity) {
	if m.severityFilter == s {
		m.severityFilter = ""
	} else {
		m.severityFilter = s
	}
	m.applyFilters()
}

func severityStyled(s types.Severity) string {
	switch s {
	case types.SevCritical:
		return sevCritStyle.Render(strings.ToUpper(string(s)))
	case types.SevHigh:
		return sevHighStyle.Render(strings.ToUpper(string(s)))
	case types.SevMedium:
		return sevMedStyle.Render(strings.ToUpper(string(s)))
	default:
		return sevLowStyle.Render(strings.ToUpper(string(s)))
	}
}

// updateDetail renders the detail pane for the selected finding: metadata
// plus a few context lines around the offending line, syntax highlighted.
func (m *Model) updateDetail() {
	f := m.currentFinding()
	if f == nil {
		m.viewport.SetContent("No finding selected")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s  %s\n", severityStyled(f.Severity), keyStyle.Render(f.Category)))
	sb.WriteString(fmt.Sprintf("%s:%d\n", f.File, f.Line))
	sb.WriteString(f.Message + "\n\n")

	lines, start, err := readFileContext(filepath.Join(m.root, f.File), f.Line, m.contextLines)
	if err != nil {
		sb.WriteString(f.Snippet + "\n")
	} else {
		for i, line := range lines {
			n := start + i
			marker := "  "
			rendered := highlightLine(line, f.File)
			if n == f.Line {
				marker = markerStyle.Render("> ")
			}
			sb.WriteString(fmt.Sprintf("%s%4d  %s\n", marker, n, rendered))
		}
	}
	m.viewport.SetContent(sb.String())
	m.viewport.GotoTop()
}

// readFileContext returns lines around targetLine (1-based) and the number
// of the first returned line.
func readFileContext(path string, targetLine, contextLines int) ([]string, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	var all []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 4<<20)
	for sc.Scan() {
		all = append(all, sc.Text())
	}
	start := targetLine - contextLines
	if start < 1 {
		start = 1
	}
	end := targetLine + contextLines
	if end > len(all) {
		end = len(all)
	}
	if start > len(all) {
		return nil, 0, fmt.Errorf("line %d outside file", targetLine)
	}
	return all[start-1 : end], start, nil
}

func highlightLine(line, filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return line
	}
	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return line
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		tableHeight := m.height/2 - 4
		if tableHeight < 5 {
			tableHeight = 5
		}
		m.table.SetHeight(tableHeight)
		if !m.ready {
			m.viewport = viewport.New(m.width-4, m.height-tableHeight-6)
			m.ready = true
			m.updateDetail()
		} else {
			m.viewport.Width = m.width - 4
			m.viewport.Height = m.height - tableHeight - 6
		}
		return m, nil

	case spinner.TickMsg:
		if m.scanning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case findingsMsg:
		m.scanning = false
		m.findings = msg
		m.applyFilters()
		m.statusMessage = fmt.Sprintf("Rescan complete: %d findings", len(msg))
		return m, nil

	case statusMsg:
		m.statusMessage = string(msg)
		return m, nil

	case tea.KeyMsg:
		if m.searchMode {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.searchQuery = m.searchInput.Value()
		m.searchInput.Blur()
		m.applyFilters()
		return m, nil
	case "esc":
		m.searchMode = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "/":
		m.searchMode = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "esc":
		m.clearFilters()
		return m, nil
	case "c":
		m.toggleSeverityFilter(types.SevCritical)
		return m, nil
	case "h":
		m.toggleSeverityFilter(types.SevHigh)
		return m, nil
	case "m":
		m.toggleSeverityFilter(types.SevMedium)
		return m, nil
	case "l":
		m.toggleSeverityFilter(types.SevLow)
		return m, nil
	case "r":
		if !m.scanning {
			m.scanning = true
			m.statusMessage = "Rescanning..."
			return m, tea.Batch(m.spinner.Tick, m.rescan())
		}
		return m, nil
	case "y":
		return m, m.copyFinding()
	case "o":
		return m, m.openInEditor()
	case "+":
		if m.contextLines < 15 {
			m.contextLines++
			m.updateDetail()
		}
		return m, nil
	case "-":
		if m.contextLines > 0 {
			m.contextLines--
			m.updateDetail()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	m.updateDetail()
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	title := titleStyle.Render(fmt.Sprintf("sigscan: %d findings", len(m.displayFindings())))
	if m.severityFilter != "" {
		title += titleStyle.Render(fmt.Sprintf("[%s only]", m.severityFilter))
	}
	if m.scanning {
		title += " " + m.spinner.View()
	}

	var search string
	if m.searchMode {
		search = "\n" + m.searchInput.View()
	} else if m.searchQuery != "" {
		search = "\n" + keyStyle.Render("filter: "+m.searchQuery)
	}

	body := tableBorderStyle.Render(m.table.View()) + "\n" +
		detailBorderStyle.Render(m.viewport.View())

	status := statusStyle.Width(m.width).Render(" " + m.statusMessage)
	return fmt.Sprintf("%s%s\n%s\n%s", title, search, body, status)
}
