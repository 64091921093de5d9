package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/anonymousfse26/orbis/internal/model"
)

// iterationDelegate renders one iteration record per line.
type iterationDelegate struct {
	offset int
}

func (d iterationDelegate) Height() int  { return 1 }
func (d iterationDelegate) Spacing() int { return 0 }
func (d iterationDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d iterationDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(iterationItem)
	if !ok {
		return
	}

	record := it.record
	isSelected := index == m.Index()
	// iter (6) + status (10) + new (7) + total (7) + spacing (8)
	keyWidth := m.Width() - 38

	iterStyle, statusStyle, countStyle, keyStyle := d.styles(record, isSelected)

	var key string
	if isSelected {
		key = animateScroll(displayKey(record.Combination), keyWidth, d.offset)
	} else {
		key = truncateToWidth(displayKey(record.Combination), keyWidth)
	}

	line := fmt.Sprintf("%s  %s  %s  %s  %s",
		iterStyle.Render(fmt.Sprintf("%d", record.Iteration)),
		statusStyle.Render(string(record.EngineStatus)),
		countStyle.Render(fmt.Sprintf("+%d", record.NewlyCovered)),
		countStyle.Render(fmt.Sprintf("%d", record.TotalCoverage)),
		keyStyle.Render(key),
	)
	_, _ = fmt.Fprint(w, line)
}

func (d iterationDelegate) styles(record m.IterationRecord, isSelected bool) (lipgloss.Style, lipgloss.Style, lipgloss.Style, lipgloss.Style) {
	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		return selected.Width(6), selected.Width(10), selected.Width(7).Align(lipgloss.Right), selected
	}

	statusColorMap := map[m.ProcessStatus]lipgloss.Color{
		m.StatusOK:       lipgloss.Color("2"), // Green
		m.StatusTimedOut: lipgloss.Color("3"), // Yellow
		m.StatusFailed:   lipgloss.Color("1"), // Red
	}

	statusColor, ok := statusColorMap[record.EngineStatus]
	if !ok {
		statusColor = lipgloss.Color("8")
	}

	countColor := lipgloss.Color("11")
	if record.NewlyCovered == 0 {
		countColor = lipgloss.Color("8")
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(6),
		lipgloss.NewStyle().Foreground(statusColor).Bold(true).Width(10),
		lipgloss.NewStyle().Foreground(countColor).Width(7).Align(lipgloss.Right),
		lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
}

// sessionModel handles the TUI display of a testing session, live or
// replayed from stored records.
type sessionModel struct {
	width           int
	height          int
	progressBar     progress.Model
	info            m.SessionInfo
	current         iterationStartMsg
	running         bool
	elapsed         time.Duration
	totalCoverage   int
	bugs            int
	progressPercent float64
	rendered        bool
	finished        bool
	summary         *m.Summary
	records         []m.IterationRecord
	resultsList     list.Model
	delegate        iterationDelegate
	animOffset      int
	lastSelected    int
	showDetail      bool
}

func newSessionModel() sessionModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := iterationDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter iterations…"

	return sessionModel{
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m sessionModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resultsList.SetWidth(m.width - 4)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tickMsg:
		return m.handleTickMsg()

	case sessionInfoMsg:
		m.info = msg.info
		m.rendered = true

	case iterationStartMsg:
		m.current = msg
		m.running = true
		m.rendered = true

	case iterationResultMsg:
		m = m.addRecord(msg.record)
		m.running = false

	case summaryMsg:
		summary := msg.summary
		m.summary = &summary
		m.elapsed = summary.Elapsed
		m.totalCoverage = len(summary.Coverage)
		m.bugs = len(summary.Bugs)
		m.finished = true
		m.running = false
		m.rendered = true

	case recordsMsg:
		for _, record := range msg.records {
			m = m.addRecord(record)
		}

		m.finished = true
		m.rendered = true
	}

	return m, cmd
}

func (m sessionModel) addRecord(record m.IterationRecord) sessionModel {
	m.records = append(m.records, record)
	m.elapsed = record.Elapsed
	m.totalCoverage = record.TotalCoverage
	m.bugs += len(record.Bugs)

	items := make([]list.Item, 0, len(m.records))
	// newest first while running
	for i := len(m.records) - 1; i >= 0; i-- {
		items = append(items, iterationItem{record: m.records[i]})
	}

	m.resultsList.SetItems(items)

	if m.info.TotalBudget > 0 {
		m.progressPercent = float64(m.elapsed) / float64(m.info.TotalBudget)
		if m.progressPercent > 1 {
			m.progressPercent = 1
		}
	}

	m.rendered = true

	return m
}

func (m sessionModel) handleKeyMsg(msg tea.KeyMsg) (sessionModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	default:
		if !m.finished {
			return m, nil
		}

		if msg.String() == "enter" || msg.String() == " " {
			m.showDetail = !m.showDetail
			return m, nil
		}

		var newList list.Model

		newList, cmd = m.resultsList.Update(msg)
		m.resultsList = newList

		// Detect selection change to reset animation
		if m.resultsList.Index() != m.lastSelected {
			m.lastSelected = m.resultsList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.resultsList.SetDelegate(m.delegate)
		}
	}

	return m, cmd
}

func (m sessionModel) handleTickMsg() (sessionModel, tea.Cmd) {
	if m.resultsList.FilterState() != list.Filtering {
		m.animOffset++
		m.delegate.offset = m.animOffset
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m sessionModel) View() string {
	if !m.rendered {
		return "Starting session…\n"
	}

	if m.finished {
		return m.viewResults()
	}

	return m.viewProgress()
}

var (
	accentColor = lipgloss.Color("6") // Cyan

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(accentColor)
)

func (m sessionModel) viewProgress() string {
	title := titleStyle.Render("Orbis Testing Session: " + m.info.Program)

	summary := summaryStyle.Render(fmt.Sprintf(
		"Elapsed: %s / %s  •  Iterations: %s  •  Coverage: %s  •  Bugs: %s",
		accentStyle.Render(formatSeconds(m.elapsed)),
		accentStyle.Render(formatSeconds(m.info.TotalBudget)),
		accentStyle.Render(fmt.Sprintf("%d", len(m.records))),
		accentStyle.Render(fmt.Sprintf("%d", m.totalCoverage)),
		accentStyle.Render(fmt.Sprintf("%d", m.bugs)),
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.progressPercent))

	currentBox := m.renderCurrentBox()

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		currentBox,
		m.renderResultsBox(5),
		footer,
	)
}

func (m sessionModel) renderCurrentBox() string {
	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(1, 1, 0, 0)

	if m.width > 4 {
		contentStyle = contentStyle.Width(m.width - 4)
	}

	if !m.running {
		return contentStyle.Render("idle")
	}

	available := m.width - 4 - 2 - 2
	if available < 20 {
		available = 20
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	lines := []string{
		fmt.Sprintf("%s %d  %s %s",
			labelStyle.Render("Iteration"), m.current.iteration,
			labelStyle.Render("Budget"), formatSeconds(m.current.budget)),
		labelStyle.Render("Options ") + fileStyle.Render(truncateToWidth(displayKey(m.current.key), available-8)),
		labelStyle.Render("Args    ") + fileStyle.Render(truncateToWidth(displayArgs(m.current.args), available-8)),
	}

	return contentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m sessionModel) viewResults() string {
	heading := "Orbis Session Results"
	if m.info.Program != "" {
		heading += ": " + m.info.Program
	} else if m.summary != nil && m.summary.Program != "" {
		heading += ": " + m.summary.Program
	}

	title := titleStyle.Render(heading)

	iterations := len(m.records)
	if m.summary != nil {
		iterations = m.summary.Iterations
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Iterations: %s  •  Elapsed: %s  •  Coverage: %s  •  Bugs: %s",
		accentStyle.Render(fmt.Sprintf("%d", iterations)),
		accentStyle.Render(formatSeconds(m.elapsed)),
		accentStyle.Render(fmt.Sprintf("%d", m.totalCoverage)),
		accentStyle.Render(fmt.Sprintf("%d", m.bugs)),
	))

	listHeight := m.height - 9 - m.detailBoxHeight()
	if listHeight < 5 {
		listHeight = 5
	}

	parts := []string{title, summary, m.renderResultsBox(listHeight)}

	if detail := m.renderDetailBox(); detail != "" {
		parts = append(parts, detail)
	}

	parts = append(parts, lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • g/G top/bottom • / filter • enter details • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m sessionModel) renderResultsBox(listHeight int) string {
	listWidth := m.width - 4
	if listWidth < 40 {
		listWidth = 40
	}

	m.resultsList.SetHeight(listHeight)
	m.resultsList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-6s  %-10s  %7s  %7s  %s", "Iter", "Status", "New", "Total", "Options"))

	resultsStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1)

	return resultsStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.resultsList.View(),
		),
	)
}

func (m sessionModel) selectedRecord() (record m.IterationRecord, ok bool) {
	it, isItem := m.resultsList.SelectedItem().(iterationItem)
	if !isItem {
		return record, false
	}

	return it.record, true
}

func (m sessionModel) detailLines() []string {
	if !m.showDetail {
		return nil
	}

	record, ok := m.selectedRecord()
	if !ok {
		return nil
	}

	lines := []string{
		fmt.Sprintf("Arguments: %s", displayArgs(record.Arguments)),
		fmt.Sprintf("Budget: %s  Runtime: %s  Inputs: %d  Covered: %d",
			formatSeconds(record.Budget), formatSeconds(record.Runtime), record.TestInputs, record.Covered),
	}

	if len(record.Seeds) > 0 {
		seeds := make([]string, 0, len(record.Seeds))
		for _, seed := range record.Seeds {
			seeds = append(seeds, string(seed))
		}

		lines = append(lines, "Seeds: "+strings.Join(seeds, " "))
	}

	for _, bug := range record.Bugs {
		lines = append(lines, fmt.Sprintf("Bug: %s %s", bug.Test, bug.Kind))
	}

	return lines
}

func (m sessionModel) detailBoxHeight() int {
	lines := m.detailLines()
	if len(lines) == 0 {
		return 0
	}

	// border
	return len(lines) + 2
}

func (m sessionModel) renderDetailBox() string {
	lines := m.detailLines()
	if len(lines) == 0 {
		return ""
	}

	width := m.width - 8
	if width < 20 {
		width = 20
	}

	for i, line := range lines {
		lines[i] = truncateToWidth(line, width)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
