package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

// Simple delegate for extracted option rows.
type optionDelegate struct {
	offset int
}

func (d optionDelegate) Height() int  { return 1 }
func (d optionDelegate) Spacing() int { return 0 }
func (d optionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d optionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	option, ok := item.(optionItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var nameStyle, shortStyle, countStyle lipgloss.Style

	// count (8) + short (4) + spacing (4)
	width := m.Width() - 16
	label := option.name

	if len(option.variables) > 0 {
		label += "  [" + strings.Join(option.variables, " ") + "]"
	}

	var displayName string

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = selected.Width(8).Align(lipgloss.Right)
		shortStyle = selected.Width(4)
		nameStyle = selected
		displayName = animateScroll(label, width, d.offset)
	} else {
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(8).
			Align(lipgloss.Right)
		shortStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(4)
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		displayName = truncateToWidth(label, width)
	}

	if option.branches == 0 {
		countStyle = countStyle.Foreground(lipgloss.Color("8")).Faint(true)
	}

	line := fmt.Sprintf("%s  %s  %s",
		countStyle.Render(fmt.Sprintf("%d", option.branches)),
		shortStyle.Render(option.short),
		nameStyle.Render(displayName),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// optionModel lists the options found by extraction.
type optionModel struct {
	width        int
	height       int
	optionList   list.Model
	delegate     optionDelegate
	program      string
	branches     int
	shortOnly    []string
	errText      string
	rendered     bool
	animOffset   int
	lastSelected int
}

func newOptionModel() optionModel {
	delegate := optionDelegate{}
	optionList := list.New([]list.Item{}, delegate, 80, 20)
	optionList.SetShowPagination(false)
	optionList.SetShowFilter(true)
	optionList.SetShowHelp(false)
	optionList.SetShowTitle(false)
	optionList.SetShowStatusBar(false)
	optionList.FilterInput.Placeholder = "Filter by option…"

	return optionModel{
		optionList:   optionList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m optionModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m optionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.optionList.SetWidth(m.width)

	case tickMsg:
		if m.optionList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.optionList.SetDelegate(m.delegate)

			return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			var newList list.Model

			newList, cmd = m.optionList.Update(msg)
			m.optionList = newList

			// Detect selection change to reset animation
			if m.optionList.Index() != m.lastSelected {
				m.lastSelected = m.optionList.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.optionList.SetDelegate(m.delegate)
			}

			return m, cmd
		}

	case extractionMsg:
		m = m.handleExtractionMsg(msg)

	case error:
		m.errText = msg.Error()
		m.rendered = true
	}

	return m, cmd
}

func (m optionModel) handleExtractionMsg(msg extractionMsg) optionModel {
	m.program = msg.program
	m.branches = msg.branches
	m.shortOnly = msg.shortOnly

	items := make([]list.Item, 0, len(msg.options))
	for _, option := range msg.options {
		items = append(items, option)
	}

	m.optionList.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m optionModel) View() string {
	if !m.rendered {
		return "Extracting options…\n"
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	title := titleStyle.Render("Orbis Option Extraction")

	if m.errText != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Padding(0, 0, 1, 2)

		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			errStyle.Render("extraction error: "+m.errText),
			footerStyle.Render("q quit"),
		)
	}

	summaryText := fmt.Sprintf(
		"Program: %s   Options: %s   Branches: %s",
		accentStyle.Render(m.program),
		accentStyle.Render(fmt.Sprintf("%d", len(m.optionList.Items()))),
		accentStyle.Render(fmt.Sprintf("%d", m.branches)),
	)
	if len(m.shortOnly) > 0 {
		summaryText += "   Short-only: " + accentStyle.Render(strings.Join(m.shortOnly, " "))
	}

	table := m.renderTable()

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summaryStyle.Render(summaryText),
		table,
		footer,
	)
}

func (m optionModel) renderTable() string {
	// Title (2) + summary (2) + footer (1) + border (2) + headers (2)
	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// Margin (2) + border (2) + padding (2)
	listWidth := m.width - 6

	m.optionList.SetHeight(listHeight)
	m.optionList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%8s  %-4s  %s", "Branches", "", "Option [variables]"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.optionList.View(),
		),
	)
}
