package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/wayfinder/pkg/search"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// strategyInfo describes a strategy in the picker.
type strategyInfo struct {
	Strategy search.Strategy
	Order    string // frontier order
	Optimal  string // when the first plan found is cheapest
}

var strategyTable = []strategyInfo{
	{search.BreadthFirst, "FIFO", "unit step costs"},
	{search.DepthFirst, "LIFO", "never"},
	{search.UniformCost, "lowest g", "always"},
	{search.Greedy, "lowest h", "never"},
	{search.AStar, "lowest g+h", "admissible h"},
}

// =============================================================================
// StrategyListModel - Interactive strategy selection
// =============================================================================

// StrategyListModel is the bubbletea model for interactive strategy
// selection.
type StrategyListModel struct {
	Problem  string
	Cursor   int
	Selected *search.Strategy
}

// NewStrategyListModel creates a picker with the cursor on initial.
func NewStrategyListModel(problem string, initial search.Strategy) StrategyListModel {
	m := StrategyListModel{Problem: problem}
	for i, s := range strategyTable {
		if s.Strategy == initial {
			m.Cursor = i
		}
	}
	return m
}

func (m StrategyListModel) Init() tea.Cmd {
	return nil
}

func (m StrategyListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(strategyTable)-1 {
				m.Cursor++
			}
		case "enter":
			s := strategyTable[m.Cursor].Strategy
			m.Selected = &s
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m StrategyListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Strategy"))
	if m.Problem != "" {
		b.WriteString(listDimStyle.Render(" for " + m.Problem))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(strategyTable))
	for i, s := range strategyTable {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = []string{cursor, s.Strategy.String(), s.Order, s.Optimal}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Strategy", "Expands", "Optimal").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == m.Cursor:
				return listSelectedStyle
			case col >= 2:
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(strategyTable))))

	return b.String()
}

// pickStrategy runs the picker and returns the chosen strategy, or false
// when the user quit without choosing.
func pickStrategy(problem string, initial search.Strategy) (search.Strategy, bool, error) {
	final, err := tea.NewProgram(NewStrategyListModel(problem, initial)).Run()
	if err != nil {
		return 0, false, fmt.Errorf("strategy picker: %w", err)
	}
	m := final.(StrategyListModel)
	if m.Selected == nil {
		return 0, false, nil
	}
	return *m.Selected, true, nil
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
