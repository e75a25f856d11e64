package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultTableHeight = 20
	maxColumnWidth     = 40
	minColumnWidth     = 4
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

type model struct {
	tableName string
	table     table.Model
	rowCount  int
}

// newModel builds the table model from a header-plus-data result set.
func newModel(tableName string, rows [][]string) *model {
	header := rows[0]
	data := rows[1:]

	columns := make([]table.Column, len(header))
	for i, name := range header {
		columns[i] = table.Column{Title: name, Width: columnWidth(rows, i)}
	}

	tableRows := make([]table.Row, len(data))
	for i, row := range data {
		tableRows[i] = table.Row(row)
	}

	height := defaultTableHeight
	if len(tableRows) < height {
		height = len(tableRows) + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237")).
		Bold(false)
	t.SetStyles(styles)

	return &model{
		tableName: tableName,
		table:     t,
		rowCount:  len(data),
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		height := msg.Height - 6
		if height > 0 && height < m.table.Height() {
			m.table.SetHeight(height)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	title := titleStyle.Render(fmt.Sprintf("%s (%d rows)", m.tableName, m.rowCount))
	help := helpStyle.Render("Up/Down navigate | q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, baseStyle.Render(m.table.View()), help)
}

// columnWidth sizes a column to its widest value, clamped to keep wide
// text columns from eating the whole terminal.
func columnWidth(rows [][]string, col int) int {
	width := minColumnWidth
	for _, row := range rows {
		if col < len(row) && len(row[col]) > width {
			width = len(row[col])
		}
	}
	if width > maxColumnWidth {
		width = maxColumnWidth
	}
	return width
}
