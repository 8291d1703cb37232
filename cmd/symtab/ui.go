// # cmd/symtab/ui.go
package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"depscan/internal/symtab"
)

var (
	titleStyle = lipgloss.NewStyle().
			MarginLeft(2).
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true).
			Render

	docStyle = lipgloss.NewStyle().Margin(1, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)

	tableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))
)

type model struct {
	table    table.Model
	symbols  []symtab.Symbol
	sections []string
	section  int
	sortKey  int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "right", "l":
			m.section = (m.section + 1) % len(m.sections)
			m.reload()
		case "shift+tab", "left", "h":
			m.section = (m.section - 1 + len(m.sections)) % len(m.sections)
			m.reload()
		case "s":
			m.sortKey = (m.sortKey + 1) % len(symtab.SortKeys)
			m.reload()
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.table.SetWidth(msg.Width - h)
		m.table.SetHeight(msg.Height - v - 4)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := statusStyle.Render(fmt.Sprintf(
		"Section: %s (%d/%d) | sorted by %s | tab: next section | s: change sort | q: quit",
		m.sections[m.section], m.section+1, len(m.sections), symtab.SortKeys[m.sortKey]))

	header := fmt.Sprintf("%s\n%s\n", titleStyle("Symbol Table Browser"), status)
	return docStyle.Render(header + "\n" + tableBorderStyle.Render(m.table.View()))
}

func (m *model) reload() {
	section := m.sections[m.section]
	matched := symtab.SortBy(symtab.FilterBySection(m.symbols, section), symtab.SortKeys[m.sortKey])

	rows := make([]table.Row, 0, len(matched))
	for _, sym := range matched {
		size := sym.SizeStr
		if sym.Size > 0 {
			size = symtab.HumanSize(sym.Size)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("0x%016x", sym.Address),
			sym.Flags,
			sym.Type,
			size,
			sym.Name,
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func initialModel(symbols []symtab.Symbol) model {
	columns := []table.Column{
		{Title: "Address", Width: 18},
		{Title: "Flags", Width: 7},
		{Title: "Type", Width: 5},
		{Title: "Size", Width: 12},
		{Title: "Symbol Name", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	m := model{
		table:    t,
		symbols:  symbols,
		sections: symtab.Sections(symbols),
	}
	m.reload()
	return m
}

func runUI(symbols []symtab.Symbol) error {
	if len(symbols) == 0 {
		return fmt.Errorf("no symbols to browse")
	}
	p := tea.NewProgram(initialModel(symbols), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
