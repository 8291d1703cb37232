// # internal/symtab/render.go
package symtab

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Bold(true)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers(headers...)
}

// RenderSectionAnalysis prints the per-section layout table.
func RenderSectionAnalysis(w io.Writer, symbols []Symbol) {
	fmt.Fprintln(w, titleStyle.Render("Symbol Table Section Analysis"))
	fmt.Fprintf(w, "Total symbols: %d\n\n", len(symbols))

	tbl := newTable("Section", "Count", "Start Address", "End Address", "Size")
	for _, info := range AnalyzeSections(symbols) {
		tbl.Row(
			info.Name,
			fmt.Sprintf("%d", info.Count),
			fmt.Sprintf("0x%016x", info.MinAddr),
			fmt.Sprintf("0x%016x", info.MaxAddr),
			HumanSize(info.ActualSize()),
		)
	}
	fmt.Fprintln(w, tbl.Render())
}

// RenderSymbols prints the symbol listing for one section.
func RenderSymbols(w io.Writer, section, sortKey string, symbols []Symbol) {
	matched := FilterBySection(symbols, section)
	if len(matched) == 0 {
		fmt.Fprintf(w, "No symbols found in section %q\n", section)
		return
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Symbols in Section: %s", section)))
	fmt.Fprintf(w, "Found %d symbols, sorted by %s\n\n", len(matched), sortKey)

	tbl := newTable("Address", "Flags", "Type", "Size", "Symbol Name")
	for _, sym := range SortBy(matched, sortKey) {
		size := sym.SizeStr
		if sym.Size > 0 {
			size = HumanSize(sym.Size)
		}
		tbl.Row(
			fmt.Sprintf("0x%016x", sym.Address),
			sym.Flags,
			sym.Type,
			size,
			sym.Name,
		)
	}
	fmt.Fprintln(w, tbl.Render())
}

// RenderSectionList prints the available sections with symbol counts.
func RenderSectionList(w io.Writer, symbols []Symbol) {
	fmt.Fprintln(w, titleStyle.Render("Available sections"))
	for i, name := range Sections(symbols) {
		count := len(FilterBySection(symbols, name))
		fmt.Fprintf(w, "  %2d. %-20s (%d symbols)\n", i+1, name, count)
	}
}
