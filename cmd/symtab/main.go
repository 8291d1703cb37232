// # cmd/symtab/main.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"depscan/internal/symtab"
)

var (
	filePath     = flag.String("file", "build/dis.txt", "Disassembly file containing the symbol table")
	section      = flag.String("section", "", "Show symbols for this section (substring match)")
	sortKey      = flag.String("sort", "address", "Sort key: "+strings.Join(symtab.SortKeys, ", "))
	listSections = flag.Bool("list-sections", false, "List available sections and exit")
	ui           = flag.Bool("ui", false, "Interactive symbol browser")
	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	valid := false
	for _, key := range symtab.SortKeys {
		if *sortKey == key {
			valid = true
			break
		}
	}
	if !valid {
		fmt.Fprintf(os.Stderr, "unknown sort key %q, expected one of: %s\n",
			*sortKey, strings.Join(symtab.SortKeys, ", "))
		os.Exit(1)
	}

	lines, err := symtab.ReadTableFile(*filePath)
	if err != nil {
		slog.Error("failed to read symbol table", "file", *filePath, "error", err)
		os.Exit(1)
	}

	symbols := symtab.ParseSymbols(lines)
	if len(symbols) == 0 {
		fmt.Println("No symbols found.")
		os.Exit(1)
	}

	switch {
	case *ui:
		if err := runUI(symbols); err != nil {
			slog.Error("ui failed", "error", err)
			os.Exit(1)
		}
	case *listSections:
		symtab.RenderSectionList(os.Stdout, symbols)
	case *section != "":
		symtab.RenderSymbols(os.Stdout, *section, *sortKey, symbols)
	default:
		symtab.RenderSectionAnalysis(os.Stdout, symbols)
	}
}
