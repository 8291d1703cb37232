// # internal/symtab/parse.go
package symtab

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Symbol is one row of an objdump symbol table.
type Symbol struct {
	Address uint64
	Flags   string
	Type    string
	Section string
	Size    uint64
	SizeStr string
	Name    string
	Line    int
}

const (
	tableMarker = "SYMBOL TABLE:"
	endMarker   = "Disassembly of section .text:"
)

// ReadTableBlock extracts the symbol-table lines from disassembly
// output: everything after "SYMBOL TABLE:" up to (not including) the
// first .text disassembly marker, blank lines dropped. A missing end
// marker reads to EOF with a warning; a missing start marker is an
// error.
func ReadTableBlock(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inTable := false
	sawEnd := false
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if !inTable {
			if line == tableMarker {
				inTable = true
			}
			continue
		}
		if strings.HasPrefix(line, endMarker) {
			sawEnd = true
			break
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !inTable {
		return nil, fmt.Errorf("no %q marker found", tableMarker)
	}
	if !sawEnd {
		slog.Warn("end marker not found, read to end of file", "marker", endMarker)
	}
	return lines, nil
}

// ReadTableFile extracts the symbol-table block from a file on disk.
func ReadTableFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTableBlock(f)
}

// ParseSymbols parses table rows. Row grammar, fields separated by runs
// of spaces or tabs:
//
//	6+ fields: address flags type section size name...
//	5 fields:  address flags section size name   (no type column)
//
// address is exactly 16 hex digits; size is hex or the *ABS* sentinel
// (taken as zero). Rows that do not match are skipped with a warning --
// malformed input degrades to fewer symbols, never to an error.
func ParseSymbols(lines []string) []Symbol {
	symbols := make([]Symbol, 0, len(lines))

	for i, line := range lines {
		sym, ok := parseRow(line)
		if !ok {
			slog.Warn("skipping unparsable symbol row", "line", i+1, "text", truncate(line, 60))
			continue
		}
		sym.Line = i + 1
		symbols = append(symbols, sym)
	}

	return symbols
}

func parseRow(line string) (Symbol, bool) {
	parts := strings.Fields(line)
	if len(parts) < 5 {
		return Symbol{}, false
	}

	addr, ok := parseHex16(parts[0])
	if !ok {
		return Symbol{}, false
	}

	sym := Symbol{Address: addr, Flags: parts[1]}
	if len(parts) == 5 {
		sym.Section = parts[2]
		sym.SizeStr = parts[3]
		sym.Name = parts[4]
	} else {
		sym.Type = parts[2]
		sym.Section = parts[3]
		sym.SizeStr = parts[4]
		sym.Name = strings.Join(parts[5:], " ")
	}

	if sym.SizeStr != "*ABS*" {
		if size, err := strconv.ParseUint(sym.SizeStr, 16, 64); err == nil {
			sym.Size = size
		}
	}

	return sym, true
}

// parseHex16 accepts exactly 16 hexadecimal digits.
func parseHex16(s string) (uint64, bool) {
	if len(s) != 16 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
