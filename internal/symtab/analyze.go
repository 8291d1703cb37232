// # internal/symtab/analyze.go
package symtab

import (
	"fmt"
	"sort"
	"strings"
)

// FilterBySection keeps symbols whose section contains the substring.
func FilterBySection(symbols []Symbol, section string) []Symbol {
	var out []Symbol
	for _, s := range symbols {
		if strings.Contains(s.Section, section) {
			out = append(out, s)
		}
	}
	return out
}

// FilterByFlags keeps symbols whose flags contain the given flag
// character (l local, g global, F function, O object, d debug).
func FilterByFlags(symbols []Symbol, flag string) []Symbol {
	var out []Symbol
	for _, s := range symbols {
		if strings.Contains(s.Flags, flag) {
			out = append(out, s)
		}
	}
	return out
}

// Search keeps symbols whose name contains the pattern, case folded.
func Search(symbols []Symbol, pattern string) []Symbol {
	needle := strings.ToLower(pattern)
	var out []Symbol
	for _, s := range symbols {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			out = append(out, s)
		}
	}
	return out
}

// SortKeys accepted by SortBy.
var SortKeys = []string{"address", "name", "size", "flags", "type"}

// SortBy returns a sorted copy; unknown keys sort by address. Size
// sorts largest first, everything else ascending.
func SortBy(symbols []Symbol, key string) []Symbol {
	out := append([]Symbol(nil), symbols...)
	switch key {
	case "name":
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case "size":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Size > out[j].Size })
	case "flags":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Flags < out[j].Flags })
	case "type":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	}
	return out
}

// SectionInfo summarizes the address span of one section.
type SectionInfo struct {
	Name    string
	Count   int
	MinAddr uint64
	MaxAddr uint64
	SizeSum uint64 // sum of symbol sizes
}

// ActualSize is the address span, or the symbol size sum when every
// symbol sits at one address.
func (s SectionInfo) ActualSize() uint64 {
	if s.MinAddr == s.MaxAddr {
		return s.SizeSum
	}
	return s.MaxAddr - s.MinAddr
}

// AnalyzeSections computes the per-section layout, largest span first.
func AnalyzeSections(symbols []Symbol) []SectionInfo {
	bySection := make(map[string]*SectionInfo)
	for _, sym := range symbols {
		info, ok := bySection[sym.Section]
		if !ok {
			info = &SectionInfo{
				Name:    sym.Section,
				MinAddr: sym.Address,
				MaxAddr: sym.Address,
			}
			bySection[sym.Section] = info
		}
		if sym.Address < info.MinAddr {
			info.MinAddr = sym.Address
		}
		if sym.Address > info.MaxAddr {
			info.MaxAddr = sym.Address
		}
		info.Count++
		info.SizeSum += sym.Size
	}

	out := make([]SectionInfo, 0, len(bySection))
	for _, info := range bySection {
		out = append(out, *info)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ActualSize() != out[j].ActualSize() {
			return out[i].ActualSize() > out[j].ActualSize()
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Sections lists the distinct section names, sorted.
func Sections(symbols []Symbol) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range symbols {
		if !seen[s.Section] {
			seen[s.Section] = true
			out = append(out, s.Section)
		}
	}
	sort.Strings(out)
	return out
}

// HumanSize renders a byte count the way the reports print it.
func HumanSize(n uint64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
