// # internal/symtab/analyze_test.go
package symtab

import (
	"testing"
)

func testSymbols() []Symbol {
	return []Symbol{
		{Address: 0x40080000, Flags: "l", Type: "d", Section: ".text", Name: ".text"},
		{Address: 0x40080360, Flags: "g", Type: "F", Section: ".text", Size: 0xa4, Name: "kernel_main"},
		{Address: 0x40080148, Flags: "l", Section: ".text", Name: "from_el3_to_el1"},
		{Address: 0x40090010, Flags: "g", Type: "O", Section: ".data", Size: 0x40, Name: "boot_params"},
		{Address: 0x400a0000, Flags: "g", Type: "O", Section: ".bss", Size: 0x1000, Name: "page_pool"},
	}
}

func TestFilterBySection(t *testing.T) {
	text := FilterBySection(testSymbols(), ".text")
	if len(text) != 3 {
		t.Errorf("expected 3 .text symbols, got %d", len(text))
	}
	if got := FilterBySection(testSymbols(), ".rodata"); got != nil {
		t.Errorf("expected no .rodata symbols, got %v", got)
	}
}

func TestFilterByFlags(t *testing.T) {
	global := FilterByFlags(testSymbols(), "g")
	if len(global) != 3 {
		t.Errorf("expected 3 global symbols, got %d", len(global))
	}
}

func TestSearch(t *testing.T) {
	hits := Search(testSymbols(), "KERNEL")
	if len(hits) != 1 || hits[0].Name != "kernel_main" {
		t.Errorf("case-folded search failed: %v", hits)
	}
}

func TestSortBy(t *testing.T) {
	syms := testSymbols()

	byAddr := SortBy(syms, "address")
	for i := 1; i < len(byAddr); i++ {
		if byAddr[i-1].Address > byAddr[i].Address {
			t.Fatalf("addresses not ascending at %d", i)
		}
	}

	bySize := SortBy(syms, "size")
	if bySize[0].Name != "page_pool" {
		t.Errorf("size sort must be largest first, got %q", bySize[0].Name)
	}

	byName := SortBy(syms, "name")
	if byName[0].Name != ".text" {
		t.Errorf("name sort wrong, got %q first", byName[0].Name)
	}

	// Input must stay untouched.
	if syms[0].Name != ".text" || syms[4].Name != "page_pool" {
		t.Error("SortBy must not mutate its input")
	}
}

func TestAnalyzeSections(t *testing.T) {
	infos := AnalyzeSections(testSymbols())
	if len(infos) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(infos))
	}

	// .text spans 0x40080000..0x40080360, the widest section.
	if infos[0].Name != ".text" {
		t.Fatalf("largest section first, got %q", infos[0].Name)
	}
	if infos[0].Count != 3 {
		t.Errorf(".text count = %d, want 3", infos[0].Count)
	}
	if got := infos[0].ActualSize(); got != 0x360 {
		t.Errorf(".text span = 0x%x, want 0x360", got)
	}

	// Single-address sections fall back to the size sum.
	for _, info := range infos {
		if info.Name == ".bss" && info.ActualSize() != 0x1000 {
			t.Errorf(".bss size = 0x%x, want 0x1000", info.ActualSize())
		}
	}
}

func TestSections(t *testing.T) {
	got := Sections(testSymbols())
	want := []string{".bss", ".data", ".text"}
	if len(got) != len(want) {
		t.Fatalf("sections = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sections[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHumanSize(t *testing.T) {
	cases := map[uint64]string{
		512:             "512 bytes",
		2048:            "2.0 KB",
		3 * 1024 * 1024: "3.0 MB",
	}
	for n, want := range cases {
		if got := HumanSize(n); got != want {
			t.Errorf("HumanSize(%d) = %q, want %q", n, got, want)
		}
	}
}
