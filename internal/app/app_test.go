// # internal/app/app_test.go
package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"depscan/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTree(t *testing.T, files map[string]string) *App {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })

	cfg := config.Default()
	cfg.Discovery.Roots = []string{"."}
	return New(cfg)
}

func TestApp_EndToEnd(t *testing.T) {
	a := setupTree(t, map[string]string{
		"main.c":           "#include \"kernel.h\"\n#include \"uart.h\"\n#include \"sched.h\"\nint main(void) {}\n",
		"boot/start.S":     "#include \"kernel.h\"\n",
		"include/kernel.h": "#include \"uart.h\"\n",
		"include/uart.h":   "",
		"include/sched.h":  "#include \"uart.h\"\n",
		"clib/skipme.c":    "#include \"kernel.h\"\n",
	})

	require.NoError(t, a.Scan())

	var summary strings.Builder
	a.PrintSummary(&summary)
	out := summary.String()

	assert.Contains(t, out, "Source files: 2")
	assert.Contains(t, out, "Header files: 3")
	assert.Contains(t, out, "Dependencies: 6")
	assert.Contains(t, out, "Most dependencies: main.c (3 deps)")
	assert.Contains(t, out, "Most dependents: include/uart.h (3 dependents)")

	var cycles strings.Builder
	a.CheckCycles(&cycles)
	assert.Contains(t, cycles.String(), "No circular dependencies found.")

	var order strings.Builder
	a.PrintBuildOrder(&order)
	assert.Contains(t, order.String(), "Build order:")
	assert.Contains(t, order.String(), "  1. ")
	assert.Contains(t, order.String(), "include/uart.h")
}

func TestApp_CycleReport(t *testing.T) {
	a := setupTree(t, map[string]string{
		"a.h": "#include \"b.h\"\n",
		"b.h": "#include \"a.h\"\n",
	})

	require.NoError(t, a.Scan())

	var buf strings.Builder
	a.CheckCycles(&buf)
	out := buf.String()

	assert.Contains(t, out, "Circular dependency found: ")
	assert.Contains(t, out, " -> ")
	assert.Contains(t, out, "a.h")
	assert.Contains(t, out, "b.h")
}

func TestApp_EmptyDiscoveryIsFatal(t *testing.T) {
	a := setupTree(t, map[string]string{
		"README.md": "no sources here",
	})

	err := a.Scan()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSourceFiles)
}

func TestApp_WriteDOT(t *testing.T) {
	a := setupTree(t, map[string]string{
		"main.c":   "#include \"kernel.h\"\n",
		"kernel.h": "",
	})
	require.NoError(t, a.Scan())

	path := filepath.Join(t.TempDir(), "deps.dot")
	require.NoError(t, a.WriteDOT(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	dot := string(data)

	assert.Contains(t, dot, "digraph dependencies {")
	assert.Contains(t, dot, `"main.c" -> "kernel.h";`)
	assert.Equal(t, 1, strings.Count(dot, `"kernel.h" [label=`))
}

func TestApp_WriteDOT_BadPath(t *testing.T) {
	a := setupTree(t, map[string]string{"main.c": ""})
	require.NoError(t, a.Scan())

	err := a.WriteDOT(filepath.Join("no-such-dir", "deps.dot"))
	require.Error(t, err)
	// The graph is still intact; statistics remain printable.
	var buf strings.Builder
	a.PrintSummary(&buf)
	assert.Contains(t, buf.String(), "Source files: 1")
}

func TestApp_WriteTSV(t *testing.T) {
	a := setupTree(t, map[string]string{
		"main.c":   "#include \"kernel.h\"\n",
		"kernel.h": "",
	})
	require.NoError(t, a.Scan())

	path := filepath.Join(t.TempDir(), "deps.tsv")
	require.NoError(t, a.WriteTSV(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "main.c\tkernel.h")
}
