// # internal/discover/discover_test.go
package discover

import (
	"os"
	"path/filepath"
	"testing"

	"depscan/internal/config"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestScan_ExtensionsAndExclusions(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"main.c":          "",
		"boot/start.S":    "",
		"include/kernel.h": "",
		"clib/printf.c":   "",
		"notes.txt":       "",
		"mem/page.c":      "",
	})
	chdir(t, dir)

	d := config.Default().Discovery
	d.Roots = []string{"."}

	ix, err := Scan(d)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	for _, name := range []string{"main.c", "start.S", "kernel.h", "page.c"} {
		if _, ok := ix.Lookup(name); !ok {
			t.Errorf("expected %s to be discovered", name)
		}
	}
	if _, ok := ix.Lookup("printf.c"); ok {
		t.Error("clib contents must be pruned")
	}
	if _, ok := ix.Lookup("notes.txt"); ok {
		t.Error("non .c/.h/.S files must be skipped")
	}
}

func TestScan_AppSyscallStubExcluded(t *testing.T) {
	// Scenario: app/syscall.S is absent while sibling files remain.
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"app/syscall.S": "",
		"app/shell.c":   "",
		"app/start.S":   "",
	})
	chdir(t, dir)

	d := config.Default().Discovery
	d.Roots = []string{"."}

	ix, err := Scan(d)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if _, ok := ix.Lookup("syscall.S"); ok {
		t.Error("app/syscall.S must be excluded")
	}
	if _, ok := ix.Lookup("shell.c"); !ok {
		t.Error("app/shell.c must remain")
	}
	if _, ok := ix.Lookup("start.S"); !ok {
		t.Error("app/start.S must remain")
	}

	f, _ := ix.Lookup("shell.c")
	if f.Category != CategoryApplication {
		t.Errorf("expected application category, got %v", f.Category)
	}
}

func TestScan_GuestAllowList(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"guest/test_guest.S":      "",
		"guest/guest_manifests.c": "",
		"guest/guest_manifest.h":  "",
		"guest/other.c":           "",
		"guest/linux/boot.S":      "",
	})
	chdir(t, dir)

	d := config.Default().Discovery
	d.Roots = []string{"guest"}

	ix, err := Scan(d)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	for _, name := range []string{"test_guest.S", "guest_manifests.c", "guest_manifest.h"} {
		f, ok := ix.Lookup(name)
		if !ok {
			t.Errorf("expected allow-listed %s", name)
			continue
		}
		if f.Category != CategoryGuestPayload {
			t.Errorf("%s: expected guest-payload category", name)
		}
	}
	if _, ok := ix.Lookup("other.c"); ok {
		t.Error("guest/other.c matches the extension filter but is not allow-listed")
	}
	if _, ok := ix.Lookup("boot.S"); ok {
		t.Error("guest/linux subtree must be pruned")
	}
}

func TestScan_LastWriterWinsOnDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"mem/util.c": "",
		"lib/util.c": "",
	})
	chdir(t, dir)

	d := config.Default().Discovery
	d.Roots = []string{"mem", "lib"}

	ix, err := Scan(d)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	f, ok := ix.Lookup("util.c")
	if !ok {
		t.Fatal("expected util.c")
	}
	if f.Path != "lib/util.c" {
		t.Errorf("expected later root to win, got %s", f.Path)
	}
	if ix.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", ix.Len())
	}
}

func TestScan_MissingRootsIgnored(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"mem/page.c": ""})
	chdir(t, dir)

	d := config.Default().Discovery
	d.Roots = []string{"mem", "no-such-dir"}

	ix, err := Scan(d)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if ix.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", ix.Len())
	}
}

func TestIndex_FilesOrder(t *testing.T) {
	ix := NewIndex()
	ix.Add(&SourceFile{Path: "a/x.c", Name: "x.c", Kind: KindSource})
	ix.Add(&SourceFile{Path: "a/y.h", Name: "y.h", Kind: KindHeader})
	ix.Add(&SourceFile{Path: "b/x.c", Name: "x.c", Kind: KindSource})

	files := ix.Files()
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	// Overwrite keeps the original slot but swaps the path.
	if files[0].Path != "b/x.c" || files[1].Path != "a/y.h" {
		t.Errorf("unexpected order: %s, %s", files[0].Path, files[1].Path)
	}
}
