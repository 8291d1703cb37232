// # internal/header/header.go
package header

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gobwas/glob"
)

// Result classifies the outcome of processing one file.
type Result int

const (
	ResultAdded Result = iota
	ResultWouldAdd
	ResultHasHeader
	ResultNoTemplate
	ResultBinary
)

// Summary aggregates one run over a tree.
type Summary struct {
	Processed int // headers added (or would be, in dry-run)
	HasHeader int
	Skipped   int
}

// Tool injects copyright headers into source files by extension.
type Tool struct {
	Project string
	Year    string
	DryRun  bool
	Force   bool

	excludeDirs  map[string]bool
	excludeFiles []glob.Glob
}

// Default directory exclusions: generated trees plus the vendored clib
// and guest payloads, which carry their own licenses.
var defaultExcludeDirs = []string{"build", ".git", "__pycache__", "clib", "guest"}

func NewTool(project string, dryRun, force bool, excludePatterns []string) (*Tool, error) {
	t := &Tool{
		Project:     project,
		Year:        "2024",
		DryRun:      dryRun,
		Force:       force,
		excludeDirs: make(map[string]bool),
	}
	for _, d := range defaultExcludeDirs {
		t.excludeDirs[d] = true
	}

	patterns := append([]string{
		"*.o", "*.bin", "*.img", "*.gz", "*.pyc", "*.so", "*.a", "*.lib", "*.dll",
	}, excludePatterns...)
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		t.excludeFiles = append(t.excludeFiles, g)
	}

	return t, nil
}

// hasHeader probes the first kilobyte for an existing copyright block.
func (t *Tool) hasHeader(content string) bool {
	probe := content
	if len(probe) > 1000 {
		probe = probe[:1000]
	}
	return strings.Contains(probe, "Copyright") && strings.Contains(probe, t.Project)
}

// ProcessFile stamps one file. Binary content and unknown extensions
// are skipped, existing headers are left alone unless Force is set.
func (t *Tool) ProcessFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ResultBinary, err
	}
	if !utf8.Valid(data) {
		slog.Debug("skipping binary file", "path", path)
		return ResultBinary, nil
	}
	content := string(data)

	if t.hasHeader(content) && !t.Force {
		return ResultHasHeader, nil
	}

	hdr, ok := renderHeader(t.Project, t.Year, path)
	if !ok {
		return ResultNoTemplate, nil
	}

	// A shebang must stay on line one; the header goes right after it.
	var updated string
	if strings.HasPrefix(content, "#!") {
		if nl := strings.IndexByte(content, '\n'); nl >= 0 {
			updated = content[:nl+1] + hdr + content[nl+1:]
		} else {
			updated = content + "\n" + hdr
		}
	} else {
		updated = hdr + content
	}

	if t.DryRun {
		return ResultWouldAdd, nil
	}

	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return ResultBinary, err
	}
	return ResultAdded, nil
}

// ProcessPath stamps a file or a whole tree, applying the directory and
// file exclusions, and returns the aggregate summary.
func (t *Tool) ProcessPath(root string) (Summary, error) {
	var sum Summary

	info, err := os.Stat(root)
	if err != nil {
		return sum, err
	}

	if !info.IsDir() {
		t.tally(&sum, root)
		return sum, nil
	}

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("skipping unreadable entry", "path", path, "error", err)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			if path != root && t.excludeDirs[entry.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if t.excluded(path) {
			sum.Skipped++
			return nil
		}

		t.tally(&sum, path)
		return nil
	})
	return sum, err
}

func (t *Tool) tally(sum *Summary, path string) {
	res, err := t.ProcessFile(path)
	if err != nil {
		slog.Warn("failed to process file", "path", path, "error", err)
		sum.Skipped++
		return
	}

	switch res {
	case ResultAdded:
		slog.Info("added header", "path", path)
		sum.Processed++
	case ResultWouldAdd:
		slog.Info("would add header", "path", path)
		sum.Processed++
	case ResultHasHeader:
		sum.HasHeader++
	case ResultNoTemplate, ResultBinary:
		sum.Skipped++
	}
}

func (t *Tool) excluded(path string) bool {
	base := filepath.Base(path)
	for _, g := range t.excludeFiles {
		if g.Match(base) {
			return true
		}
	}
	return false
}
