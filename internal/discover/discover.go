// # internal/discover/discover.go
package discover

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"depscan/internal/config"

	"github.com/gobwas/glob"
)

type Kind int

const (
	KindHeader Kind = iota
	KindSource
	KindAssembly
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindSource:
		return "source"
	case KindAssembly:
		return "assembly"
	}
	return "unknown"
}

type Category int

const (
	CategoryOrdinary Category = iota
	CategoryApplication
	CategoryGuestPayload
)

// SourceFile is one discovered file. Identity is the relative path.
type SourceFile struct {
	Path     string
	Name     string
	Kind     Kind
	Category Category
}

// Index maps bare filenames to one discovered file each. Resolution is
// by filename, not full path: when two directories carry the same bare
// filename the later-discovered one wins. Callers relying on the index
// must be aware of that substitution risk.
type Index struct {
	byName map[string]*SourceFile
	names  []string // insertion order; overwrites keep the original slot
}

func NewIndex() *Index {
	return &Index{byName: make(map[string]*SourceFile)}
}

func (ix *Index) Add(f *SourceFile) {
	if _, seen := ix.byName[f.Name]; !seen {
		ix.names = append(ix.names, f.Name)
	}
	ix.byName[f.Name] = f
}

// Lookup resolves a bare filename to its discovered file.
func (ix *Index) Lookup(name string) (*SourceFile, bool) {
	f, ok := ix.byName[name]
	return f, ok
}

// Files returns all discovered files in discovery order.
func (ix *Index) Files() []*SourceFile {
	out := make([]*SourceFile, 0, len(ix.names))
	for _, name := range ix.names {
		out = append(out, ix.byName[name])
	}
	return out
}

func (ix *Index) Len() int { return len(ix.byName) }

// Scan walks the configured roots and builds the filename index.
// Excluded directories are pruned before their children are visited.
func Scan(d config.Discovery) (*Index, error) {
	dirGlobs := make([]glob.Glob, 0, len(d.ExcludeDirs))
	for _, p := range d.ExcludeDirs {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude dir pattern %q: %w", p, err)
		}
		dirGlobs = append(dirGlobs, g)
	}

	guestSub := make(map[string]bool, len(d.GuestSubtrees))
	for _, s := range d.GuestSubtrees {
		guestSub[s] = true
	}
	guestAllow := make(map[string]bool, len(d.GuestAllow))
	for _, s := range d.GuestAllow {
		guestAllow[s] = true
	}

	ix := NewIndex()
	for _, root := range d.Roots {
		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					// Roots are a conventional superset; absent ones are fine.
					slog.Debug("skipping missing root", "root", root)
					return filepath.SkipAll
				}
				slog.Warn("skipping unreadable entry", "path", path, "error", err)
				if entry != nil && entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			rel := filepath.ToSlash(filepath.Clean(path))
			base := filepath.Base(path)

			if entry.IsDir() {
				if path == root {
					return nil
				}
				for _, g := range dirGlobs {
					if g.Match(base) {
						return filepath.SkipDir
					}
				}
				if underDir(rel, d.GuestRoot) && guestSub[base] {
					return filepath.SkipDir
				}
				return nil
			}

			kind, ok := KindOf(base)
			if !ok {
				return nil
			}

			category := CategoryOrdinary
			switch {
			case underDir(rel, d.GuestRoot):
				category = CategoryGuestPayload
				if !guestAllow[base] {
					return nil
				}
			case underDir(rel, d.AppDir):
				category = CategoryApplication
				if base == d.AppStub {
					return nil
				}
			}

			ix.Add(&SourceFile{
				Path:     rel,
				Name:     base,
				Kind:     kind,
				Category: category,
			})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
	}

	return ix, nil
}

// KindOf derives the file kind from the extension. The assembly match
// is case-sensitive: .S is preprocessed assembly, .s is not analyzed.
func KindOf(name string) (Kind, bool) {
	switch filepath.Ext(name) {
	case ".h":
		return KindHeader, true
	case ".c":
		return KindSource, true
	case ".S":
		return KindAssembly, true
	}
	return 0, false
}

// underDir reports whether the slash-separated relative path has dir as
// one of its directory components.
func underDir(rel, dir string) bool {
	if dir == "" {
		return false
	}
	parts := strings.Split(rel, "/")
	for _, p := range parts[:max(len(parts)-1, 0)] {
		if p == dir {
			return true
		}
	}
	return false
}
