// # internal/include/resolve.go
package include

import (
	"os"
	"path/filepath"
	"strings"

	"depscan/internal/discover"
)

// Result classifies the outcome of resolving one raw include target.
type Result int

const (
	// Resolved: the target maps to a concrete file in the tree.
	Resolved Result = iota
	// System: the target carries a platform header prefix and is
	// intentionally ignored. Not an error and never a graph edge.
	System
	// Unresolved: the target is unknown. Silently dropped; the
	// analysis carries no search-path semantics beyond the fixed list.
	Unresolved
)

type Resolver struct {
	index          *discover.Index
	includeDirs    []string
	systemPrefixes []string
}

func NewResolver(index *discover.Index, includeDirs, systemPrefixes []string) *Resolver {
	return &Resolver{
		index:          index,
		includeDirs:    includeDirs,
		systemPrefixes: systemPrefixes,
	}
}

// Resolve maps a raw include target to a discovered path. Lookup order:
// exact filename match in the discovery index, then an existence probe
// under each include-search directory, then system-prefix
// classification.
func (r *Resolver) Resolve(target string) (string, Result) {
	if f, ok := r.index.Lookup(target); ok {
		return f.Path, Resolved
	}

	for _, dir := range r.includeDirs {
		candidate := filepath.Join(dir, target)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return filepath.ToSlash(filepath.Clean(candidate)), Resolved
		}
	}

	for _, prefix := range r.systemPrefixes {
		if strings.HasPrefix(target, prefix) {
			return "", System
		}
	}

	return "", Unresolved
}
