// # internal/header/templates.go
package header

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Comment style per file type. Selection is by exact filename first
// (Makefile), then lowercased extension, mirroring how the build tree
// mixes C, assembly, scripts, and makefiles.
type style int

const (
	styleNone style = iota
	styleBlock
	styleHash
)

var styleByName = map[string]style{
	"makefile": styleHash,
}

var styleByExt = map[string]style{
	".c":   styleBlock,
	".h":   styleBlock,
	".cpp": styleBlock,
	".hpp": styleBlock,
	".cc":  styleBlock,
	".s":   styleBlock,
	".asm": styleBlock,
	".sh":  styleHash,
	".py":  styleHash,
	".mk":  styleHash,
}

func styleFor(path string) style {
	name := filepath.Base(path)
	if s, ok := styleByName[strings.ToLower(name)]; ok {
		return s
	}
	if s, ok := styleByExt[strings.ToLower(filepath.Ext(name))]; ok {
		return s
	}
	return styleNone
}

// renderHeader produces the copyright block for one file.
func renderHeader(project, year, path string) (string, bool) {
	name := filepath.Base(path)

	lines := []string{
		fmt.Sprintf("Copyright (c) %s %s", year, project),
		"",
		"Licensed under the MIT License.",
		"See LICENSE file in the project root for full license information.",
		"",
		fmt.Sprintf("@file %s", name),
	}

	switch styleFor(path) {
	case styleBlock:
		var b strings.Builder
		b.WriteString("/*\n")
		for _, l := range lines {
			if l == "" {
				b.WriteString(" *\n")
			} else {
				b.WriteString(" * " + l + "\n")
			}
		}
		b.WriteString(" */\n\n")
		return b.String(), true
	case styleHash:
		var b strings.Builder
		b.WriteString("#\n")
		for _, l := range lines {
			if l == "" {
				b.WriteString("#\n")
			} else {
				b.WriteString("# " + l + "\n")
			}
		}
		b.WriteString("#\n\n")
		return b.String(), true
	}
	return "", false
}
