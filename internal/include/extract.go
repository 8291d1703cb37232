// # internal/include/extract.go
package include

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Extraction recognizes one directive form per line:
//
//	line    = ws '#include' ws delim target close
//	ws      = any run of spaces and tabs (may be empty after '#include')
//	delim   = '"' | '<'
//	close   = '"' when delim is '"', '>' when delim is '<'
//	target  = one or more characters, none of which is '"' or '>'
//
// Anything else on a line, including trailing text after the close
// delimiter, is ignored. Malformed directives yield no target.

// ParseIncludeLine extracts the include target from a single line.
func ParseIncludeLine(line string) (string, bool) {
	s := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(s, "#include") {
		return "", false
	}
	s = strings.TrimLeft(s[len("#include"):], " \t")
	if len(s) < 2 {
		return "", false
	}

	var close byte
	switch s[0] {
	case '"':
		close = '"'
	case '<':
		close = '>'
	default:
		return "", false
	}

	rest := s[1:]
	end := strings.IndexAny(rest, "\">")
	if end <= 0 || rest[end] != close {
		return "", false
	}
	return rest[:end], true
}

// ExtractIncludes scans text line by line and returns the distinct raw
// include targets in first-seen order. On a read error the targets
// collected so far are returned alongside the error so callers can warn
// and continue with a partial (possibly empty) result.
func ExtractIncludes(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var targets []string
	seen := make(map[string]bool)
	for scanner.Scan() {
		target, ok := ParseIncludeLine(scanner.Text())
		if !ok || seen[target] {
			continue
		}
		seen[target] = true
		targets = append(targets, target)
	}
	return targets, scanner.Err()
}

// ExtractFile extracts include targets from a file on disk.
func ExtractFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ExtractIncludes(f)
}
