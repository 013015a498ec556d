// Package diffparse extracts added lines from unified-diff text.
package diffparse

import "strings"

// AddedLines returns, per file, the ordered added ("+") line contents
// of a unified diff. The "+++" header line is not an added line; it
// switches the current file instead. Added lines seen before any
// header are keyed under "". Empty input yields an empty map.
func AddedLines(diff string) map[string][]string {
	added := make(map[string][]string)

	current := ""
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"):
			current = headerPath(line)
		case strings.HasPrefix(line, "+"):
			added[current] = append(added[current], line[1:])
		}
	}
	return added
}

// headerPath extracts the file path from a "+++ b/path" header.
func headerPath(line string) string {
	path := strings.TrimPrefix(line, "+++")
	path = strings.TrimLeft(path, " \t")
	// Drop a trailing tab-separated timestamp some diff tools emit.
	if i := strings.IndexByte(path, '\t'); i >= 0 {
		path = path[:i]
	}
	return strings.TrimPrefix(path, "b/")
}

// Flatten returns every added line across all files, in map-iteration
// file order with per-file line order preserved.
func Flatten(added map[string][]string) []string {
	var lines []string
	for _, fileLines := range added {
		lines = append(lines, fileLines...)
	}
	return lines
}
