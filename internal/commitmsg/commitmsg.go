// Package commitmsg generates commit summaries from the shape of the
// staged change set and edits Co-Authored-By trailers into commit
// message files.
package commitmsg

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CoAuthorTrailer is the trailer line attached when the attribution
// engine decides the change set needs AI co-author credit.
const CoAuthorTrailer = "Co-Authored-By: Claude <noreply@anthropic.com>"

// Summary picks a one-line commit subject from file-extension
// heuristics over the changed file paths. This is deliberately dumb:
// it is a placeholder subject for commits the user left blank, not a
// change description.
func Summary(files []string) string {
	if len(files) == 0 {
		return "Update project files"
	}

	counts := make(map[string]int)
	for _, f := range files {
		counts[categorize(f)]++
	}

	best, bestN := "", 0
	for _, cat := range []string{"tests", "docs", "config", "code"} {
		if counts[cat] > bestN {
			best, bestN = cat, counts[cat]
		}
	}

	switch best {
	case "tests":
		return "Update tests"
	case "docs":
		return "Update documentation"
	case "config":
		return "Update configuration"
	default:
		if len(files) == 1 {
			return fmt.Sprintf("Update %s", filepath.Base(files[0]))
		}
		return fmt.Sprintf("Update %d source files", len(files))
	}
}

func categorize(path string) string {
	base := strings.ToLower(filepath.Base(path))
	ext := filepath.Ext(base)

	if strings.Contains(base, "_test") || strings.Contains(base, ".test.") ||
		strings.Contains(base, ".spec.") {
		return "tests"
	}
	switch ext {
	case ".md", ".rst", ".txt", ".adoc":
		return "docs"
	case ".json", ".yaml", ".yml", ".toml", ".ini", ".env":
		return "config"
	}
	return "code"
}

// AppendCoAuthor appends the co-author trailer to a commit message,
// separated from the body by a blank line. Messages that already carry
// the trailer are returned unchanged.
func AppendCoAuthor(msg string) string {
	if strings.Contains(msg, CoAuthorTrailer) {
		return msg
	}

	trimmed := strings.TrimRight(msg, "\n")
	if trimmed == "" {
		return CoAuthorTrailer + "\n"
	}
	if !strings.Contains(trimmed, "\n\n") {
		trimmed += "\n"
	}
	return trimmed + "\n" + CoAuthorTrailer + "\n"
}

// SubjectMissing reports whether a commit message file content has no
// subject line yet: every line is blank or a # comment.
func SubjectMissing(msg string) bool {
	for _, line := range strings.Split(msg, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			return false
		}
	}
	return true
}
