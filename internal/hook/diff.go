package hook

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff computes the added and deleted lines between two versions
// of a file using a line-granular diff. Unchanged lines are omitted.
func LineDiff(oldText, newText string) (additions, deletions []string) {
	if oldText == newText {
		return nil, nil
	}

	dmp := diffmatchpatch.New()
	a, b, lineIndex := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineIndex)

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			additions = append(additions, splitLines(d.Text)...)
		case diffmatchpatch.DiffDelete:
			deletions = append(deletions, splitLines(d.Text)...)
		}
	}
	return additions, deletions
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
