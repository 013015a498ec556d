package format

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jensroland/git-coauthor/internal/attribution"
)

// DiffHighlight renders current with its character-level differences
// from reference marked up: text missing from the reference is green,
// text only the reference has is red.
func DiffHighlight(reference, current string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(reference, current, false))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			b.WriteString(Red + d.Text + Reset)
		case diffmatchpatch.DiffInsert:
			b.WriteString(Green + d.Text + Reset)
		}
	}
	return b.String()
}

// Matches renders the per-line classification detail for verbose
// output: each diff line with its verdict, and for AI-classified lines
// the snapshot line it matched.
func Matches(matches []attribution.LineMatch) string {
	var b strings.Builder
	for _, m := range matches {
		verdict := Dim + "human" + Reset
		if m.AI {
			verdict = Yellow + "AI   " + Reset
		}
		fmt.Fprintf(&b, "%s %s\n", verdict, strings.TrimSpace(m.Line))
		if m.AI && m.BestMatch != "" {
			fmt.Fprintf(&b, "      %s≈ %.2f%s %s\n",
				Dim, m.Similarity, Reset,
				DiffHighlight(strings.TrimSpace(m.BestMatch), strings.TrimSpace(m.Line)))
		}
	}
	return b.String()
}
