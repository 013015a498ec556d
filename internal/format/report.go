package format

import (
	"fmt"
	"strings"

	"github.com/jensroland/git-coauthor/internal/attribution"
)

// Bar renders a percentage as a fixed-width block bar.
func Bar(pct float64, width int) string {
	if width < 4 {
		width = 4
	}
	filled := int(pct/100*float64(width) + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Summary is the one-line plain-text form of a result.
func Summary(res attribution.Result) string {
	return fmt.Sprintf("%d/%d added lines look AI-generated (%.1f%%)",
		res.AIGeneratedLines, res.TotalLines, res.AIPercentage)
}

// Report renders a full attribution report for terminal display.
func Report(res attribution.Result, snapshots, width int) string {
	barWidth := width - 10
	if barWidth > 40 {
		barWidth = 40
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s%s\n", Bold, Summary(res), Reset)

	if res.TotalLines > 0 {
		color := Green
		if res.NeedsCoAuthor {
			color = Yellow
		}
		fmt.Fprintf(&b, "%s%s%s %5.1f%%\n", color, Bar(res.AIPercentage, barWidth), Reset, res.AIPercentage)
	}

	if snapshots == 0 {
		fmt.Fprintf(&b, "%sNo recent snapshots to compare against; added lines are assumed AI-generated.%s\n", Dim, Reset)
	} else {
		fmt.Fprintf(&b, "%sCompared against %d recent snapshot(s).%s\n", Dim, snapshots, Reset)
	}

	if res.NeedsCoAuthor {
		fmt.Fprintf(&b, "%sCo-author trailer will be attached on commit.%s\n", Yellow, Reset)
	} else {
		b.WriteString("No co-author trailer needed.\n")
	}
	return b.String()
}
