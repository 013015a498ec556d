// Package attribution classifies the added lines of a pending diff as
// AI-generated or human-written by comparing them against recently
// captured snapshot lines with TF-IDF cosine similarity, and derives
// the co-author policy decision from the aggregate.
package attribution

import (
	"strings"
	"time"

	"github.com/jensroland/git-coauthor/internal/textsim"
)

const (
	// DefaultThreshold is the minimum cosine similarity at which a
	// line counts as AI-generated.
	DefaultThreshold = 0.85
	// DefaultLimit is the maximum number of snapshots compared against.
	DefaultLimit = 5
	// DefaultWindow is how far back snapshots are considered recent.
	DefaultWindow = 4 * time.Hour

	// coAuthorCutoff is the AI percentage above which a commit gets a
	// co-author trailer. Strictly above: exactly 10% does not trigger.
	coAuthorCutoff = 10.0
)

// Result is the immutable outcome of one attribution run.
type Result struct {
	TotalLines       int     `json:"total_lines"`
	AIGeneratedLines int     `json:"ai_generated_lines"`
	AIPercentage     float64 `json:"ai_percentage"`
	NeedsCoAuthor    bool    `json:"needs_co_author"`
}

// LineMatch records, for one classified diff line, its best snapshot
// match. Used for verbose reporting only; the policy path in Classify
// stops scanning at the threshold instead of finding the true maximum.
type LineMatch struct {
	Line       string
	BestMatch  string
	Similarity float64
	AI         bool
}

// CoAuthorRequired is the attachment policy: strictly more than 10%
// AI-generated lines.
func CoAuthorRequired(aiPercentage float64) bool {
	return aiPercentage > coAuthorCutoff
}

// Attributable reports whether a line is a classifiable source
// statement. Blank lines and comment lines (// or a block-comment
// continuation *) are not attributable.
func Attributable(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	return !strings.HasPrefix(trimmed, "//") && !strings.HasPrefix(trimmed, "*")
}

// FilterLines returns the attributable subset of lines, in order.
func FilterLines(lines []string) []string {
	var kept []string
	for _, line := range lines {
		if Attributable(line) {
			kept = append(kept, line)
		}
	}
	return kept
}

// Classify compares the added lines of the current diff against the
// snapshot corpus and aggregates the per-line decisions.
//
// Both corpora are filtered to attributable lines, then a single
// vocabulary is built over their union so that all vectors live in the
// same feature space. Each current line is scanned against the
// snapshot vectors, short-circuiting at the first similarity that
// meets the threshold.
//
// When no usable snapshot lines exist there is nothing to compare
// against, and the absence of evidence must bias toward
// over-attribution: every retained current line is classified as
// AI-generated. This branch is distinct from "nothing matched", which
// legitimately yields a low percentage.
func Classify(snapshotLines, currentLines []string, threshold float64) Result {
	snapLines := FilterLines(snapshotLines)
	curLines := FilterLines(currentLines)

	res := Result{TotalLines: len(curLines)}
	if len(curLines) == 0 {
		return res
	}

	if len(snapLines) == 0 {
		res.AIGeneratedLines = len(curLines)
		res.AIPercentage = 100
		res.NeedsCoAuthor = true
		return res
	}

	corpus := make([]string, 0, len(snapLines)+len(curLines))
	corpus = append(corpus, snapLines...)
	corpus = append(corpus, curLines...)
	vocab := textsim.BuildVocabulary(corpus)

	snapVecs := make([][]float64, len(snapLines))
	for i, line := range snapLines {
		snapVecs[i] = vocab.Vectorize(line)
	}

	for _, line := range curLines {
		vec := vocab.Vectorize(line)
		best := 0.0
		for _, sv := range snapVecs {
			if sim := textsim.Cosine(vec, sv); sim > best {
				best = sim
			}
			if best >= threshold {
				break
			}
		}
		if best >= threshold {
			res.AIGeneratedLines++
		}
	}

	res.AIPercentage = 100 * float64(res.AIGeneratedLines) / float64(res.TotalLines)
	res.NeedsCoAuthor = CoAuthorRequired(res.AIPercentage)
	return res
}

// ClassifyDetailed is Classify without the short-circuit: it finds the
// true best match for every retained current line so callers can show
// what each line resembled. The aggregate it returns is identical to
// Classify's.
func ClassifyDetailed(snapshotLines, currentLines []string, threshold float64) (Result, []LineMatch) {
	snapLines := FilterLines(snapshotLines)
	curLines := FilterLines(currentLines)

	res := Result{TotalLines: len(curLines)}
	if len(curLines) == 0 {
		return res, nil
	}

	matches := make([]LineMatch, 0, len(curLines))

	if len(snapLines) == 0 {
		for _, line := range curLines {
			matches = append(matches, LineMatch{Line: line, AI: true})
		}
		res.AIGeneratedLines = len(curLines)
		res.AIPercentage = 100
		res.NeedsCoAuthor = true
		return res, matches
	}

	corpus := make([]string, 0, len(snapLines)+len(curLines))
	corpus = append(corpus, snapLines...)
	corpus = append(corpus, curLines...)
	vocab := textsim.BuildVocabulary(corpus)

	snapVecs := make([][]float64, len(snapLines))
	for i, line := range snapLines {
		snapVecs[i] = vocab.Vectorize(line)
	}

	for _, line := range curLines {
		vec := vocab.Vectorize(line)
		m := LineMatch{Line: line}
		for i, sv := range snapVecs {
			if sim := textsim.Cosine(vec, sv); sim > m.Similarity {
				m.Similarity = sim
				m.BestMatch = snapLines[i]
			}
		}
		m.AI = m.Similarity >= threshold
		if m.AI {
			res.AIGeneratedLines++
		}
		matches = append(matches, m)
	}

	res.AIPercentage = 100 * float64(res.AIGeneratedLines) / float64(res.TotalLines)
	res.NeedsCoAuthor = CoAuthorRequired(res.AIPercentage)
	return res, matches
}
