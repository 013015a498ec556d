package attribution

import (
	"time"

	"github.com/jensroland/git-coauthor/internal/diffparse"
	"github.com/jensroland/git-coauthor/internal/git"
	"github.com/jensroland/git-coauthor/internal/project"
	"github.com/jensroland/git-coauthor/internal/snapshot"
)

// Options configures one attribution run. Zero values fall back to the
// package defaults.
type Options struct {
	Threshold float64
	Limit     int
	Window    time.Duration
	Staged    bool // compare the staged diff instead of the working tree
}

func (o Options) withDefaults() Options {
	if o.Threshold == 0 {
		o.Threshold = DefaultThreshold
	}
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	if o.Window == 0 {
		o.Window = DefaultWindow
	}
	return o
}

// Run loads the recent snapshot corpus and the pending diff for the
// repository and classifies the diff. It never fails: missing
// snapshots or an unproducible diff degrade to empty corpora.
func Run(paths project.Paths, opts Options) Result {
	opts = opts.withDefaults()
	snapLines, curLines, _ := corpora(paths, opts)
	return Classify(snapLines, curLines, opts.Threshold)
}

// RunDetailed is Run with per-line best matches, plus the number of
// snapshots that contributed to the comparison corpus.
func RunDetailed(paths project.Paths, opts Options) (Result, []LineMatch, int) {
	opts = opts.withDefaults()
	snapLines, curLines, snapCount := corpora(paths, opts)
	res, matches := ClassifyDetailed(snapLines, curLines, opts.Threshold)
	return res, matches, snapCount
}

func corpora(paths project.Paths, opts Options) (snapLines, curLines []string, snapCount int) {
	snaps := snapshot.LoadRecent(paths.SnapshotDir, opts.Window, opts.Limit)
	for _, s := range snaps {
		snapLines = append(snapLines, s.Additions()...)
	}

	diff := git.Diff(paths.Root, opts.Staged)
	curLines = diffparse.Flatten(diffparse.AddedLines(diff))
	return snapLines, curLines, len(snaps)
}
