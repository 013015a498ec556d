// Package cmd implements the git-coauthor command surface.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jensroland/git-coauthor/internal/attribution"
	"github.com/jensroland/git-coauthor/internal/debug"
	"github.com/jensroland/git-coauthor/internal/format"
	"github.com/jensroland/git-coauthor/internal/git"
	"github.com/jensroland/git-coauthor/internal/history"
	"github.com/jensroland/git-coauthor/internal/project"
)

// RunCheck handles the default mode: classify the pending diff and
// report how much of it looks AI-generated.
func RunCheck(args []string) {
	fs := flag.NewFlagSet("git-coauthor", flag.ExitOnError)

	threshold := fs.Float64("threshold", attribution.DefaultThreshold, "Similarity cutoff for classifying a line as AI-generated")
	limit := fs.Int("limit", attribution.DefaultLimit, "Maximum number of recent snapshots to compare against")
	window := fs.Duration("window", attribution.DefaultWindow, "How far back snapshots count as recent")
	staged := fs.Bool("staged", false, "Classify the staged diff instead of the working tree")
	verbose := fs.Bool("v", false, "Show each classified line with its best snapshot match")
	jsonOutput := fs.Bool("json", false, "Output the result as JSON")
	stats := fs.Bool("stats", false, "Summary statistics over past runs")
	rebuild := fs.Bool("rebuild", false, "Force history index rebuild")
	showLog := fs.Bool("log", false, "Show the debug log")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `git-coauthor: estimate how much of a pending change is AI-generated.

Usage:
    git-coauthor                  # classify the working-tree diff
    git-coauthor --staged         # classify the staged diff
    git-coauthor -v               # per-line verdicts with best matches
    git-coauthor --json           # machine-readable result
    git-coauthor --threshold 0.9  # stricter similarity cutoff
    git-coauthor --window 2h      # shorter snapshot retention window
    git-coauthor --stats          # aggregates over recorded runs
    git-coauthor --log            # show the debug log

Subcommands:
    git-coauthor hook <post-tool-use|prepare-commit-msg|commit-msg>
    git-coauthor enable [--global]
    git-coauthor disable
`)
	}
	fs.Parse(args)

	root, err := project.FindRoot()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	paths := project.NewPaths(root)

	if *showLog {
		cmdLog(paths)
		return
	}
	if *stats {
		cmdStats(paths, *rebuild, *jsonOutput)
		return
	}

	opts := attribution.Options{
		Threshold: *threshold,
		Limit:     *limit,
		Window:    *window,
		Staged:    *staged,
	}
	res, matches, snapCount := attribution.RunDetailed(paths, opts)

	if project.IsInitialized(root) {
		if err := history.Append(paths.HistoryFile, history.Record{
			Branch:        git.CurrentBranch(root),
			TotalLines:    res.TotalLines,
			AILines:       res.AIGeneratedLines,
			AIPercentage:  res.AIPercentage,
			NeedsCoAuthor: res.NeedsCoAuthor,
			Snapshots:     snapCount,
		}); err != nil {
			debug.Log(paths.CacheDir, "check.log", fmt.Sprintf("record run: %v", err), nil)
		}
	}

	if *jsonOutput {
		b, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Print(format.Report(res, snapCount, format.TermWidth()))
	if *verbose && len(matches) > 0 {
		fmt.Println()
		fmt.Print(format.Matches(matches))
	}
}
