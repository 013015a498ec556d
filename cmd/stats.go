package cmd

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jensroland/git-coauthor/internal/format"
	"github.com/jensroland/git-coauthor/internal/history"
	"github.com/jensroland/git-coauthor/internal/project"
)

type statsSummary struct {
	Runs            int     `json:"runs"`
	TotalLines      int     `json:"total_lines"`
	AILines         int     `json:"ai_lines"`
	AvgAIPercentage float64 `json:"avg_ai_percentage"`
	CoAuthorRuns    int     `json:"co_author_runs"`
	First           string  `json:"first,omitempty"`
	Last            string  `json:"last,omitempty"`
}

type branchStat struct {
	Branch string  `json:"branch"`
	Runs   int     `json:"runs"`
	AvgPct float64 `json:"avg_ai_percentage"`
}

func cmdStats(paths project.Paths, rebuild, jsonOutput bool) {
	db, err := history.Open(paths, rebuild)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening index at %s: %v\n", paths.IndexDB, err)
		os.Exit(1)
	}
	defer db.Close()

	var s statsSummary
	var first, last sql.NullString
	var avg sql.NullFloat64

	db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&s.Runs)
	db.QueryRow("SELECT COALESCE(SUM(total_lines), 0), COALESCE(SUM(ai_lines), 0) FROM runs").Scan(&s.TotalLines, &s.AILines)
	db.QueryRow("SELECT AVG(ai_percentage) FROM runs").Scan(&avg)
	db.QueryRow("SELECT COUNT(*) FROM runs WHERE needs_co_author = 1").Scan(&s.CoAuthorRuns)
	db.QueryRow("SELECT MIN(ts) FROM runs").Scan(&first)
	db.QueryRow("SELECT MAX(ts) FROM runs").Scan(&last)

	if avg.Valid {
		s.AvgAIPercentage = avg.Float64
	}
	s.First, s.Last = first.String, last.String

	var branches []branchStat
	rows, _ := db.Query(`
		SELECT branch, COUNT(*) AS runs, AVG(ai_percentage)
		FROM runs GROUP BY branch ORDER BY runs DESC LIMIT 5
	`)
	if rows != nil {
		defer rows.Close()
		for rows.Next() {
			var bs branchStat
			if err := rows.Scan(&bs.Branch, &bs.Runs, &bs.AvgPct); err == nil {
				branches = append(branches, bs)
			}
		}
	}

	if jsonOutput {
		out := struct {
			statsSummary
			Branches []branchStat `json:"branches,omitempty"`
		}{s, branches}
		b, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Printf("%sAttribution history%s\n\n", format.Bold, format.Reset)
	fmt.Printf("  Runs recorded:    %d\n", s.Runs)
	fmt.Printf("  Lines classified: %d (%d AI)\n", s.TotalLines, s.AILines)
	fmt.Printf("  Average AI share: %.1f%%\n", s.AvgAIPercentage)
	fmt.Printf("  Co-author runs:   %d\n", s.CoAuthorRuns)
	if s.First != "" {
		fmt.Printf("  Span:             %s .. %s\n", s.First, s.Last)
	}
	if len(branches) > 0 {
		fmt.Printf("\n  By branch:\n")
		for _, bs := range branches {
			fmt.Printf("    %-30s %3d runs  avg %.1f%%\n", bs.Branch, bs.Runs, bs.AvgPct)
		}
	}
}
