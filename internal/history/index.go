package history

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/jensroland/git-coauthor/internal/project"
)

// IsStale returns true if the SQLite index is older than the history
// log (or does not exist yet).
func IsStale(paths project.Paths) bool {
	idx, err := os.Stat(paths.IndexDB)
	if err != nil {
		return true
	}
	log, err := os.Stat(paths.HistoryFile)
	if err != nil {
		return false
	}
	return log.ModTime().After(idx.ModTime())
}

// Open returns a DB handle over the index, rebuilding it first when it
// is stale or a rebuild is forced.
func Open(paths project.Paths, forceRebuild bool) (*sql.DB, error) {
	if forceRebuild || IsStale(paths) {
		return Rebuild(paths)
	}
	return sql.Open("sqlite", paths.IndexDB)
}

// Rebuild drops and recreates the SQLite index from the history log.
func Rebuild(paths project.Paths) (*sql.DB, error) {
	_ = os.MkdirAll(paths.CacheDir, 0o755)
	_ = os.Remove(paths.IndexDB)

	db, err := sql.Open("sqlite", paths.IndexDB)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE runs (
			id TEXT PRIMARY KEY,
			ts TEXT NOT NULL,
			branch TEXT,
			total_lines INTEGER,
			ai_lines INTEGER,
			ai_percentage REAL,
			needs_co_author INTEGER,
			snapshots INTEGER
		);
		CREATE INDEX idx_runs_ts ON runs(ts);
		CREATE INDEX idx_runs_branch ON runs(branch);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return nil, err
	}
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO runs
			(id, ts, branch, total_lines, ai_lines, ai_percentage, needs_co_author, snapshots)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		db.Close()
		return nil, err
	}

	for _, rec := range ReadAll(paths.HistoryFile) {
		needs := 0
		if rec.NeedsCoAuthor {
			needs = 1
		}
		if _, err := stmt.Exec(rec.ID, rec.Ts, rec.Branch, rec.TotalLines,
			rec.AILines, rec.AIPercentage, needs, rec.Snapshots); err != nil {
			continue
		}
	}
	stmt.Close()

	if err := tx.Commit(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
