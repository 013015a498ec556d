package project

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Paths holds all relevant locations for a coauthor-enabled repo.
type Paths struct {
	Root        string // git repo root
	CacheDir    string // .git/coauthor/
	SnapshotDir string // .git/coauthor/snapshots/
	HistoryFile string // .git/coauthor/history.jsonl
	IndexDB     string // .git/coauthor/index.db
	HooksDir    string // .git/hooks/
}

// FindRoot returns the git project root, preferring COAUTHOR_PROJECT_DIR
// if set.
func FindRoot() (string, error) {
	if dir := os.Getenv("COAUTHOR_PROJECT_DIR"); dir != "" {
		return dir, nil
	}
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", fmt.Errorf("not inside a git repository")
	}
	return strings.TrimSpace(string(out)), nil
}

// NewPaths constructs all path constants from a project root.
func NewPaths(root string) Paths {
	cache := filepath.Join(root, ".git", "coauthor")
	return Paths{
		Root:        root,
		CacheDir:    cache,
		SnapshotDir: filepath.Join(cache, "snapshots"),
		HistoryFile: filepath.Join(cache, "history.jsonl"),
		IndexDB:     filepath.Join(cache, "index.db"),
		HooksDir:    filepath.Join(root, ".git", "hooks"),
	}
}

// IsInitialized returns true if the coauthor cache directory exists.
func IsInitialized(root string) bool {
	info, err := os.Stat(filepath.Join(root, ".git", "coauthor"))
	return err == nil && info.IsDir()
}
