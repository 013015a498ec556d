// Package snapshot persists and loads change snapshots: per-session
// records of file additions and deletions captured while an AI
// assistant was editing. Snapshots are the reference corpus the
// attribution engine compares pending changes against.
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// TsFormat is the stored timestamp layout. UTC and fixed-width, so
// records also sort correctly as plain strings.
const TsFormat = "2006-01-02T15:04:05Z"

// FileChange is one file's added and deleted lines within a snapshot.
type FileChange struct {
	File      string   `json:"file"`
	Additions []string `json:"additions"`
	Deletions []string `json:"deletions"`
}

// Snapshot is one historical record of an editing session. Records are
// written once by the capture hook and are read-only afterwards.
type Snapshot struct {
	ID      string       `json:"id"`
	Ts      string       `json:"ts"`
	Branch  string       `json:"branch"`
	Changes []FileChange `json:"changes"`
}

// Additions returns every added line across all file changes, in order.
func (s Snapshot) Additions() []string {
	var lines []string
	for _, c := range s.Changes {
		lines = append(lines, c.Additions...)
	}
	return lines
}

// Write stores a snapshot under dir/<branch>/<YYYY-MM-DD>/<id>.json.
// Missing ID and timestamp fields are filled in.
func Write(dir string, snap Snapshot) error {
	if snap.ID == "" {
		snap.ID = uuid.New().String()
	}
	if snap.Ts == "" {
		snap.Ts = time.Now().UTC().Format(TsFormat)
	}
	branch := snap.Branch
	if branch == "" {
		branch = "detached"
	}

	day := snap.Ts[:10]
	recordDir := filepath.Join(dir, branch, day)
	if err := os.MkdirAll(recordDir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(recordDir, snap.ID+".json"), append(data, '\n'), 0o644)
}
