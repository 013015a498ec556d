// Package history keeps an append-only JSONL log of attribution runs
// and a rebuildable SQLite index over it for aggregate queries. The
// log is the source of truth; the index is a disposable cache.
package history

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const tsFormat = "2006-01-02T15:04:05Z"

// Record is one attribution run result as logged to history.jsonl.
type Record struct {
	ID            string  `json:"id"`
	Ts            string  `json:"ts"`
	Branch        string  `json:"branch"`
	TotalLines    int     `json:"total_lines"`
	AILines       int     `json:"ai_lines"`
	AIPercentage  float64 `json:"ai_percentage"`
	NeedsCoAuthor bool    `json:"needs_co_author"`
	Snapshots     int     `json:"snapshots"`
}

// Append writes a record to the history log, filling in a missing ID
// and timestamp.
func Append(path string, rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Ts == "" {
		rec.Ts = time.Now().UTC().Format(tsFormat)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// ReadAll returns every parseable record from the history log, in file
// order. A missing file yields nil; malformed lines are skipped.
func ReadAll(path string) []Record {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records
}
