package snapshot

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// LoadRecent returns the most recent snapshots under dir, newest first:
// records older than window are dropped, the rest are sorted by
// timestamp descending and truncated to limit.
//
// The on-disk layout (branch directory, then calendar-date directory)
// is a storage convenience only; all branches are flattened before
// filtering. A missing directory yields an empty result, and a record
// that cannot be read or decoded is skipped rather than aborting the
// scan.
func LoadRecent(dir string, window time.Duration, limit int) []Snapshot {
	return LoadRecentAt(dir, time.Now().UTC(), window, limit)
}

// LoadRecentAt is LoadRecent with an explicit "now", for deterministic
// window filtering.
func LoadRecentAt(dir string, now time.Time, window time.Duration, limit int) []Snapshot {
	cutoff := now.Add(-window)

	var snaps []Snapshot
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil
		}
		ts, err := time.Parse(TsFormat, snap.Ts)
		if err != nil {
			return nil
		}
		if ts.Before(cutoff) {
			return nil
		}
		snaps = append(snaps, snap)
		return nil
	})

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].Ts > snaps[j].Ts
	})

	if limit > 0 && len(snaps) > limit {
		snaps = snaps[:limit]
	}
	return snaps
}
