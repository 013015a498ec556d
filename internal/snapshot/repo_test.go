package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSnap(t *testing.T, dir, branch, ts string) {
	t.Helper()
	err := Write(dir, Snapshot{
		Ts:     ts,
		Branch: branch,
		Changes: []FileChange{
			{File: "f.go", Additions: []string{"line for " + ts}},
		},
	})
	if err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
}

func TestLoadRecent_MissingDirectory(t *testing.T) {
	got := LoadRecent(filepath.Join(t.TempDir(), "does", "not", "exist"), 4*time.Hour, 5)
	if len(got) != 0 {
		t.Errorf("missing dir = %d snapshots, want 0", len(got))
	}
}

func TestLoadRecent_WindowFilter(t *testing.T) {
	dir := t.TempDir()
	writeSnap(t, dir, "main", "2026-08-23T11:30:00Z")
	writeSnap(t, dir, "main", "2026-08-23T07:00:00Z") // 5h old, outside window

	now, _ := time.Parse(TsFormat, "2026-08-23T12:00:00Z")
	got := LoadRecentAt(dir, now, 4*time.Hour, 5)
	if len(got) != 1 {
		t.Fatalf("loaded %d snapshots, want 1", len(got))
	}
	if got[0].Ts != "2026-08-23T11:30:00Z" {
		t.Errorf("kept ts = %s, want the recent record", got[0].Ts)
	}
}

func TestLoadRecent_SortsNewestFirstAcrossBranches(t *testing.T) {
	dir := t.TempDir()
	writeSnap(t, dir, "main", "2026-08-23T10:00:00Z")
	writeSnap(t, dir, "feature/x", "2026-08-23T11:00:00Z")
	writeSnap(t, dir, "main", "2026-08-23T09:30:00Z")

	now, _ := time.Parse(TsFormat, "2026-08-23T12:00:00Z")
	got := LoadRecentAt(dir, now, 4*time.Hour, 5)
	if len(got) != 3 {
		t.Fatalf("loaded %d snapshots, want 3", len(got))
	}
	want := []string{"2026-08-23T11:00:00Z", "2026-08-23T10:00:00Z", "2026-08-23T09:30:00Z"}
	for i, ts := range want {
		if got[i].Ts != ts {
			t.Errorf("order[%d] = %s, want %s", i, got[i].Ts, ts)
		}
	}
}

func TestLoadRecent_Limit(t *testing.T) {
	dir := t.TempDir()
	for _, ts := range []string{
		"2026-08-23T11:00:00Z", "2026-08-23T11:10:00Z", "2026-08-23T11:20:00Z",
	} {
		writeSnap(t, dir, "main", ts)
	}

	now, _ := time.Parse(TsFormat, "2026-08-23T12:00:00Z")
	got := LoadRecentAt(dir, now, 4*time.Hour, 2)
	if len(got) != 2 {
		t.Fatalf("loaded %d snapshots, want 2", len(got))
	}
	if got[0].Ts != "2026-08-23T11:20:00Z" {
		t.Errorf("truncation kept %s first, want the newest", got[0].Ts)
	}
}

func TestLoadRecent_SkipsMalformedRecords(t *testing.T) {
	dir := t.TempDir()
	writeSnap(t, dir, "main", "2026-08-23T11:00:00Z")

	day := filepath.Join(dir, "main", "2026-08-23")
	if err := os.WriteFile(filepath.Join(day, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(day, "badts.json"), []byte(`{"ts":"yesterday"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	now, _ := time.Parse(TsFormat, "2026-08-23T12:00:00Z")
	got := LoadRecentAt(dir, now, 4*time.Hour, 5)
	if len(got) != 1 {
		t.Errorf("loaded %d snapshots, want 1 (malformed skipped)", len(got))
	}
}

func TestLoadRecent_IgnoresNonJSONFiles(t *testing.T) {
	dir := t.TempDir()
	writeSnap(t, dir, "main", "2026-08-23T11:00:00Z")
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("notes"), 0o644); err != nil {
		t.Fatal(err)
	}

	now, _ := time.Parse(TsFormat, "2026-08-23T12:00:00Z")
	if got := LoadRecentAt(dir, now, 4*time.Hour, 5); len(got) != 1 {
		t.Errorf("loaded %d snapshots, want 1", len(got))
	}
}
