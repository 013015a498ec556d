package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAppendAndReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")

	recs := []Record{
		{Branch: "main", TotalLines: 10, AILines: 3, AIPercentage: 30, NeedsCoAuthor: true, Snapshots: 2},
		{Branch: "feature", TotalLines: 4, AILines: 0, AIPercentage: 0, Snapshots: 1},
	}
	for _, rec := range recs {
		if err := Append(path, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got := ReadAll(path)
	if len(got) != 2 {
		t.Fatalf("read %d records, want 2", len(got))
	}
	if got[0].Branch != "main" || got[0].AIPercentage != 30 {
		t.Errorf("first record = %+v", got[0])
	}
	if got[0].ID == "" || got[0].Ts == "" {
		t.Errorf("ID = %q, Ts = %q, want both filled", got[0].ID, got[0].Ts)
	}
}

func TestReadAll_MissingFile(t *testing.T) {
	got := ReadAll(filepath.Join(t.TempDir(), "absent.jsonl"))
	if len(got) != 0 {
		t.Errorf("missing file = %d records, want 0", len(got))
	}
}

func TestReadAll_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")
	if err := Append(path, Record{Branch: "main"}); err != nil {
		t.Fatal(err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("{garbage\n")
	f.Close()

	if err := Append(path, Record{Branch: "feature"}); err != nil {
		t.Fatal(err)
	}

	got := ReadAll(path)
	if len(got) != 2 {
		t.Errorf("read %d records, want 2 (garbage skipped)", len(got))
	}
}
