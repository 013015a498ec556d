package hook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jensroland/git-coauthor/internal/history"
)

func TestHandleCommitMsg_EmptyDiffLeavesMessageAlone(t *testing.T) {
	root := initRepo(t)

	msgFile := filepath.Join(root, "COMMIT_EDITMSG")
	if err := os.WriteFile(msgFile, []byte("Fix bug\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// No git repo behind the root: the staged diff degrades to empty,
	// zero classifiable lines, no co-author.
	if err := HandleCommitMsg(msgFile); err != nil {
		t.Fatalf("handle: %v", err)
	}

	data, err := os.ReadFile(msgFile)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "Co-Authored-By") {
		t.Errorf("trailer added for empty diff: %q", string(data))
	}

	recs := history.ReadAll(filepath.Join(root, ".git", "coauthor", "history.jsonl"))
	if len(recs) != 1 {
		t.Fatalf("history records = %d, want 1", len(recs))
	}
	if recs[0].TotalLines != 0 || recs[0].NeedsCoAuthor {
		t.Errorf("record = %+v, want zero-line run", recs[0])
	}
}

func TestHandleCommitMsg_UninitializedRepoIsNoop(t *testing.T) {
	root := t.TempDir()
	t.Setenv("COAUTHOR_PROJECT_DIR", root)

	msgFile := filepath.Join(root, "COMMIT_EDITMSG")
	if err := os.WriteFile(msgFile, []byte("Fix bug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := HandleCommitMsg(msgFile); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, ".git", "coauthor")); !os.IsNotExist(err) {
		t.Errorf("hook created state in an uninitialized repo")
	}
}
