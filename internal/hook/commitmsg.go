package hook

import (
	"fmt"
	"os"

	"github.com/jensroland/git-coauthor/internal/attribution"
	"github.com/jensroland/git-coauthor/internal/commitmsg"
	"github.com/jensroland/git-coauthor/internal/debug"
	"github.com/jensroland/git-coauthor/internal/git"
	"github.com/jensroland/git-coauthor/internal/history"
	"github.com/jensroland/git-coauthor/internal/project"
)

// HandlePrepareCommitMsg fills in a generated subject line when the
// commit message file has none yet. Messages the user already wrote
// are left untouched.
func HandlePrepareCommitMsg(msgFile string) error {
	root, err := project.FindRoot()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(msgFile)
	if err != nil {
		return err
	}
	msg := string(data)
	if !commitmsg.SubjectMissing(msg) {
		return nil
	}

	subject := commitmsg.Summary(git.StagedFiles(root))
	return os.WriteFile(msgFile, []byte(subject+"\n"+msg), 0o644)
}

// HandleCommitMsg runs the attribution engine over the staged diff,
// records the run in history, and appends the co-author trailer when
// the policy calls for one.
func HandleCommitMsg(msgFile string) error {
	root, err := project.FindRoot()
	if err != nil {
		return err
	}
	if !project.IsInitialized(root) {
		return nil
	}
	paths := project.NewPaths(root)

	res, _, snapCount := attribution.RunDetailed(paths, attribution.Options{Staged: true})

	if err := history.Append(paths.HistoryFile, history.Record{
		Branch:        git.CurrentBranch(root),
		TotalLines:    res.TotalLines,
		AILines:       res.AIGeneratedLines,
		AIPercentage:  res.AIPercentage,
		NeedsCoAuthor: res.NeedsCoAuthor,
		Snapshots:     snapCount,
	}); err != nil {
		debug.Log(paths.CacheDir, "hook.log", fmt.Sprintf("record run: %v", err), nil)
	}

	debug.Log(paths.CacheDir, "hook.log",
		fmt.Sprintf("commit-msg: %d/%d lines AI (%.1f%%), co-author=%v",
			res.AIGeneratedLines, res.TotalLines, res.AIPercentage, res.NeedsCoAuthor), nil)

	if !res.NeedsCoAuthor {
		return nil
	}

	data, err := os.ReadFile(msgFile)
	if err != nil {
		return err
	}
	return os.WriteFile(msgFile, []byte(commitmsg.AppendCoAuthor(string(data))), 0o644)
}
