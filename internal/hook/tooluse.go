// Package hook implements the editor and git hook entry points. Hooks
// are best-effort: they log failures and never block the caller.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jensroland/git-coauthor/internal/debug"
	"github.com/jensroland/git-coauthor/internal/git"
	"github.com/jensroland/git-coauthor/internal/project"
	"github.com/jensroland/git-coauthor/internal/snapshot"
)

// toolPayload is the PostToolUse JSON shape delivered on stdin by the
// editor integration (Claude Code). Only edit-shaped tools carry the
// fields below; everything else decodes to an empty payload.
type toolPayload struct {
	ToolName  string `json:"tool_name"`
	ToolInput struct {
		FilePath  string `json:"file_path"`
		OldString string `json:"old_string"`
		NewString string `json:"new_string"`
		Content   string `json:"content"`
		Edits     []struct {
			OldString string `json:"old_string"`
			NewString string `json:"new_string"`
		} `json:"edits"`
	} `json:"tool_input"`
}

// HandlePostToolUse captures one change snapshot from a tool-use
// payload. The snapshot records the added and deleted lines of the
// edit under the current branch and timestamp, forming the reference
// corpus for later attribution runs.
func HandlePostToolUse(r io.Reader) error {
	root, err := project.FindRoot()
	if err != nil {
		return err
	}
	if !project.IsInitialized(root) {
		return nil
	}
	paths := project.NewPaths(root)

	raw, err := io.ReadAll(r)
	if err != nil || len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}

	var payload toolPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		debug.Log(paths.CacheDir, "hook.log", fmt.Sprintf("bad payload: %v", err), nil)
		return nil
	}

	change, ok := extractChange(payload, root)
	if !ok {
		return nil
	}

	snap := snapshot.Snapshot{
		Branch:  git.CurrentBranch(root),
		Changes: []snapshot.FileChange{change},
	}
	if err := snapshot.Write(paths.SnapshotDir, snap); err != nil {
		debug.Log(paths.CacheDir, "hook.log", fmt.Sprintf("write snapshot: %v", err), nil)
		return nil
	}

	debug.Log(paths.CacheDir, "hook.log",
		fmt.Sprintf("captured %s: +%d/-%d lines (%s)",
			change.File, len(change.Additions), len(change.Deletions), payload.ToolName), nil)
	return nil
}

// extractChange turns a tool payload into one FileChange. Write tools
// deliver whole-file content; Edit tools deliver old/new pairs;
// MultiEdit delivers a list of pairs.
func extractChange(payload toolPayload, root string) (snapshot.FileChange, bool) {
	in := payload.ToolInput
	if in.FilePath == "" {
		return snapshot.FileChange{}, false
	}

	change := snapshot.FileChange{File: relativize(in.FilePath, root)}

	switch {
	case len(in.Edits) > 0:
		for _, e := range in.Edits {
			adds, dels := LineDiff(e.OldString, e.NewString)
			change.Additions = append(change.Additions, adds...)
			change.Deletions = append(change.Deletions, dels...)
		}
	case in.OldString != "" || in.NewString != "":
		change.Additions, change.Deletions = LineDiff(in.OldString, in.NewString)
	case in.Content != "":
		change.Additions, _ = LineDiff("", in.Content)
	default:
		return snapshot.FileChange{}, false
	}

	if len(change.Additions) == 0 && len(change.Deletions) == 0 {
		return snapshot.FileChange{}, false
	}
	return change, true
}

func relativize(path, root string) string {
	rel := strings.TrimPrefix(path, root)
	return strings.TrimPrefix(rel, "/")
}
