// Package git shells out to the git CLI for the handful of queries the
// tool needs. Every helper degrades to a zero value on failure; git
// being unavailable or the repo being empty must never abort a run.
package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Author returns the git user.name config value.
func Author() string {
	out, err := exec.Command("git", "config", "user.name").Output()
	if err != nil {
		return "unknown"
	}
	name := strings.TrimSpace(string(out))
	if name == "" {
		return "unknown"
	}
	return name
}

// RevParseTopLevel returns the git repo root.
func RevParseTopLevel() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", fmt.Errorf("not inside a git repository")
	}
	return strings.TrimSpace(string(out)), nil
}

// CurrentBranch returns the checked-out branch name, or "detached"
// when HEAD is detached or the query fails.
func CurrentBranch(root string) string {
	cmd := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return "detached"
	}
	branch := strings.TrimSpace(string(out))
	if branch == "" || branch == "HEAD" {
		return "detached"
	}
	return branch
}

// Diff returns the unified diff of pending changes against HEAD:
// the staged changes when staged is true, the working tree otherwise.
// Any failure (no HEAD yet, not a repo) yields an empty string.
func Diff(root string, staged bool) string {
	args := []string{"diff", "HEAD"}
	if staged {
		args = []string{"diff", "--cached", "HEAD"}
	}
	cmd := exec.Command("git", args...)
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return string(out)
}

// StagedFiles returns the paths of files with staged changes.
func StagedFiles(root string) []string {
	cmd := exec.Command("git", "diff", "--cached", "--name-only", "HEAD")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil
	}
	var files []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line != "" {
			files = append(files, line)
		}
	}
	return files
}
