package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jensroland/git-coauthor/internal/git"
	"github.com/jensroland/git-coauthor/internal/project"
)

// RunDisable handles the "disable" subcommand: remove the git hooks
// and, with --purge, the captured snapshots and history.
func RunDisable(args []string) {
	fs := flag.NewFlagSet("disable", flag.ExitOnError)
	purge := fs.Bool("purge", false, "Also delete captured snapshots and run history")
	fs.Parse(args)

	root, err := git.RevParseTopLevel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: not inside a git repository")
		os.Exit(1)
	}
	paths := project.NewPaths(root)

	for _, hookName := range []string{"prepare-commit-msg", "commit-msg"} {
		if removed := removeGitHook(paths.HooksDir, hookName); removed {
			fmt.Printf("  ✓ %s hook removed\n", hookName)
		}
	}

	if *purge {
		if err := os.RemoveAll(paths.CacheDir); err != nil {
			fmt.Fprintf(os.Stderr, "Error removing %s: %v\n", paths.CacheDir, err)
			os.Exit(1)
		}
		fmt.Printf("  ✓ Snapshots and history removed\n")
	}
	fmt.Println("git-coauthor disabled for this repo.")
}

// removeGitHook strips our marker line from a hook script, deleting
// the script entirely when nothing else remains.
func removeGitHook(hooksDir, hookName string) bool {
	path := filepath.Join(hooksDir, hookName)
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if !strings.Contains(string(data), hookMarker) {
		return false
	}

	var kept []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.Contains(line, hookMarker) {
			continue
		}
		kept = append(kept, line)
	}

	rest := strings.TrimSpace(strings.Join(kept, "\n"))
	if rest == "" || rest == "#!/bin/sh" {
		_ = os.Remove(path)
		return true
	}
	_ = os.WriteFile(path, []byte(strings.Join(kept, "\n")), 0o755)
	return true
}
