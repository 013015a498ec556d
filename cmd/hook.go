package cmd

import (
	"fmt"
	"os"

	"github.com/jensroland/git-coauthor/internal/debug"
	"github.com/jensroland/git-coauthor/internal/hook"
	"github.com/jensroland/git-coauthor/internal/project"
)

// RunHook dispatches hook subcommands. Hooks log errors instead of
// failing: a broken hook must never block an edit or a commit.
func RunHook(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: git-coauthor hook <post-tool-use|prepare-commit-msg|commit-msg>")
		os.Exit(1)
	}

	var err error
	switch args[0] {
	case "post-tool-use":
		err = hook.HandlePostToolUse(os.Stdin)
	case "prepare-commit-msg":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: git-coauthor hook prepare-commit-msg <msg-file>")
			os.Exit(1)
		}
		err = hook.HandlePrepareCommitMsg(args[1])
	case "commit-msg":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: git-coauthor hook commit-msg <msg-file>")
			os.Exit(1)
		}
		err = hook.HandleCommitMsg(args[1])
	default:
		fmt.Fprintf(os.Stderr, "Unknown hook type: %s\n", args[0])
		os.Exit(1)
	}

	if err != nil {
		if root, e := project.FindRoot(); e == nil {
			paths := project.NewPaths(root)
			debug.Log(paths.CacheDir, "hook.log", fmt.Sprintf("hook error: %v", err), nil)
		}
	}
	// Always exit 0
}
