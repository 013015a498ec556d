package cmd

import (
	"fmt"

	"github.com/jensroland/git-coauthor/internal/debug"
	"github.com/jensroland/git-coauthor/internal/project"
)

func cmdLog(paths project.Paths) {
	for _, name := range []string{"hook.log", "check.log"} {
		content := debug.Read(paths.CacheDir, name)
		if content == "" {
			continue
		}
		fmt.Printf("=== %s ===\n%s\n", name, content)
	}
}
