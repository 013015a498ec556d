package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jensroland/git-coauthor/internal/git"
	"github.com/jensroland/git-coauthor/internal/project"
)

// RunEnable handles the "enable" subcommand: install the git hooks and
// snapshot directory in this repo, and optionally the global Claude
// Code capture hook.
func RunEnable(args []string) {
	fs := flag.NewFlagSet("enable", flag.ExitOnError)
	global := fs.Bool("global", false, "Also configure the Claude Code capture hook globally")
	fs.Parse(args)

	if *global {
		enableGlobal()
	}
	enableRepo()
}

func enableGlobal() {
	fmt.Println("Installing the capture hook globally...")

	binaryPath, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not determine binary path: %v\n", err)
		os.Exit(1)
	}

	settingsFile := filepath.Join(os.Getenv("HOME"), ".claude", "settings.json")
	_ = os.MkdirAll(filepath.Dir(settingsFile), 0o755)

	var settings map[string]interface{}
	if data, err := os.ReadFile(settingsFile); err == nil {
		_ = json.Unmarshal(data, &settings)
	}
	if settings == nil {
		settings = map[string]interface{}{}
	}

	hooks, _ := settings["hooks"].(map[string]interface{})
	if hooks == nil {
		hooks = map[string]interface{}{}
	}

	postTool := filterHookEntries(hooks, "PostToolUse", "git-coauthor")
	postTool = append(postTool, map[string]interface{}{
		"matcher": "Edit|Write|MultiEdit",
		"hooks": []interface{}{map[string]interface{}{
			"type": "command", "command": binaryPath + " hook post-tool-use",
		}},
	})
	hooks["PostToolUse"] = postTool
	settings["hooks"] = hooks

	b, _ := json.MarshalIndent(settings, "", "  ")
	if err := os.WriteFile(settingsFile, append(b, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing settings: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  ✓ Claude Code capture hook configured in %s\n", settingsFile)
}

// filterHookEntries drops existing hook entries whose command mentions
// exclude, so re-enabling never duplicates entries.
func filterHookEntries(hooks map[string]interface{}, key, exclude string) []interface{} {
	existing, _ := hooks[key].([]interface{})
	var filtered []interface{}
	for _, entry := range existing {
		e, ok := entry.(map[string]interface{})
		if !ok {
			filtered = append(filtered, entry)
			continue
		}
		hooksList, _ := e["hooks"].([]interface{})
		hasExcluded := false
		for _, h := range hooksList {
			if hm, ok := h.(map[string]interface{}); ok {
				cmd, _ := hm["command"].(string)
				if strings.Contains(cmd, exclude) {
					hasExcluded = true
					break
				}
			}
		}
		if !hasExcluded {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func enableRepo() {
	root, err := git.RevParseTopLevel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: not inside a git repository")
		os.Exit(1)
	}
	paths := project.NewPaths(root)

	fmt.Printf("Initializing git-coauthor in %s\n", root)

	if err := os.MkdirAll(paths.SnapshotDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", paths.SnapshotDir, err)
		os.Exit(1)
	}
	fmt.Printf("  ✓ Snapshot store at %s\n", paths.SnapshotDir)

	binaryPath, err := os.Executable()
	if err != nil {
		binaryPath = "git-coauthor"
	}

	for hookName, sub := range map[string]string{
		"prepare-commit-msg": "prepare-commit-msg",
		"commit-msg":         "commit-msg",
	} {
		if err := installGitHook(paths.HooksDir, hookName, binaryPath, sub); err != nil {
			fmt.Fprintf(os.Stderr, "Error installing %s hook: %v\n", hookName, err)
			os.Exit(1)
		}
		fmt.Printf("  ✓ %s hook installed\n", hookName)
	}
}

const hookMarker = "# git-coauthor hook"

// installGitHook writes (or appends to) a hook script in .git/hooks.
// Existing hook content is preserved; re-installation is idempotent.
func installGitHook(hooksDir, hookName, binaryPath, subcommand string) error {
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(hooksDir, hookName)
	line := fmt.Sprintf("%s hook %s \"$1\" %s\n", binaryPath, subcommand, hookMarker)

	existing, err := os.ReadFile(path)
	if err == nil {
		if strings.Contains(string(existing), hookMarker) {
			return nil
		}
		content := strings.TrimRight(string(existing), "\n") + "\n" + line
		return os.WriteFile(path, []byte(content), 0o755)
	}
	return os.WriteFile(path, []byte("#!/bin/sh\n"+line), 0o755)
}
