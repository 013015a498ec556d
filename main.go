package main

import (
	"fmt"
	"os"

	"github.com/jensroland/git-coauthor/cmd"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		cmd.RunCheck(os.Args[1:])
		return
	}

	switch os.Args[1] {
	case "hook":
		cmd.RunHook(os.Args[2:])
	case "enable":
		cmd.RunEnable(os.Args[2:])
	case "disable":
		cmd.RunDisable(os.Args[2:])
	case "--version":
		fmt.Println("git-coauthor", version)
	default:
		cmd.RunCheck(os.Args[1:])
	}
}
