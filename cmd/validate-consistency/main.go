package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/repoguard/internal/checks"
	"github.com/vvka-141/repoguard/internal/cli"
	"github.com/vvka-141/repoguard/pkg/repoguard"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(repoguard.ExitPanic)
		}
	}()

	if err := cli.ExecuteCheck(checks.NameConsistency); err != nil {
		os.Exit(repoguard.ExitCodeForError(err))
	}
}
