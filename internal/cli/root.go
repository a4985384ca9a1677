package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/repoguard/pkg/repoguard"
)

const rootLong = `repoguard runs repository hygiene checks as pre-commit hooks or CI gates.

Every check scans the current directory (or --root) and skips build output,
dependency caches and VCS metadata (.git, node_modules, dist, vendor, ...).

Checks:
  sensitive    Detect secrets, private keys and IDE state files
  size         Reject video files and files above the size limit
  whitespace   Strip trailing whitespace and normalize final newlines
  frontmatter  Validate frontmatter of agents, skills and commands
  consistency  Check name uniqueness and recommended fields

Exit Codes:
  0  - Success (warnings never fail a run)
  1  - One or more checks reported errors
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Root directory missing or fatal I/O error`

var rootCmd = newRootCmd()

// newRootCmd builds the combined command tree.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "repoguard",
		Short:        "Repository hygiene checks",
		Long:         rootLong,
		SilenceUsage: true,
	}
	addGlobalFlags(cmd)

	for _, name := range checkNames() {
		cmd.AddCommand(newCheckCmd(name))
	}
	cmd.AddCommand(newAllCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

// ExecuteCheck runs a single check as a standalone program.
func ExecuteCheck(name string) error {
	cmd := newCheckCmd(name)
	cmd.Use = binaryName(name)
	cmd.Aliases = nil
	cmd.SilenceUsage = true
	cmd.Version = versionString()
	addGlobalFlags(cmd)
	return cmd.Execute()
}

func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().String("root", repoguard.DefaultRoot, "Directory to scan")
	cmd.PersistentFlags().Bool("json", false, "Print the report as JSON")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
