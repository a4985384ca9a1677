package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/repoguard/internal/checks"
	"github.com/vvka-141/repoguard/internal/files/scanner"
	"github.com/vvka-141/repoguard/internal/logging"
	"github.com/vvka-141/repoguard/internal/report"
	"github.com/vvka-141/repoguard/internal/rules"
	"github.com/vvka-141/repoguard/pkg/repoguard"
)

// binaryNames are the standalone executables, one per check.
var binaryNames = map[string]string{
	checks.NameSensitive:   "check-sensitive-files",
	checks.NameSize:        "check-file-size",
	checks.NameWhitespace:  "fix-whitespace",
	checks.NameFrontmatter: "validate-frontmatter",
	checks.NameConsistency: "validate-consistency",
}

func binaryName(check string) string {
	if name, ok := binaryNames[check]; ok {
		return name
	}
	return check
}

func checkNames() []string {
	return checks.Names()
}

// newCheckCmd builds the command running one check.
func newCheckCmd(name string) *cobra.Command {
	check, err := checks.Lookup(name, checks.Options{})
	if err != nil {
		panic(err)
	}

	cmd := &cobra.Command{
		Use:     name,
		Short:   check.Description(),
		Aliases: []string{binaryName(name)},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(cmd, []string{name})
		},
	}
	if name == checks.NameWhitespace {
		addCheckOnlyFlag(cmd)
	}
	return cmd
}

func newAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every check in sequence",
		Long: `Run every check in sequence and fail if any of them reports an error.

A fatal I/O error stops the sequence; reports of checks that already ran are
kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(cmd, checkNames())
		},
	}
	addCheckOnlyFlag(cmd)
	return cmd
}

func addCheckOnlyFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("check", false, "Report files needing whitespace normalization instead of rewriting them")
}

// runChecks runs the named checks over --root and prints one report per
// check. The returned error wraps ErrViolationsFound when any check failed.
func runChecks(cmd *cobra.Command, names []string) error {
	verbose := getVerboseFlag(cmd)
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	var opts checks.Options
	if cmd.Flags().Lookup("check") != nil {
		if opts.CheckOnly, err = cmd.Flags().GetBool("check"); err != nil {
			return err
		}
	}

	logger := logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), verbose)
	logger.Verbose("Root: %s", root)
	logger.Verbose("JSON output: %v", asJSON)

	s := scanner.NewScanner(rules.DefaultExclusions())
	exists, err := s.DirExists(root)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s is not a directory: %w", root, repoguard.ErrRootNotFound)
	}

	var printer report.Printer = report.NewHumanPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if asJSON {
		printer = report.NewJSONPrinter(cmd.OutOrStdout())
	}

	var failures []error
	for _, name := range names {
		check, err := checks.Lookup(name, opts)
		if err != nil {
			return err
		}

		logger.Verbose("Running %s check", name)
		rc := report.NewRunContext(name, root, s, logger)
		if err := check.Run(rc); err != nil {
			return fmt.Errorf("%s check aborted: %w", name, err)
		}
		if err := printer.Print(rc); err != nil {
			return fmt.Errorf("failed to print %s report: %w", name, err)
		}
		if err := rc.Summary().Err(); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
