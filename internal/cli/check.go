package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kifulab/sgfkit/pkg/sgf"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	lint    bool   // run advisory checks after a successful parse
	charset string // force input charset, ignoring CA
}

// newCheckCmd creates the check command. It parses each file strictly
// and reports the first error per file; files that parse are optionally
// linted. The command fails if any file is invalid.
func newCheckCmd() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate SGF files",
		Long: `Validate SGF files against FF[4].

Parsing is strict: the first lexical, structural or value error in a file
is reported with its byte offset and the file counts as invalid. Files
that parse cleanly are linted for advisory problems (two moves in one
node, misplaced game info, ...) unless --lint=false.

Use "-" to read from standard input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg := configFromContext(c.Context())
			if !c.Flags().Changed("lint") {
				opts.lint = cfg.Lint
			}
			if opts.charset == "" {
				opts.charset = cfg.Charset
			}
			return runCheck(c.Context(), &opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.lint, "lint", true, "run advisory checks")
	cmd.Flags().StringVar(&opts.charset, "charset", "", "force input charset, ignoring CA")

	return cmd
}

func runCheck(ctx context.Context, opts *checkOpts, paths []string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	failed := 0
	for _, path := range paths {
		text, err := readInput(path, opts.charset)
		if err != nil {
			printError("%s: %v", path, err)
			failed++
			continue
		}

		collection, err := sgf.Parse(text)
		if err != nil {
			printError("%s: %v", path, err)
			failed++
			continue
		}

		var issues []sgf.LintIssue
		if opts.lint {
			issues = sgf.Lint(collection)
		}
		printSuccess("%s: %d game(s)", path, len(collection))
		for _, issue := range issues {
			printWarning("%s: %s", path, issue)
		}
	}
	prog.done(fmt.Sprintf("Checked %d file(s)", len(paths)))

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) invalid", failed, len(paths))
	}
	return nil
}
