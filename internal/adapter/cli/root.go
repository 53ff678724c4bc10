// Package cli wires Trueflow's four external operations (review, inspect,
// mark, diff) onto a cobra command tree, following the teacher's
// SilenceUsage/SilenceErrors/version-flag skeleton.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/ledger"
	"github.com/trueflow-dev/trueflow/internal/observability"
)

// ErrVersionRequested is returned by the root command after it prints the
// version for --version, so the caller can exit 0 without treating it as a
// failure.
var ErrVersionRequested = errors.New("version requested")

// Arguments carries the I/O streams a caller wires to the command tree.
type Arguments struct {
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Dependencies carries everything the command tree needs beyond parsed
// flags: the repository root, the review ledger, default exclusions, the
// reviewer identity, and a logger.
type Dependencies struct {
	RepoRoot           string
	Store              *ledger.Store
	DefaultExcludeKind []block.Kind
	ReviewerIdentity   string
	Logger             observability.Logger
	Version            string

	// ScanConcurrency bounds how many files review scans in parallel. Zero
	// or negative falls back to a default of 4.
	ScanConcurrency int
}

// NewRootCommand builds the Trueflow root command with review, inspect,
// mark, and diff as flat subcommands.
func NewRootCommand(deps Dependencies) *cobra.Command {
	var showVersion bool

	root := &cobra.Command{
		Use:           "trueflow",
		Short:         "Track what has and hasn't been reviewed in a working tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), deps.Version)
				return ErrVersionRequested
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), deps.Version)
				return ErrVersionRequested
			}
			return cmd.Help()
		},
	}
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "print the version and exit")

	root.AddCommand(
		newReviewCommand(deps),
		newInspectCommand(deps),
		newMarkCommand(deps),
		newDiffCommand(deps),
	)

	return root
}
