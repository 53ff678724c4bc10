package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trueflow-dev/trueflow/internal/adapter/output/human"
	"github.com/trueflow-dev/trueflow/internal/adapter/output/jsonout"
	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/fsrepo"
	"github.com/trueflow-dev/trueflow/internal/observability"
	"github.com/trueflow-dev/trueflow/internal/scanner"
	"github.com/trueflow-dev/trueflow/internal/trueflowerr"
)

func newReviewCommand(deps Dependencies) *cobra.Command {
	var asJSON bool
	var excludeNames []string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "List unreviewed blocks across the working tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			exclude, err := parseExcludeKinds(excludeNames, deps.DefaultExcludeKind)
			if err != nil {
				return err
			}

			paths, err := fsrepo.ListCandidates(deps.RepoRoot)
			if err != nil {
				return trueflowerr.NewIO(deps.RepoRoot, "list candidate files: "+err.Error())
			}
			absRoot, err := filepath.Abs(deps.RepoRoot)
			if err != nil {
				return trueflowerr.NewIO(deps.RepoRoot, "resolve repo root: "+err.Error())
			}
			for i, p := range paths {
				if rel, relErr := filepath.Rel(absRoot, p); relErr == nil {
					paths[i] = rel
				}
			}

			concurrency := deps.ScanConcurrency
			if concurrency <= 0 {
				concurrency = 4
			}
			reports, err := scanner.Scan(cmd.Context(), paths, deps.Store, scanner.Options{
				Root:        deps.RepoRoot,
				Exclude:     exclude,
				Concurrency: concurrency,
			})
			if err != nil {
				return err
			}

			if deps.Logger != nil {
				deps.Logger.Info("scan complete",
					observability.F("files", len(reports)),
					observability.F("repo_root", deps.RepoRoot),
				)
				if corrupt := deps.Store.CorruptLines(); corrupt > 0 {
					deps.Logger.Error("ledger contains corrupt lines",
						observability.F("count", corrupt),
					)
				}
			}

			if asJSON {
				return jsonout.WriteFileReports(cmd.OutOrStdout(), reports)
			}
			return human.WriteFileReports(cmd.OutOrStdout(), reports, IsOutputTerminal())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit a JSON array of FileReport instead of human text")
	cmd.Flags().StringArrayVar(&excludeNames, "exclude", nil, "Kind name to exclude from the report (repeatable)")

	return cmd
}

// parseExcludeKinds resolves --exclude flag values (case-insensitive) into
// the exclude set Scanner expects, falling back to defaultKinds (or, if that
// is empty, scanner.DefaultExcludeKinds) when none were given.
func parseExcludeKinds(names []string, defaultKinds []block.Kind) (map[block.Kind]bool, error) {
	if len(names) == 0 {
		out := make(map[block.Kind]bool, len(defaultKinds))
		for _, k := range defaultKinds {
			out[k] = true
		}
		if len(out) == 0 {
			return scanner.DefaultExcludeKinds(), nil
		}
		return out, nil
	}

	out := make(map[block.Kind]bool, len(names))
	for _, name := range names {
		k, ok := block.ParseKind(normalizeKindName(name))
		if !ok {
			return nil, &trueflowerr.Error{Kind: trueflowerr.KindInvalidFingerprint, Message: "unknown kind name " + name}
		}
		out[k] = true
	}
	return out, nil
}

// normalizeKindName title-cases a user-supplied kind name (e.g. "gap",
// "FUNCTION") to match the exact wire spelling block.ParseKind expects.
func normalizeKindName(name string) string {
	for _, k := range allKindNames {
		if strings.EqualFold(k, name) {
			return k
		}
	}
	return name
}

var allKindNames = []string{
	"File", "ImportBlock", "Constant", "Function", "FunctionSignature",
	"Class", "Struct", "Enum", "CodeParagraph", "Comment", "TextBlock",
	"Paragraph", "List", "CodeFence", "Heading", "Gap",
}
