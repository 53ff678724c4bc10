package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/trueflow-dev/trueflow/internal/adapter/output/jsonout"
	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/diffstate"
	"github.com/trueflow-dev/trueflow/internal/fsrepo"
	"github.com/trueflow-dev/trueflow/internal/lang"
	"github.com/trueflow-dev/trueflow/internal/splitter"
	"github.com/trueflow-dev/trueflow/internal/trueflowerr"
)

func newDiffCommand(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "List blocks changed since the last diff, for editor integration",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := fsrepo.ListCandidates(deps.RepoRoot)
			if err != nil {
				return trueflowerr.NewIO(deps.RepoRoot, "list candidate files: "+err.Error())
			}

			snapshotPath := filepath.Join(deps.RepoRoot, diffstate.DefaultPath)
			previous, err := diffstate.Load(snapshotPath)
			if err != nil {
				return err
			}

			var changed []block.Block
			var statuses []block.Status
			current := make(map[block.Fingerprint]bool)

			repo := fsrepo.New(deps.RepoRoot)
			for _, path := range paths {
				source, readErr := repo.ReadFile(path)
				if readErr != nil {
					continue // scanner policy: one file's I/O failure never aborts the walk
				}
				l := lang.Detect(path, source)
				for _, top := range splitter.SplitFile(path, l, source) {
					changed, statuses, err = collectChanged(top, l, previous, current, deps, changed, statuses)
					if err != nil {
						return err
					}
				}
			}

			if err := diffstate.Save(snapshotPath, current); err != nil {
				return err
			}

			return jsonout.WriteBlocks(cmd.OutOrStdout(), changed, statuses)
		},
	}

	return cmd
}

// collectChanged walks b and its sub-splits, recording every fingerprint
// into current and appending to changed/statuses any block whose
// fingerprint was absent from the previous snapshot.
func collectChanged(
	b block.Block,
	l lang.Language,
	previous map[block.Fingerprint]bool,
	current map[block.Fingerprint]bool,
	deps Dependencies,
	changed []block.Block,
	statuses []block.Status,
) ([]block.Block, []block.Status, error) {
	current[b.Fingerprint] = true

	if !previous[b.Fingerprint] {
		status, err := statusFor(deps.Store, b, l)
		if err != nil {
			return nil, nil, err
		}
		changed = append(changed, b)
		statuses = append(statuses, status)
	}

	var err error
	for _, sub := range splitter.SplitBlock(b, l) {
		changed, statuses, err = collectChanged(sub, l, previous, current, deps, changed, statuses)
		if err != nil {
			return nil, nil, err
		}
	}
	return changed, statuses, nil
}
