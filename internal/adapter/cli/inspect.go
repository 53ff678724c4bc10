package cli

import (
	"github.com/spf13/cobra"

	"github.com/trueflow-dev/trueflow/internal/adapter/output/jsonout"
	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/splitter"
	"github.com/trueflow-dev/trueflow/internal/trueflowerr"
)

func newInspectCommand(deps Dependencies) *cobra.Command {
	var fingerprintHex string
	var split bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show a block, or its sub-blocks with --split",
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, ok := block.ParseFingerprint(fingerprintHex)
			if !ok {
				return trueflowerr.NewInvalidFingerprint(fingerprintHex)
			}

			b, l, found, err := findBlock(deps.RepoRoot, fp)
			if err != nil {
				return err
			}
			if !found {
				return trueflowerr.NewNoSuchBlock(fingerprintHex)
			}

			if !split {
				status, err := statusFor(deps.Store, b, l)
				if err != nil {
					return err
				}
				return jsonout.WriteBlock(cmd.OutOrStdout(), b, status)
			}

			subs := splitter.SplitBlock(b, l)
			statuses := make([]block.Status, len(subs))
			for i, sub := range subs {
				status, err := statusFor(deps.Store, sub, l)
				if err != nil {
					return err
				}
				statuses[i] = status
			}
			return jsonout.WriteBlocks(cmd.OutOrStdout(), subs, statuses)
		},
	}

	cmd.Flags().StringVar(&fingerprintHex, "fingerprint", "", "64-char hex fingerprint to inspect (required)")
	cmd.Flags().BoolVar(&split, "split", false, "show the block's sub-blocks instead of the block itself")
	cmd.MarkFlagRequired("fingerprint")

	return cmd
}
