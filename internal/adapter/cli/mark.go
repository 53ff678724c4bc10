package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/ledger"
	"github.com/trueflow-dev/trueflow/internal/trueflowerr"
)

func newMarkCommand(deps Dependencies) *cobra.Command {
	var fingerprintHex, verdictName, note, label string

	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Append a verdict record for a block",
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, ok := block.ParseFingerprint(fingerprintHex)
			if !ok {
				return trueflowerr.NewInvalidFingerprint(fingerprintHex)
			}

			verdict, ok := ledger.ParseVerdict(verdictName)
			if !ok {
				return &trueflowerr.Error{
					Kind:    trueflowerr.KindInvalidFingerprint,
					Message: "unknown verdict " + verdictName + ", want approved|rejected|comment",
				}
			}

			reviewer := deps.ReviewerIdentity

			record := ledger.Record{
				Fingerprint: fp,
				Verdict:     verdict,
				Note:        note,
				Reviewer:    reviewer,
				Label:       label,
				Timestamp:   time.Now().UTC(),
			}

			// mark is all-or-nothing: Append either writes the whole line or
			// fails entirely, never a partial record (§7).
			return deps.Store.Append(record)
		},
	}

	cmd.Flags().StringVar(&fingerprintHex, "fingerprint", "", "64-char hex fingerprint to mark (required)")
	cmd.Flags().StringVar(&verdictName, "verdict", "", "approved, rejected, or comment (required)")
	cmd.Flags().StringVar(&note, "note", "", "free-text note attached to the verdict")
	cmd.Flags().StringVar(&label, "label", "", "open-set tag (e.g. security, legal, code)")
	cmd.MarkFlagRequired("fingerprint")
	cmd.MarkFlagRequired("verdict")

	return cmd
}
