package ledger

import (
	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/lang"
	"github.com/trueflow-dev/trueflow/internal/splitter"
)

// EffectiveStatus implements the §3 join: a Block's derived Status is never
// stored, only computed from the ledger's direct verdicts plus the
// recursive status of its default sub-split. It always terminates because
// SplitBlock's sub-split is monotonically refining and bottoms out at the
// terminal-leaf rule (§4.4).
func (s *Store) EffectiveStatus(b block.Block, l lang.Language) (block.Status, error) {
	all, err := s.ReadAll()
	if err != nil {
		return block.Status{}, err
	}
	return effectiveStatus(b, l, byFingerprint(all)), nil
}

// byFingerprint groups ledger records by the block they verdict, so a
// single read of the ledger can serve an entire recursive join.
func byFingerprint(records []Record) map[block.Fingerprint][]Record {
	m := make(map[block.Fingerprint][]Record, len(records))
	for _, r := range records {
		m[r.Fingerprint] = append(m[r.Fingerprint], r)
	}
	return m
}

func effectiveStatus(b block.Block, l lang.Language, records map[block.Fingerprint][]Record) block.Status {
	for _, r := range records[b.Fingerprint] {
		if r.Verdict == VerdictApproved {
			return block.Status{Kind: block.StatusApproved}
		}
	}
	for _, r := range records[b.Fingerprint] {
		if r.Verdict == VerdictRejected {
			return block.Status{Kind: block.StatusRejected}
		}
	}

	subs := splitter.SplitBlock(b, l)
	if len(subs) == 0 {
		return block.Status{Kind: block.StatusUnreviewed}
	}

	approved := 0
	for _, sub := range subs {
		if effectiveStatus(sub, l, records).Reviewed() {
			approved++
		}
	}

	switch {
	case approved == len(subs):
		return block.Status{Kind: block.StatusImplicitlyApproved}
	case approved > 0:
		return block.Status{Kind: block.StatusPartial, Approved: approved, Total: len(subs)}
	default:
		return block.Status{Kind: block.StatusUnreviewed}
	}
}
