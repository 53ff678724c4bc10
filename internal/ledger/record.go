// Package ledger is the Review Store (§4.5): an append-only, newline-
// delimited JSON log of verdicts keyed by block fingerprint, plus the
// query-time join that derives a Block's effective Status from it.
package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/trueflow-dev/trueflow/internal/block"
)

// Verdict is the closed set of reviewer dispositions a Record can carry.
// Comment is metadata only: it never changes a block's effective status
// but is surfaced to the reviewer (§3).
type Verdict int

const (
	VerdictApproved Verdict = iota
	VerdictRejected
	VerdictComment
)

func (v Verdict) String() string {
	switch v {
	case VerdictRejected:
		return "rejected"
	case VerdictComment:
		return "comment"
	default:
		return "approved"
	}
}

// ParseVerdict resolves the wire string back to a Verdict.
func ParseVerdict(s string) (Verdict, bool) {
	switch s {
	case "approved":
		return VerdictApproved, true
	case "rejected":
		return VerdictRejected, true
	case "comment":
		return VerdictComment, true
	default:
		return 0, false
	}
}

// Record is one immutable ledger entry: a reviewer's disposition on a
// single block fingerprint, recorded once and never mutated or deleted
// (§3). Label names an open-set tag (security, legal, code, general,
// product, or any caller-supplied string).
type Record struct {
	Fingerprint block.Fingerprint
	Verdict     Verdict
	Note        string
	Reviewer    string
	Label       string
	Timestamp   time.Time
}

// recordWire is the on-disk JSON shape of a Record (§6): hex fingerprint, a
// plain verdict string, and a millisecond epoch timestamp rather than the
// in-memory types.
type recordWire struct {
	Fingerprint string `json:"fingerprint"`
	Verdict     string `json:"verdict"`
	Note        string `json:"note"`
	Reviewer    string `json:"reviewer"`
	Label       string `json:"label"`
	Timestamp   int64  `json:"ts"`
}

// MarshalJSON renders r in the wire schema of §6.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordWire{
		Fingerprint: r.Fingerprint.String(),
		Verdict:     r.Verdict.String(),
		Note:        r.Note,
		Reviewer:    r.Reviewer,
		Label:       r.Label,
		Timestamp:   r.Timestamp.UnixMilli(),
	})
}

// UnmarshalJSON parses a line of the wire schema back into r. A malformed
// fingerprint or unknown verdict string is reported as an error so callers
// can treat it as a corrupt line (§4.5) rather than a panic. Unknown
// additional fields are tolerated silently, matching §6's "unknown fields
// are permitted" rule.
func (r *Record) UnmarshalJSON(data []byte) error {
	var w recordWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	fp, ok := block.ParseFingerprint(w.Fingerprint)
	if !ok {
		return fmt.Errorf("ledger: malformed fingerprint %q", w.Fingerprint)
	}
	v, ok := ParseVerdict(w.Verdict)
	if !ok {
		return fmt.Errorf("ledger: unknown verdict %q", w.Verdict)
	}
	r.Fingerprint = fp
	r.Verdict = v
	r.Note = w.Note
	r.Reviewer = w.Reviewer
	r.Label = w.Label
	r.Timestamp = time.UnixMilli(w.Timestamp).UTC()
	return nil
}
