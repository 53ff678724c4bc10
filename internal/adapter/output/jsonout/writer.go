// Package jsonout renders Scanner output as machine-readable JSON, the
// format `review --json`, `inspect`, and `diff --json` all emit (§6).
package jsonout

import (
	"encoding/json"
	"io"

	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/scanner"
)

// blockReport is the wire shape of one reported block: hex fingerprint and
// plain Kind/Status names rather than the in-memory integer enums.
type blockReport struct {
	Kind      string `json:"kind"`
	File      string `json:"file"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Hash      string `json:"hash"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	Approved  int    `json:"approved,omitempty"`
	Total     int    `json:"total,omitempty"`
}

// fileReport is the wire shape of one FileReport.
type fileReport struct {
	Path     string        `json:"path"`
	Language string        `json:"language"`
	Blocks   []blockReport `json:"blocks"`
	Error    string        `json:"error,omitempty"`
}

// WriteFileReports renders a slice of scanner.FileReport as a JSON array.
func WriteFileReports(w io.Writer, reports []scanner.FileReport) error {
	out := make([]fileReport, len(reports))
	for i, r := range reports {
		out[i] = toFileReport(r)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteBlock renders a single block and its status, the shape `inspect`
// returns without --split.
func WriteBlock(w io.Writer, b block.Block, status block.Status) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toBlockReport(b, status))
}

// WriteBlocks renders a slice of blocks with their statuses, the shape
// `inspect --split` and `diff --json` return.
func WriteBlocks(w io.Writer, blocks []block.Block, statuses []block.Status) error {
	out := make([]blockReport, len(blocks))
	for i, b := range blocks {
		out[i] = toBlockReport(b, statuses[i])
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toFileReport(r scanner.FileReport) fileReport {
	blocks := make([]blockReport, len(r.Blocks))
	for i, bs := range r.Blocks {
		blocks[i] = toBlockReport(bs.Block, bs.Status)
	}
	out := fileReport{
		Path:     r.Path,
		Language: r.Language.String(),
		Blocks:   blocks,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}

func toBlockReport(b block.Block, status block.Status) blockReport {
	return blockReport{
		Kind:      b.Kind.String(),
		File:      b.File,
		StartLine: b.StartLine,
		EndLine:   b.EndLine,
		Hash:      b.Fingerprint.String(),
		Content:   string(b.RawContent),
		Status:    status.String(),
		Approved:  status.Approved,
		Total:     status.Total,
	}
}
