// Package human renders Scanner output as readable text, the default
// (non-JSON) format for `review` (§6).
package human

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/scanner"
)

var caser = cases.Title(language.English)

const (
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// WriteFileReports renders reports as one block per line, grouped under a
// path header, matching the density of a terminal-friendly review listing.
// A report whose Err is set (the file itself failed to read or parse)
// prints as a single error line instead of a block group. colorize controls
// whether status text is wrapped in ANSI color codes; callers pass false
// when stdout isn't a terminal so output stays plain for pipes and
// redirection.
func WriteFileReports(w io.Writer, reports []scanner.FileReport, colorize bool) error {
	total := 0
	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(w, "%s: error: %s\n\n", r.Path, r.Err)
			continue
		}
		if len(r.Blocks) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s (%s)\n", r.Path, r.Language)
		for _, bs := range r.Blocks {
			writeBlockLine(w, bs.Block, bs.Status, colorize)
			total++
		}
		fmt.Fprintln(w)
	}
	if total == 0 {
		fmt.Fprintln(w, "nothing unreviewed")
		return nil
	}
	fmt.Fprintf(w, "%d unreviewed block(s)\n", total)
	return nil
}

// WriteBlock renders a single block with its status as one line.
func WriteBlock(w io.Writer, b block.Block, status block.Status, colorize bool) error {
	writeBlockLine(w, b, status, colorize)
	return nil
}

// WriteBlocks renders a slice of blocks, one line each, paired with the
// status at the same index.
func WriteBlocks(w io.Writer, blocks []block.Block, statuses []block.Status, colorize bool) error {
	for i, b := range blocks {
		writeBlockLine(w, b, statuses[i], colorize)
	}
	return nil
}

func writeBlockLine(w io.Writer, b block.Block, status block.Status, colorize bool) {
	fmt.Fprintf(w, "  [%s] %s:%d-%d %s %s\n",
		caser.String(b.Kind.String()),
		b.File, b.StartLine, b.EndLine,
		b.Fingerprint.String()[:12],
		statusText(status, colorize),
	)
}

func statusText(s block.Status, colorize bool) string {
	text := caser.String(s.Kind.String())
	if s.Kind == block.StatusPartial {
		text = fmt.Sprintf("Partial(%d/%d)", s.Approved, s.Total)
	}
	if !colorize {
		return text
	}
	switch s.Kind {
	case block.StatusApproved, block.StatusImplicitlyApproved:
		return colorGreen + text + colorReset
	case block.StatusRejected:
		return colorRed + text + colorReset
	default:
		return colorYellow + text + colorReset
	}
}
