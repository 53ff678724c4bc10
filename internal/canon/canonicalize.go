// Package canon implements Trueflow's canonicalization pass: the pure
// function that normalizes a block's raw bytes prior to fingerprinting.
// Canonicalization is the only source of fingerprint stability and is never
// used to produce displayed text (§4.2 of the spec).
package canon

import (
	"bytes"

	"github.com/trueflow-dev/trueflow/internal/block"
)

// Canonicalize normalizes raw according to the rules for kind:
//  1. line endings folded to LF
//  2. trailing whitespace stripped per line
//  3. for code kinds: blank-line runs collapsed to one, leading/trailing
//     blank lines stripped, common leading indentation removed
//  4. for text kinds: blank-line runs collapsed and leading/trailing blank
//     lines stripped as for code kinds, and internal runs of ASCII
//     space/tab folded to a single space (word order is never changed);
//     common indentation is not removed
//
// Invalid UTF-8 is passed through unchanged. Canonicalize is pure: repeated
// calls on the same (raw, kind) always produce byte-identical output, and
// Canonicalize(Canonicalize(x, k), k) == Canonicalize(x, k).
func Canonicalize(raw []byte, kind block.Kind) []byte {
	lines := splitLines(normalizeNewlines(raw))
	for i := range lines {
		lines[i] = stripTrailingWhitespace(lines[i])
	}

	if kind.IsTextKind() {
		for i := range lines {
			lines[i] = foldInternalWhitespace(lines[i])
		}
	}

	if kind.IsCodeKind() || kind.IsTextKind() {
		lines = trimBlankEdges(lines)
		lines = collapseBlankRuns(lines)
	}

	if kind.IsCodeKind() {
		lines = stripCommonIndent(lines)
	}

	return bytes.Join(lines, []byte{'\n'})
}

// normalizeNewlines folds CRLF and lone CR to LF.
func normalizeNewlines(raw []byte) []byte {
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	raw = bytes.ReplaceAll(raw, []byte("\r"), []byte("\n"))
	return raw
}

func splitLines(b []byte) [][]byte {
	return bytes.Split(b, []byte{'\n'})
}

func stripTrailingWhitespace(line []byte) []byte {
	return bytes.TrimRight(line, " \t")
}

// foldInternalWhitespace collapses runs of ASCII space/tab to a single
// space, without altering leading indentation handling done elsewhere or
// reordering any word.
func foldInternalWhitespace(line []byte) []byte {
	out := make([]byte, 0, len(line))
	inRun := false
	for _, c := range line {
		if c == ' ' || c == '\t' {
			if !inRun {
				out = append(out, ' ')
				inRun = true
			}
			continue
		}
		inRun = false
		out = append(out, c)
	}
	return out
}

func isBlank(line []byte) bool {
	return len(bytes.TrimSpace(line)) == 0
}

// trimBlankEdges strips leading and trailing blank lines.
func trimBlankEdges(lines [][]byte) [][]byte {
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	end := len(lines)
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	return lines[start:end]
}

// collapseBlankRuns replaces every run of two-or-more consecutive blank
// lines with a single blank line.
func collapseBlankRuns(lines [][]byte) [][]byte {
	out := make([][]byte, 0, len(lines))
	blankRun := false
	for _, l := range lines {
		if isBlank(l) {
			if blankRun {
				continue
			}
			blankRun = true
			out = append(out, []byte{})
			continue
		}
		blankRun = false
		out = append(out, l)
	}
	return out
}

// stripCommonIndent removes the leading whitespace shared by every
// non-blank line, so moving a function into or out of a nested scope does
// not change its fingerprint.
func stripCommonIndent(lines [][]byte) [][]byte {
	common := -1
	for _, l := range lines {
		if isBlank(l) {
			continue
		}
		indent := leadingWhitespaceLen(l)
		if common == -1 || indent < common {
			common = indent
		}
	}
	if common <= 0 {
		return lines
	}
	out := make([][]byte, len(lines))
	for i, l := range lines {
		if isBlank(l) {
			out[i] = l
			continue
		}
		n := common
		if n > len(l) {
			n = len(l)
		}
		out[i] = l[n:]
	}
	return out
}

func leadingWhitespaceLen(line []byte) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}
