package splitter

import (
	"regexp"

	"github.com/trueflow-dev/trueflow/internal/block"
)

// No tree-sitter grammar for Ruby ships in the reference corpus (see
// DESIGN.md), so Ruby top-level splitting falls back to the same
// PlainText-style line scanning §4.4 already sanctions for parse errors:
// a regex-driven recognizer for `require`/`require_relative` runs,
// `def ... end` method bodies, and `class`/`module ... end` bodies,
// everything else left as Gap.
var (
	rubyRequireRE = regexp.MustCompile(`^\s*require(_relative)?\s+['"]`)
	rubyDefRE     = regexp.MustCompile(`^\s*def\s+\S`)
	rubyClassRE   = regexp.MustCompile(`^\s*(class|module)\s+\S`)
	rubyEndRE     = regexp.MustCompile(`^\s*end\s*$`)
)

func splitRubyFile(source []byte) []block.Block {
	lines := splitKeepingLines(source)
	var out []block.Block

	i := 0
	gapStart := -1
	flushGap := func(end int) {
		if gapStart == -1 || end < gapStart {
			gapStart = -1
			return
		}
		if !allBlank(lines[gapStart : end+1]) {
			out = append(out, block.Block{
				Kind:       block.KindGap,
				StartLine:  gapStart,
				EndLine:    end,
				RawContent: joinLines(lines[gapStart : end+1]),
			})
		}
		gapStart = -1
	}

	for i < len(lines) {
		line := lines[i]
		switch {
		case rubyRequireRE.MatchString(string(line)):
			flushGap(i - 1)
			start := i
			for i < len(lines) && rubyRequireRE.MatchString(string(lines[i])) {
				i++
			}
			out = append(out, block.Block{
				Kind:       block.KindImportBlock,
				StartLine:  start,
				EndLine:    i - 1,
				RawContent: joinLines(lines[start:i]),
			})
		case rubyDefRE.MatchString(string(line)):
			flushGap(i - 1)
			start, end := scanUntilMatchingEnd(lines, i)
			out = append(out, block.Block{
				Kind:       block.KindFunction,
				StartLine:  start,
				EndLine:    end,
				RawContent: joinLines(lines[start : end+1]),
			})
			i = end + 1
		case rubyClassRE.MatchString(string(line)):
			flushGap(i - 1)
			start, end := scanUntilMatchingEnd(lines, i)
			out = append(out, block.Block{
				Kind:       block.KindClass,
				StartLine:  start,
				EndLine:    end,
				RawContent: joinLines(lines[start : end+1]),
			})
			i = end + 1
		default:
			if gapStart == -1 {
				gapStart = i
			}
			i++
		}
	}
	flushGap(len(lines) - 1)
	return out
}

// scanUntilMatchingEnd finds the `end` line matching the opening construct
// at lines[start] by tracking nested def/class/module opens. It returns
// start and the matched end line (or the last line if unterminated).
func scanUntilMatchingEnd(lines [][]byte, start int) (int, int) {
	depth := 0
	for i := start; i < len(lines); i++ {
		l := string(lines[i])
		if rubyDefRE.MatchString(l) || rubyClassRE.MatchString(l) {
			depth++
		}
		if rubyEndRE.MatchString(l) {
			depth--
			if depth == 0 {
				return start, i
			}
		}
	}
	return start, len(lines) - 1
}
