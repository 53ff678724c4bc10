package splitter

import (
	"bytes"
	"regexp"

	"github.com/trueflow-dev/trueflow/internal/block"
)

var atxHeadingRE = regexp.MustCompile(`^(#{1,6})(\s|$)`)
var listMarkerRE = regexp.MustCompile(`^\s*([-*+]|\d+[.)])\s+`)
var fenceRE = regexp.MustCompile("^(```+|~~~+)")

type headingLine struct {
	index int // line index
	level int
}

// splitMarkdownFile implements the Markdown top-level rule (§4.4): blocks
// are delimited by ATX headings. A block begins at a heading of level L and
// extends to (but not including) the next heading of level <= L, or EOF.
// Content before the first heading is a single leading TextBlock if
// non-empty. A file with no headings is one TextBlock.
func splitMarkdownFile(source []byte) []block.Block {
	lines := splitKeepingLines(source)
	headings := findHeadings(lines)

	if len(headings) == 0 {
		return splitPlainTextFile(source)
	}

	var out []block.Block

	if headings[0].index > 0 {
		leading := lines[:headings[0].index]
		if !allBlank(leading) {
			out = append(out, block.Block{
				Kind:       block.KindTextBlock,
				StartLine:  0,
				EndLine:    headings[0].index - 1,
				RawContent: joinLines(leading),
			})
		}
	}

	lastIdx := lastLineIndex(source)

	for i, h := range headings {
		end := lastIdx
		for j := i + 1; j < len(headings); j++ {
			if headings[j].level <= h.level {
				end = headings[j].index - 1
				break
			}
		}
		out = append(out, block.Block{
			Kind:       block.KindHeading,
			StartLine:  h.index,
			EndLine:    end,
			RawContent: joinLines(lines[h.index : end+1]),
		})
	}

	return out
}

func findHeadings(lines [][]byte) []headingLine {
	var out []headingLine
	inFence := false
	for i, l := range lines {
		if fenceRE.Match(bytes.TrimLeft(l, " ")) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if m := atxHeadingRE.FindSubmatch(l); m != nil {
			out = append(out, headingLine{index: i, level: len(m[1])})
		}
	}
	return out
}

func allBlank(lines [][]byte) bool {
	for _, l := range lines {
		if !isBlankLine(l) {
			return false
		}
	}
	return true
}

// splitMarkdownBlock implements the Markdown sub-split rule (§4.4):
// re-parse a Heading block's raw content past the heading line itself, and
// emit top-level children as Paragraph, List, or CodeFence sub-blocks.
func splitMarkdownBlock(parent block.Block) []block.Block {
	if parent.Kind == block.KindTextBlock {
		return splitParagraphs(parent.RawContent)
	}
	if parent.Kind != block.KindHeading {
		return nil
	}

	lines := splitKeepingLines(parent.RawContent)
	if len(lines) <= 1 {
		return nil
	}
	body := lines[1:]
	lineOffset := parent.StartLine + 1

	var out []block.Block
	i := 0
	for i < len(body) {
		line := body[i]
		switch {
		case isBlankLine(line):
			i++
		case fenceRE.Match(bytes.TrimLeft(line, " ")):
			start := i
			i++
			for i < len(body) && !fenceRE.Match(bytes.TrimLeft(body[i], " ")) {
				i++
			}
			if i < len(body) {
				i++ // consume closing fence
			}
			out = append(out, block.Block{
				Kind:       block.KindCodeFence,
				StartLine:  lineOffset + start,
				EndLine:    lineOffset + i - 1,
				RawContent: joinLines(body[start:i]),
			})
		case listMarkerRE.Match(line):
			start := i
			for i < len(body) && !isBlankLine(body[i]) {
				i++
			}
			out = append(out, block.Block{
				Kind:       block.KindList,
				StartLine:  lineOffset + start,
				EndLine:    lineOffset + i - 1,
				RawContent: joinLines(body[start:i]),
			})
		default:
			start := i
			for i < len(body) && !isBlankLine(body[i]) && !fenceRE.Match(bytes.TrimLeft(body[i], " ")) && !listMarkerRE.Match(body[i]) {
				i++
			}
			out = append(out, block.Block{
				Kind:       block.KindParagraph,
				StartLine:  lineOffset + start,
				EndLine:    lineOffset + i - 1,
				RawContent: joinLines(body[start:i]),
			})
		}
	}
	return out
}
