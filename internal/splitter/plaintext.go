package splitter

import "github.com/trueflow-dev/trueflow/internal/block"

// splitPlainTextFile implements the PlainText top-level rule (§4.4): the
// whole file is one TextBlock.
func splitPlainTextFile(source []byte) []block.Block {
	if len(source) == 0 {
		return []block.Block{{
			Kind:      block.KindTextBlock,
			StartLine: 0,
			EndLine:   0,
			RawContent: source,
		}}
	}
	return []block.Block{{
		Kind:       block.KindTextBlock,
		StartLine:  0,
		EndLine:    lastLineIndex(source),
		RawContent: source,
	}}
}

// splitParagraphs splits raw on blank lines into Paragraph sub-blocks,
// tracking line numbers relative to the start of raw (callers offset them
// against the parent's StartLine when needed — Trueflow keeps sub-block
// line numbers relative to the file since raw is always a direct slice of
// it for top-level TextBlocks).
func splitParagraphs(raw []byte) []block.Block {
	lines := splitKeepingLines(raw)
	var out []block.Block
	start := -1
	for i, line := range lines {
		blank := isBlankLine(line)
		if !blank && start == -1 {
			start = i
		}
		if blank && start != -1 {
			out = append(out, paragraphBlock(lines, start, i-1))
			start = -1
		}
	}
	if start != -1 {
		out = append(out, paragraphBlock(lines, start, len(lines)-1))
	}
	return out
}

func paragraphBlock(lines [][]byte, start, end int) block.Block {
	raw := joinLines(lines[start : end+1])
	return block.Block{
		Kind:       block.KindParagraph,
		StartLine:  start,
		EndLine:    end,
		RawContent: raw,
	}
}
