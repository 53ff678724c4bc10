// Package splitter is the Block Splitter (§4.4): given a language and raw
// source bytes it produces the deterministic top-level block sequence, and
// given a block it produces its deterministic sub-block sequence. Both
// passes are pure functions of their inputs and the Language Registry.
package splitter

import (
	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/canon"
	"github.com/trueflow-dev/trueflow/internal/fingerprint"
	"github.com/trueflow-dev/trueflow/internal/lang"
)

// SplitFile produces the top-level block sequence for a file's source
// bytes, dispatched on language. It never returns an error: on a parse
// failure, the affected region falls back to PlainText semantics (§4.4).
func SplitFile(path string, l lang.Language, source []byte) []block.Block {
	var blocks []block.Block
	switch {
	case l == lang.Markdown:
		blocks = splitMarkdownFile(source)
	case l == lang.PlainText:
		blocks = splitPlainTextFile(source)
	case l == lang.Ruby:
		blocks = splitRubyFile(source)
	case l.IsCode():
		blocks = splitCodeFile(l, source)
		if blocks == nil {
			blocks = splitPlainTextFile(source)
		}
	default:
		blocks = splitPlainTextFile(source)
	}

	for i := range blocks {
		finishBlock(&blocks[i], path)
	}
	return blocks
}

// SplitBlock produces the immediate sub-blocks of a parent Block. The
// parent's language is required because body/code paragraph splitting and
// Markdown re-parsing differ by grammar. A block whose sub-split would
// produce exactly one element identical to itself returns nil instead — the
// terminal-leaf rule of §4.4.
func SplitBlock(parent block.Block, l lang.Language) []block.Block {
	var subs []block.Block
	switch {
	case l == lang.Markdown:
		subs = splitMarkdownBlock(parent)
	case parent.Kind == block.KindTextBlock:
		subs = splitParagraphs(parent.RawContent)
	case parent.Kind == block.KindFunction && l.IsCode():
		subs = splitFunctionBlock(parent, l)
	case (parent.Kind == block.KindCodeParagraph || parent.Kind == block.KindClass ||
		parent.Kind == block.KindStruct || parent.Kind == block.KindEnum) && l.IsCode():
		subs = splitCodeBody(parent)
	default:
		return nil
	}

	for i := range subs {
		subs[i].ParentFingerprint = parent.Fingerprint
		subs[i].HasParent = true
		finishBlock(&subs[i], parent.File)
	}

	if isTerminalNoop(parent, subs) {
		return nil
	}
	return subs
}

// isTerminalNoop implements the §4.4 terminal-leaf rule: a sub-split that
// produces exactly one element identical to its parent cannot divide the
// content further, so callers should treat the parent as a leaf.
func isTerminalNoop(parent block.Block, subs []block.Block) bool {
	if len(subs) != 1 {
		return false
	}
	return string(subs[0].CanonicalContent) == string(parent.CanonicalContent) && subs[0].Kind == parent.Kind
}

// finishBlock fills in the derived fields (File, CanonicalContent,
// Fingerprint) of a block that callers have already populated with Kind,
// line range, and RawContent.
func finishBlock(b *block.Block, file string) {
	b.File = file
	b.CanonicalContent = canon.Canonicalize(b.RawContent, b.Kind)
	b.Fingerprint = fingerprint.Fingerprint(b.CanonicalContent, b.Kind)
}

// countLines returns the number of '\n'-separated lines in b, treating a
// trailing newline as not starting a new (empty) line — consistent with
// how source files are usually read.
func countLines(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	n := 1
	for _, c := range b {
		if c == '\n' {
			n++
		}
	}
	if len(b) > 0 && b[len(b)-1] == '\n' {
		n--
	}
	return n
}
