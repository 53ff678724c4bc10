package splitter

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
)

// parseTree parses source with the given tree-sitter grammar. Returns nil
// if raw is nil (no grammar for this language) or parsing fails; callers
// treat either as a parse fallback per §4.4.
func parseTree(raw *sitter.Language, source []byte) *sitter.Tree {
	if raw == nil {
		return nil
	}
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(raw)

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil || tree == nil {
		return nil
	}
	return tree
}

// lineIndex maps byte offsets into a source buffer back to 0-indexed line
// numbers, used to translate tree-sitter byte ranges (and the Gap spans
// between named nodes) into the Block line-range representation.
type lineIndex struct {
	// starts[i] is the byte offset where line i begins.
	starts []int
}

func newLineIndex(source []byte) *lineIndex {
	starts := []int{0}
	for i, c := range source {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

// lineOf returns the 0-indexed line containing byte offset.
func (li *lineIndex) lineOf(offset int) int {
	lo, hi := 0, len(li.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if li.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
