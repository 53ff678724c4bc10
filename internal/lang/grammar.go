package lang

import (
	"github.com/trueflow-dev/trueflow/internal/block"
)

// Grammar is the parsing surface the Block Splitter builds on: a tree-sitter
// language (nil for Markdown/PlainText/Ruby, see below), the mapping from a
// grammar's top-level named-node type to a block.Kind, which node types
// should be coalesced into a single ImportBlock run, and the field names a
// Function node exposes for its signature (used to carve out
// FunctionSignature sub-blocks).
type Grammar struct {
	Language Language

	// TreeSitterLanguage is non-nil for languages backed by go-tree-sitter.
	TreeSitterLanguage TSLanguage

	// NodeKinds maps a grammar node type (e.g. "function_declaration") to
	// the block.Kind it produces at the top level.
	NodeKinds map[string]block.Kind

	// ImportNodeTypes names the node types that are merged into one
	// ImportBlock per contiguous run (§4.4).
	ImportNodeTypes map[string]bool

	// DocCommentNodeTypes names node types treated as a doc comment that,
	// when immediately preceding a mappable node, is absorbed into it.
	DocCommentNodeTypes map[string]bool

	// SignatureFields lists the child field names (in order) that make up
	// a function's signature, used to carve the FunctionSignature
	// sub-block from a Function block. Empty means the grammar does not
	// distinguish a signature node.
	SignatureFields []string

	// BodyField is the child field name holding a function's body, used as
	// the boundary between FunctionSignature and the body CodeParagraphs.
	BodyField string
}

// TSLanguage is the subset of *sitter.Language the lang package exposes,
// kept as an interface so packages that only need to ask "is there a
// tree-sitter grammar for this language" don't have to import the
// tree-sitter binding directly.
type TSLanguage interface {
	// Name is diagnostic only.
	Name() string
}

// GrammarFor returns the parsing surface for l. GrammarFor never fails; an
// out-of-range Language enum value (programmer error, never user input)
// returns the PlainText grammar.
func GrammarFor(l Language) Grammar {
	if g, ok := grammars[l]; ok {
		return g
	}
	return grammars[PlainText]
}
