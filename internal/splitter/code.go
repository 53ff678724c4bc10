package splitter

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/lang"
)

// codeNode is one named top-level child together with its classification.
type codeNode struct {
	node       *sitter.Node
	kind       block.Kind
	isImport   bool
	isDocOnly  bool // a bare comment/doc-comment node, not itself mappable
	startByte  int
	endByte    int
}

// splitCodeFile implements the code-language top-level split rule of §4.4:
// walk the grammar's top-level named children in source order, map each to
// a Kind via the Language Registry's tables, merge contiguous import runs,
// absorb immediately-preceding doc comments into the node they document,
// and coalesce everything else into Gap. Returns nil on parse failure so
// the caller falls back to PlainText semantics.
func splitCodeFile(l lang.Language, source []byte) []block.Block {
	raw := lang.Raw(l)
	tree := parseTree(raw, source)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	grammar := lang.GrammarFor(l)
	root := tree.RootNode()
	li := newLineIndex(source)

	nodes := classifyChildren(root, grammar)
	return buildTopLevelBlocks(nodes, grammar, l, source, li)
}

func classifyChildren(root *sitter.Node, grammar lang.Grammar) []codeNode {
	var out []codeNode
	n := int(root.NamedChildCount())
	for i := 0; i < n; i++ {
		child := root.NamedChild(i)
		t := child.Type()
		cn := codeNode{
			node:      child,
			startByte: int(child.StartByte()),
			endByte:   int(child.EndByte()),
		}
		switch {
		case grammar.DocCommentNodeTypes[t]:
			cn.isDocOnly = true
		case grammar.ImportNodeTypes[t]:
			cn.isImport = true
			cn.kind = block.KindImportBlock
		default:
			k, ok := grammar.NodeKinds[t]
			if !ok {
				continue // truly unmapped node: left to Gap coalescing
			}
			cn.kind = refineKind(grammar.Language, child, k, t)
		}
		out = append(out, cn)
	}
	return out
}

// refineKind resolves the handful of node types whose Kind depends on
// inspecting a child rather than the bare node type, per §4.4's per-language
// notes (e.g. Go's type_declaration is Struct or Class depending on
// whether it wraps a struct_type or an interface_type).
func refineKind(l lang.Language, n *sitter.Node, fallback block.Kind, nodeType string) block.Kind {
	if l != lang.Go || nodeType != "type_declaration" {
		return fallback
	}
	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		spec := n.NamedChild(i)
		if spec.Type() != "type_spec" {
			continue
		}
		typeNode := spec.ChildByFieldName("type")
		if typeNode != nil && typeNode.Type() == "interface_type" {
			return block.KindClass
		}
	}
	return block.KindStruct
}

// buildTopLevelBlocks turns the classified named children into the final
// top-level Block sequence: merging contiguous import runs (even across
// blank-only gaps), absorbing a directly-preceding doc comment into the
// node it documents, and emitting Gap blocks for every byte range not
// claimed by a mappable node.
func buildTopLevelBlocks(nodes []codeNode, grammar lang.Grammar, l lang.Language, source []byte, li *lineIndex) []block.Block {
	var out []block.Block
	cursor := 0

	emitGap := func(endExclusive int) {
		if endExclusive <= cursor {
			return
		}
		out = append(out, block.Block{
			Kind:       block.KindGap,
			StartLine:  li.lineOf(cursor),
			EndLine:    endLineFor(li, cursor, endExclusive),
			RawContent: source[cursor:endExclusive],
		})
	}

	i := 0
	var pendingDocStart = -1

	for i < len(nodes) {
		cn := nodes[i]

		if cn.isDocOnly {
			// Buffer the doc comment; absorb it into the next mappable
			// node only if nothing but blank lines separates them.
			if i+1 < len(nodes) && onlyBlankBetween(source, cn.endByte, nodes[i+1].startByte) {
				if pendingDocStart == -1 {
					pendingDocStart = cn.startByte
				}
				i++
				continue
			}
			// Not immediately followed by a mappable node: surface the
			// comment itself as a top-level Comment block.
			emitGap(cn.startByte)
			out = append(out, block.Block{
				Kind:       block.KindComment,
				StartLine:  li.lineOf(cn.startByte),
				EndLine:    endLineFor(li, cn.startByte, cn.endByte),
				RawContent: source[cn.startByte:cn.endByte],
			})
			cursor = cn.endByte
			pendingDocStart = -1
			i++
			continue
		}

		if cn.isImport {
			runStart := cn.startByte
			if pendingDocStart != -1 {
				runStart = pendingDocStart
			}
			runEnd := cn.endByte
			j := i + 1
			for j < len(nodes) && nodes[j].isImport && onlyBlankBetween(source, runEnd, nodes[j].startByte) {
				runEnd = nodes[j].endByte
				j++
			}
			emitGap(runStart)
			out = append(out, block.Block{
				Kind:       block.KindImportBlock,
				StartLine:  li.lineOf(runStart),
				EndLine:    endLineFor(li, runStart, runEnd),
				RawContent: source[runStart:runEnd],
			})
			cursor = runEnd
			pendingDocStart = -1
			i = j
			continue
		}

		start := cn.startByte
		if pendingDocStart != -1 {
			start = pendingDocStart
		}
		emitGap(start)
		out = append(out, block.Block{
			Kind:       cn.kind,
			StartLine:  li.lineOf(start),
			EndLine:    endLineFor(li, start, cn.endByte),
			RawContent: source[start:cn.endByte],
		})
		cursor = cn.endByte
		pendingDocStart = -1
		i++
	}

	emitGap(len(source))
	return out
}

// splitFunctionBlock implements the Function sub-split rule of §4.4: carve
// a FunctionSignature sub-block spanning the declaration up through its
// parameter list and return type, then split the remaining body into
// CodeParagraph sub-blocks via splitCodeBody. Returns nil if the grammar
// has no SignatureFields (no distinguishable signature, e.g. Shell) or the
// re-parse fails, in which case the caller's terminal-leaf rule applies.
func splitFunctionBlock(parent block.Block, l lang.Language) []block.Block {
	grammar := lang.GrammarFor(l)
	if len(grammar.SignatureFields) == 0 {
		return nil
	}

	raw := lang.Raw(l)
	tree := parseTree(raw, parent.RawContent)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	fnNode := findFunctionNode(tree.RootNode(), grammar)
	if fnNode == nil {
		return nil
	}

	bodyNode := fnNode.ChildByFieldName(grammar.BodyField)
	if bodyNode == nil {
		return nil
	}

	li := newLineIndex(parent.RawContent)
	sigEnd := int(bodyNode.StartByte())

	var out []block.Block
	out = append(out, block.Block{
		Kind:       block.KindFunctionSignature,
		StartLine:  parent.StartLine,
		EndLine:    parent.StartLine + endLineFor(li, 0, sigEnd),
		RawContent: parent.RawContent[:sigEnd],
	})

	bodyStart := sigEnd
	bodyBlocks := splitCodeBody(block.Block{
		Kind:       block.KindCodeParagraph,
		StartLine:  parent.StartLine + li.lineOf(bodyStart),
		EndLine:    parent.EndLine,
		RawContent: parent.RawContent[bodyStart:],
	})
	out = append(out, bodyBlocks...)
	return out
}

// findFunctionNode returns the first named child classified as
// block.KindFunction in the re-parsed signature tree, or nil.
func findFunctionNode(root *sitter.Node, grammar lang.Grammar) *sitter.Node {
	n := int(root.NamedChildCount())
	for i := 0; i < n; i++ {
		child := root.NamedChild(i)
		if grammar.NodeKinds[child.Type()] == block.KindFunction {
			return child
		}
	}
	if n > 0 {
		return root.NamedChild(0)
	}
	return nil
}

// splitCodeBody implements the code-body sub-split rule of §4.4: a
// Function body or container (Class/Struct/Enum) splits into CodeParagraph
// sub-blocks on runs of two or more consecutive blank lines, with any
// leading comment lines kept attached to the paragraph they introduce.
func splitCodeBody(parent block.Block) []block.Block {
	lines := splitKeepingLines(parent.RawContent)
	var out []block.Block

	start := 0
	blankRun := 0
	for i := 0; i <= len(lines); i++ {
		atEnd := i == len(lines)
		blank := !atEnd && isBlankLine(lines[i])
		if blank {
			blankRun++
			continue
		}

		if blankRun >= 2 || atEnd {
			end := i - blankRun - 1
			if end >= start && !allBlank(lines[start:end+1]) {
				out = append(out, block.Block{
					Kind:       block.KindCodeParagraph,
					StartLine:  parent.StartLine + start,
					EndLine:    parent.StartLine + end,
					RawContent: joinLines(lines[start : end+1]),
				})
			}
			start = i
		}
		blankRun = 0
	}

	return out
}

func onlyBlankBetween(source []byte, from, to int) bool {
	if to <= from {
		return true
	}
	return allBlank(splitKeepingLines(source[from:to]))
}

// endLineFor returns the inclusive end line for the byte range
// [start, endExclusive). A range ending exactly at a line start (endExclusive
// is the first byte of a line) does not include that line.
func endLineFor(li *lineIndex, start, endExclusive int) int {
	if endExclusive <= start {
		return li.lineOf(start)
	}
	last := endExclusive - 1
	return li.lineOf(last)
}
