package splitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/lang"
	"github.com/trueflow-dev/trueflow/internal/splitter"
)

const goSource = `package sample

import (
	"fmt"
	"os"
)

const maxRetries = 3

// Greeter says hello to whoever asks.
type Greeter struct {
	Name string
}

// Speaker can be greeted.
type Speaker interface {
	Speak() string
}

// Greet prints a greeting for name.
func Greet(name string) string {
	if name == "" {
		name = "friend"
	}

	fmt.Println("hello", name)
	return name
}
`

func kindsOf(blocks []block.Block) []block.Kind {
	out := make([]block.Kind, len(blocks))
	for i, b := range blocks {
		out[i] = b.Kind
	}
	return out
}

func TestSplitFile_Go_ClassifiesTopLevelDeclarations(t *testing.T) {
	blocks := splitter.SplitFile("sample.go", lang.Go, []byte(goSource))
	require.NotEmpty(t, blocks)

	var sawImport, sawConst, sawStruct, sawClass, sawFunction bool
	for _, b := range blocks {
		switch b.Kind {
		case block.KindImportBlock:
			sawImport = true
		case block.KindConstant:
			sawConst = true
		case block.KindStruct:
			sawStruct = true
		case block.KindClass:
			sawClass = true
		case block.KindFunction:
			sawFunction = true
		}
		assert.False(t, b.Fingerprint.IsZero())
	}

	assert.True(t, sawImport, "import block should be recognized")
	assert.True(t, sawConst, "const declaration should be recognized")
	assert.True(t, sawStruct, "a type_declaration wrapping a struct_type should classify as Struct")
	assert.True(t, sawClass, "a type_declaration wrapping an interface_type should classify as Class")
	assert.True(t, sawFunction, "function_declaration should classify as Function")
}

func TestSplitFile_Go_IsDeterministic(t *testing.T) {
	first := splitter.SplitFile("sample.go", lang.Go, []byte(goSource))
	second := splitter.SplitFile("sample.go", lang.Go, []byte(goSource))

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Kind, second[i].Kind)
		assert.Equal(t, first[i].Fingerprint, second[i].Fingerprint)
	}
}

func TestSplitBlock_Go_FunctionYieldsSignatureThenBody(t *testing.T) {
	blocks := splitter.SplitFile("sample.go", lang.Go, []byte(goSource))

	var fn block.Block
	var found bool
	for _, b := range blocks {
		if b.Kind == block.KindFunction {
			fn = b
			found = true
			break
		}
	}
	require.True(t, found)

	subs := splitter.SplitBlock(fn, lang.Go)
	require.NotEmpty(t, subs)
	assert.Equal(t, block.KindFunctionSignature, subs[0].Kind)
	for _, s := range subs[1:] {
		assert.Equal(t, block.KindCodeParagraph, s.Kind)
	}
	for _, s := range subs {
		assert.True(t, s.HasParent)
		assert.Equal(t, fn.Fingerprint, s.ParentFingerprint)
	}
}

func TestSplitFile_Go_ReformatStableFingerprint(t *testing.T) {
	original := []byte("package p\n\nfunc foo() int { return 1 }\n")
	reformatted := []byte("package p\n\nfunc foo() int {\n\treturn 1\n}\n")

	firstBlocks := splitter.SplitFile("a.go", lang.Go, original)
	secondBlocks := splitter.SplitFile("a.go", lang.Go, reformatted)

	fpFor := func(blocks []block.Block, k block.Kind) (block.Fingerprint, bool) {
		for _, b := range blocks {
			if b.Kind == k {
				return b.Fingerprint, true
			}
		}
		return block.Fingerprint{}, false
	}

	fp1, ok1 := fpFor(firstBlocks, block.KindFunction)
	fp2, ok2 := fpFor(secondBlocks, block.KindFunction)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, fp1, fp2, "canonicalization must make whitespace-only reformatting fingerprint-stable")
}

func TestSplitCodeBody_SplitsOnDoubleBlankRuns(t *testing.T) {
	parent := block.Block{
		Kind:      block.KindCodeParagraph,
		StartLine: 0,
		EndLine:   6,
		RawContent: []byte(
			"stmt one\nstmt two\n\n\nstmt three\nstmt four\n",
		),
	}
	subs := splitter.SplitBlock(parent, lang.Go)
	require.Len(t, subs, 2)
	for _, s := range subs {
		assert.Equal(t, block.KindCodeParagraph, s.Kind)
	}
}
