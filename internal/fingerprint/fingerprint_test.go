package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/canon"
)

func TestFingerprint_StableAcrossFormatting(t *testing.T) {
	original := canon.Canonicalize([]byte("fn foo(){ return 1; }"), block.KindFunction)
	reformatted := canon.Canonicalize([]byte("fn foo() {\n    return 1;\n}"), block.KindFunction)

	require.Equal(t, Fingerprint(original, block.KindFunction), Fingerprint(reformatted, block.KindFunction))
}

func TestFingerprint_SensitiveToContent(t *testing.T) {
	a := canon.Canonicalize([]byte("fn foo(){ return 1; }"), block.KindFunction)
	b := canon.Canonicalize([]byte("fn foo(){ return 2; }"), block.KindFunction)

	require.NotEqual(t, Fingerprint(a, block.KindFunction), Fingerprint(b, block.KindFunction))
}

func TestFingerprint_SensitiveToKind(t *testing.T) {
	c := []byte("same bytes")
	require.NotEqual(t, Fingerprint(c, block.KindFunction), Fingerprint(c, block.KindComment))
}

func TestFingerprint_Is32Bytes(t *testing.T) {
	fp := Fingerprint([]byte("x"), block.KindFunction)
	require.Len(t, fp[:], 32)
}

func TestFingerprint_StringRoundTrip(t *testing.T) {
	fp := Fingerprint([]byte("round trip"), block.KindConstant)
	s := fp.String()
	require.Len(t, s, 64)

	parsed, ok := block.ParseFingerprint(s)
	require.True(t, ok)
	require.Equal(t, fp, parsed)
}

func TestParseFingerprint_RejectsMalformed(t *testing.T) {
	_, ok := block.ParseFingerprint("not-hex")
	require.False(t, ok)

	_, ok = block.ParseFingerprint("abcd")
	require.False(t, ok)
}
