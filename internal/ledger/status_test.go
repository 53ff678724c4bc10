package ledger_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/lang"
	"github.com/trueflow-dev/trueflow/internal/ledger"
	"github.com/trueflow-dev/trueflow/internal/splitter"
)

func textBlockWithParagraphs(t *testing.T, n int) (block.Block, []block.Block) {
	t.Helper()
	source := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			source += "\n\n"
		}
		source += "paragraph text number " + string(rune('a'+i))
	}
	blocks := splitter.SplitFile("notes.txt", lang.PlainText, []byte(source))
	require.Len(t, blocks, 1)
	require.Equal(t, block.KindTextBlock, blocks[0].Kind)

	subs := splitter.SplitBlock(blocks[0], lang.PlainText)
	require.Len(t, subs, n)
	return blocks[0], subs
}

func TestEffectiveStatus_Unreviewed(t *testing.T) {
	dir := t.TempDir()
	s := ledger.Open(filepath.Join(dir, "reviews.jsonl"))

	parent, _ := textBlockWithParagraphs(t, 2)
	status, err := s.EffectiveStatus(parent, lang.PlainText)
	require.NoError(t, err)
	assert.Equal(t, block.StatusUnreviewed, status.Kind)
}

func TestEffectiveStatus_ImplicitlyApproved(t *testing.T) {
	dir := t.TempDir()
	s := ledger.Open(filepath.Join(dir, "reviews.jsonl"))

	parent, subs := textBlockWithParagraphs(t, 2)
	for _, sub := range subs {
		require.NoError(t, s.Append(ledger.Record{
			Fingerprint: sub.Fingerprint,
			Verdict:     ledger.VerdictApproved,
			Reviewer:    "alice",
		}))
	}

	status, err := s.EffectiveStatus(parent, lang.PlainText)
	require.NoError(t, err)
	assert.Equal(t, block.StatusImplicitlyApproved, status.Kind)
	assert.True(t, status.Reviewed())
}

func TestEffectiveStatus_Partial(t *testing.T) {
	dir := t.TempDir()
	s := ledger.Open(filepath.Join(dir, "reviews.jsonl"))

	parent, subs := textBlockWithParagraphs(t, 3)
	require.Len(t, subs, 3)

	require.NoError(t, s.Append(ledger.Record{Fingerprint: subs[0].Fingerprint, Verdict: ledger.VerdictApproved, Reviewer: "a"}))
	require.NoError(t, s.Append(ledger.Record{Fingerprint: subs[1].Fingerprint, Verdict: ledger.VerdictApproved, Reviewer: "a"}))

	status, err := s.EffectiveStatus(parent, lang.PlainText)
	require.NoError(t, err)
	assert.Equal(t, block.StatusPartial, status.Kind)
	assert.Equal(t, 2, status.Approved)
	assert.Equal(t, 3, status.Total)
	assert.False(t, status.Reviewed())
}

func TestEffectiveStatus_DirectApprovalShortCircuitsSubSplit(t *testing.T) {
	dir := t.TempDir()
	s := ledger.Open(filepath.Join(dir, "reviews.jsonl"))

	parent, _ := textBlockWithParagraphs(t, 3)
	require.NoError(t, s.Append(ledger.Record{Fingerprint: parent.Fingerprint, Verdict: ledger.VerdictApproved, Reviewer: "a"}))

	status, err := s.EffectiveStatus(parent, lang.PlainText)
	require.NoError(t, err)
	assert.Equal(t, block.StatusApproved, status.Kind)
}

func TestEffectiveStatus_RejectedDoesNotPropagateFromChild(t *testing.T) {
	dir := t.TempDir()
	s := ledger.Open(filepath.Join(dir, "reviews.jsonl"))

	parent, subs := textBlockWithParagraphs(t, 2)
	require.NoError(t, s.Append(ledger.Record{Fingerprint: subs[0].Fingerprint, Verdict: ledger.VerdictRejected, Reviewer: "a"}))

	status, err := s.EffectiveStatus(parent, lang.PlainText)
	require.NoError(t, err)
	assert.NotEqual(t, block.StatusRejected, status.Kind)

	childStatus, err := s.EffectiveStatus(subs[0], lang.PlainText)
	require.NoError(t, err)
	assert.Equal(t, block.StatusRejected, childStatus.Kind)
}
