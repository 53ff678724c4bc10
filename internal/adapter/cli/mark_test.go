package cli_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/lang"
	"github.com/trueflow-dev/trueflow/internal/ledger"
	"github.com/trueflow-dev/trueflow/internal/splitter"
)

const markTestSource = "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"

func functionFingerprint(t *testing.T) block.Fingerprint {
	t.Helper()
	blocks := splitter.SplitFile("main.go", lang.Go, []byte(markTestSource))
	for _, b := range blocks {
		if b.Kind == block.KindFunction {
			return b.Fingerprint
		}
	}
	t.Fatal("no Function block found in fixture source")
	return block.Fingerprint{}
}

func TestMarkCommand_AppendsApprovedRecord(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"main.go": markTestSource})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)
	fp := functionFingerprint(t)

	require.NoError(t, runCommand(t, deps, &out, "mark",
		"--fingerprint", fp.String(),
		"--verdict", "approved",
		"--note", "looks good",
	))

	recordsPath := filepath.Join(repo, ".trueflow", "reviews.jsonl")
	store := ledger.Open(recordsPath)
	records, err := store.RecordsFor(fp)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, ledger.VerdictApproved, records[0].Verdict)
	assert.Equal(t, "test-reviewer", records[0].Reviewer)
	assert.Equal(t, "looks good", records[0].Note)
}

func TestMarkCommand_RejectedRecordDrivesStatus(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"main.go": markTestSource})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)
	fp := functionFingerprint(t)

	require.NoError(t, runCommand(t, deps, &out, "mark",
		"--fingerprint", fp.String(),
		"--verdict", "rejected",
		"--label", "security",
	))

	store := ledger.Open(filepath.Join(repo, ".trueflow", "reviews.jsonl"))
	records, err := store.RecordsFor(fp)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, ledger.VerdictRejected, records[0].Verdict)
	assert.Equal(t, "security", records[0].Label)
}

func TestMarkCommand_UnknownVerdictIsUsageError(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"main.go": "package main\n"})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)

	err := runCommand(t, deps, &out, "mark",
		"--fingerprint", functionFingerprint(t).String(),
		"--verdict", "maybe",
	)
	require.Error(t, err)
}

func TestMarkCommand_MalformedFingerprintIsUsageError(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"main.go": "package main\n"})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)

	err := runCommand(t, deps, &out, "mark", "--fingerprint", "nothex", "--verdict", "approved")
	require.Error(t, err)
}
