package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffCommand_FirstRunReportsEveryBlock(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"main.go": markTestSource})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)

	require.NoError(t, runCommand(t, deps, &out, "diff"))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.NotEmpty(t, decoded, "a fresh repo has no prior snapshot, so every block is new")
}

func TestDiffCommand_SecondRunWithNoChangesReportsNothing(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"main.go": markTestSource})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)

	require.NoError(t, runCommand(t, deps, &out, "diff"))
	out.Reset()
	require.NoError(t, runCommand(t, deps, &out, "diff"))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Empty(t, decoded, "nothing changed since the previous snapshot")
}

func TestDiffCommand_NewFileAfterSnapshotIsReportedAsChanged(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"main.go": markTestSource})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)

	require.NoError(t, runCommand(t, deps, &out, "diff"))
	out.Reset()

	require.NoError(t, os.WriteFile(filepath.Join(repo, "second.go"),
		[]byte("package main\n\nfunc helper() {}\n"), 0o644))

	require.NoError(t, runCommand(t, deps, &out, "diff"))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.NotEmpty(t, decoded, "the new file's blocks are not in the prior snapshot")
}
