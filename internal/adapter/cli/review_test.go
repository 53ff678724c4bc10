package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCommand_JSONListsUnreviewedFunction(t *testing.T) {
	repo := newTestRepo(t, map[string]string{
		"main.go": "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n",
	})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)

	require.NoError(t, runCommand(t, deps, &out, "review", "--json"))

	var reports []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "main.go", reports[0]["path"])
	blocks, ok := reports[0]["blocks"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, blocks)
}

func TestReviewCommand_ExcludeOmitsKind(t *testing.T) {
	repo := newTestRepo(t, map[string]string{
		"main.go": "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n",
	})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)

	require.NoError(t, runCommand(t, deps, &out, "review", "--json", "--exclude", "Function"))

	var reports []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &reports))
	require.Len(t, reports, 1)
	blocks, _ := reports[0]["blocks"].([]any)
	for _, b := range blocks {
		entry := b.(map[string]any)
		assert.NotEqual(t, "Function", entry["kind"])
	}
}

func TestReviewCommand_UnknownExcludeKindIsUsageError(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"main.go": "package main\n"})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)

	err := runCommand(t, deps, &out, "review", "--exclude", "NotAKind")
	require.Error(t, err)
}

func TestReviewCommand_HumanOutputShowsBlockSummary(t *testing.T) {
	repo := newTestRepo(t, map[string]string{
		"main.go": "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n",
	})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)

	require.NoError(t, runCommand(t, deps, &out, "review"))
	assert.Contains(t, out.String(), "main.go")
	assert.Contains(t, out.String(), "unreviewed block")
}
