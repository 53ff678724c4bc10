package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	goGit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"

	"github.com/trueflow-dev/trueflow/internal/adapter/cli"
	"github.com/trueflow-dev/trueflow/internal/ledger"
)

// newTestRepo initializes an empty git repository at a temp directory and
// writes the given files into it, so fsrepo.ListCandidates has a worktree
// to walk just like it would against a real checkout.
func newTestRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	_, err := goGit.PlainInit(dir, false)
	require.NoError(t, err)

	for name, content := range files {
		full := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return dir
}

func newTestDeps(t *testing.T, repoRoot string, out *bytes.Buffer) cli.Dependencies {
	t.Helper()
	store := ledger.Open(filepath.Join(repoRoot, ".trueflow", "reviews.jsonl"))
	return cli.Dependencies{
		RepoRoot:         repoRoot,
		Store:            store,
		ReviewerIdentity: "test-reviewer",
		Version:          "v0.0.0-test",
	}
}

func runCommand(t *testing.T, deps cli.Dependencies, out *bytes.Buffer, args ...string) error {
	t.Helper()
	root := cli.NewRootCommand(deps)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	return root.Execute()
}
