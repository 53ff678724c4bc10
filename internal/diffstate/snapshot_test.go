package diffstate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/diffstate"
)

func TestLoad_MissingFileReturnsEmptySnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "last_scan.json")

	snapshot, err := diffstate.Load(path)
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}

func TestSaveThenLoad_RoundTripsFingerprintSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".trueflow", "last_scan.json")
	fp1 := block.Fingerprint{0x01}
	fp2 := block.Fingerprint{0x02}
	fingerprints := map[block.Fingerprint]bool{fp1: true, fp2: true}

	require.NoError(t, diffstate.Save(path, fingerprints))

	loaded, err := diffstate.Load(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
	assert.True(t, loaded[fp1])
	assert.True(t, loaded[fp2])
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "last_scan.json")

	require.NoError(t, diffstate.Save(path, map[block.Fingerprint]bool{}))

	_, err := diffstate.Load(path)
	require.NoError(t, err)
}

func TestLoad_IgnoresUnparseableFingerprintStrings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "last_scan.json")
	content := `["not-valid-hex", "` + (block.Fingerprint{0x9}).String() + `"]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := diffstate.Load(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}
