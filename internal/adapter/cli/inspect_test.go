package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectCommand_FindsBlockByFingerprint(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"main.go": markTestSource})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)
	fp := functionFingerprint(t)

	require.NoError(t, runCommand(t, deps, &out, "inspect", "--fingerprint", fp.String()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "Function", decoded["kind"])
	assert.Equal(t, fp.String(), decoded["hash"])
}

func TestInspectCommand_SplitReturnsSubBlocks(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"main.go": markTestSource})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)
	fp := functionFingerprint(t)

	require.NoError(t, runCommand(t, deps, &out, "inspect", "--fingerprint", fp.String(), "--split"))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.NotEmpty(t, decoded)
	assert.Equal(t, "FunctionSignature", decoded[0]["kind"])
}

func TestInspectCommand_UnknownFingerprintIsNoSuchBlock(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"main.go": markTestSource})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)

	const unknown = "ff00000000000000000000000000000000000000000000000000000000000000"
	err := runCommand(t, deps, &out, "inspect", "--fingerprint", unknown)
	require.Error(t, err)
}

func TestInspectCommand_MissingFingerprintFlagIsRequired(t *testing.T) {
	repo := newTestRepo(t, map[string]string{"main.go": markTestSource})
	var out bytes.Buffer
	deps := newTestDeps(t, repo, &out)

	err := runCommand(t, deps, &out, "inspect")
	require.Error(t, err)
}
