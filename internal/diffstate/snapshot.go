// Package diffstate backs the `diff --json` CLI operation (§6): "changed
// blocks (vs. last scan state) for editors". The spec does not otherwise
// define what "last scan state" means, so this package makes it concrete —
// a snapshot of every fingerprint seen on the previous `diff` invocation,
// persisted next to the ledger so it survives across process runs. A block
// is "changed" when its fingerprint was not present in the prior snapshot:
// because fingerprints are pure content hashes (§3), that is exactly the
// set of blocks whose content differs from what was last seen, regardless
// of whether the file around them moved or was renamed.
package diffstate

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/trueflowerr"
)

// DefaultPath is the snapshot location relative to a repository root,
// alongside the ledger.
const DefaultPath = ".trueflow/last_scan.json"

// Load reads the fingerprint set recorded by the previous Save. A missing
// file is treated as an empty snapshot, not an error, since the first
// `diff` invocation in a fresh repository has no prior state to compare to.
func Load(path string) (map[block.Fingerprint]bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[block.Fingerprint]bool{}, nil
	}
	if err != nil {
		return nil, trueflowerr.NewIO(path, "read scan snapshot: "+err.Error())
	}

	var hexes []string
	if err := json.Unmarshal(data, &hexes); err != nil {
		return nil, trueflowerr.NewIO(path, "parse scan snapshot: "+err.Error())
	}

	out := make(map[block.Fingerprint]bool, len(hexes))
	for _, h := range hexes {
		if fp, ok := block.ParseFingerprint(h); ok {
			out[fp] = true
		}
	}
	return out, nil
}

// Save persists the given fingerprint set as the new "last scan state".
func Save(path string, fingerprints map[block.Fingerprint]bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return trueflowerr.NewIO(path, "create snapshot directory: "+err.Error())
	}

	hexes := make([]string, 0, len(fingerprints))
	for fp := range fingerprints {
		hexes = append(hexes, fp.String())
	}

	data, err := json.Marshal(hexes)
	if err != nil {
		return trueflowerr.NewIO(path, "encode scan snapshot: "+err.Error())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return trueflowerr.NewIO(path, "write scan snapshot: "+err.Error())
	}
	return nil
}
