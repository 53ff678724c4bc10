package cli

import (
	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/fsrepo"
	"github.com/trueflow-dev/trueflow/internal/lang"
	"github.com/trueflow-dev/trueflow/internal/ledger"
	"github.com/trueflow-dev/trueflow/internal/splitter"
	"github.com/trueflow-dev/trueflow/internal/trueflowerr"
)

// findBlock walks every candidate file's full block tree (unlike Scan, which
// prunes reviewed blocks) looking for fp, so inspect and mark can locate a
// block regardless of its current status. It returns the block, its
// language, and whether it was found.
func findBlock(repoRoot string, fp block.Fingerprint) (block.Block, lang.Language, bool, error) {
	paths, err := fsrepo.ListCandidates(repoRoot)
	if err != nil {
		return block.Block{}, 0, false, trueflowerr.NewIO(repoRoot, "list candidate files: "+err.Error())
	}

	repo := fsrepo.New(repoRoot)
	for _, path := range paths {
		source, err := repo.ReadFile(path)
		if err != nil {
			continue // scanner policy: one file's I/O failure never aborts the walk
		}
		l := lang.Detect(path, source)
		for _, top := range splitter.SplitFile(path, l, source) {
			if b, ok := searchBlock(top, l, fp); ok {
				return b, l, true, nil
			}
		}
	}
	return block.Block{}, 0, false, nil
}

func searchBlock(b block.Block, l lang.Language, fp block.Fingerprint) (block.Block, bool) {
	if b.Fingerprint == fp {
		return b, true
	}
	for _, sub := range splitter.SplitBlock(b, l) {
		if found, ok := searchBlock(sub, l, fp); ok {
			return found, true
		}
	}
	return block.Block{}, false
}

// statusFor is a small convenience wrapper so CLI commands don't import
// ledger.Store's EffectiveStatus call through two indirections.
func statusFor(store *ledger.Store, b block.Block, l lang.Language) (block.Status, error) {
	return store.EffectiveStatus(b, l)
}
