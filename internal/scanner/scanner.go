// Package scanner is the Scanner (§4.6): given candidate paths and an
// exclude-kind set, it joins the Block Splitter against the Review Store
// to produce the unreviewed-block report for a working tree.
package scanner

import (
	"context"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/fsrepo"
	"github.com/trueflow-dev/trueflow/internal/lang"
	"github.com/trueflow-dev/trueflow/internal/ledger"
	"github.com/trueflow-dev/trueflow/internal/trueflowerr"
)

// BlockStatus pairs a Block with its derived effective Status.
type BlockStatus struct {
	Block  block.Block
	Status block.Status
}

// FileReport is one file's contribution to a scan: every block whose
// status is not Approved or ImplicitlyApproved, in source order (§4.6). Err
// is set, with Blocks left empty, when the file itself could not be read or
// parsed; a failing file never aborts the rest of the scan (§7).
type FileReport struct {
	Path     string
	Language lang.Language
	Blocks   []BlockStatus
	Err      error
}

// DefaultExcludeKinds is the exclude set applied when the caller doesn't
// override it: Gap blocks carry no reviewable content (§4.6).
func DefaultExcludeKinds() map[block.Kind]bool {
	return map[block.Kind]bool{block.KindGap: true}
}

// Options configures a Scan.
type Options struct {
	// Root is the repository root every candidate path is read relative to,
	// through fsrepo.Repo's symlink-escape guard. Empty falls back to
	// reading paths directly, for callers that don't operate on a rooted
	// tree (e.g. ad-hoc scans of a fixed file list).
	Root string

	// Exclude names the Kinds omitted from every FileReport. Nil means
	// DefaultExcludeKinds().
	Exclude map[block.Kind]bool

	// Concurrency bounds the number of files parsed in parallel. Values
	// <= 1 scan sequentially. Workers own their file's bytes independently
	// and share no mutable state (§5).
	Concurrency int

	// Cancel, if non-nil, is polled between files; when it returns true the
	// scan stops accepting new files and returns what it has so far along
	// with context.Canceled (§5: cancellation is cooperative at scan
	// boundaries, never mid-file).
	Cancel func() bool
}

// Scan produces a FileReport per candidate path, sorted by ascending path
// under byte-wise (C locale) collation (§4.6). A single file's read or
// parse failure is reported as a trueflowerr.Error tagged to that path and
// does not abort the rest of the scan.
func Scan(ctx context.Context, paths []string, store *ledger.Store, opts Options) ([]FileReport, error) {
	exclude := opts.Exclude
	if exclude == nil {
		exclude = DefaultExcludeKinds()
	}

	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	reports := make([]FileReport, len(sorted))

	var repo *fsrepo.Repo
	if opts.Root != "" {
		repo = fsrepo.New(opts.Root)
	}

	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 1 {
		g.SetLimit(opts.Concurrency)
	} else {
		g.SetLimit(1)
	}

	canceled := false
	for i, path := range sorted {
		i, path := i, path
		if opts.Cancel != nil && opts.Cancel() {
			canceled = true
			break
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			reports[i] = scanFile(path, repo, store, exclude)
			return nil
		})
	}

	// A worker's own error never reaches g.Wait(): scanFile always returns a
	// FileReport, failing ones carrying Err instead of Blocks, so one file's
	// read or parse failure can never wipe out every other file's report.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]FileReport, 0, len(reports))
	for _, r := range reports {
		if r.Path != "" {
			out = append(out, r)
		}
	}
	if canceled {
		return out, context.Canceled
	}
	return out, nil
}

// scanFile reads and splits path, returning a FileReport. A read or parse
// failure is captured on the report's Err field rather than returned, so
// Scan's caller always gets every other file's result (§7).
func scanFile(path string, repo *fsrepo.Repo, store *ledger.Store, exclude map[block.Kind]bool) FileReport {
	var source []byte
	var err error
	if repo != nil {
		source, err = repo.ReadFile(path)
	} else {
		source, err = os.ReadFile(path)
	}
	if err != nil {
		return FileReport{Path: path, Err: trueflowerr.NewIO(path, "read file: "+err.Error())}
	}

	l := lang.Detect(path, source)
	top := splitFileBlocks(path, l, source)

	report := FileReport{Path: path, Language: l}
	for _, b := range top {
		entries, err := reportableBlocks(b, l, store, exclude)
		if err != nil {
			return FileReport{Path: path, Language: l, Err: err}
		}
		report.Blocks = append(report.Blocks, entries...)
	}
	return report
}

// reportableBlocks walks b and its sub-splits in source order, collecting
// every block whose effective status is not Approved/ImplicitlyApproved
// and whose Kind is not excluded. A reviewed block's sub-blocks are still
// walked: implicit approval at one level does not exempt a differently-
// reviewed descendant from being reported (only a block's own status gates
// its own inclusion).
func reportableBlocks(b block.Block, l lang.Language, store *ledger.Store, exclude map[block.Kind]bool) ([]BlockStatus, error) {
	status, err := store.EffectiveStatus(b, l)
	if err != nil {
		return nil, err
	}

	var out []BlockStatus
	if !exclude[b.Kind] && !status.Reviewed() {
		out = append(out, BlockStatus{Block: b, Status: status})
	}

	for _, sub := range subBlocksOf(b, l) {
		children, err := reportableBlocks(sub, l, store, exclude)
		if err != nil {
			return nil, err
		}
		out = append(out, children...)
	}
	return out, nil
}
