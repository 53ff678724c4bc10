package ledger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/trueflowerr"
)

// DefaultPath is the ledger location relative to a repository root (§6).
const DefaultPath = ".trueflow/reviews.jsonl"

// Store is the append-only JSONL ledger: Append is the only mutator, and it
// is the only operation that takes the advisory file lock (§4.5/§5). A
// Store is safe for concurrent use: the Scanner's worker pool calls
// EffectiveStatus (and therefore ReadAll) from multiple goroutines at once
// (§5), so reads and the corrupt-line counter are serialized by mu.
type Store struct {
	path string

	mu sync.Mutex

	// corrupt counts lines skipped by ReadAll (and so by RecordsFor and
	// EffectiveStatus) because they failed to parse as a Record. A corrupt
	// line is never fatal.
	corrupt int
}

// Open returns a Store backed by path. The file need not exist yet; it is
// created on first Append.
func Open(path string) *Store {
	return &Store{path: path}
}

// Append writes a new Record to the ledger under an exclusive advisory
// lock, so concurrent trueflow processes never interleave partial lines.
// The in-process mutex additionally serializes Append against ReadAll,
// since the advisory lock alone doesn't protect a ReadAll that opens its
// own, unlocked file descriptor.
func (s *Store) Append(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return trueflowerr.NewIO(s.path, "create ledger directory: "+err.Error())
	}

	lock, err := lockFile(s.path)
	if err != nil {
		return trueflowerr.NewIO(s.path, "lock ledger: "+err.Error())
	}
	defer lock.unlock()

	if _, err := lock.f.Seek(0, os.SEEK_END); err != nil {
		return trueflowerr.NewIO(s.path, "seek ledger: "+err.Error())
	}

	data, err := json.Marshal(r)
	if err != nil {
		return trueflowerr.NewIO(s.path, "encode record: "+err.Error())
	}
	data = append(data, '\n')

	if _, err := lock.f.Write(data); err != nil {
		return trueflowerr.NewIO(s.path, "write ledger: "+err.Error())
	}
	return nil
}

// CorruptLines reports how many lines were skipped by the most recent
// read pass (ReadAll, RecordsFor, or EffectiveStatus) for diagnostics.
func (s *Store) CorruptLines() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.corrupt
}

// ReadAll returns every well-formed Record in file order, skipping corrupt
// lines and counting them rather than failing (§4.5).
func (s *Store) ReadAll() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, trueflowerr.NewIO(s.path, "open ledger: "+err.Error())
	}
	defer f.Close()

	var records []Record
	corrupt := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var r Record
		if err := json.Unmarshal(line, &r); err != nil {
			corrupt++
			continue
		}
		records = append(records, r)
	}
	s.corrupt = corrupt
	if err := scanner.Err(); err != nil {
		return records, trueflowerr.NewIO(s.path, "read ledger: "+err.Error())
	}
	return records, nil
}

// RecordsFor returns every Record for fp, in ledger (append) order.
func (s *Store) RecordsFor(fp block.Fingerprint) ([]Record, error) {
	all, err := s.ReadAll()
	if err != nil {
		return nil, err
	}
	var out []Record
	for _, r := range all {
		if r.Fingerprint == fp {
			out = append(out, r)
		}
	}
	return out, nil
}
