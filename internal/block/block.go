package block

import "encoding/hex"

// Fingerprint is the 32-byte content hash identifying a Block's canonical
// content plus its Kind. Two blocks with identical canonical content and
// Kind always share a Fingerprint; content differences never collide in
// practice since the hash is cryptographic.
type Fingerprint [32]byte

// String renders the fingerprint as 64 lowercase hex characters, the form
// used on the wire (ledger lines, CLI flags, FileReport JSON).
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// IsZero reports whether f is the zero fingerprint, used to detect blocks
// that have not been fingerprinted yet (e.g. freshly parsed but unprocessed).
func (f Fingerprint) IsZero() bool {
	return f == Fingerprint{}
}

// ParseFingerprint decodes a 64-char lowercase hex string into a Fingerprint.
// Returns false if s is not exactly 32 bytes of valid hex.
func ParseFingerprint(s string) (Fingerprint, bool) {
	var fp Fingerprint
	if len(s) != hex.EncodedLen(len(fp)) {
		return Fingerprint{}, false
	}
	n, err := hex.Decode(fp[:], []byte(s))
	if err != nil || n != len(fp) {
		return Fingerprint{}, false
	}
	return fp, true
}

// Block is a semantic, fingerprinted review unit. Instances are transient:
// they are recomputed from source on every scan and are never persisted.
// A Block borrows byte slices of the file buffer that produced it and must
// not outlive that buffer.
type Block struct {
	Kind      Kind
	File      string // repo-relative path; informational, not part of the fingerprint
	StartLine int    // 0-indexed, inclusive
	EndLine   int    // 0-indexed, inclusive

	RawContent       []byte // byte-for-byte slice of the source file
	CanonicalContent []byte // output of canon.Canonicalize(RawContent, Kind)
	Fingerprint      Fingerprint

	// ParentFingerprint is set when this Block was produced by sub-splitting
	// another Block; it is metadata only, never a traversable back-pointer.
	ParentFingerprint Fingerprint
	HasParent         bool
}

// LineCount returns the number of lines this block spans.
func (b Block) LineCount() int {
	if b.EndLine < b.StartLine {
		return 0
	}
	return b.EndLine - b.StartLine + 1
}
