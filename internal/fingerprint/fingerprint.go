// Package fingerprint derives the stable 32-byte content hash Trueflow uses
// to key verdict records (§4.3 of the spec). It is grounded on the teacher
// repo's own content-hash idioms (internal/domain/types.go's hashFinding and
// internal/store/util.go's GenerateFindingHash), generalized from "hash a
// finding" to "hash a canonicalized block".
package fingerprint

import (
	"crypto/sha256"

	"github.com/trueflow-dev/trueflow/internal/block"
)

// SchemaTag is mixed into every fingerprint. Bumping it is the only
// supported way to invalidate every prior verdict record at once; it MUST
// NOT change for any other reason.
const SchemaTag = "trueflow/v1"

// Fingerprint computes SHA-256(SchemaTag || 0x00 || kindTag || 0x00 ||
// canonical) and returns the 32-byte digest. canonical must already be the
// output of canon.Canonicalize for kind; Fingerprint does not canonicalize
// its input.
func Fingerprint(canonical []byte, kind block.Kind) block.Fingerprint {
	h := sha256.New()
	h.Write([]byte(SchemaTag))
	h.Write([]byte{0})
	h.Write([]byte(kind.String()))
	h.Write([]byte{0})
	h.Write(canonical)

	var out block.Fingerprint
	copy(out[:], h.Sum(nil))
	return out
}
