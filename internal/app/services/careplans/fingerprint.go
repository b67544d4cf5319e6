package careplans

import (
	"crypto/sha256"
	"encoding/hex"
)

// reviewNotesFingerprint hashes raw review notes down to the 32-byte
// digest the ledger stores, plus its hex form used as the archive key.
func reviewNotesFingerprint(content []byte) (hash []byte, hexDigest string) {
	sum := sha256.Sum256(content)
	return sum[:], hex.EncodeToString(sum[:])
}
