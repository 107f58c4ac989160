package verify

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sign returns hex(sha256(reference + amount + secret)). The concatenation
// has no separators; downstream verifiers rebuild the same string.
func Sign(reference, amount, secret string) string {
	sum := sha256.Sum256([]byte(reference + amount + secret))
	return hex.EncodeToString(sum[:])
}
