package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SHA256Hex returns the hex SHA-256 of the trimmed, lower-cased input.
func SHA256Hex(input string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(input))))
	return hex.EncodeToString(sum[:])
}

// AddressDigest shortens a source address to a stable 12-character token
// suitable for logs. Case differences in the address map to the same token.
func AddressDigest(address string) string {
	if strings.TrimSpace(address) == "" {
		return ""
	}
	return SHA256Hex(address)[:12]
}
