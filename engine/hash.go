package engine

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// canonicalBytes serializes the state as little-endian uint32 values
// [N, grid...]. This fixed encoding is the sole wire format the
// engine exposes; the hash is defined over it.
func (e *Engine) canonicalBytes() []byte {
	buf := make([]byte, 4*(1+len(e.grid)))
	binary.LittleEndian.PutUint32(buf, uint32(e.lat.N))
	for i, tok := range e.grid {
		binary.LittleEndian.PutUint32(buf[4*(1+i):], uint32(tok))
	}
	return buf
}

// Hash returns the canonical state fingerprint: the SHA-256 digest of
// canonicalBytes, hex-encoded. Pure — no mutation.
// Complexity: O(n³).
func (e *Engine) Hash() string {
	sum := sha256.Sum256(e.canonicalBytes())
	return hex.EncodeToString(sum[:])
}
