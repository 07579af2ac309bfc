package session

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Hasher computes share digests.
// Different implementations can provide different hash functions and
// keying.
type Hasher interface {
	// Digest returns the digest of a share index and its encoded data.
	Digest(index int, data []byte) []byte
}

// SHA256Hasher implements Hasher using SHA-256.
// This is the default hasher.
type SHA256Hasher struct{}

// Digest implements Hasher.Digest.
func (h *SHA256Hasher) Digest(index int, data []byte) []byte {
	return digest(sha256.New(), index, data)
}

// Blake2bHasher implements Hasher using Blake2b-256. With a non-empty key
// the digest is a MAC.
type Blake2bHasher struct {
	key []byte
}

// NewBlake2bHasher creates a Blake2bHasher. The key may be empty and may
// not exceed 64 bytes.
func NewBlake2bHasher(key []byte) (*Blake2bHasher, error) {
	if len(key) > blake2b.Size {
		return nil, fmt.Errorf("blake2b key must be at most %d bytes, got %d", blake2b.Size, len(key))
	}
	return &Blake2bHasher{key: append([]byte(nil), key...)}, nil
}

// Digest implements Hasher.Digest.
func (h *Blake2bHasher) Digest(index int, data []byte) []byte {
	hasher, _ := blake2b.New256(h.key)
	return digest(hasher, index, data)
}

func digest(h hash.Hash, index int, data []byte) []byte {
	var idx [8]byte
	binary.BigEndian.PutUint64(idx[:], uint64(index))
	h.Write([]byte("sss-share"))
	h.Write(idx[:])
	h.Write(data)
	return h.Sum(nil)
}
