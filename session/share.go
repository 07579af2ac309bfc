package session

import (
	"fmt"
	"math/bits"

	"github.com/f3rmion/sss/scheme"
)

// Share is one share of a dealt secret.
type Share[T scheme.Element] struct {
	// Index is the share number, 1 to N.
	Index int
	// Data is the share contents.
	Data *scheme.Array[T]
	// Digest binds Index and Data; see Hasher.
	Digest []byte
}

// String returns a short description that never includes share contents.
func (s *Share[T]) String() string {
	return fmt.Sprintf("Share{Index: %d, Len: %d}", s.Index, s.Data.Size())
}

// encode serialises elements little-endian at the width of T.
func encode[T scheme.Element](data []T) []byte {
	width := bits.Len64(uint64(^T(0))) / 8
	out := make([]byte, 0, len(data)*width)
	for _, v := range data {
		u := uint64(v)
		for k := 0; k < width; k++ {
			out = append(out, byte(u>>(8*k)))
		}
	}
	return out
}

func shareDigest[T scheme.Element](h Hasher, index int, data *scheme.Array[T]) []byte {
	return h.Digest(index, encode(data.Data))
}
