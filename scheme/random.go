package scheme

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/sirupsen/logrus"
)

// GenerateRandom draws the random matrix consumed by share generation. The
// matrix has T-R rows and ceil(size/R) columns, and every entry is
// independently uniform in [0, maxValue). Entropy comes from the source set
// with WithRand, crypto/rand.Reader by default.
//
// The new matrix replaces the one held by b. On error the previous matrix is
// kept.
func (b *Base[T]) GenerateRandom(maxValue uint64) (*Matrix[T], error) {
	if b.ramp < 1 || b.threshold < b.ramp {
		return nil, fmt.Errorf("%w: threshold=%d ramp=%d", ErrInvalidRampConfiguration, b.threshold, b.ramp)
	}
	if b.secret == nil {
		return nil, fmt.Errorf("%w: secret must be set before drawing randomness", ErrNotInitialized)
	}
	if maxValue == 0 || maxValue-1 > uint64(^T(0)) {
		return nil, fmt.Errorf("%w: max value %d does not fit the element type", ErrInvalidParameter, maxValue)
	}

	m := NewMatrix[T](b.threshold-b.ramp, b.PieceLen())
	if err := fillUniform(b.opts.Rand, m.Data, maxValue); err != nil {
		return nil, fmt.Errorf("failed to draw random matrix: %w", err)
	}
	b.random = m

	logger.WithFields(logrus.Fields{
		"rows": m.Rows,
		"cols": m.Cols,
		"max":  maxValue,
	}).Debug("random matrix drawn")
	return m, nil
}

// fillUniform fills dst with values uniform in [0, maxValue). Candidates are
// read in bulk, masked to the bit length of maxValue-1 and rejected when out
// of range, so at least half of them are accepted.
func fillUniform[T Element](r io.Reader, dst []T, maxValue uint64) error {
	limit := maxValue - 1
	nbits := bits.Len64(limit)
	if nbits == 0 {
		clear(dst)
		return nil
	}
	width := (nbits + 7) / 8
	mask := uint64(1)<<nbits - 1
	if nbits == 64 {
		mask = ^uint64(0)
	}

	buf := make([]byte, len(dst)*width)
	filled := 0
	for filled < len(dst) {
		need := (len(dst) - filled) * width
		if _, err := io.ReadFull(r, buf[:need]); err != nil {
			return err
		}
		for off := 0; off < need; off += width {
			var v uint64
			for k := 0; k < width; k++ {
				v |= uint64(buf[off+k]) << (8 * k)
			}
			v &= mask
			if v <= limit {
				dst[filled] = T(v)
				filled++
			}
		}
	}
	return nil
}
