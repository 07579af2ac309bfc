package scheme

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("module", "scheme")

// Scheme is the contract every ramp secret sharing algorithm satisfies.
//
// Callers invoke Initialize, then SetSecret, then GenerateShares, and later
// SetExternalShares followed by ReconstructSecret. Implementations embed
// [*Base], which supplies SetExternalShares, Secret, Shares and
// ShareIndices.
type Scheme[T Element] interface {
	// Initialize stores the threshold T, ramp R and number of shares N.
	// It fails with ErrInvalidParameter unless 1 <= R <= T <= N and
	// invalidates any previously generated shares.
	Initialize(threshold, ramp, num int) error

	// SetSecret stores a copy of the secret to share, replacing any
	// previous one. It fails with ErrInvalidSecret when the secret cannot
	// be packed into R pieces.
	SetSecret(secret *Array[T]) error

	// GenerateShares derives N shares from the secret using fresh
	// randomness. It fails with ErrNotInitialized when parameters or the
	// secret are missing.
	GenerateShares() error

	// ReconstructSecret recovers the secret from the first T shares and
	// trims it to origSize elements. A non-positive origSize selects the
	// size recorded by SetSecret.
	ReconstructSecret(origSize int) (*Array[T], error)

	// SetExternalShares replaces the stored shares with shares received
	// from elsewhere. Only the first T entries are kept.
	SetExternalShares(shares []*Array[T], indices []int) error

	// Secret returns a copy of the stored secret.
	Secret() (*Array[T], error)

	// Shares returns copies of the stored shares.
	Shares() ([]*Array[T], error)

	// ShareIndices returns the indices matching Shares.
	ShareIndices() ([]int, error)
}

// Base holds the state shared by all schemes. It is not a Scheme on its
// own; concrete schemes embed it.
type Base[T Element] struct {
	opts Options

	threshold   int
	ramp        int
	num         int
	initialized bool

	secret         *Array[T]
	origSecretSize int

	shares  []*Array[T]
	indices []int

	random *Matrix[T]
}

// NewBase returns an empty Base configured with opts.
func NewBase[T Element](opts ...Option) *Base[T] {
	return &Base[T]{opts: buildOptions(opts)}
}

// SetParams validates and stores the parameters. Previously generated
// shares, indices and random material are dropped; the secret is kept and
// re-checked against the new ramp when shares are generated.
func (b *Base[T]) SetParams(threshold, ramp, num int) error {
	if ramp < 1 || ramp > threshold || threshold > num {
		return fmt.Errorf("%w: need 1 <= ramp <= threshold <= num, got threshold=%d ramp=%d num=%d",
			ErrInvalidParameter, threshold, ramp, num)
	}

	b.threshold = threshold
	b.ramp = ramp
	b.num = num
	b.initialized = true
	b.shares = nil
	b.indices = nil
	b.random = nil

	logger.WithFields(logrus.Fields{
		"threshold": threshold,
		"ramp":      ramp,
		"num":       num,
	}).Debug("parameters set")
	return nil
}

// Threshold returns T, or 0 before SetParams.
func (b *Base[T]) Threshold() int { return b.threshold }

// Ramp returns R, or 0 before SetParams.
func (b *Base[T]) Ramp() int { return b.ramp }

// Num returns N, or 0 before SetParams.
func (b *Base[T]) Num() int { return b.num }

// Initialized reports whether SetParams has succeeded.
func (b *Base[T]) Initialized() bool { return b.initialized }

// OrigSecretSize returns the size of the last secret before padding.
func (b *Base[T]) OrigSecretSize() int { return b.origSecretSize }

// Rand returns the entropy source.
func (b *Base[T]) Rand() io.Reader { return b.opts.Rand }

// StoreSecret validates secret and keeps a copy of it. Every element must be
// below maxValue; a maxValue of zero disables the range check.
func (b *Base[T]) StoreSecret(secret *Array[T], maxValue uint64) error {
	if !b.initialized {
		return fmt.Errorf("%w: parameters must be set before the secret", ErrNotInitialized)
	}
	if secret == nil || secret.Size() == 0 {
		return fmt.Errorf("%w: secret is empty", ErrInvalidSecret)
	}
	if n, err := shapeSize(secret.Shape); err != nil || n != len(secret.Data) {
		return fmt.Errorf("%w: shape %v does not match %d elements", ErrInvalidSecret, secret.Shape, len(secret.Data))
	}
	if err := b.checkPacking(secret.Size()); err != nil {
		return err
	}
	if maxValue != 0 {
		for i, v := range secret.Data {
			if uint64(v) >= maxValue {
				return fmt.Errorf("%w: element %d is %d, must be below %d", ErrInvalidSecret, i, uint64(v), maxValue)
			}
		}
	}

	b.secret = secret.Clone()
	b.origSecretSize = secret.Size()
	b.shares = nil
	b.indices = nil
	b.random = nil
	return nil
}

func (b *Base[T]) checkPacking(size int) error {
	if !b.opts.Padding && size%b.ramp != 0 {
		return fmt.Errorf("%w: size %d is not a multiple of ramp %d", ErrInvalidSecret, size, b.ramp)
	}
	return nil
}

// PieceLen returns ceil(size/R), the length of each secret piece and of
// each share.
func (b *Base[T]) PieceLen() int {
	return (b.secret.Size() + b.ramp - 1) / b.ramp
}

// Pieces splits the flattened secret into R pieces of PieceLen elements,
// zero-padding the last one when padding is enabled.
func (b *Base[T]) Pieces() ([][]T, error) {
	if !b.initialized || b.secret == nil {
		return nil, fmt.Errorf("%w: parameters and secret must be set", ErrNotInitialized)
	}
	if err := b.checkPacking(b.secret.Size()); err != nil {
		return nil, err
	}

	l := b.PieceLen()
	padded := make([]T, l*b.ramp)
	copy(padded, b.secret.Data)

	pieces := make([][]T, b.ramp)
	for j := range pieces {
		pieces[j] = padded[j*l : (j+1)*l]
	}
	return pieces, nil
}

// StoreShares keeps generated shares and assigns them indices 1..N.
func (b *Base[T]) StoreShares(shares []*Array[T]) {
	b.shares = shares
	b.indices = make([]int, len(shares))
	for i := range b.indices {
		b.indices[i] = i + 1
	}
}

// SetExternalShares replaces the stored shares and indices. Both lists must
// have the same length; only the first T entries are kept.
func (b *Base[T]) SetExternalShares(shares []*Array[T], indices []int) error {
	if len(shares) != len(indices) {
		return fmt.Errorf("%w: %d shares, %d indices", ErrShareCountMismatch, len(shares), len(indices))
	}
	if !b.initialized {
		return fmt.Errorf("%w: parameters must be set before shares", ErrNotInitialized)
	}

	keep := min(len(indices), b.threshold)
	b.shares = make([]*Array[T], keep)
	for i := 0; i < keep; i++ {
		b.shares[i] = shares[i].Clone()
	}
	b.indices = append([]int(nil), indices[:keep]...)
	return nil
}

// Secret returns a copy of the stored secret.
func (b *Base[T]) Secret() (*Array[T], error) {
	if b.secret == nil {
		return nil, fmt.Errorf("%w: no secret set", ErrNotInitialized)
	}
	return b.secret.Clone(), nil
}

// Shares returns copies of the stored shares.
func (b *Base[T]) Shares() ([]*Array[T], error) {
	if b.shares == nil {
		return nil, fmt.Errorf("%w: no shares available", ErrNotInitialized)
	}
	out := make([]*Array[T], len(b.shares))
	for i, s := range b.shares {
		out[i] = s.Clone()
	}
	return out, nil
}

// ShareIndices returns a copy of the index list matching Shares.
func (b *Base[T]) ShareIndices() ([]int, error) {
	if b.indices == nil {
		return nil, fmt.Errorf("%w: no shares available", ErrNotInitialized)
	}
	return append([]int(nil), b.indices...), nil
}

// RandomMatrix returns the matrix drawn by the last GenerateRandom call, or
// nil when none is held.
func (b *Base[T]) RandomMatrix() *Matrix[T] {
	return b.random
}

// ReconstructionInput returns the first T indices and share data to
// reconstruct from. It checks that T distinct indices in [1, N] are present
// and that all shares have the same non-zero length.
func (b *Base[T]) ReconstructionInput() ([]int, [][]T, error) {
	if !b.initialized {
		return nil, nil, fmt.Errorf("%w: parameters must be set before reconstruction", ErrNotInitialized)
	}
	if len(b.indices) < b.threshold {
		return nil, nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientShares, b.threshold, len(b.indices))
	}

	xs := b.indices[:b.threshold]
	ys := make([][]T, b.threshold)
	seen := make(map[int]struct{}, b.threshold)
	for i, x := range xs {
		if x < 1 || x > b.num {
			return nil, nil, fmt.Errorf("%w: share index %d outside [1, %d]", ErrReconstruction, x, b.num)
		}
		seen[x] = struct{}{}

		s := b.shares[i]
		if s == nil || s.Size() == 0 {
			return nil, nil, fmt.Errorf("%w: share %d is empty", ErrReconstruction, x)
		}
		if i > 0 && s.Size() != len(ys[0]) {
			return nil, nil, fmt.Errorf("%w: share %d has %d elements, expected %d", ErrReconstruction, x, s.Size(), len(ys[0]))
		}
		ys[i] = s.Data
	}
	if len(seen) < b.threshold {
		return nil, nil, fmt.Errorf("%w: need %d distinct indices, have %d", ErrInsufficientShares, b.threshold, len(seen))
	}

	return append([]int(nil), xs...), ys, nil
}

// Finish trims the decoded, flattened secret to origSize elements. When the
// size matches the secret held by this instance, its shape is restored.
func (b *Base[T]) Finish(decoded []T, origSize int) (*Array[T], error) {
	if origSize <= 0 {
		origSize = b.origSecretSize
	}
	if origSize <= 0 {
		origSize = len(decoded)
	}
	if origSize > len(decoded) {
		return nil, fmt.Errorf("%w: original size %d exceeds decoded size %d", ErrReconstruction, origSize, len(decoded))
	}

	shape := []int{origSize}
	if b.secret != nil && b.secret.Size() == origSize {
		shape = append([]int(nil), b.secret.Shape...)
	}
	return &Array[T]{
		Shape: shape,
		Data:  append([]T(nil), decoded[:origSize]...),
	}, nil
}
