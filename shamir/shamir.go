package shamir

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/f3rmion/sss/field"
	"github.com/f3rmion/sss/gf256"
	"github.com/f3rmion/sss/goldilocks"
	"github.com/f3rmion/sss/scheme"
)

var logger = logrus.WithField("module", "shamir")

var (
	_ scheme.Scheme[uint8]  = (*Scheme[uint8])(nil)
	_ scheme.Scheme[uint64] = (*Scheme[uint64])(nil)
)

// Scheme is a ramp Shamir scheme over a finite field.
type Scheme[T scheme.Element] struct {
	*scheme.Base[T]
	field field.Field
}

// New creates a scheme over f.
func New[T scheme.Element](f field.Field, opts ...scheme.Option) *Scheme[T] {
	return &Scheme[T]{
		Base:  scheme.NewBase[T](opts...),
		field: f,
	}
}

// NewGF256 creates a scheme sharing byte arrays over GF(2^8).
func NewGF256(opts ...scheme.Option) *Scheme[uint8] {
	return New[uint8](&gf256.GF256{}, opts...)
}

// NewGoldilocks creates a scheme sharing uint64 arrays over the Goldilocks
// prime field.
func NewGoldilocks(opts ...scheme.Option) *Scheme[uint64] {
	return New[uint64](&goldilocks.Goldilocks{}, opts...)
}

// Field returns the field the scheme computes in.
func (s *Scheme[T]) Field() field.Field {
	return s.field
}

// Initialize implements [scheme.Scheme]. Besides the ordering of the
// parameters it requires N non-zero evaluation points, so N must be below
// the field order, and the field values must fit the element type.
func (s *Scheme[T]) Initialize(threshold, ramp, num int) error {
	order := s.field.Order()
	if order-1 > uint64(^T(0)) {
		return fmt.Errorf("%w: %s values do not fit the element type", scheme.ErrInvalidParameter, s.field.Name())
	}
	if num > 0 && uint64(num) >= order {
		return fmt.Errorf("%w: %s supports at most %d shares, got %d", scheme.ErrInvalidParameter, s.field.Name(), order-1, num)
	}
	return s.SetParams(threshold, ramp, num)
}

// SetSecret implements [scheme.Scheme]. Every element must be below the
// field order.
func (s *Scheme[T]) SetSecret(secret *scheme.Array[T]) error {
	return s.StoreSecret(secret, s.field.Order())
}

// GenerateShares implements [scheme.Scheme].
func (s *Scheme[T]) GenerateShares() error {
	if !s.Initialized() {
		return fmt.Errorf("%w: Initialize must be called before GenerateShares", scheme.ErrNotInitialized)
	}
	pieces, err := s.Pieces()
	if err != nil {
		return err
	}
	random, err := s.GenerateRandom(s.field.Order())
	if err != nil {
		return err
	}

	threshold, ramp, num := s.Threshold(), s.Ramp(), s.Num()
	width := len(pieces[0])

	xs := make([]field.Element, num)
	for i := range xs {
		xs[i] = s.field.NewElement().SetUint64(uint64(i + 1))
	}

	shares := make([]*scheme.Array[T], num)
	for i := range shares {
		shares[i] = &scheme.Array[T]{Shape: []int{width}, Data: make([]T, width)}
	}

	coeffs := make([]field.Element, threshold)
	for i := range coeffs {
		coeffs[i] = s.field.NewElement()
	}
	for c := 0; c < width; c++ {
		for j := 0; j < ramp; j++ {
			coeffs[j].SetUint64(uint64(pieces[j][c]))
		}
		for j := 0; j < threshold-ramp; j++ {
			coeffs[ramp+j].SetUint64(uint64(random.At(j, c)))
		}
		for i, x := range xs {
			shares[i].Data[c] = T(s.evalPolynomial(coeffs, x).Uint64())
		}
	}
	s.StoreShares(shares)

	logger.WithFields(logrus.Fields{
		"field":     s.field.Name(),
		"threshold": threshold,
		"ramp":      ramp,
		"num":       num,
		"shareLen":  width,
	}).Debug("shares generated")
	return nil
}

// ReconstructSecret implements [scheme.Scheme]. It interpolates the
// polynomial through the first T shares and reads the secret back from its
// low R coefficients.
func (s *Scheme[T]) ReconstructSecret(origSize int) (*scheme.Array[T], error) {
	xs, ys, err := s.ReconstructionInput()
	if err != nil {
		return nil, err
	}

	order := s.field.Order()
	for i, y := range ys {
		for _, v := range y {
			if uint64(v) >= order {
				return nil, fmt.Errorf("%w: share %d holds %d, outside %s", scheme.ErrReconstruction, xs[i], uint64(v), s.field.Name())
			}
		}
	}

	basis, err := s.lagrangeBasis(xs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", scheme.ErrReconstruction, err)
	}

	ramp := s.Ramp()
	width := len(ys[0])
	decoded := make([]T, ramp*width)

	y := s.field.NewElement()
	for c := 0; c < width; c++ {
		for j := 0; j < ramp; j++ {
			acc := s.field.NewElement()
			for i := range ys {
				y.SetUint64(uint64(ys[i][c]))
				term := s.field.NewElement().Mul(y, basis[i][j])
				acc = s.field.NewElement().Add(acc, term)
			}
			decoded[j*width+c] = T(acc.Uint64())
		}
	}

	logger.WithFields(logrus.Fields{
		"field":     s.field.Name(),
		"threshold": s.Threshold(),
		"ramp":      ramp,
	}).Debug("secret reconstructed")
	return s.Finish(decoded, origSize)
}
