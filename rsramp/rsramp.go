package rsramp

import (
	"fmt"

	"github.com/klauspost/reedsolomon"
	"github.com/sirupsen/logrus"

	"github.com/f3rmion/sss/scheme"
)

var logger = logrus.WithField("module", "rsramp")

// MaxShards is the largest T+N the encoder supports.
const MaxShards = 256

var _ scheme.Scheme[uint8] = (*Scheme)(nil)

// Scheme is a ramp scheme whose shares are Reed-Solomon parity shards.
type Scheme struct {
	*scheme.Base[uint8]
	enc reedsolomon.Encoder
}

// New creates an uninitialised scheme.
func New(opts ...scheme.Option) *Scheme {
	return &Scheme{Base: scheme.NewBase[uint8](opts...)}
}

// Initialize implements [scheme.Scheme]. It also builds the encoder, which
// requires T+N <= MaxShards.
func (s *Scheme) Initialize(threshold, ramp, num int) error {
	if threshold+num > MaxShards {
		return fmt.Errorf("%w: threshold+num must be at most %d, got %d", scheme.ErrInvalidParameter, MaxShards, threshold+num)
	}
	if err := s.SetParams(threshold, ramp, num); err != nil {
		return err
	}
	s.enc = nil

	enc, err := reedsolomon.New(threshold, num, reedsolomon.WithCauchyMatrix())
	if err != nil {
		return fmt.Errorf("%w: failed to create encoder: %v", scheme.ErrInvalidParameter, err)
	}
	s.enc = enc
	return nil
}

// SetSecret implements [scheme.Scheme].
func (s *Scheme) SetSecret(secret *scheme.Array[uint8]) error {
	return s.StoreSecret(secret, 0)
}

// GenerateShares implements [scheme.Scheme].
func (s *Scheme) GenerateShares() error {
	if s.enc == nil {
		return fmt.Errorf("%w: Initialize must be called before GenerateShares", scheme.ErrNotInitialized)
	}
	pieces, err := s.Pieces()
	if err != nil {
		return err
	}
	random, err := s.GenerateRandom(256)
	if err != nil {
		return err
	}

	threshold, ramp, num := s.Threshold(), s.Ramp(), s.Num()
	width := len(pieces[0])

	shards := make([][]byte, threshold+num)
	for j := 0; j < ramp; j++ {
		shards[j] = append([]byte(nil), pieces[j]...)
	}
	for j := 0; j < threshold-ramp; j++ {
		shards[ramp+j] = append([]byte(nil), random.Row(j)...)
	}
	for i := threshold; i < len(shards); i++ {
		shards[i] = make([]byte, width)
	}

	if err := s.enc.Encode(shards); err != nil {
		return fmt.Errorf("failed to encode shards: %w", err)
	}

	shares := make([]*scheme.Array[uint8], num)
	for i := range shares {
		shares[i] = &scheme.Array[uint8]{Shape: []int{width}, Data: shards[threshold+i]}
	}
	s.StoreShares(shares)

	logger.WithFields(logrus.Fields{
		"threshold": threshold,
		"ramp":      ramp,
		"num":       num,
		"shareLen":  width,
	}).Debug("shares generated")
	return nil
}

// ReconstructSecret implements [scheme.Scheme]. The first T shares are
// placed at their parity positions and the data shards are rebuilt.
func (s *Scheme) ReconstructSecret(origSize int) (*scheme.Array[uint8], error) {
	xs, ys, err := s.ReconstructionInput()
	if err != nil {
		return nil, err
	}

	threshold, ramp := s.Threshold(), s.Ramp()
	shards := make([][]byte, threshold+s.Num())
	for i, x := range xs {
		shards[threshold+x-1] = append([]byte(nil), ys[i]...)
	}

	if err := s.enc.ReconstructData(shards); err != nil {
		return nil, fmt.Errorf("%w: %v", scheme.ErrReconstruction, err)
	}

	width := len(ys[0])
	decoded := make([]uint8, 0, ramp*width)
	for j := 0; j < ramp; j++ {
		decoded = append(decoded, shards[j]...)
	}

	logger.WithFields(logrus.Fields{
		"threshold": threshold,
		"ramp":      ramp,
	}).Debug("secret reconstructed")
	return s.Finish(decoded, origSize)
}
