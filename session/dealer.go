package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/f3rmion/sss/scheme"
)

var logger = logrus.WithField("module", "session")

// ErrAlreadyDealt is returned when Deal is called on a Dealer that already
// produced shares.
var ErrAlreadyDealt = errors.New("dealer already used")

// Dealer splits a single secret. Create instances using [NewDealer].
type Dealer[T scheme.Element] struct {
	mu     sync.Mutex
	scheme scheme.Scheme[T]
	hasher Hasher
	dealt  bool
}

// NewDealer initialises s with the given parameters and wraps it.
//
// Parameters:
//   - s: a fresh scheme instance, owned by the Dealer from now on
//   - threshold: shares required to reconstruct (T)
//   - ramp: ramp degree (R), 1 for classical threshold sharing
//   - num: shares to produce (N)
func NewDealer[T scheme.Element](s scheme.Scheme[T], threshold, ramp, num int, opts ...Option) (*Dealer[T], error) {
	if err := s.Initialize(threshold, ramp, num); err != nil {
		return nil, fmt.Errorf("failed to initialize scheme: %w", err)
	}
	o := buildOptions(opts)
	return &Dealer[T]{
		scheme: s,
		hasher: o.hasher,
	}, nil
}

// Deal splits secret into shares with digests. It succeeds at most once;
// a failed attempt may be retried.
func (d *Dealer[T]) Deal(secret *scheme.Array[T]) ([]*Share[T], error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dealt {
		return nil, ErrAlreadyDealt
	}

	if err := d.scheme.SetSecret(secret); err != nil {
		return nil, err
	}
	if err := d.scheme.GenerateShares(); err != nil {
		return nil, err
	}
	data, err := d.scheme.Shares()
	if err != nil {
		return nil, err
	}
	indices, err := d.scheme.ShareIndices()
	if err != nil {
		return nil, err
	}

	shares := make([]*Share[T], len(data))
	for i := range data {
		shares[i] = &Share[T]{
			Index:  indices[i],
			Data:   data[i],
			Digest: shareDigest(d.hasher, indices[i], data[i]),
		}
	}
	d.dealt = true

	logger.WithField("shares", len(shares)).Debug("secret dealt")
	return shares, nil
}
