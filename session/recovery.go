package session

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/f3rmion/sss/scheme"
)

var (
	// ErrRecoveryComplete is returned by Submit after the secret was
	// reconstructed.
	ErrRecoveryComplete = errors.New("recovery already complete")

	// ErrDuplicateShare is returned when a share index is submitted twice.
	ErrDuplicateShare = errors.New("duplicate share index")

	// ErrDigestMismatch is returned when a share's digest does not match
	// its index and data.
	ErrDigestMismatch = errors.New("share digest mismatch")
)

// Recovery collects shares until the threshold is reached and then
// reconstructs the secret. Create instances using [NewRecovery].
type Recovery[T scheme.Element] struct {
	mu        sync.Mutex
	scheme    scheme.Scheme[T]
	hasher    Hasher
	threshold int
	num       int
	origSize  int

	received []*Share[T]
	seen     map[int]struct{}
	secret   *scheme.Array[T]
}

// NewRecovery initialises s with the given parameters and wraps it.
// origSize is the element count of the original secret; a non-positive
// value returns every decoded element, padding included.
func NewRecovery[T scheme.Element](s scheme.Scheme[T], threshold, ramp, num, origSize int, opts ...Option) (*Recovery[T], error) {
	if err := s.Initialize(threshold, ramp, num); err != nil {
		return nil, fmt.Errorf("failed to initialize scheme: %w", err)
	}
	o := buildOptions(opts)
	return &Recovery[T]{
		scheme:    s,
		hasher:    o.hasher,
		threshold: threshold,
		num:       num,
		origSize:  origSize,
		seen:      make(map[int]struct{}),
	}, nil
}

// Submit verifies and stores a share. It returns true once the threshold
// is reached and the secret has been reconstructed. When reconstruction
// fails the collected shares are discarded and collection starts over.
func (r *Recovery[T]) Submit(share *Share[T]) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.secret != nil {
		return true, ErrRecoveryComplete
	}
	if share == nil || share.Data == nil {
		return false, errors.New("share is empty")
	}
	if share.Index < 1 || share.Index > r.num {
		return false, fmt.Errorf("%w: share index %d outside [1, %d]", scheme.ErrReconstruction, share.Index, r.num)
	}
	if _, ok := r.seen[share.Index]; ok {
		return false, fmt.Errorf("%w: %d", ErrDuplicateShare, share.Index)
	}
	want := shareDigest(r.hasher, share.Index, share.Data)
	if subtle.ConstantTimeCompare(want, share.Digest) != 1 {
		return false, fmt.Errorf("%w: share %d", ErrDigestMismatch, share.Index)
	}

	r.seen[share.Index] = struct{}{}
	r.received = append(r.received, &Share[T]{
		Index:  share.Index,
		Data:   share.Data.Clone(),
		Digest: append([]byte(nil), share.Digest...),
	})

	logger.WithFields(logrus.Fields{
		"index":    share.Index,
		"received": len(r.received),
		"needed":   r.threshold,
	}).Debug("share accepted")

	if len(r.received) < r.threshold {
		return false, nil
	}
	if err := r.reconstruct(); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Recovery[T]) reconstruct() error {
	data := make([]*scheme.Array[T], len(r.received))
	indices := make([]int, len(r.received))
	for i, s := range r.received {
		data[i] = s.Data
		indices[i] = s.Index
	}

	err := r.scheme.SetExternalShares(data, indices)
	var secret *scheme.Array[T]
	if err == nil {
		secret, err = r.scheme.ReconstructSecret(r.origSize)
	}

	r.received = nil
	r.seen = make(map[int]struct{})
	if err != nil {
		return fmt.Errorf("failed to reconstruct secret: %w", err)
	}
	r.secret = secret
	return nil
}

// Received returns how many shares are held for the current attempt.
func (r *Recovery[T]) Received() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.received)
}

// Secret returns a copy of the reconstructed secret.
func (r *Recovery[T]) Secret() (*scheme.Array[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.secret == nil {
		return nil, fmt.Errorf("%w: need %d shares, have %d", scheme.ErrInsufficientShares, r.threshold, len(r.received))
	}
	return r.secret.Clone(), nil
}
