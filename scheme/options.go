package scheme

import (
	"crypto/rand"
	"io"
)

// Options holds construction-time settings shared by all schemes.
type Options struct {
	// Rand is the entropy source for the randomness helper. It defaults to
	// crypto/rand.Reader and must stay unpredictable outside of tests.
	Rand io.Reader

	// Padding allows secrets whose size is not a multiple of ramp. They are
	// zero-padded and the padding is stripped on reconstruction.
	Padding bool
}

// Option configures a scheme.
type Option func(*Options)

// WithRand sets the entropy source.
func WithRand(r io.Reader) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithPadding enables zero-padding of secrets to a multiple of ramp.
func WithPadding() Option {
	return func(o *Options) {
		o.Padding = true
	}
}

func buildOptions(opts []Option) Options {
	o := Options{Rand: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.Reader
	}
	return o
}
