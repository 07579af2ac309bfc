package session

// Option configures a Dealer or Recovery.
type Option func(*options)

type options struct {
	hasher Hasher
}

// WithHasher sets the digest function. Dealer and Recovery must agree on
// it. The default is SHA256Hasher.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		o.hasher = h
	}
}

func buildOptions(opts []Option) options {
	o := options{hasher: &SHA256Hasher{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasher == nil {
		o.hasher = &SHA256Hasher{}
	}
	return o
}
