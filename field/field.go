package field

// Element is a member of a finite field.
//
// All arithmetic methods use a mutable receiver pattern: they store the
// result in the receiver and return it. Arguments must come from the same
// Field as the receiver.
type Element interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Element) Element
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Element) Element
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Element) Element
	// Invert sets the receiver to a^{-1} and returns it.
	// Returns an error if a is zero.
	Invert(a Element) (Element, error)
	// Set sets the receiver to a and returns it.
	Set(a Element) Element
	// SetUint64 sets the receiver to the element with canonical value v
	// and returns it. v must be below the field order.
	SetUint64(v uint64) Element
	// Uint64 returns the canonical value of the receiver.
	Uint64() uint64
	// Equal reports whether the receiver equals b.
	Equal(b Element) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
}

// Field is a factory for elements of one finite field.
type Field interface {
	// NewElement returns a new zero element.
	NewElement() Element
	// Order returns the number of elements; canonical values lie in
	// [0, Order).
	Order() uint64
	// Name identifies the field in logs and errors.
	Name() string
}
