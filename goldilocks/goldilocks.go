package goldilocks

import (
	"errors"

	"github.com/consensys/gnark-crypto/field/goldilocks"

	"github.com/f3rmion/sss/field"
)

// order is the Goldilocks prime.
var order uint64

func init() {
	order = goldilocks.Modulus().Uint64()
}

// Element is a member of the Goldilocks field. It implements
// [field.Element] by wrapping gnark-crypto's goldilocks.Element.
type Element struct {
	inner goldilocks.Element
}

// Add sets e to a + b (mod p) and returns e.
func (e *Element) Add(a, b field.Element) field.Element {
	e.inner.Add(&a.(*Element).inner, &b.(*Element).inner)
	return e
}

// Sub sets e to a - b (mod p) and returns e.
func (e *Element) Sub(a, b field.Element) field.Element {
	e.inner.Sub(&a.(*Element).inner, &b.(*Element).inner)
	return e
}

// Mul sets e to a * b (mod p) and returns e.
func (e *Element) Mul(a, b field.Element) field.Element {
	e.inner.Mul(&a.(*Element).inner, &b.(*Element).inner)
	return e
}

// Invert sets e to a^(-1) (mod p) and returns e.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (e *Element) Invert(a field.Element) (field.Element, error) {
	aElem := a.(*Element)
	if aElem.inner.IsZero() {
		return nil, errors.New("cannot invert zero element")
	}
	e.inner.Inverse(&aElem.inner)
	return e, nil
}

// Set copies the value of a into e and returns e.
func (e *Element) Set(a field.Element) field.Element {
	e.inner.Set(&a.(*Element).inner)
	return e
}

// SetUint64 sets e to v (mod p) and returns e.
func (e *Element) SetUint64(v uint64) field.Element {
	e.inner.SetUint64(v)
	return e
}

// Uint64 returns the canonical value of e in [0, p).
func (e *Element) Uint64() uint64 {
	return e.inner.Uint64()
}

// Equal reports whether e and b represent the same element.
func (e *Element) Equal(b field.Element) bool {
	return e.inner.Equal(&b.(*Element).inner)
}

// IsZero reports whether e is zero.
func (e *Element) IsZero() bool {
	return e.inner.IsZero()
}

// Goldilocks implements [field.Field] for the Goldilocks prime field.
//
// Goldilocks is a zero-sized type. Create an instance with &Goldilocks{} or
// new(Goldilocks).
type Goldilocks struct{}

// NewElement returns a new zero element.
func (f *Goldilocks) NewElement() field.Element {
	return &Element{}
}

// Order returns p.
func (f *Goldilocks) Order() uint64 {
	return order
}

// Name returns "goldilocks".
func (f *Goldilocks) Name() string {
	return "goldilocks"
}
