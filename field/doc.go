// Package field defines abstract interfaces for the finite fields used by
// polynomial secret sharing schemes.
//
// This package provides two interfaces:
//
//   - [Element]: a member of a finite field
//   - [Field]: a factory for elements that also reports the field order
//
// # Design Philosophy
//
// Like the arithmetic in math/big, operations use a mutable receiver: Add,
// Sub and Mul set the receiver to the result and return it, which allows
// chaining while keeping allocations low:
//
//	// Compute a + b*c
//	r := f.NewElement().Mul(b, c)
//	r = f.NewElement().Add(a, r)
//
// Operations that can fail (inversion of zero) return errors rather than
// panicking.
//
// # Encoding
//
// Every element has a canonical integer value in [0, Order). SetUint64 and
// Uint64 convert between that value and the element, which is how schemes
// map secret array entries into the field and shares back out of it.
//
// See the gf256 and goldilocks packages for implementations.
package field
