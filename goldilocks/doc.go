// Package goldilocks provides the Goldilocks prime field as a
// [field.Field] implementation.
//
// The field has prime order
//
//	p = 2^64 - 2^32 + 1 = 18446744069414584321
//
// so every element fits in a uint64 and secrets made of uint64 values below p
// can be shared without any encoding step. The arithmetic is delegated to
// gnark-crypto's field/goldilocks package, which keeps elements in Montgomery
// form; SetUint64 and Uint64 convert to and from canonical values.
//
// # Usage
//
//	f := &goldilocks.Goldilocks{}
//	s := shamir.New[uint64](f)
package goldilocks
