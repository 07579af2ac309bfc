// Package gf256 implements the [field.Field] interface for GF(2^8), the
// field of bytes used by AES.
//
// The field is defined by the irreducible polynomial
//
//	x^8 + x^4 + x^3 + x + 1   (0x11B)
//
// Addition and subtraction are XOR. Multiplication and inversion use
// logarithm and exponentiation tables over the generator 0x03, built once at
// package initialisation.
//
// Because the field has 256 elements, a polynomial scheme over GF(2^8) can
// evaluate at most 255 distinct non-zero points, so at most 255 shares can be
// produced.
package gf256
