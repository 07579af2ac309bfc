// Package shamir implements ramp Shamir secret sharing over an arbitrary
// finite field.
//
// A (T, R, N) ramp scheme hides R secret values and T-R random values in the
// coefficients of a polynomial of degree T-1:
//
//	f(x) = s_0 + s_1*x + ... + s_{R-1}*x^{R-1} + r_0*x^R + ... + r_{T-R-1}*x^{T-1}
//
// Share i is f(i). Any T shares determine f, and with it the R secret
// values; any T-R shares are independent of the secret. With R = 1 this is
// Shamir's classical threshold scheme.
//
// # Packing
//
// The flattened secret is cut into R pieces of equal length L, and one
// polynomial is built per column: column c uses element c of every piece.
// Each share therefore holds L field elements, 1/R of the secret size. The
// secret size must be a multiple of R unless the scheme was created with
// [scheme.WithPadding].
//
// # Fields
//
// [NewGF256] shares byte arrays over GF(2^8) and supports up to 255 shares.
// [NewGoldilocks] shares uint64 arrays whose values are below the Goldilocks
// prime. [New] accepts any [field.Field] whose values fit the element type.
//
// # Example
//
//	s := shamir.NewGF256()
//	_ = s.Initialize(3, 1, 5)
//	secret, _ := scheme.NewArray([]byte("attack at dawn"))
//	_ = s.SetSecret(secret)
//	_ = s.GenerateShares()
//	shares, _ := s.Shares()
//	indices, _ := s.ShareIndices()
//
//	r := shamir.NewGF256()
//	_ = r.Initialize(3, 1, 5)
//	_ = r.SetExternalShares(shares[1:4], indices[1:4])
//	recovered, _ := r.ReconstructSecret(secret.Size())
package shamir
