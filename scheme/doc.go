// Package scheme defines the contract shared by every ramp secret sharing
// scheme in this module, together with the state and helpers all concrete
// schemes reuse.
//
// A (T, R, N) ramp scheme splits a secret into N shares such that:
//
//   - any T shares reconstruct the secret,
//   - any T-R shares reveal nothing about it,
//   - each share is roughly 1/R the size of the secret.
//
// R = 1 is classical threshold sharing. The parameters always satisfy
// 1 <= R <= T <= N.
//
// # Lifecycle
//
// Callers program against [Scheme] only:
//
//	s := shamir.NewGF256()
//	if err := s.Initialize(3, 2, 5); err != nil {
//		return err
//	}
//	secret, _ := scheme.NewArray([]uint8("sixteen byte key"))
//	if err := s.SetSecret(secret); err != nil {
//		return err
//	}
//	if err := s.GenerateShares(); err != nil {
//		return err
//	}
//	shares, _ := s.Shares()
//	indices, _ := s.ShareIndices()
//
//	// later, with any 3 of the shares
//	r := shamir.NewGF256()
//	_ = r.Initialize(3, 2, 5)
//	_ = r.SetExternalShares(shares[2:], indices[2:])
//	recovered, err := r.ReconstructSecret(secret.Size())
//
// # Implementing a Scheme
//
// Concrete schemes embed [*Base] and implement Initialize, SetSecret,
// GenerateShares and ReconstructSecret. Base stores the parameters, the
// secret, the shares and the index list, and provides the randomness helper
// [Base.GenerateRandom]. All algebra (finite fields, polynomials, codes)
// lives in the implementation, never here.
//
// # Concurrency
//
// A scheme instance holds mutable state and must not be used from several
// goroutines at once. Give each concurrent sharing or reconstruction its own
// instance, or use the session package.
package scheme
