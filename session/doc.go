// Package session provides a high-level API for dealing and recovering
// secrets with any [scheme.Scheme]. It wraps the step-by-step scheme
// lifecycle with objects that handle ordering, prevent reuse and check
// share integrity.
//
// The session package is designed for application developers who want to
// split and recover secrets without driving Initialize, SetSecret,
// GenerateShares and ReconstructSecret themselves. For full control use the
// scheme implementations directly.
//
// # Dealing
//
// A Dealer splits exactly one secret:
//
//	d, err := session.NewDealer[uint8](shamir.NewGF256(), 3, 1, 5)
//	if err != nil {
//		return err
//	}
//	shares, err := d.Deal(secret)
//	if err != nil {
//		return err
//	}
//	// hand shares[i] to holder i over a secure channel
//
// Calling Deal a second time returns an error, so the same randomness is
// never reused for a different secret.
//
// # Recovery
//
// A Recovery collects shares one at a time and reconstructs the secret as
// soon as the threshold is reached:
//
//	r, err := session.NewRecovery[uint8](shamir.NewGF256(), 3, 1, 5, secretSize)
//	for _, sh := range incoming {
//		done, err := r.Submit(sh)
//		if err != nil {
//			return err
//		}
//		if done {
//			break
//		}
//	}
//	secret, err := r.Secret()
//
// # Integrity
//
// Each [Share] carries a digest of its index and data computed by a
// [Hasher]. Recovery rejects shares whose digest does not match. With a
// keyed [Blake2bHasher] the digest acts as a MAC, so only holders of the
// dealer's key can produce acceptable shares.
//
// # Concurrency
//
// Dealer and Recovery are safe for concurrent use. They do not handle
// transport; moving shares between parties is the caller's job.
package session
