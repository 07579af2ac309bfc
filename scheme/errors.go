package scheme

import "errors"

var (
	// ErrInvalidParameter is returned when 1 <= ramp <= threshold <= num
	// does not hold, or a parameter is outside what a scheme supports.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidSecret is returned when a secret is empty, does not pack
	// into ramp pieces, or holds values outside the scheme's range.
	ErrInvalidSecret = errors.New("invalid secret")

	// ErrNotInitialized is returned when an operation runs before the
	// parameters, the secret or the shares it depends on are set.
	ErrNotInitialized = errors.New("not initialized")

	// ErrInsufficientShares is returned when fewer than threshold distinct
	// share indices are available for reconstruction.
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrReconstruction is returned when shares are inconsistent, e.g. an
	// index is out of range or share lengths differ.
	ErrReconstruction = errors.New("reconstruction failed")

	// ErrInvalidRampConfiguration is returned by the randomness helper when
	// ramp is zero or exceeds threshold.
	ErrInvalidRampConfiguration = errors.New("invalid ramp configuration")

	// ErrShareCountMismatch is returned when the number of shares and the
	// number of indices passed to SetExternalShares differ.
	ErrShareCountMismatch = errors.New("number of shares and number of indices differ")
)
