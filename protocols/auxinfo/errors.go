package auxinfo

import "errors"

// Errors returned while verifying a Round 2 broadcast (a peer's FullData).
var (
	// ErrHashMismatch is returned when a party's revealed FullData does not
	// hash to the commitment V it broadcast in Round 1.
	ErrHashMismatch = errors.New("auxinfo: revealed data does not match round 1 commitment")
	// ErrWeakModulus is returned when a party's Paillier modulus is smaller
	// than the protocol's 8λ-bit floor.
	ErrWeakModulus = errors.New("auxinfo: paillier modulus below minimum size")
	// ErrNonZeroShareSum is returned when a party's published xs_public
	// vector does not sum to the identity point.
	ErrNonZeroShareSum = errors.New("auxinfo: xs_public shares do not sum to zero")
	// ErrPRM is returned when a party's PRM proof (that s = t^λ mod N for
	// some λ they know) fails to verify.
	ErrPRM = errors.New("auxinfo: prm proof failed")
)

// Errors returned while verifying a Round 3 direct message (a peer's
// FullData2).
var (
	// ErrShareDecryptMismatch is returned when the decryption of a peer's
	// encrypted share does not match the public share they committed to in
	// Round 1.
	ErrShareDecryptMismatch = errors.New("auxinfo: decrypted share does not match published commitment")
	// ErrMOD is returned when a party's MOD proof (that N is a Blum
	// integer) fails to verify.
	ErrMOD = errors.New("auxinfo: mod proof failed")
	// ErrFAC is returned when a party's FAC proof (that N has no small
	// factor and is consistent with its ring-Pedersen parameters) fails to
	// verify.
	ErrFAC = errors.New("auxinfo: fac proof failed")
	// ErrSchY is returned when a party's Schnorr proof of knowledge of y
	// fails to verify.
	ErrSchY = errors.New("auxinfo: schnorr proof of y failed")
	// ErrSchX is returned when a party's Schnorr proof of knowledge of the
	// x share sent to us fails to verify.
	ErrSchX = errors.New("auxinfo: schnorr proof of x share failed")
)
