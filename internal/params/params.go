// Package params collects the scheme-wide constants used throughout the
// auxiliary-info protocol: the security parameter λ, derived byte/bit
// lengths, and the prime sizes used for Paillier key generation.
package params

const (
	// SecurityParameter is λ, in bits. It controls the length of every
	// BitVec sampled in Round 1 (ρᵢ, uᵢ), the number of repetitions in the
	// PRM and MOD proofs, and the minimum accepted Paillier modulus size
	// (8λ bits).
	SecurityParameter = 256

	// SecurityBytes is ⌈λ/8⌉, the byte length of a BitVec(λ).
	SecurityBytes = SecurityParameter / 8

	// BitsPaillier is the target bit length of a Paillier modulus N = P·Q.
	BitsPaillier = 8 * SecurityParameter

	// BitsBlumPrime is the bit length of each of the two Blum primes P, Q
	// composing a Paillier modulus, so that N has BitsPaillier bits.
	BitsBlumPrime = BitsPaillier / 2

	// MinPaillierBits is the minimum modulus size this protocol accepts on
	// receipt, per spec: |N| ≥ 8λ.
	MinPaillierBits = 8 * SecurityParameter

	// StatParamPRM / StatParamMOD are the number of parallel repetitions
	// used by the PRM and MOD sigma protocols, set to λ.
	StatParamPRM = SecurityParameter
	StatParamMOD = SecurityParameter
)
