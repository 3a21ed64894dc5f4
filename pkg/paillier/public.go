// Package paillier implements the Paillier cryptosystem surface needed by
// the auxiliary-info protocol: key generation, encryption under a peer's
// public key, and decryption under one's own secret key.
package paillier

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/cronokirby/safenum"
	"github.com/go-cggmp/auxinfo/internal/params"
)

var (
	// ErrModulusTooSmall is returned when a received Paillier modulus does
	// not meet the protocol's 8λ-bit lower bound.
	ErrModulusTooSmall = errors.New("paillier: modulus is smaller than 8λ bits")
	// ErrInvalidCiphertext is returned by Dec when the ciphertext is not a
	// valid element of Z*_{N²}.
	ErrInvalidCiphertext = errors.New("paillier: ciphertext is not in Z*_{N^2}")
)

// PublicKey is a Paillier public key: the modulus N, together with its
// square N², cached as a safenum.Modulus for fast exponentiation.
type PublicKey struct {
	n        *safenum.Nat
	nMod     *safenum.Modulus
	nSquared *safenum.Modulus
}

// NewPublicKey wraps a modulus n (assumed to already be a product of two
// large primes) as a PublicKey.
func NewPublicKey(n *safenum.Nat) *PublicKey {
	nSquared := new(safenum.Nat).Mul(n, n, -1)
	return &PublicKey{
		n:        n,
		nMod:     safenum.ModulusFromNat(n),
		nSquared: safenum.ModulusFromNat(nSquared),
	}
}

// N returns the modulus N.
func (pk *PublicKey) N() *safenum.Nat { return pk.n }

// ValidateN reports whether n is at least the protocol's minimum accepted
// Paillier modulus size (8λ bits). Per spec, this check is applied to every
// Paillier public key received from a peer.
func ValidateN(n *safenum.Nat) error {
	if n.Big().BitLen() < params.MinPaillierBits {
		return ErrModulusTooSmall
	}
	return nil
}

// Ciphertext is a Paillier ciphertext, an element of Z_{N²}.
type Ciphertext struct {
	c *safenum.Nat
}

// Enc encrypts a curve scalar m under pk, returning the resulting
// ciphertext. The randomizer is sampled internally and discarded: this
// protocol never needs to reveal it.
func (pk *PublicKey) Enc(m *safenum.Int) *Ciphertext {
	mNat := intToNat(m, pk.n)

	// c = (1+N)^m * r^N mod N^2, computed as (1 + m*N mod N^2) * r^N mod N^2
	nBig := pk.n.Big()
	nSquaredBig := new(big.Int).Mul(nBig, nBig)

	r := randomInvertible(nBig)
	rToN := new(big.Int).Exp(r, nBig, nSquaredBig)

	mNBig := new(big.Int).Mul(mNat.Big(), nBig)
	base := new(big.Int).Add(big.NewInt(1), mNBig)
	base.Mod(base, nSquaredBig)

	c := new(big.Int).Mul(base, rToN)
	c.Mod(c, nSquaredBig)

	return &Ciphertext{c: new(safenum.Nat).SetBig(c, c.BitLen())}
}

// randomInvertible draws a uniformly random element of Z*_n.
func randomInvertible(n *big.Int) *big.Int {
	for {
		r, err := rand.Int(rand.Reader, n)
		if err != nil {
			panic(err)
		}
		if r.Sign() == 0 {
			continue
		}
		if new(big.Int).GCD(nil, nil, r, n).Cmp(big.NewInt(1)) == 0 {
			return r
		}
	}
}

// intToNat reduces a signed value m modulo n, returning a value in [0, n).
func intToNat(m *safenum.Int, n *safenum.Nat) *safenum.Nat {
	b := new(big.Int).Mod(m.Big(), n.Big())
	return new(safenum.Nat).SetBig(b, b.BitLen())
}

// Bytes returns the big-endian encoding of the ciphertext, used by the
// transcript hash.
func (c *Ciphertext) Bytes() []byte {
	return c.c.Big().Bytes()
}

// Bytes returns the big-endian encoding of the modulus N, used by the
// transcript hash.
func (pk *PublicKey) Bytes() []byte {
	return pk.n.Big().Bytes()
}
