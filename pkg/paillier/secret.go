package paillier

import (
	"math/big"

	"github.com/cronokirby/safenum"
	"github.com/go-cggmp/auxinfo/pkg/math/curve"
	"github.com/go-cggmp/auxinfo/pkg/math/sample"
)

// SecretKey is the secret key corresponding to a PublicKey: the two Blum
// primes P, Q such that N = P·Q, and their totient ϕ = (P-1)(Q-1).
type SecretKey struct {
	*PublicKey
	p, q *safenum.Nat
	phi  *safenum.Nat
}

// NewSecretKey generates a fresh Paillier key pair: two params.BitsBlumPrime
// Blum primes, and the modulus N = P·Q they compose.
func NewSecretKey() *SecretKey {
	p, q := sample.Paillier()
	return NewSecretKeyFromPrimes(p, q)
}

// NewSecretKeyFromPrimes builds a SecretKey from two already-sampled primes.
func NewSecretKeyFromPrimes(p, q *safenum.Nat) *SecretKey {
	n := new(safenum.Nat).Mul(p, q, -1)

	one := new(safenum.Nat).SetBig(big.NewInt(1), 1)
	pMinus1 := new(safenum.Nat).Sub(p, one, -1)
	qMinus1 := new(safenum.Nat).Sub(q, one, -1)
	phi := new(safenum.Nat).Mul(pMinus1, qMinus1, -1)

	return &SecretKey{
		PublicKey: NewPublicKey(n),
		p:         p,
		q:         q,
		phi:       phi,
	}
}

// P returns the first prime factor of N.
func (sk *SecretKey) P() *safenum.Nat { return sk.p }

// Q returns the second prime factor of N.
func (sk *SecretKey) Q() *safenum.Nat { return sk.q }

// Phi returns ϕ(N) = (P-1)(Q-1).
func (sk *SecretKey) Phi() *safenum.Nat { return sk.phi }

// Dec decrypts ct, returning the plaintext as a curve scalar reduced modulo
// the elliptic-curve group order, as required by FullData2.paillier_enc_x.
func (sk *SecretKey) Dec(ct *Ciphertext) (*curve.Scalar, error) {
	nBig := sk.n.Big()
	nSquaredBig := new(big.Int).Mul(nBig, nBig)
	c := ct.c.Big()

	if c.Sign() <= 0 || c.Cmp(nSquaredBig) >= 0 {
		return nil, ErrInvalidCiphertext
	}

	phiBig := sk.phi.Big()
	// L(c^phi mod N^2) / N mod N, then multiply by phi^-1 mod N.
	u := new(big.Int).Exp(c, phiBig, nSquaredBig)
	u.Sub(u, big.NewInt(1))
	u.Div(u, nBig)

	phiInv := new(big.Int).ModInverse(phiBig, nBig)
	if phiInv == nil {
		return nil, ErrInvalidCiphertext
	}
	m := new(big.Int).Mul(u, phiInv)
	m.Mod(m, nBig)

	mInt := new(safenum.Int).SetNat(new(safenum.Nat).SetBig(m, m.BitLen()))
	return curve.NewScalarInt(mInt), nil
}

// GeneratePedersen derives ring-Pedersen parameters (s, t) bound to this
// key's modulus, returning the secret exponent λ alongside them.
func (sk *SecretKey) GeneratePedersen() (s, t, lambda *safenum.Nat) {
	return sample.Pedersen(sk.phi, sk.n)
}
