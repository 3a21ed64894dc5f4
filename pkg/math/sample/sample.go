// Package sample draws the random values needed throughout the protocol:
// the zero-sum scalar tuple used for share masking, Blum primes for
// Paillier keys, and ring-Pedersen parameters.
package sample

import (
	"crypto/rand"
	"math/big"

	"github.com/cronokirby/safenum"
	"github.com/go-cggmp/auxinfo/internal/params"
	"github.com/go-cggmp/auxinfo/pkg/math/curve"
)

// ZeroSumScalars returns n scalars summing to exactly zero.
//
// Design (per the protocol's share-masking algebra): draw n-1 scalars
// independently and uniformly, and set the last one to the negation of
// their sum. This is the only source of randomness that couples the n
// outputs together; it is constant-time and unbiased given a uniform
// scalar sampler, unlike a rejection-sampling scheme.
func ZeroSumScalars(n int) []*curve.Scalar {
	out := make([]*curve.Scalar, n)
	sum := curve.NewScalar()
	for i := 0; i < n-1; i++ {
		out[i] = curve.NewScalarRandom()
		sum.Add(sum, out[i])
	}
	last := curve.NewScalar().Set(sum)
	last.Negate()
	out[n-1] = last
	return out
}

// Paillier draws two Blum primes P, Q of params.BitsBlumPrime bits each,
// suitable for constructing a Paillier key pair: both are ≡ 3 (mod 4), and
// (P-1)/2 and (Q-1)/2 are themselves prime (safe primes), which is what
// lets the ring-Pedersen and MOD/FAC proofs go through.
func Paillier() (p, q *safenum.Nat) {
	pBig := blumSafePrime(params.BitsBlumPrime)
	qBig := blumSafePrime(params.BitsBlumPrime)
	for qBig.Cmp(pBig) == 0 {
		qBig = blumSafePrime(params.BitsBlumPrime)
	}
	p = new(safenum.Nat).SetBig(pBig, pBig.BitLen())
	q = new(safenum.Nat).SetBig(qBig, qBig.BitLen())
	return
}

// blumSafePrime draws a random prime p of the given bit length such that
// p ≡ 3 (mod 4) and (p-1)/2 is also prime.
func blumSafePrime(bits int) *big.Int {
	for {
		q, err := rand.Prime(rand.Reader, bits-1)
		if err != nil {
			panic(err)
		}
		p := new(big.Int).Lsh(q, 1)
		p.Add(p, big.NewInt(1))
		if p.BitLen() != bits {
			continue
		}
		if p.Bit(1) != 1 { // p mod 4 == 3 requires the second-lowest bit set
			continue
		}
		if !p.ProbablyPrime(20) {
			continue
		}
		return p
	}
}

// Pedersen draws ring-Pedersen parameters (s, t) for a Paillier modulus n
// whose totient is phi: samples r invertible mod n, sets t = r², and
// samples a secret exponent λ (mod phi) with s = t^λ mod n.
func Pedersen(phi, n *safenum.Nat) (s, t, lambda *safenum.Nat) {
	nMod := safenum.ModulusFromNat(n)
	phiMod := safenum.ModulusFromNat(phi)

	var r *safenum.Nat
	for {
		candidate := randomNatBelow(n.Big())
		r = new(safenum.Nat).SetBig(candidate, candidate.BitLen())
		if new(big.Int).GCD(nil, nil, candidate, n.Big()).Cmp(big.NewInt(1)) == 0 {
			break
		}
	}

	t = new(safenum.Nat).ModMul(r, r, nMod)

	lambdaBig := randomNatBelow(phi.Big())
	lambda = new(safenum.Nat).SetBig(lambdaBig, lambdaBig.BitLen())

	s = nMod.Exp(t, lambda)
	_ = phiMod
	return
}

func randomNatBelow(bound *big.Int) *big.Int {
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		panic(err)
	}
	return n
}
