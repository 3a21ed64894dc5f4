// Package fac implements the FAC proof: a prover who knows the
// factorization N = P·Q of their Paillier modulus proves, to a verifier
// holding its own ring-Pedersen parameters, that P and Q are consistent
// with N without revealing them, and that N carries no small prime
// factor.
//
// Unlike the original construction this is adapted from, Verify here
// always takes an aux binding: an un-scoped Fiat-Shamir challenge lets a
// proof generated for one session be replayed in another.
package fac

import (
	"crypto/rand"
	"math/big"

	"github.com/cronokirby/safenum"
	"github.com/go-cggmp/auxinfo/pkg/hash"
	"github.com/go-cggmp/auxinfo/pkg/pedersen"
)

// smallPrimeBound caps the trial-division sieve used to reject a modulus
// with an obvious small factor before spending time on the Fiat-Shamir
// verification below.
const smallPrimeBound = 1 << 16

// Proof is a FAC proof: Pedersen commitments to P and Q under the
// verifier's ring-Pedersen parameters, a commitment tying their product to
// N, and the responses to a single Fiat-Shamir challenge.
type Proof struct {
	P, Q *safenum.Nat // commitments to p, q
	A, B *safenum.Nat // masks for the P, Q openings
	Z    *safenum.Nat // commitment to N itself
	ZW   *safenum.Nat // D = Q^alpha * t^gamma, tying alpha to Q for the product relation

	// Z1, Z2, W1, W2, V are sigma-protocol responses. V alone can be
	// negative (it masks a subtraction of two unsigned witnesses), so all
	// five are kept as big.Int rather than safenum.Int: FAC's witness
	// arithmetic never crosses the package boundary, unlike paillier or
	// pedersen's public surface.
	Z1, Z2 *big.Int // response for p, mu
	W1, W2 *big.Int // response for q, nu
	V      *big.Int // response for the product relation
}

// Prove constructs a FAC proof that n = p*q, under the verifier's
// ring-Pedersen parameters ped.
func Prove(p, q, n *safenum.Nat, ped *pedersen.Parameters, aux ...interface{}) *Proof {
	pBig, qBig, nBig := p.Big(), q.Big(), n.Big()
	n0 := ped.N().Big()

	mu := randomBelow(n0)
	nu := randomBelow(n0)
	alpha := randomWide(pBig.BitLen())
	a2 := randomBelow(n0)
	beta := randomWide(qBig.BitLen())
	b2 := randomBelow(n0)
	gamma := randomWide(n0.BitLen() * 2)
	rho0 := randomBelow(n0)

	P := commit(ped, pBig, mu)
	Q := commit(ped, qBig, nu)
	A := commit(ped, alpha, a2)
	B := commit(ped, beta, b2)
	D := new(big.Int).Exp(Q, alpha, n0)
	D.Mul(D, ped.Exp(ped.T(), natOf(gamma)).Big())
	D.Mod(D, n0)
	Z := commit(ped, nBig, rho0)

	e := challenge(n, ped, P, Q, A, B, Z, D, aux...)

	z1 := new(big.Int).Mul(e, pBig)
	z1.Add(z1, alpha)
	z2 := new(big.Int).Mul(e, mu)
	z2.Add(z2, a2)
	w1 := new(big.Int).Mul(e, qBig)
	w1.Add(w1, beta)
	w2 := new(big.Int).Mul(e, nu)
	w2.Add(w2, b2)

	pNu := new(big.Int).Mul(pBig, nu)
	inner := new(big.Int).Sub(rho0, pNu)
	v := new(big.Int).Mul(e, inner)
	v.Add(v, gamma)

	return &Proof{
		P: natOf(P), Q: natOf(Q), A: natOf(A), B: natOf(B), Z: natOf(Z), ZW: natOf(D),
		Z1: z1, Z2: z2, W1: w1, W2: w2, V: v,
	}
}

// Verify checks a FAC proof for modulus n against the verifier's own
// ring-Pedersen parameters ped, within the Fiat-Shamir domain aux.
func (proof *Proof) Verify(n *safenum.Nat, ped *pedersen.Parameters, aux ...interface{}) bool {
	if proof == nil || proof.P == nil || proof.Q == nil || proof.A == nil || proof.B == nil ||
		proof.Z == nil || proof.ZW == nil ||
		proof.Z1 == nil || proof.Z2 == nil || proof.W1 == nil || proof.W2 == nil || proof.V == nil {
		return false
	}
	nBig := n.Big()
	if hasSmallFactor(nBig) {
		return false
	}
	n0 := ped.N().Big()

	e := challenge(n, ped, proof.P.Big(), proof.Q.Big(), proof.A.Big(), proof.B.Big(), proof.Z.Big(), proof.ZW.Big(), aux...)

	// s^z1 t^z2 == A * P^e
	lhs := commit(ped, proof.Z1, proof.Z2)
	rhs := new(big.Int).Exp(proof.P.Big(), e, n0)
	rhs.Mul(rhs, proof.A.Big())
	rhs.Mod(rhs, n0)
	if lhs.Cmp(rhs) != 0 {
		return false
	}

	// s^w1 t^w2 == B * Q^e
	lhs = commit(ped, proof.W1, proof.W2)
	rhs = new(big.Int).Exp(proof.Q.Big(), e, n0)
	rhs.Mul(rhs, proof.B.Big())
	rhs.Mod(rhs, n0)
	if lhs.Cmp(rhs) != 0 {
		return false
	}

	// Q^z1 * t^v == D * Z^e
	lhs = new(big.Int).Exp(proof.Q.Big(), proof.Z1, n0)
	tv := signedExp(ped.T().Big(), proof.V, n0)
	lhs.Mul(lhs, tv)
	lhs.Mod(lhs, n0)

	rhs = new(big.Int).Exp(proof.Z.Big(), e, n0)
	rhs.Mul(rhs, proof.ZW.Big())
	rhs.Mod(rhs, n0)

	return lhs.Cmp(rhs) == 0
}

// hasSmallFactor reports whether n is divisible by any prime below
// smallPrimeBound, the simplest possible check that N lacks small factors.
func hasSmallFactor(n *big.Int) bool {
	sieve := make([]bool, smallPrimeBound)
	for p := 2; p < smallPrimeBound; p++ {
		if sieve[p] {
			continue
		}
		if new(big.Int).Mod(n, big.NewInt(int64(p))).Sign() == 0 {
			return true
		}
		for m := p * p; m < smallPrimeBound; m += p {
			sieve[m] = true
		}
	}
	return false
}

// commit computes s^x * t^y mod N0, the Pedersen commitment to x with
// randomness y. x and y here are always non-negative by construction.
func commit(ped *pedersen.Parameters, x, y *big.Int) *big.Int {
	sx := ped.Exp(ped.S(), natOf(x)).Big()
	ty := ped.Exp(ped.T(), natOf(y)).Big()
	out := new(big.Int).Mul(sx, ty)
	return out.Mod(out, ped.N().Big())
}

// signedExp computes base^exp mod n0 for a possibly negative exp, by
// inverting base first when exp < 0. Used for the one sigma response (v)
// that can go negative, since Pedersen bases here live in a group of
// unknown order and safenum.Nat cannot represent a sign.
func signedExp(base, exp, n0 *big.Int) *big.Int {
	if exp.Sign() >= 0 {
		return new(big.Int).Exp(base, exp, n0)
	}
	inv := new(big.Int).ModInverse(base, n0)
	return new(big.Int).Exp(inv, new(big.Int).Neg(exp), n0)
}

func natOf(x *big.Int) *safenum.Nat {
	return new(safenum.Nat).SetBig(x, x.BitLen())
}

func randomWide(bits int) *big.Int {
	return randomBelow(new(big.Int).Lsh(big.NewInt(1), uint(bits+2*pedersenSlack)))
}

// pedersenSlack is the extra bits of masking randomness added to a
// sigma-protocol response so that it statistically hides the witness.
const pedersenSlack = 80

func randomBelow(bound *big.Int) *big.Int {
	b, err := rand.Int(rand.Reader, bound)
	if err != nil {
		panic(err)
	}
	return b
}

func challenge(n *safenum.Nat, ped *pedersen.Parameters, vals ...interface{}) *big.Int {
	h := hash.New()
	h.WriteAny(n, ped.N(), ped.S(), ped.T())
	for _, v := range vals {
		h.WriteAny(toHashable(v))
	}
	return new(big.Int).SetBytes(h.Sum())
}

func toHashable(v interface{}) interface{} {
	if b, ok := v.(*big.Int); ok {
		return natOf(b)
	}
	return v
}
