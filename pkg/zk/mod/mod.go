// Package mod implements the MOD proof: a prover who knows the
// factorization N = P·Q of a Blum integer (P ≡ Q ≡ 3 mod 4) proves this to
// a verifier who only sees N, via params.StatParamMOD parallel Fiat-Shamir
// challenges, each answered by extracting a fourth root using the
// factorization.
package mod

import (
	"crypto/rand"
	"math/big"

	"github.com/cronokirby/safenum"
	"github.com/go-cggmp/auxinfo/internal/params"
	"github.com/go-cggmp/auxinfo/pkg/hash"
)

// Response is the prover's answer to one Fiat-Shamir challenge y: a fourth
// root z of ±w^b·y mod N, together with the sign/parity bits used to find
// it.
type Response struct {
	Z    *safenum.Nat
	A, B bool
}

// Proof is a MOD proof: a witness w (a non-residue with Jacobi symbol -1)
// and one Response per challenge.
type Proof struct {
	W  *safenum.Nat
	Rs []*Response
}

// Prove constructs a MOD proof that n = p*q for two Blum primes p, q.
func Prove(p, q, n *safenum.Nat, aux ...interface{}) *Proof {
	pBig, qBig, nBig := p.Big(), q.Big(), n.Big()

	w := findNonResidue(pBig, qBig, nBig)

	ys := challenge(n, w, aux...)

	rs := make([]*Response, params.StatParamMOD)
	for k, y := range ys {
		z, a, b := fourthRoot(y, pBig, qBig, nBig, w)
		rs[k] = &Response{Z: new(safenum.Nat).SetBig(z, z.BitLen()), A: a, B: b}
	}

	return &Proof{W: new(safenum.Nat).SetBig(w, w.BitLen()), Rs: rs}
}

// Verify checks a MOD proof against the public modulus n.
func (proof *Proof) Verify(n *safenum.Nat, aux ...interface{}) bool {
	if proof == nil || proof.W == nil || len(proof.Rs) != params.StatParamMOD {
		return false
	}
	nBig := n.Big()
	if nBig.Bit(0) == 0 || nBig.ProbablyPrime(20) {
		return false
	}

	w := proof.W.Big()
	if jacobi(w, nBig) != -1 {
		return false
	}

	ys := challenge(n, w, aux...)

	nSquared := new(big.Int).Mul(nBig, nBig)
	for k, y := range ys {
		r := proof.Rs[k]
		z := r.Z.Big()
		if z.Sign() < 0 || z.Cmp(nBig) >= 0 {
			return false
		}

		rhs := new(big.Int).Set(y)
		if r.A {
			rhs.Neg(rhs)
		}
		if r.B {
			rhs.Mul(rhs, w)
		}
		rhs.Mod(rhs, nBig)
		if rhs.Sign() < 0 {
			rhs.Add(rhs, nBig)
		}

		z4 := new(big.Int).Exp(z, big.NewInt(4), nBig)
		if z4.Cmp(rhs) != 0 {
			return false
		}
	}
	return true
}

// findNonResidue draws a value w mod n with Jacobi symbol -1, which exists
// for any Blum integer n = p*q.
func findNonResidue(p, q, n *big.Int) *big.Int {
	for {
		w := randomBelow(n)
		if jacobi(w, n) == -1 {
			return w
		}
	}
}

// fourthRoot finds z, a, b such that z^4 = (-1)^a * w^b * y (mod n), using
// the factorization of n. Every y mod n is a quadratic residue modulo
// exactly one of {y, -y, w*y, -w*y} when n is a Blum integer, so exactly
// one (a, b) choice has a square root that is itself a square root.
func fourthRoot(y, p, q, n, w *big.Int) (z *big.Int, a, b bool) {
	for _, a = range []bool{false, true} {
		for _, b = range []bool{false, true} {
			candidate := new(big.Int).Set(y)
			if a {
				candidate.Neg(candidate)
			}
			if b {
				candidate.Mul(candidate, w)
			}
			candidate.Mod(candidate, n)
			if candidate.Sign() < 0 {
				candidate.Add(candidate, n)
			}

			if root, ok := sqrtBlum(candidate, p, q, n); ok {
				if root2, ok2 := sqrtBlum(root, p, q, n); ok2 {
					return root2, a, b
				}
			}
		}
	}
	// n was not a Blum integer with the expected structure; return a
	// value that will fail verification rather than panicking.
	return big.NewInt(0), false, false
}

// sqrtBlum computes a square root of x mod n = p*q for Blum primes p, q
// (p ≡ q ≡ 3 mod 4), via CRT, reporting ok=false if x is not a quadratic
// residue mod n.
func sqrtBlum(x, p, q, n *big.Int) (*big.Int, bool) {
	expP := new(big.Int).Add(p, big.NewInt(1))
	expP.Rsh(expP, 2)
	rp := new(big.Int).Exp(x, expP, p)
	if new(big.Int).Exp(rp, big.NewInt(2), p).Cmp(new(big.Int).Mod(x, p)) != 0 {
		return nil, false
	}

	expQ := new(big.Int).Add(q, big.NewInt(1))
	expQ.Rsh(expQ, 2)
	rq := new(big.Int).Exp(x, expQ, q)
	if new(big.Int).Exp(rq, big.NewInt(2), q).Cmp(new(big.Int).Mod(x, q)) != 0 {
		return nil, false
	}

	// CRT-combine rp (mod p) and rq (mod q) into a root mod n.
	qInvModP := new(big.Int).ModInverse(q, p)
	if qInvModP == nil {
		return nil, false
	}
	diff := new(big.Int).Sub(rp, rq)
	t := new(big.Int).Mul(diff, qInvModP)
	t.Mod(t, p)
	result := new(big.Int).Mul(t, q)
	result.Add(result, rq)
	result.Mod(result, n)
	return result, true
}

func jacobi(a, n *big.Int) int {
	return big.Jacobi(a, n)
}

func challenge(n *safenum.Nat, w *big.Int, aux ...interface{}) []*big.Int {
	base := hash.New()
	base.WriteAny(aux...)
	base.WriteAny(n)
	base.WriteAny(w.Bytes())

	nBig := n.Big()
	ys := make([]*big.Int, params.StatParamMOD)
	for k := range ys {
		digest := base.Clone().WriteAny(k).Sum()
		y := new(big.Int).SetBytes(digest)
		ys[k] = y.Mod(y, nBig)
	}
	return ys
}

func randomBelow(bound *big.Int) *big.Int {
	b, err := rand.Int(rand.Reader, bound)
	if err != nil {
		panic(err)
	}
	return b
}
