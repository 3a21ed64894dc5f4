// Package prm implements the PRM proof: a prover who knows ϕ(N) and λ such
// that s = t^λ mod N proves this to a verifier who only sees (N, s, t),
// via params.StatParamPRM parallel repetitions of a sigma protocol made
// non-interactive with Fiat-Shamir.
package prm

import (
	"crypto/rand"
	"math/big"

	"github.com/cronokirby/safenum"
	"github.com/go-cggmp/auxinfo/internal/params"
	"github.com/go-cggmp/auxinfo/pkg/hash"
)

// Proof is a PRM proof: one (commitment, response) pair per repetition.
type Proof struct {
	As []*safenum.Nat // a_k = t^{alpha_k} mod N
	Zs []*safenum.Nat // z_k = alpha_k + e_k * lambda mod phi(N)
}

// Prove constructs a PRM proof that t^lambda = s (mod n), given the
// factorization of n via phi (so that the response can be reduced mod phi
// rather than mod the unknown order of t).
func Prove(phi, n, lambda, t, s *safenum.Nat, aux ...interface{}) *Proof {
	phiBig := phi.Big()
	nMod := safenum.ModulusFromNat(n)

	alphas := make([]*big.Int, params.StatParamPRM)
	as := make([]*safenum.Nat, params.StatParamPRM)
	for k := range alphas {
		alphas[k] = randomBelow(phiBig)
		alphaNat := new(safenum.Nat).SetBig(alphas[k], alphas[k].BitLen())
		as[k] = nMod.Exp(t, alphaNat)
	}

	es := challenge(n, s, t, as, aux...)

	zs := make([]*safenum.Nat, params.StatParamPRM)
	for k := range zs {
		z := new(big.Int).Mul(es[k], lambda.Big())
		z.Add(z, alphas[k])
		z.Mod(z, phiBig)
		zs[k] = new(safenum.Nat).SetBig(z, z.BitLen())
	}

	return &Proof{As: as, Zs: zs}
}

// Verify checks that proof attests s = t^lambda (mod n) for some lambda the
// prover knows, without revealing lambda.
func (proof *Proof) Verify(n, s, t *safenum.Nat, aux ...interface{}) bool {
	if proof == nil || len(proof.As) != params.StatParamPRM || len(proof.Zs) != params.StatParamPRM {
		return false
	}
	nMod := safenum.ModulusFromNat(n)
	nBig := n.Big()

	es := challenge(n, s, t, proof.As, aux...)

	for k := 0; k < params.StatParamPRM; k++ {
		if proof.Zs[k].Big().Sign() < 0 {
			return false
		}
		lhs := nMod.Exp(t, proof.Zs[k])

		sExp := nMod.Exp(s, new(safenum.Nat).SetBig(es[k], es[k].BitLen()))
		rhs := new(big.Int).Mul(proof.As[k].Big(), sExp.Big())
		rhs.Mod(rhs, nBig)

		if lhs.Big().Cmp(rhs) != 0 {
			return false
		}
	}
	return true
}

// challenge derives one Fiat-Shamir challenge per repetition from the
// public statement (n, s, t), the commitments as, and aux: each repetition
// k gets an independent challenge by mixing k into an otherwise identical
// transcript.
func challenge(n, s, t *safenum.Nat, as []*safenum.Nat, aux ...interface{}) []*big.Int {
	base := hash.New()
	base.WriteAny(aux...)
	base.WriteAny(n, s, t)
	for _, a := range as {
		base.WriteAny(a)
	}

	es := make([]*big.Int, len(as))
	for k := range es {
		digest := base.Clone().WriteAny(k).Sum()
		es[k] = new(big.Int).SetBytes(digest)
	}
	return es
}

func randomBelow(bound *big.Int) *big.Int {
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		panic(err)
	}
	return n
}
