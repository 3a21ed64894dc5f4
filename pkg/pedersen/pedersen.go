// Package pedersen holds the ring-Pedersen commitment parameters (N, s, t)
// published alongside each party's Paillier key, proven well-formed by the
// PRM proof and used as the verifier's auxiliary parameters in the FAC
// proof.
package pedersen

import (
	"errors"
	"math/big"

	"github.com/cronokirby/safenum"
)

// ErrInvalidParameters is returned by ValidateParameters when s or t is not
// a unit mod N, or s == t.
var ErrInvalidParameters = errors.New("pedersen: s, t are not valid ring-Pedersen parameters")

// Parameters holds a ring-Pedersen commitment base N, s, t where
// t = r² mod N for a random invertible r, and s = t^λ mod N for a secret λ.
type Parameters struct {
	n    *safenum.Nat
	s, t *safenum.Nat
}

// New wraps (n, s, t) as Parameters, without validating them; use
// ValidateParameters on values received from a peer before calling New.
func New(n, s, t *safenum.Nat) *Parameters {
	return &Parameters{n: n, s: s, t: t}
}

// N returns the modulus.
func (p *Parameters) N() *safenum.Nat { return p.n }

// S returns s = t^λ mod N.
func (p *Parameters) S() *safenum.Nat { return p.s }

// T returns t = r² mod N.
func (p *Parameters) T() *safenum.Nat { return p.t }

// ValidateParameters checks that s and t are units modulo n and distinct
// from each other and from 1, the minimal structural sanity check on a
// received ring-Pedersen triple before it is used as a PRM auxiliary.
func ValidateParameters(n, s, t *safenum.Nat) error {
	nBig := n.Big()
	sBig, tBig := s.Big(), t.Big()

	if sBig.Cmp(tBig) == 0 {
		return ErrInvalidParameters
	}
	one := big.NewInt(1)
	for _, v := range []*big.Int{sBig, tBig} {
		if v.Cmp(one) <= 0 || v.Cmp(nBig) >= 0 {
			return ErrInvalidParameters
		}
		if new(big.Int).GCD(nil, nil, v, nBig).Cmp(one) != 0 {
			return ErrInvalidParameters
		}
	}
	return nil
}

// Exp computes base^exp mod N, the core operation used by the FAC proof.
func (p *Parameters) Exp(base, exp *safenum.Nat) *safenum.Nat {
	mod := safenum.ModulusFromNat(p.n)
	return mod.Exp(base, exp)
}
