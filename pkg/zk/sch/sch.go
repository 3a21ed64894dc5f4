// Package sch implements the Schnorr proof of knowledge of a discrete log
// used for the y_i and x_i^j secrets: a standard three-move sigma protocol
// made non-interactive with Fiat-Shamir, but split across rounds so that
// the commitment can be published a full round before the challenge is
// fixed.
package sch

import (
	"github.com/go-cggmp/auxinfo/pkg/hash"
	"github.com/go-cggmp/auxinfo/pkg/math/curve"
)

// Secret is the prover's nonce τ, generated in Round 1 alongside the
// Commitment it opens. It is kept until Round 3, when the challenge
// becomes available and the proof can be assembled.
type Secret struct {
	tau *curve.Scalar
}

// NewSecret draws a fresh nonce τ.
func NewSecret() *Secret {
	return &Secret{tau: curve.NewScalarRandom()}
}

// Commitment is A = G·τ, generated in Round 1 and published in Round 2 as
// part of FullData, to bind the prover to τ before the challenge exists.
type Commitment struct {
	A *curve.Point
}

// NewCommitment computes the commitment A = G·τ for secret.
func NewCommitment(secret *Secret) *Commitment {
	return &Commitment{A: curve.NewIdentityPoint().ScalarBaseMult(secret.tau)}
}

// Bytes returns the SEC1 encoding of A, for transcript hashing.
func (c *Commitment) Bytes() []byte {
	if c == nil || c.A == nil {
		return nil
	}
	return c.A.Bytes()
}

// Proof is the response z = τ + e·x to a Fiat-Shamir challenge e derived
// from aux, the commitment, and the public point X = G·x.
type Proof struct {
	z *curve.Scalar
}

// Prove computes a proof that the prover knows x such that public = G·x,
// given the Secret/Commitment pair generated for x in an earlier round.
// aux scopes the Fiat-Shamir challenge to a specific session and sender;
// Verify must be given the same aux.
func Prove(secret *Secret, x *curve.Scalar, commitment *Commitment, public *curve.Point, aux ...interface{}) *Proof {
	e := challenge(commitment, public, aux...)
	z := curve.NewScalar().Set(e)
	z.Multiply(z, x)
	z.Add(z, secret.tau)
	return &Proof{z: z}
}

// Verify checks that the proof attests to knowledge of the discrete log of
// public under commitment, within the Fiat-Shamir domain aux.
func (p *Proof) Verify(commitment *Commitment, public *curve.Point, aux ...interface{}) bool {
	if p == nil || p.z == nil || commitment == nil || commitment.A == nil || public == nil {
		return false
	}
	e := challenge(commitment, public, aux...)

	lhs := curve.NewIdentityPoint().ScalarBaseMult(p.z)

	rhs := curve.NewIdentityPoint().ScalarMult(e, public)
	rhs.Add(rhs, commitment.A)

	return lhs.Equal(rhs)
}

// challenge derives the Fiat-Shamir scalar e = H(aux, A, X) for this proof.
func challenge(commitment *Commitment, public *curve.Point, aux ...interface{}) *curve.Scalar {
	h := hash.New()
	h.WriteAny(aux...)
	h.WriteAny(commitment.A, public)
	digest := h.Sum()
	return curve.NewScalar().SetBytesWide(digest)
}
