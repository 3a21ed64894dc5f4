package fac

import (
	"math/big"
	"testing"

	"github.com/cronokirby/safenum"
	"github.com/stretchr/testify/require"

	"github.com/go-cggmp/auxinfo/pkg/pedersen"
)

func natOf(x int64) *safenum.Nat {
	b := big.NewInt(x)
	return new(safenum.Nat).SetBig(b, b.BitLen())
}

// p, q are the prover's Paillier factors; n0 is a distinct modulus the
// verifier's ring-Pedersen parameters live under, as they always do for two
// different parties' keys.
// proverP, proverQ must each exceed the FAC small-factor sieve's bound
// (2^16) so that a genuine witness doesn't trip the sieve on itself.
const (
	proverP  = 999983  // largest prime below 1e6
	proverQ  = 1000003 // smallest prime above 1e6
	verifier = 100003  // prime, used as the verifier's own small modulus
)

func verifierPedersen() *pedersen.Parameters {
	n0 := natOf(verifier)
	nMod := safenum.ModulusFromNat(n0)
	r := natOf(13)
	t0 := new(safenum.Nat).ModMul(r, r, nMod)
	s := nMod.Exp(t0, natOf(9))
	return pedersen.New(n0, s, t0)
}

func TestProveVerify_Succeeds(t *testing.T) {
	p, q := natOf(proverP), natOf(proverQ)
	n := natOf(proverP * proverQ)
	ped := verifierPedersen()

	proof := Prove(p, q, n, ped, []byte("session"))
	require.True(t, proof.Verify(n, ped, []byte("session")))
}

func TestVerify_RejectsMismatchedAux(t *testing.T) {
	p, q := natOf(proverP), natOf(proverQ)
	n := natOf(proverP * proverQ)
	ped := verifierPedersen()

	proof := Prove(p, q, n, ped, []byte("session"))
	require.False(t, proof.Verify(n, ped, []byte("other")))
}

func TestVerify_RejectsSmallFactorModulus(t *testing.T) {
	ped := verifierPedersen()
	proof := &Proof{}
	require.False(t, proof.Verify(natOf(2*3*5*7*11*13), ped, []byte("session")))
}

func TestVerify_RejectsMalformedProof(t *testing.T) {
	n := natOf(proverP * proverQ)
	ped := verifierPedersen()
	proof := &Proof{}
	require.False(t, proof.Verify(n, ped, []byte("session")))
}
