package prm

import (
	"math/big"
	"testing"

	"github.com/cronokirby/safenum"
	"github.com/stretchr/testify/require"
)

func natOf(x int64) *safenum.Nat {
	b := big.NewInt(x)
	return new(safenum.Nat).SetBig(b, b.BitLen())
}

// p, q chosen so N = p*q and phi = (p-1)(q-1) are small enough for a fast
// test, with phi coprime to a convenient lambda.
const (
	testP = 19
	testQ = 23
)

func setup() (n, phi, lambda, t0, s *safenum.Nat) {
	p, q := big.NewInt(testP), big.NewInt(testQ)
	nBig := new(big.Int).Mul(p, q)
	phiBig := new(big.Int).Mul(new(big.Int).Sub(p, big.NewInt(1)), new(big.Int).Sub(q, big.NewInt(1)))

	n = natOf(nBig.Int64())
	phi = natOf(phiBig.Int64())

	nMod := safenum.ModulusFromNat(n)
	r := natOf(7)
	tVal := new(safenum.Nat).ModMul(r, r, nMod)
	lam := natOf(5)
	sVal := nMod.Exp(tVal, lam)

	return n, phi, lam, tVal, sVal
}

func TestProveVerify_Succeeds(t *testing.T) {
	n, phi, lambda, t0, s := setup()
	proof := Prove(phi, n, lambda, t0, s, []byte("session"))
	require.True(t, proof.Verify(n, s, t0, []byte("session")))
}

func TestVerify_RejectsMismatchedAux(t *testing.T) {
	n, phi, lambda, t0, s := setup()
	proof := Prove(phi, n, lambda, t0, s, []byte("session"))
	require.False(t, proof.Verify(n, s, t0, []byte("other")))
}

func TestVerify_RejectsWrongS(t *testing.T) {
	n, phi, lambda, t0, s := setup()
	proof := Prove(phi, n, lambda, t0, s, []byte("session"))

	nMod := safenum.ModulusFromNat(n)
	wrongS := nMod.Exp(t0, natOf(6))
	require.False(t, proof.Verify(n, wrongS, t0, []byte("session")))
}

func TestVerify_RejectsMalformedProof(t *testing.T) {
	n, _, _, t0, s := setup()
	proof := &Proof{}
	require.False(t, proof.Verify(n, s, t0, []byte("session")))
}
