package mod

import (
	"math/big"
	"testing"

	"github.com/cronokirby/safenum"
	"github.com/stretchr/testify/require"
)

// blum primes small enough to make the fourth-root search in tests fast;
// correctness here does not depend on their being cryptographically sized.
const (
	testP = 19 // 19 mod 4 == 3
	testQ = 23 // 23 mod 4 == 3
)

func natOf(x int64) *safenum.Nat {
	b := big.NewInt(x)
	return new(safenum.Nat).SetBig(b, b.BitLen())
}

func TestProveVerify_Succeeds(t *testing.T) {
	p, q := natOf(testP), natOf(testQ)
	n := natOf(testP * testQ)

	proof := Prove(p, q, n, []byte("session"))
	require.True(t, proof.Verify(n, []byte("session")))
}

func TestVerify_RejectsMismatchedAux(t *testing.T) {
	p, q := natOf(testP), natOf(testQ)
	n := natOf(testP * testQ)

	proof := Prove(p, q, n, []byte("session"))
	require.False(t, proof.Verify(n, []byte("different")))
}

func TestVerify_RejectsWrongModulus(t *testing.T) {
	p, q := natOf(testP), natOf(testQ)
	n := natOf(testP * testQ)
	proof := Prove(p, q, n, []byte("session"))

	otherN := natOf(testP * 29)
	require.False(t, proof.Verify(otherN, []byte("session")))
}

func TestVerify_RejectsMalformedProof(t *testing.T) {
	proof := &Proof{}
	require.False(t, proof.Verify(natOf(testP*testQ), []byte("session")))
}
