package sch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cggmp/auxinfo/pkg/math/curve"
)

func TestProveVerify_Succeeds(t *testing.T) {
	x := curve.NewScalarRandom()
	public := curve.NewIdentityPoint().ScalarBaseMult(x)

	secret := NewSecret()
	commitment := NewCommitment(secret)

	proof := Prove(secret, x, commitment, public, []byte("session"), "alice")
	require.True(t, proof.Verify(commitment, public, []byte("session"), "alice"))
}

func TestVerify_RejectsWrongPublic(t *testing.T) {
	x := curve.NewScalarRandom()
	public := curve.NewIdentityPoint().ScalarBaseMult(x)
	otherPublic := curve.NewIdentityPoint().ScalarBaseMult(curve.NewScalarRandom())

	secret := NewSecret()
	commitment := NewCommitment(secret)
	proof := Prove(secret, x, commitment, public, []byte("session"))

	require.False(t, proof.Verify(commitment, otherPublic, []byte("session")))
}

func TestVerify_RejectsMismatchedAux(t *testing.T) {
	x := curve.NewScalarRandom()
	public := curve.NewIdentityPoint().ScalarBaseMult(x)

	secret := NewSecret()
	commitment := NewCommitment(secret)
	proof := Prove(secret, x, commitment, public, []byte("session"), "alice")

	require.False(t, proof.Verify(commitment, public, []byte("session"), "bob"))
}

func TestVerify_RejectsNilProof(t *testing.T) {
	var proof *Proof
	require.False(t, proof.Verify(&Commitment{}, curve.NewIdentityPoint()))
}
