package bitvec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cggmp/auxinfo/internal/params"
)

func TestRandom_HasFixedLength(t *testing.T) {
	b, err := Random()
	require.NoError(t, err)
	require.Len(t, b, params.SecurityBytes)
	require.NoError(t, b.Validate())
}

func TestXOR_SelfCancels(t *testing.T) {
	a, err := Random()
	require.NoError(t, err)
	b := a.Copy()

	require.NoError(t, a.XOR(b))
	require.Equal(t, Zero(), a)
}

func TestXOR_IsCommutative(t *testing.T) {
	a, err := Random()
	require.NoError(t, err)
	b, err := Random()
	require.NoError(t, err)

	ab := a.Copy()
	require.NoError(t, ab.XOR(b))

	ba := b.Copy()
	require.NoError(t, ba.XOR(a))

	require.Equal(t, ab, ba)
}

func TestXOR_LengthMismatch(t *testing.T) {
	a := Zero()
	short := BitVec(make([]byte, params.SecurityBytes-1))
	require.ErrorIs(t, a.XOR(short), ErrLength)
}

func TestValidate_WrongLength(t *testing.T) {
	v := BitVec(make([]byte, params.SecurityBytes+1))
	require.ErrorIs(t, v.Validate(), ErrLength)
}
