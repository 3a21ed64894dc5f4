package curve

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

func TestScalarAdd_IsCommutative(t *testing.T) {
	a := NewScalarRandom()
	b := NewScalarRandom()

	ab := NewScalar().Add(a, b)
	ba := NewScalar().Add(b, a)
	require.True(t, ab.Equal(ba))
}

func TestScalarNegate_CancelsUnderAdd(t *testing.T) {
	a := NewScalarRandom()
	neg := NewScalar().Set(a).Negate()
	sum := NewScalar().Add(a, neg)
	require.True(t, sum.IsZero())
}

func TestScalarMultiply_DistributesOverAdd(t *testing.T) {
	a := NewScalarRandom()
	b := NewScalarRandom()
	c := NewScalarRandom()

	lhs := NewScalar().Multiply(a, NewScalar().Add(b, c))
	rhs := NewScalar().Add(
		NewScalar().Multiply(a, b),
		NewScalar().Multiply(a, c),
	)
	require.True(t, lhs.Equal(rhs))
}

func TestNewNonZeroScalarRandom_IsNeverZero(t *testing.T) {
	for i := 0; i < 32; i++ {
		s := NewNonZeroScalarRandom()
		require.False(t, s.IsZero())
	}
}

func TestScalarBytes_RoundTripsThroughSetBytesWide(t *testing.T) {
	a := NewScalarRandom()
	b := NewScalar().SetBytesWide(a.Bytes())
	require.True(t, a.Equal(b))
}

func TestPointScalarBaseMult_ZeroIsIdentity(t *testing.T) {
	p := NewIdentityPoint().ScalarBaseMult(NewScalar())
	require.True(t, p.IsIdentity())
}

func TestPointAdd_IsCommutative(t *testing.T) {
	a := NewIdentityPoint().ScalarBaseMult(NewScalarRandom())
	b := NewIdentityPoint().ScalarBaseMult(NewScalarRandom())

	ab := NewIdentityPoint().Add(a, b)
	ba := NewIdentityPoint().Add(b, a)
	require.True(t, ab.Equal(ba))
}

func TestPointNegate_CancelsUnderAdd(t *testing.T) {
	a := NewIdentityPoint().ScalarBaseMult(NewScalarRandom())
	neg := NewIdentityPoint().Negate(a)

	sum := NewIdentityPoint().Add(a, neg)
	require.True(t, sum.IsIdentity())
}

func TestSum_EmptyIsIdentity(t *testing.T) {
	require.True(t, Sum(nil).IsIdentity())
}

func TestSum_MatchesSequentialAdd(t *testing.T) {
	points := []*Point{
		NewIdentityPoint().ScalarBaseMult(NewScalarRandom()),
		NewIdentityPoint().ScalarBaseMult(NewScalarRandom()),
		NewIdentityPoint().ScalarBaseMult(NewScalarRandom()),
	}

	want := NewIdentityPoint()
	for _, p := range points {
		want.Add(want, p)
	}
	require.True(t, want.Equal(Sum(points)))
}

func TestGenerator_MatchesScalarOne(t *testing.T) {
	one := NewScalar().SetNat(natOf(1))
	require.True(t, Generator().Equal(NewIdentityPoint().ScalarBaseMult(one)))
}

func TestPointBytes_IdentityIsSentinel(t *testing.T) {
	require.Equal(t, make([]byte, 33), NewIdentityPoint().Bytes())
}
