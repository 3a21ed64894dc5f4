package sample

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cggmp/auxinfo/pkg/math/curve"
)

func TestZeroSumScalars_SumsToZero(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 17, 64} {
		for trial := 0; trial < 25; trial++ {
			shares := ZeroSumScalars(n)
			require.Len(t, shares, n)

			sum := curve.NewScalar()
			for _, s := range shares {
				sum.Add(sum, s)
			}
			require.True(t, sum.IsZero())
		}
	}
}

func TestZeroSumScalars_NotTriviallyZero(t *testing.T) {
	shares := ZeroSumScalars(4)
	allZero := true
	for _, s := range shares {
		if !s.IsZero() {
			allZero = false
			break
		}
	}
	require.False(t, allZero, "zero-sum shares for n > 1 should not all be the zero scalar")
}

func TestPaillier_DistinctBlumPrimes(t *testing.T) {
	p, q := Paillier()
	require.NotEqual(t, 0, p.Big().Cmp(q.Big()))

	four := int64(4)
	for _, prime := range []*big.Int{p.Big(), q.Big()} {
		mod := new(big.Int).Mod(prime, big.NewInt(four))
		require.Equal(t, int64(3), mod.Int64(), "blum prime must be 3 mod 4")
		require.True(t, prime.ProbablyPrime(20))
	}
}
