package paillier

import (
	"math/big"
	"testing"

	"github.com/cronokirby/safenum"
	"github.com/stretchr/testify/require"

	"github.com/go-cggmp/auxinfo/internal/params"
	"github.com/go-cggmp/auxinfo/pkg/math/curve"
)

// testP, testQ are the Mersenne primes 2^127-1 and 2^521-1, both Blum
// primes (3 mod 4). Their product N (648 bits) exceeds the curve's group
// order, so an encrypted curve scalar decrypts to itself, while N stays far
// below params.MinPaillierBits to keep these tests fast.
var (
	testP = mersenne(127)
	testQ = mersenne(521)
)

func mersenne(e uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), e)
	return m.Sub(m, big.NewInt(1))
}

func natOf(b *big.Int) *safenum.Nat {
	return new(safenum.Nat).SetBig(b, b.BitLen())
}

func testKey() *SecretKey {
	return NewSecretKeyFromPrimes(natOf(testP), natOf(testQ))
}

func TestEncDec_RoundTrips(t *testing.T) {
	sk := testKey()
	m := curve.NewScalarRandom()

	ct := sk.Enc(m.Int())
	got, err := sk.Dec(ct)
	require.NoError(t, err)
	require.True(t, m.Equal(got))
}

func TestEncDec_RoundTripsZero(t *testing.T) {
	sk := testKey()
	m := curve.NewScalar()

	ct := sk.Enc(m.Int())
	got, err := sk.Dec(ct)
	require.NoError(t, err)
	require.True(t, m.Equal(got))
}

func TestDec_RejectsOutOfRangeCiphertext(t *testing.T) {
	sk := testKey()
	// N^2 itself is outside the valid ciphertext range [1, N^2).
	nSquared := new(safenum.Nat).Mul(sk.n, sk.n, -1)
	_, err := sk.Dec(&Ciphertext{c: nSquared})
	require.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestValidateN_RejectsSmallModulus(t *testing.T) {
	small := natOf(new(big.Int).Mul(testP, testQ))
	require.Less(t, small.Big().BitLen(), params.MinPaillierBits)
	require.ErrorIs(t, ValidateN(small), ErrModulusTooSmall)
}

func TestPublicKey_NRoundTrips(t *testing.T) {
	sk := testKey()
	require.Equal(t, sk.N().Big(), sk.PublicKey.N().Big())
}

func TestSecretKey_PhiMatchesFactors(t *testing.T) {
	sk := testKey()
	one := big.NewInt(1)
	want := new(big.Int).Mul(
		new(big.Int).Sub(testP, one),
		new(big.Int).Sub(testQ, one),
	)
	require.Equal(t, want, sk.Phi().Big())
}

func TestGeneratePedersen_ProducesUnitsModN(t *testing.T) {
	sk := testKey()
	s, tVal, lambda := sk.GeneratePedersen()
	require.NotNil(t, lambda)

	nBig := sk.N().Big()
	one := big.NewInt(1)
	for _, v := range []*big.Int{s.Big(), tVal.Big()} {
		require.Equal(t, one, new(big.Int).GCD(nil, nil, v, nBig))
	}
}
