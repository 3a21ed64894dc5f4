// Package curve adapts the elliptic-curve group used by the protocol to a
// narrow Scalar/Point surface. Per the protocol's scope, the internals of
// the group are an external collaborator: this package only exposes the
// operations the auxiliary-info rounds actually need (sampling, the base
// point multiplication, addition, and equality), backed concretely by
// secp256k1.
package curve

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/cronokirby/safenum"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Scalar is an element of the scalar field of secp256k1 (integers mod the
// group order n).
type Scalar struct {
	value secp256k1.ModNScalar
}

// NonZeroScalar is a Scalar that is statically known not to be zero, used
// for secrets whose corresponding public point must not be the identity
// (e.g. yᵢ in Round 1).
type NonZeroScalar struct {
	Scalar
}

// Point is an element of the secp256k1 group, held in affine form so that
// equality and serialization are cheap and canonical.
type Point struct {
	inner secp256k1.JacobianPoint
}

// NewScalar returns the zero scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// NewScalarRandom draws a uniformly random scalar using crypto/rand.
func NewScalarRandom() *Scalar {
	s, err := sampleScalar(rand.Reader)
	if err != nil {
		// crypto/rand is not expected to fail; a failure here indicates a
		// broken system entropy source, which we cannot recover from.
		panic(fmt.Sprintf("curve: failed to sample scalar: %v", err))
	}
	return s
}

// NewNonZeroScalarRandom draws a uniformly random non-zero scalar.
func NewNonZeroScalarRandom() *NonZeroScalar {
	for {
		s, err := sampleScalar(rand.Reader)
		if err != nil {
			panic(fmt.Sprintf("curve: failed to sample scalar: %v", err))
		}
		if !s.value.IsZero() {
			return &NonZeroScalar{Scalar: *s}
		}
	}
}

func sampleScalar(rng io.Reader) (*Scalar, error) {
	// Draw 48 bytes (384 bits) and reduce modulo the group order, so that
	// the bias introduced by the reduction is negligible (≤ 2⁻¹²⁸).
	var buf [48]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return nil, err
	}
	s := &Scalar{}
	s.SetBytesWide(buf[:])
	return s, nil
}

// SetNat sets s to the value of x reduced modulo the group order.
func (s *Scalar) SetNat(x *safenum.Nat) *Scalar {
	reduced := new(big.Int).Mod(x.Big(), secp256k1.S256().Params().N)
	s.value.SetByteSlice(reduced.Bytes())
	return s
}

// NewScalarInt constructs a Scalar from a safenum.Int, reducing its absolute
// value modulo the group order and restoring the sign.
func NewScalarInt(x *safenum.Int) *Scalar {
	b := x.Big()
	neg := b.Sign() < 0
	abs := new(big.Int).Abs(b)
	s := NewScalar().SetNat(new(safenum.Nat).SetBig(abs, abs.BitLen()))
	if neg {
		s.Negate()
	}
	return s
}

// Int returns the safenum.Int representative of s, an integer in
// [0, n) where n is the group order.
func (s *Scalar) Int() *safenum.Int {
	b := s.value.Bytes()
	asBig := new(big.Int).SetBytes(b[:])
	return new(safenum.Int).SetNat(new(safenum.Nat).SetBig(asBig, asBig.BitLen()))
}

// Add sets s = a + b and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.value.Add2(&a.value, &b.value)
	return s
}

// Multiply sets s = a * b and returns s.
func (s *Scalar) Multiply(a, b *Scalar) *Scalar {
	s.value.Mul2(&a.value, &b.value)
	return s
}

// SetBytesWide reduces a wide (e.g. 64-byte hash digest) big-endian byte
// string modulo the group order, the standard way to turn a transcript
// digest into a Fiat-Shamir challenge scalar.
func (s *Scalar) SetBytesWide(b []byte) *Scalar {
	reduced := new(big.Int).Mod(new(big.Int).SetBytes(b), secp256k1.S256().Params().N)
	s.value.SetByteSlice(reduced.Bytes())
	return s
}

// Negate sets s = -s and returns s.
func (s *Scalar) Negate() *Scalar {
	s.value.Negate()
	return s
}

// Set copies the value of other into s.
func (s *Scalar) Set(other *Scalar) *Scalar {
	s.value = other.value
	return s
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.value.IsZero()
}

// Equal reports whether s and other represent the same scalar.
func (s *Scalar) Equal(other *Scalar) bool {
	return s.value.Equals(&other.value)
}

// Bytes returns the big-endian, fixed-length (32-byte) encoding of s, used
// by the transcript hash.
func (s *Scalar) Bytes() []byte {
	b := s.value.Bytes()
	return b[:]
}

// ScalarBaseMult sets p = s·G and returns p.
func (p *Point) ScalarBaseMult(s *Scalar) *Point {
	var jac secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&s.value, &jac)
	jac.ToAffine()
	p.inner = jac
	return p
}

// ScalarMult sets p = s·other and returns p.
func (p *Point) ScalarMult(s *Scalar, other *Point) *Point {
	var jac secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&s.value, &other.inner, &jac)
	jac.ToAffine()
	p.inner = jac
	return p
}

// NewIdentityPoint returns the identity element O of the group.
func NewIdentityPoint() *Point {
	p := &Point{}
	p.inner.Z.SetInt(0)
	return p
}

// Generator returns the base point G.
func Generator() *Point {
	one := NewScalar()
	one.value.SetInt(1)
	return NewIdentityPoint().ScalarBaseMult(one)
}

// Add sets p = a + b and returns p.
func (p *Point) Add(a, b *Point) *Point {
	var res secp256k1.JacobianPoint
	secp256k1.AddNonConst(&a.inner, &b.inner, &res)
	res.ToAffine()
	p.inner = res
	return p
}

// Negate sets p = -other and returns p.
func (p *Point) Negate(other *Point) *Point {
	p.inner = other.inner
	p.inner.Y.Negate(1)
	p.inner.Y.Normalize()
	return p
}

// IsIdentity reports whether p is the identity element O. Converting the
// point at infinity to affine form leaves it as (0, 0, 1), which is not on
// the curve, so X = Y = 0 is treated as the identity as well as Z = 0.
func (p *Point) IsIdentity() bool {
	return p.inner.Z.IsZero() || (p.inner.X.IsZero() && p.inner.Y.IsZero())
}

// Equal reports whether p and other are the same group element.
func (p *Point) Equal(other *Point) bool {
	if p.IsIdentity() || other.IsIdentity() {
		return p.IsIdentity() == other.IsIdentity()
	}
	a, b := p.inner, other.inner
	a.ToAffine()
	b.ToAffine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

// Bytes returns the SEC1 compressed encoding of p, or 33 zero bytes for the
// identity (a sentinel encoding never produced by a valid compressed key).
func (p *Point) Bytes() []byte {
	if p.IsIdentity() {
		return make([]byte, 33)
	}
	a := p.inner
	a.ToAffine()
	pk := secp256k1.NewPublicKey(&a.X, &a.Y)
	return pk.SerializeCompressed()
}

// Sum adds together every point in pts, returning the identity for an empty
// slice. Used to check Σ xs_public[k] == O.
func Sum(pts []*Point) *Point {
	out := NewIdentityPoint()
	for _, p := range pts {
		out.Add(out, p)
	}
	return out
}
