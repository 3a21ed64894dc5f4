// Package bitvec implements the fixed-length random byte string used as
// each party's ρ contribution and combined (by XOR) into the session's
// global ρ.
package bitvec

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/go-cggmp/auxinfo/internal/params"
)

// ErrLength is returned when two BitVecs of different lengths are XORed,
// or a decoded BitVec does not have the protocol's fixed length.
var ErrLength = errors.New("bitvec: length mismatch")

// BitVec is a fixed-length (params.SecurityBytes) byte string.
type BitVec []byte

// Random draws a new, uniformly random BitVec of params.SecurityBytes
// bytes.
func Random() (BitVec, error) {
	b := make(BitVec, params.SecurityBytes)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("bitvec: sample: %w", err)
	}
	return b, nil
}

// Zero returns a BitVec of the protocol's fixed length, all zero bytes.
func Zero() BitVec {
	return make(BitVec, params.SecurityBytes)
}

// Validate reports whether b has the protocol's fixed length.
func (b BitVec) Validate() error {
	if len(b) != params.SecurityBytes {
		return ErrLength
	}
	return nil
}

// XOR sets b to b XOR other, in place. Both must already have the
// protocol's fixed length.
func (b BitVec) XOR(other BitVec) error {
	if len(b) != len(other) {
		return ErrLength
	}
	for i := range b {
		b[i] ^= other[i]
	}
	return nil
}

// Bytes returns b's underlying bytes, for transcript hashing.
func (b BitVec) Bytes() []byte {
	return b
}

// Copy returns an independent copy of b.
func (b BitVec) Copy() BitVec {
	out := make(BitVec, len(b))
	copy(out, b)
	return out
}
