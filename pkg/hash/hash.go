// Package hash implements the transcript hash used throughout the protocol:
// Fiat-Shamir challenges, salted commit/decommit pairs, and the
// party-indexed domain separation ("aux") that binds a proof to a specific
// session and sender.
package hash

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
	"reflect"

	"golang.org/x/crypto/sha3"

	"github.com/cronokirby/safenum"
	"github.com/go-cggmp/auxinfo/internal/params"
	"github.com/go-cggmp/auxinfo/pkg/party"
)

// domainSeparator is the cSHAKE function-name string fixed for every
// transcript hash this package builds. The "aux" argument to New/HashForID
// supplies the instance-specific customization.
const domainSeparator = "CGGMP-AUXINFO"

// Commitment is the output of Hash.Commit: a fixed-size digest that binds
// its author to a set of values, opened later by revealing the Decommitment
// and the original values.
type Commitment []byte

// Decommitment is the random salt mixed into a Commitment, revealed
// alongside the committed values so that peers can recompute and compare.
type Decommitment []byte

// Validate reports whether d has the expected length for a decommitment
// salt. Received decommitments must pass this check before being used.
func (d Decommitment) Validate() error {
	if len(d) != params.SecurityBytes {
		return ErrDecommitmentLength
	}
	return nil
}

// ErrDecommitmentLength is returned by Decommitment.Validate for a
// decommitment of the wrong size.
var ErrDecommitmentLength = errors.New("hash: decommitment has wrong length")

// Byteser is implemented by any value this package knows how to absorb into
// a transcript directly. Every exported protocol value (curve scalars and
// points, Paillier ciphertexts and keys, ring-Pedersen parameters) provides
// Bytes() for exactly this purpose.
type Byteser interface {
	Bytes() []byte
}

// Hash is a running, domain-separated transcript. The zero value is not
// usable; construct one with New or HashForID.
type Hash struct {
	state sha3.ShakeHash
}

// New starts a fresh transcript customized by aux, which should uniquely
// identify the protocol instance the hash is scoped to (a session ID, or a
// session ID concatenated with a sender's party ID).
func New(aux ...[]byte) *Hash {
	h := sha3.NewCShake256(nil, []byte(domainSeparator))
	for _, a := range aux {
		writeFramed(h, a)
	}
	return &Hash{state: h}
}

// HashForID returns a transcript customized to a specific party, so that
// hashes computed for different senders never collide. round.Helper exposes
// it as Helper.HashForID.
func HashForID(sessionID []byte, id party.ID) *Hash {
	return New(sessionID, []byte(id))
}

// Clone returns an independent copy of h that can be extended without
// mutating h itself.
func (h *Hash) Clone() *Hash {
	return &Hash{state: h.state.Clone()}
}

// WriteAny absorbs each value in vals into the transcript, each framed with
// its own length prefix so that the encoding is unambiguous (injective)
// regardless of the number or size of arguments.
func (h *Hash) WriteAny(vals ...interface{}) *Hash {
	for _, v := range vals {
		writeFramed(h.state, encode(v))
	}
	return h
}

// Sum returns the current 64-byte digest of the transcript without
// consuming it; further values may still be written afterward.
func (h *Hash) Sum() []byte {
	clone := h.state.Clone()
	out := make([]byte, 64)
	if _, err := clone.Read(out); err != nil {
		panic(err)
	}
	return out
}

// ReadBytes fills out with pseudorandom output derived from the current
// transcript state, used to expand a digest into a uniform scalar or
// challenge of arbitrary length.
func (h *Hash) ReadBytes(out []byte) {
	clone := h.state.Clone()
	if _, err := io.ReadFull(clone, out); err != nil {
		panic(err)
	}
}

// Commit absorbs vals into a clone of h, mixes in a fresh random salt, and
// returns the resulting commitment together with the salt (the
// decommitment) needed to open it later.
func (h *Hash) Commit(vals ...interface{}) (Commitment, Decommitment, error) {
	salt := make([]byte, params.SecurityBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("hash: sample decommitment salt: %w", err)
	}

	digest := h.Clone().WriteAny(vals...).WriteAny(salt).Sum()
	return Commitment(digest), Decommitment(salt), nil
}

// Decommit reports whether decommitment, together with vals, opens commitment
// under the transcript h.
func (h *Hash) Decommit(commitment Commitment, decommitment Decommitment, vals ...interface{}) bool {
	if decommitment.Validate() != nil {
		return false
	}
	digest := h.Clone().WriteAny(vals...).WriteAny([]byte(decommitment)).Sum()
	if len(digest) != len(commitment) {
		return false
	}
	var diff byte
	for i := range digest {
		diff |= digest[i] ^ commitment[i]
	}
	return diff == 0
}

// writeFramed writes a big-endian uint64 length prefix followed by b,
// guaranteeing that the concatenation of writeFramed calls is injective in
// the sequence of byte strings written.
func writeFramed(w io.Writer, b []byte) {
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(b)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		panic(err)
	}
	if _, err := w.Write(b); err != nil {
		panic(err)
	}
}

// encode converts v to its canonical byte representation for transcript
// absorption.
func encode(v interface{}) []byte {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		return x
	case string:
		return []byte(x)
	case party.ID:
		return []byte(x)
	case Commitment:
		return []byte(x)
	case Decommitment:
		return []byte(x)
	case *safenum.Nat:
		return x.Big().Bytes()
	case *safenum.Int:
		return x.Big().Bytes()
	case *big.Int:
		return x.Bytes()
	case int:
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(x))
		return buf[:]
	case Byteser:
		return x.Bytes()
	default:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice {
			out := make([]byte, 0)
			for i := 0; i < rv.Len(); i++ {
				elem := rv.Index(i).Interface()
				framed := encode(elem)
				var lenBuf [8]byte
				binary.BigEndian.PutUint64(lenBuf[:], uint64(len(framed)))
				out = append(out, lenBuf[:]...)
				out = append(out, framed...)
			}
			return out
		}
		panic(fmt.Sprintf("hash: encode: unsupported type %T", v))
	}
}
