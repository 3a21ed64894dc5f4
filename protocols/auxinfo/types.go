package auxinfo

import (
	"github.com/cronokirby/safenum"

	"github.com/go-cggmp/auxinfo/pkg/bitvec"
	"github.com/go-cggmp/auxinfo/pkg/hash"
	"github.com/go-cggmp/auxinfo/pkg/math/curve"
	"github.com/go-cggmp/auxinfo/pkg/paillier"
	"github.com/go-cggmp/auxinfo/pkg/party"
	zkfac "github.com/go-cggmp/auxinfo/pkg/zk/fac"
	zkmod "github.com/go-cggmp/auxinfo/pkg/zk/mod"
	"github.com/go-cggmp/auxinfo/pkg/zk/prm"
	"github.com/go-cggmp/auxinfo/pkg/zk/sch"
)

// FullData is everything a party reveals about itself in Round 2: the
// public half of the Round 1 material, together with enough to verify the
// PRM proof and the Round 1 commitment it was bound to.
//
// Hash canonicalizes FullData into the exact field order every party must
// agree on when checking it against a Round 1 commitment: session ID, party
// index, the xs_public vector, the xs Schnorr commitments, y_public, the y
// Schnorr commitment, the Paillier public key, s, t, the PRM proof, and
// finally the two BitVecs. Changing this order breaks compatibility with
// every other implementation of this protocol.
type FullData struct {
	SessionID       []byte
	PartyIdx        party.ID
	XsPublic        []*curve.Point
	SchCommitmentsX []*sch.Commitment
	YPublic         *curve.Point
	SchCommitmentY  *sch.Commitment
	PaillierPublic  *paillier.PublicKey
	S, T            *safenum.Nat
	PrmProof        *prm.Proof
	RhoBits         bitvec.BitVec
	UBits           bitvec.BitVec
}

// Hash computes the canonical digest of d, checked against the Round 1
// commitment V a party broadcast before revealing d.
func (d *FullData) Hash() []byte {
	h := hash.New()
	h.WriteAny(
		d.SessionID,
		d.PartyIdx,
		d.XsPublic,
		d.SchCommitmentsX,
		d.YPublic,
		d.SchCommitmentY,
		d.PaillierPublic,
		d.S,
		d.T,
		d.PrmProof.As,
		d.PrmProof.Zs,
		d.RhoBits,
		d.UBits,
	)
	return h.Sum()
}

// SecretData is the material a party keeps to itself after Round 1, needed
// to answer the proofs and encryptions it owes in Round 3.
type SecretData struct {
	PaillierSecret *paillier.SecretKey
	YSecret        *curve.NonZeroScalar
	XsSecret       []*curve.Scalar
	SchSecretY     *sch.Secret
	SchSecretsX    []*sch.Secret
}

// FullData2 is the direct message one party sends another in Round 3: the
// proofs that bind its Round 1/2 material together, plus the encrypted
// share owed to the recipient.
type FullData2 struct {
	ModProof     *zkmod.Proof
	FacProof     *zkfac.Proof
	SchProofY    *sch.Proof
	PaillierEncX *paillier.Ciphertext
	SchProofX    *sch.Proof
}

// AuxData is the terminal output of the protocol: this party's share of the
// combined mask x_mask, its own y-secret and Paillier key, and the public
// material of every party needed to verify future proofs against them.
type AuxData struct {
	ssid     []byte
	PartyIDs party.IDSlice

	XMask          *curve.Scalar
	YSecret        *curve.NonZeroScalar
	PaillierSecret *paillier.SecretKey

	XsMasksPublic   []*curve.Point
	YsPublic        map[party.ID]*curve.Point
	PaillierPublics map[party.ID]*paillier.PublicKey
	SValues         map[party.ID]*safenum.Nat
	TValues         map[party.ID]*safenum.Nat
}
