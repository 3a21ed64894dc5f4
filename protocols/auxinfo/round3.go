package auxinfo

import (
	"bytes"

	"github.com/go-cggmp/auxinfo/internal/round"
	"github.com/go-cggmp/auxinfo/pkg/math/curve"
	"github.com/go-cggmp/auxinfo/pkg/paillier"
	"github.com/go-cggmp/auxinfo/pkg/party"
	"github.com/go-cggmp/auxinfo/pkg/pedersen"
	zkfac "github.com/go-cggmp/auxinfo/pkg/zk/fac"
	zkmod "github.com/go-cggmp/auxinfo/pkg/zk/mod"
	"github.com/go-cggmp/auxinfo/pkg/zk/sch"
)

// Round3 has collected every party's FullData and now verifies it against
// the Round 1 commitments before sending each peer its Round 3 direct
// message.
type Round3 struct {
	*round.Helper
	index  map[party.ID]int
	data   *FullData
	secret *SecretData
	hashes map[party.ID][]byte
	datas  map[party.ID]*FullData
}

// MessageContent implements round.Round: Round 3 receives the revealed
// FullData broadcast in Round 2.
func (r *Round3) MessageContent() round.Content { return &Broadcast2{} }

// Number implements round.Round.
func (r *Round3) Number() round.Number { return 3 }

// VerifyMessage implements round.Round: the five checks a peer's revealed
// FullData must pass before it is trusted (spec §4.7).
func (r *Round3) VerifyMessage(msg round.Message) error {
	content, ok := msg.Content.(*Broadcast2)
	if !ok || content == nil || content.Data == nil {
		return round.ErrInvalidContent
	}
	data := content.Data
	if data.PaillierPublic == nil || data.YPublic == nil || data.SchCommitmentY == nil ||
		data.S == nil || data.T == nil || data.PrmProof == nil ||
		len(data.XsPublic) == 0 || len(data.SchCommitmentsX) != len(data.XsPublic) {
		return round.ErrNilFields
	}

	commitment, ok := r.hashes[msg.From]
	if !ok {
		return round.ErrInvalidContent
	}
	if !bytes.Equal(data.Hash(), commitment) {
		return ErrHashMismatch
	}

	if err := paillier.ValidateN(data.PaillierPublic.N()); err != nil {
		return ErrWeakModulus
	}

	if err := pedersen.ValidateParameters(data.PaillierPublic.N(), data.S, data.T); err != nil {
		return err
	}

	if !curve.Sum(data.XsPublic).IsIdentity() {
		return ErrNonZeroShareSum
	}

	prmAux := []interface{}{r.SSID(), msg.From}
	if !data.PrmProof.Verify(data.PaillierPublic.N(), data.S, data.T, prmAux...) {
		return ErrPRM
	}

	return nil
}

// StoreMessage implements round.Round.
func (r *Round3) StoreMessage(msg round.Message) error {
	content := msg.Content.(*Broadcast2)
	r.datas[msg.From] = content.Data
	return nil
}

// Finalize computes the session's combined ρ, then sends each other party
// the MOD/FAC/Schnorr proofs and encrypted share it is owed.
func (r *Round3) Finalize(out []*round.Message) (round.Session, []*round.Message, error) {
	rho := r.data.RhoBits.Copy()
	for id, d := range r.datas {
		if id == r.SelfID() {
			continue
		}
		if err := rho.XOR(d.RhoBits); err != nil {
			return nil, nil, err
		}
	}

	modAux := []interface{}{r.SSID(), rho.Bytes(), r.SelfID()}
	modProof := zkmod.Prove(r.secret.PaillierSecret.P(), r.secret.PaillierSecret.Q(), r.secret.PaillierSecret.N(), modAux...)
	schProofY := sch.Prove(r.secret.SchSecretY, &r.secret.YSecret.Scalar, r.data.SchCommitmentY, r.data.YPublic, modAux...)

	// Each peer's FAC proof, encrypted share, and Schnorr proof are
	// independent CPU-bound work, fanned out across r.Pool() exactly as the
	// teacher's sign round fans out its per-peer MtA proofs in Finalize.
	otherIDs := r.OtherPartyIDs()
	packets := r.Pool().Parallelize(len(otherIDs), func(i int) interface{} {
		j := otherIDs[i]
		recipient := r.datas[j]
		recipientPed := pedersen.New(recipient.PaillierPublic.N(), recipient.S, recipient.T)

		facProof := zkfac.Prove(r.secret.PaillierSecret.P(), r.secret.PaillierSecret.Q(), r.secret.PaillierSecret.N(), recipientPed, modAux...)

		// xs_secret/xs_public are indexed by destination: the share and its
		// Schnorr commitment owed to j live at j's position, not ours.
		recipientIdx := r.index[j]
		xSecret := r.secret.XsSecret[recipientIdx]
		ciphertext := recipient.PaillierPublic.Enc(xSecret.Int())

		schProofX := sch.Prove(r.secret.SchSecretsX[recipientIdx], xSecret, r.data.SchCommitmentsX[recipientIdx], r.data.XsPublic[recipientIdx], modAux...)

		return &FullData2{
			ModProof:     modProof,
			FacProof:     facProof,
			SchProofY:    schProofY,
			PaillierEncX: ciphertext,
			SchProofX:    schProofX,
		}
	})
	for i, j := range otherIDs {
		out = r.SendMessage(out, &Direct3{Data: packets[i].(*FullData2)}, j)
	}

	next := &Round4{
		Helper:   r.Helper,
		index:    r.index,
		data:     r.data,
		secret:   r.secret,
		datas:    r.datas,
		rho:      rho,
		incoming: map[party.ID]*FullData2{},
	}
	return next, out, nil
}
