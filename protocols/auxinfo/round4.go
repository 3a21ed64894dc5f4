package auxinfo

import (
	"github.com/cronokirby/safenum"

	"github.com/go-cggmp/auxinfo/internal/round"
	"github.com/go-cggmp/auxinfo/pkg/bitvec"
	"github.com/go-cggmp/auxinfo/pkg/math/curve"
	"github.com/go-cggmp/auxinfo/pkg/paillier"
	"github.com/go-cggmp/auxinfo/pkg/party"
	"github.com/go-cggmp/auxinfo/pkg/pedersen"
)

// Round4 has every peer's FullData in hand and the combined ρ computed. It
// verifies each peer's Round 3 direct message, then combines every party's
// share into this party's final AuxData.
type Round4 struct {
	*round.Helper
	index    map[party.ID]int
	data     *FullData
	secret   *SecretData
	datas    map[party.ID]*FullData
	rho      bitvec.BitVec
	incoming map[party.ID]*FullData2
}

// MessageContent implements round.Round: Round 4 receives the Round 3
// direct messages.
func (r *Round4) MessageContent() round.Content { return &Direct3{} }

// Number implements round.Round.
func (r *Round4) Number() round.Number { return 4 }

// VerifyMessage implements round.Round: the checks a peer's Round 3
// message must pass (spec §4.8). It is verified against the sender's own
// published FullData (from Round 2) and this party's own ring-Pedersen
// parameters, which the sender's FAC proof was bound to.
func (r *Round4) VerifyMessage(msg round.Message) error {
	content, ok := msg.Content.(*Direct3)
	if !ok || content == nil || content.Data == nil {
		return round.ErrInvalidContent
	}
	data := content.Data
	if data.ModProof == nil || data.FacProof == nil || data.SchProofY == nil ||
		data.PaillierEncX == nil || data.SchProofX == nil {
		return round.ErrNilFields
	}

	sender, ok := r.datas[msg.From]
	if !ok {
		return round.ErrInvalidContent
	}

	selfIdx := r.index[r.SelfID()]
	shareScalar, err := r.secret.PaillierSecret.Dec(data.PaillierEncX)
	if err != nil {
		return ErrShareDecryptMismatch
	}
	expected := curve.NewIdentityPoint().ScalarBaseMult(shareScalar)
	if !expected.Equal(sender.XsPublic[selfIdx]) {
		return ErrShareDecryptMismatch
	}

	aux := []interface{}{r.SSID(), r.rho.Bytes(), msg.From}

	if !data.ModProof.Verify(sender.PaillierPublic.N(), aux...) {
		return ErrMOD
	}

	ownPed := pedersen.New(r.data.PaillierPublic.N(), r.data.S, r.data.T)
	if !data.FacProof.Verify(sender.PaillierPublic.N(), ownPed, aux...) {
		return ErrFAC
	}

	if !data.SchProofY.Verify(sender.SchCommitmentY, sender.YPublic, aux...) {
		return ErrSchY
	}

	if !data.SchProofX.Verify(sender.SchCommitmentsX[selfIdx], sender.XsPublic[selfIdx], aux...) {
		return ErrSchX
	}

	return nil
}

// StoreMessage implements round.Round.
func (r *Round4) StoreMessage(msg round.Message) error {
	content := msg.Content.(*Direct3)
	r.incoming[msg.From] = content.Data
	return nil
}

// Finalize combines every party's share of x_mask and assembles the public
// material collected about every party into the final AuxData.
func (r *Round4) Finalize([]*round.Message) (round.Session, []*round.Message, error) {
	selfIdx := r.index[r.SelfID()]

	xMask := curve.NewScalar().Set(r.secret.XsSecret[selfIdx])
	for _, data2 := range r.incoming {
		shareScalar, err := r.secret.PaillierSecret.Dec(data2.PaillierEncX)
		if err != nil {
			return nil, nil, err
		}
		xMask.Add(xMask, shareScalar)
	}

	n := r.N()
	xsMasksPublic := make([]*curve.Point, n)
	for k := 0; k < n; k++ {
		xsMasksPublic[k] = curve.NewIdentityPoint()
	}
	ysPublic := make(map[party.ID]*curve.Point, n)
	paillierPublics := make(map[party.ID]*paillier.PublicKey, n)
	sValues := make(map[party.ID]*safenum.Nat, n)
	tValues := make(map[party.ID]*safenum.Nat, n)

	for id, d := range r.datas {
		for k, xp := range d.XsPublic {
			xsMasksPublic[k].Add(xsMasksPublic[k], xp)
		}
		ysPublic[id] = d.YPublic
		paillierPublics[id] = d.PaillierPublic
		sValues[id] = d.S
		tValues[id] = d.T
	}

	result := &AuxData{
		ssid:            r.SSID(),
		PartyIDs:        r.PartyIDs(),
		XMask:           xMask,
		YSecret:         r.secret.YSecret,
		PaillierSecret:  r.secret.PaillierSecret,
		XsMasksPublic:   xsMasksPublic,
		YsPublic:        ysPublic,
		PaillierPublics: paillierPublics,
		SValues:         sValues,
		TValues:         tValues,
	}
	return result, nil, nil
}
