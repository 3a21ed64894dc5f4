package auxinfo

import (
	"github.com/go-cggmp/auxinfo/internal/round"
	"github.com/go-cggmp/auxinfo/pkg/bitvec"
	"github.com/go-cggmp/auxinfo/pkg/math/curve"
	"github.com/go-cggmp/auxinfo/pkg/math/sample"
	"github.com/go-cggmp/auxinfo/pkg/paillier"
	"github.com/go-cggmp/auxinfo/pkg/party"
	"github.com/go-cggmp/auxinfo/pkg/zk/prm"
	"github.com/go-cggmp/auxinfo/pkg/zk/sch"
)

// Round1 is the first step of the protocol. It has no messages to receive:
// every field a party needs to generate its own Round 1 material is already
// in the Helper, so Finalize does the entire round's work and broadcasts a
// commitment to it.
type Round1 struct {
	*round.Helper
	index map[party.ID]int
}

// NewRound1 starts a fresh auxiliary-info run using helper for party
// bookkeeping and transcript hashing.
func NewRound1(helper *round.Helper) *Round1 {
	return &Round1{Helper: helper, index: indexOf(helper.PartyIDs())}
}

// indexOf assigns each party a stable position in the zero-sum share
// vectors, by its rank in the already-sorted party ID list.
func indexOf(ids party.IDSlice) map[party.ID]int {
	idx := make(map[party.ID]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	return idx
}

// MessageContent implements round.Round. Round 1 receives nothing.
func (r *Round1) MessageContent() round.Content { return nil }

// Number implements round.Round.
func (r *Round1) Number() round.Number { return 1 }

// VerifyMessage implements round.Round. Round 1 receives nothing.
func (r *Round1) VerifyMessage(round.Message) error { return nil }

// StoreMessage implements round.Round. Round 1 receives nothing.
func (r *Round1) StoreMessage(round.Message) error { return nil }

// Finalize generates this party's Paillier key, y and xs shares, Schnorr
// commitments, ring-Pedersen parameters and PRM proof, and ρ/u contribution,
// then broadcasts a commitment to the resulting FullData.
func (r *Round1) Finalize(out []*round.Message) (round.Session, []*round.Message, error) {
	n := r.N()

	paillierSecret := paillier.NewSecretKey()

	ySecret := curve.NewNonZeroScalarRandom()
	yPublic := curve.NewIdentityPoint().ScalarBaseMult(&ySecret.Scalar)

	schSecretY := sch.NewSecret()
	schCommitmentY := sch.NewCommitment(schSecretY)

	xsSecret := sample.ZeroSumScalars(n)
	xsPublic := make([]*curve.Point, n)
	schSecretsX := make([]*sch.Secret, n)
	schCommitmentsX := make([]*sch.Commitment, n)
	for k := range xsSecret {
		xsPublic[k] = curve.NewIdentityPoint().ScalarBaseMult(xsSecret[k])
		schSecretsX[k] = sch.NewSecret()
		schCommitmentsX[k] = sch.NewCommitment(schSecretsX[k])
	}

	s, t, lambda := paillierSecret.GeneratePedersen()
	prmAux := []interface{}{r.SSID(), r.SelfID()}
	prmProof := prm.Prove(paillierSecret.Phi(), paillierSecret.N(), lambda, t, s, prmAux...)

	rhoBits, err := bitvec.Random()
	if err != nil {
		return nil, nil, err
	}
	uBits, err := bitvec.Random()
	if err != nil {
		return nil, nil, err
	}

	data := &FullData{
		SessionID:       r.SSID(),
		PartyIdx:        r.SelfID(),
		XsPublic:        xsPublic,
		SchCommitmentsX: schCommitmentsX,
		YPublic:         yPublic,
		SchCommitmentY:  schCommitmentY,
		PaillierPublic:  paillierSecret.PublicKey,
		S:               s,
		T:               t,
		PrmProof:        prmProof,
		RhoBits:         rhoBits,
		UBits:           uBits,
	}
	secret := &SecretData{
		PaillierSecret: paillierSecret,
		YSecret:        ySecret,
		XsSecret:       xsSecret,
		SchSecretY:     schSecretY,
		SchSecretsX:    schSecretsX,
	}

	commitment := data.Hash()
	out = r.BroadcastMessage(out, &Broadcast1{Hash: commitment})

	next := &Round2{
		Helper: r.Helper,
		index:  r.index,
		data:   data,
		secret: secret,
		hashes: map[party.ID][]byte{r.SelfID(): commitment},
	}
	return next, out, nil
}
