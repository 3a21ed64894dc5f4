package auxinfo

import (
	"github.com/go-cggmp/auxinfo/internal/round"
	"github.com/go-cggmp/auxinfo/pkg/party"
)

// Round2 has collected every party's Round 1 commitment and now reveals
// this party's own FullData in full.
type Round2 struct {
	*round.Helper
	index  map[party.ID]int
	data   *FullData
	secret *SecretData
	hashes map[party.ID][]byte
}

// MessageContent implements round.Round: Round 2 receives the Round 1
// commitments.
func (r *Round2) MessageContent() round.Content { return &Broadcast1{} }

// Number implements round.Round.
func (r *Round2) Number() round.Number { return 2 }

// VerifyMessage implements round.Round.
func (r *Round2) VerifyMessage(msg round.Message) error {
	content, ok := msg.Content.(*Broadcast1)
	if !ok || content == nil {
		return round.ErrInvalidContent
	}
	if content.Hash == nil {
		return round.ErrNilFields
	}
	return nil
}

// StoreMessage implements round.Round.
func (r *Round2) StoreMessage(msg round.Message) error {
	content := msg.Content.(*Broadcast1)
	r.hashes[msg.From] = content.Hash
	return nil
}

// Finalize broadcasts this party's FullData, now that every commitment has
// been collected.
func (r *Round2) Finalize(out []*round.Message) (round.Session, []*round.Message, error) {
	out = r.BroadcastMessage(out, &Broadcast2{Data: r.data})

	next := &Round3{
		Helper: r.Helper,
		index:  r.index,
		data:   r.data,
		secret: r.secret,
		hashes: r.hashes,
		datas:  map[party.ID]*FullData{r.SelfID(): r.data},
	}
	return next, out, nil
}
