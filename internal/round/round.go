// Package round defines the common scaffolding every round of the
// auxiliary-info protocol is built on: the Round/Session state-machine
// interfaces, the Message envelope parties exchange, and a Helper that
// each concrete round embeds to get party-bookkeeping and transcript
// hashing for free.
package round

import (
	"errors"

	"github.com/go-cggmp/auxinfo/pkg/hash"
	"github.com/go-cggmp/auxinfo/pkg/party"
	"github.com/go-cggmp/auxinfo/pkg/pool"
)

var (
	// ErrInvalidContent is returned by VerifyMessage when a Message's
	// Content is not the type a round expects.
	ErrInvalidContent = errors.New("round: invalid message content")
	// ErrNilFields is returned when a required field of a Message's
	// Content was not set by the sender.
	ErrNilFields = errors.New("round: message content has nil field(s)")
)

// Number identifies a round within the protocol (1 to 4).
type Number int

// Content is the payload of a Message: round-specific data, tagged with
// the round number it belongs to so a received Message can be routed and
// its shape checked before being type-asserted.
type Content interface {
	RoundNumber() Number
}

// Message is one party's communication in a round: either a broadcast (To
// is empty) or addressed to a single recipient.
type Message struct {
	From      party.ID
	To        party.ID
	Broadcast bool
	Content   Content
}

// Round is one step of the protocol state machine. A Round consumes the
// Messages addressed to it (VerifyMessage then StoreMessage, once per
// sender), and Finalize produces the next Round (or the terminal Session)
// along with this party's outgoing Messages for that step.
type Round interface {
	// VerifyMessage checks a single incoming message's content for
	// validity (shape, proofs, commitments) without mutating round state.
	VerifyMessage(msg Message) error
	// StoreMessage records an already-verified message's content into the
	// round's state.
	StoreMessage(msg Message) error
	// Finalize is called once every expected message has been verified
	// and stored. It returns the next Round (or a terminal Session) and
	// this party's outgoing messages for the step that follows.
	Finalize(out []*Message) (Session, []*Message, error)
	// MessageContent returns a zero value of the Content type this round
	// expects to receive, used to unmarshal incoming wire messages.
	MessageContent() Content
	// Number reports which round this is.
	Number() Number
}

// Session is a Round that also reports the session ID it runs under. Every
// Finalize returns one: the next round, or the terminal state, which has no
// further messages to process and whose Finalize returns itself.
type Session interface {
	Round
	SSID() []byte
}

// Helper holds the party bookkeeping and transcript hash shared by every
// round of a single protocol run. Concrete rounds embed a *Helper to
// satisfy the common parts of Round/Session for free.
type Helper struct {
	sessionID []byte
	selfID    party.ID
	partyIDs  party.IDSlice
	pool      *pool.Pool
}

// NewHelper constructs the shared state for a protocol run across
// partyIDs, identified by sessionID, executing as selfID.
func NewHelper(sessionID []byte, selfID party.ID, partyIDs party.IDSlice, pl *pool.Pool) *Helper {
	if pl == nil {
		pl = pool.New(0)
	}
	return &Helper{
		sessionID: sessionID,
		selfID:    selfID,
		partyIDs:  partyIDs,
		pool:      pl,
	}
}

// SSID returns the session identifier this run was started with.
func (h *Helper) SSID() []byte { return h.sessionID }

// SelfID returns this party's own ID.
func (h *Helper) SelfID() party.ID { return h.selfID }

// PartyIDs returns every party ID in the run, self included, in sorted
// order.
func (h *Helper) PartyIDs() party.IDSlice { return h.partyIDs }

// OtherPartyIDs returns every party ID in the run except SelfID.
func (h *Helper) OtherPartyIDs() party.IDSlice {
	return h.partyIDs.Other(h.selfID)
}

// N returns the number of parties in the run.
func (h *Helper) N() int { return h.partyIDs.Len() }

// Pool returns the worker pool a round uses to fan its per-peer outgoing
// proof/encryption work out across goroutines in Finalize. Never nil: a nil
// pl passed to NewHelper is replaced with a GOMAXPROCS-sized pool.
func (h *Helper) Pool() *pool.Pool { return h.pool }

// HashForID returns a fresh transcript hash scoped to this run's session
// ID and to id, so that commitments or challenges computed for different
// senders never collide.
func (h *Helper) HashForID(id party.ID) *hash.Hash {
	return hash.HashForID(h.sessionID, id)
}

// BroadcastMessage appends a message addressed to every other party to
// out, and returns the extended slice.
func (h *Helper) BroadcastMessage(out []*Message, content Content) []*Message {
	return append(out, &Message{
		From:      h.selfID,
		Broadcast: true,
		Content:   content,
	})
}

// SendMessage appends a message addressed to to to out, and returns the
// extended slice.
func (h *Helper) SendMessage(out []*Message, content Content, to party.ID) []*Message {
	return append(out, &Message{
		From:    h.selfID,
		To:      to,
		Content: content,
	})
}
