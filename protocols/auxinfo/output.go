package auxinfo

import "github.com/go-cggmp/auxinfo/internal/round"

// sessionID lets AuxData satisfy round.Session without carrying a *Helper:
// the run is over, so all AuxData needs to report is the ID it ran under.
func (d *AuxData) sessionID() []byte { return d.ssid }

// SSID implements round.Session.
func (d *AuxData) SSID() []byte { return d.sessionID() }

// Number implements round.Round. AuxData is the terminal state, one past
// the protocol's three message rounds.
func (d *AuxData) Number() round.Number { return 4 }

// MessageContent implements round.Round. AuxData expects no further
// messages.
func (d *AuxData) MessageContent() round.Content { return nil }

// VerifyMessage implements round.Round. AuxData is terminal: there is
// nothing left to verify.
func (d *AuxData) VerifyMessage(round.Message) error { return nil }

// StoreMessage implements round.Round. AuxData is terminal: there is
// nothing left to store.
func (d *AuxData) StoreMessage(round.Message) error { return nil }

// Finalize implements round.Round: once a protocol run reaches AuxData, it
// stays there.
func (d *AuxData) Finalize(out []*round.Message) (round.Session, []*round.Message, error) {
	return d, out, nil
}
