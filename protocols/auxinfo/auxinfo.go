// Package auxinfo implements the auxiliary-information generation protocol:
// an N-of-N round-based computation in which every participant in a
// threshold-ECDSA key obtains a Paillier key pair, a zero-sum share of a
// combined mask, and a y-secret, along with proofs binding all three
// together for every other participant to verify.
//
// A run is driven by repeatedly calling VerifyMessage/StoreMessage for
// every incoming Message of the current round, then Finalize once all of
// them have been processed; Finalize returns the next round (or the
// terminal AuxData) along with this party's outgoing messages.
package auxinfo

import (
	"github.com/go-cggmp/auxinfo/internal/round"
	"github.com/go-cggmp/auxinfo/pkg/party"
	"github.com/go-cggmp/auxinfo/pkg/pool"
)

// StartAuxInfo begins a new protocol run under sessionID, as selfID, among
// partyIDs (self included). pl may be nil, in which case a pool sized to
// GOMAXPROCS is created.
func StartAuxInfo(sessionID []byte, selfID party.ID, partyIDs []party.ID, pl *pool.Pool) *Round1 {
	ids := party.NewIDSlice(partyIDs)
	helper := round.NewHelper(sessionID, selfID, ids, pl)
	return NewRound1(helper)
}
