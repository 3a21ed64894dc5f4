package auxinfo

import "github.com/go-cggmp/auxinfo/internal/round"

// Broadcast1 is the Round 1 output: a commitment to a party's FullData,
// revealed only in Round 2.
type Broadcast1 struct {
	Hash []byte
}

// RoundNumber implements round.Content.
func (*Broadcast1) RoundNumber() round.Number { return 1 }

// Broadcast2 is the Round 2 output: a party's FullData, revealed in full
// now that every Round 1 commitment is in hand.
type Broadcast2 struct {
	Data *FullData
}

// RoundNumber implements round.Content.
func (*Broadcast2) RoundNumber() round.Number { return 2 }

// Direct3 is the Round 3 output: a message addressed to a single recipient,
// carrying the proofs and the encrypted share owed to them.
type Direct3 struct {
	Data *FullData2
}

// RoundNumber implements round.Content.
func (*Direct3) RoundNumber() round.Number { return 3 }
