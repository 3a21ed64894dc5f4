package round

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-cggmp/auxinfo/pkg/party"
)

func testHelper() *Helper {
	ids := party.NewIDSlice([]party.ID{"a", "b", "c"})
	return NewHelper([]byte("session"), "b", ids, nil)
}

func TestHelper_SelfAndOthers(t *testing.T) {
	h := testHelper()
	require.Equal(t, party.ID("b"), h.SelfID())
	require.Equal(t, 3, h.N())
	require.Equal(t, party.IDSlice{"a", "c"}, h.OtherPartyIDs())
	require.False(t, h.OtherPartyIDs().Contains("b"))
}

func TestHelper_SSID(t *testing.T) {
	h := testHelper()
	require.Equal(t, []byte("session"), h.SSID())
}

func TestHelper_DefaultsToPool(t *testing.T) {
	h := testHelper()
	require.NotNil(t, h.Pool())
}

func TestBroadcastMessage_AddressesNoOne(t *testing.T) {
	h := testHelper()
	out := h.BroadcastMessage(nil, nil)
	require.Len(t, out, 1)
	require.True(t, out[0].Broadcast)
	require.Equal(t, party.ID("b"), out[0].From)
	require.Empty(t, out[0].To)
}

func TestSendMessage_AddressesRecipient(t *testing.T) {
	h := testHelper()
	out := h.SendMessage(nil, nil, "c")
	require.Len(t, out, 1)
	require.False(t, out[0].Broadcast)
	require.Equal(t, party.ID("c"), out[0].To)
}

func TestHashForID_DiffersPerID(t *testing.T) {
	h := testHelper()
	ha := h.HashForID("a")
	hc := h.HashForID("c")
	require.NotEqual(t, ha.Sum(), hc.Sum())
}
