package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/core"
	channel "github.com/tokenize-x/ibc-core/core/04-channel"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/core/hosttest"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
)

func newDispatchFixture(t *testing.T) *hosttest.Context {
	t.Helper()
	host := hosttest.NewContext(ibctypes.NewHeight(1, 100), ibctypes.NewTimestamp(1_000))

	clientID, err := ibctypes.NewClientId("07-tendermint-0")
	require.NoError(t, err)
	consState := &hosttest.MockConsensusState{Timestamp: ibctypes.NewTimestamp(900), RootBytes: []byte("root")}
	host.SeedClient(clientID, &hosttest.MockClientState{Latest: ibctypes.NewHeight(1, 50)}, ibctypes.NewHeight(1, 50), consState)

	connID, err := ibctypes.NewConnectionId("connection-0")
	require.NoError(t, err)
	host.SeedConnection(connID, connectiontypes.ConnectionEnd{
		State:    connectiontypes.Open,
		ClientId: clientID,
		Counterparty: connectiontypes.Counterparty{
			ClientId:     clientID,
			ConnectionId: connID,
		},
		Versions: []connectiontypes.Version{{Identifier: "1", Features: []string{"ORDER_ORDERED", "ORDER_UNORDERED"}}},
	})

	portID, err := ibctypes.NewPortId("transfer")
	require.NoError(t, err)
	chanID, err := ibctypes.NewChannelId("channel-0")
	require.NoError(t, err)
	host.SeedChannel(portID, chanID, channeltypes.ChannelEnd{
		State:          channeltypes.Open,
		Ordering:       channeltypes.Unordered,
		Counterparty:   channeltypes.Counterparty{PortId: portID, ChannelId: chanID},
		ConnectionHops: []ibctypes.ConnectionId{connID},
		Version:        "ics20-1",
	})

	return host
}

func TestDispatchSendPacketReturnsItsOwnEvents(t *testing.T) {
	host := newDispatchFixture(t)
	portID, _ := ibctypes.NewPortId("transfer")
	chanID, _ := ibctypes.NewChannelId("channel-0")
	router := hosttest.StaticRouter{}

	env := core.MsgEnvelope{SendPacket: &channel.MsgSendPacket{
		SourcePort:    portID,
		SourceChannel: chanID,
		Data:          []byte("payload"),
		TimeoutHeight: ibctypes.NewHeight(1, 200),
	}}

	events, err := core.Dispatch(context.Background(), host, router, hosttest.AllowAllAuthority{}, env)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "message", events[0].Type)
	require.Equal(t, channeltypes.EventTypeSendPacket, events[1].Type)

	// the host's own event log must also have received them.
	require.Len(t, host.Events(), 2)
}

func TestDispatchRejectsEmptyEnvelope(t *testing.T) {
	host := newDispatchFixture(t)
	_, err := core.Dispatch(context.Background(), host, hosttest.StaticRouter{}, hosttest.AllowAllAuthority{}, core.MsgEnvelope{})
	require.ErrorIs(t, err, core.ErrInvalidEnvelope)
}

func TestDispatchRejectsAmbiguousEnvelope(t *testing.T) {
	host := newDispatchFixture(t)
	portID, _ := ibctypes.NewPortId("transfer")
	chanID, _ := ibctypes.NewChannelId("channel-0")

	env := core.MsgEnvelope{
		SendPacket: &channel.MsgSendPacket{
			SourcePort: portID, SourceChannel: chanID, Data: []byte("x"), TimeoutHeight: ibctypes.NewHeight(1, 200),
		},
		ChannelCloseInit: &channel.MsgChannelCloseInit{PortId: portID, ChannelId: chanID},
	}

	_, err := core.Dispatch(context.Background(), host, hosttest.StaticRouter{}, hosttest.AllowAllAuthority{}, env)
	require.ErrorIs(t, err, core.ErrInvalidEnvelope)
}
