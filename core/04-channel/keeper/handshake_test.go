package keeper_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	channel "github.com/tokenize-x/ibc-core/core/04-channel"
	"github.com/tokenize-x/ibc-core/core/04-channel/keeper"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	host24 "github.com/tokenize-x/ibc-core/core/24-host"
	"github.com/tokenize-x/ibc-core/core/hosttest"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
)

// newConnectionOnlyFixture seeds a single Open connection over an Active
// client but no channel, for exercising the four open-handshake handlers
// from a clean slate.
func newConnectionOnlyFixture() (*hosttest.Context, ibctypes.ConnectionId) {
	host := hosttest.NewContext(ibctypes.NewHeight(1, 100), ibctypes.NewTimestamp(1_000))

	clientID := mustClientId("07-tendermint-0")
	consState := &hosttest.MockConsensusState{Timestamp: ibctypes.NewTimestamp(900), RootBytes: []byte("root")}
	host.SeedClient(clientID, &hosttest.MockClientState{Latest: ibctypes.NewHeight(1, 50)}, ibctypes.NewHeight(1, 50), consState)

	connID := mustConnectionId("connection-0")
	host.SeedConnection(connID, connectiontypes.ConnectionEnd{
		State:    connectiontypes.Open,
		ClientId: clientID,
		Counterparty: connectiontypes.Counterparty{
			ClientId:     mustClientId("07-tendermint-7"),
			ConnectionId: mustConnectionId("connection-7"),
		},
		Versions: []connectiontypes.Version{{Identifier: "1", Features: []string{"ORDER_ORDERED", "ORDER_UNORDERED"}}},
	})

	return host, connID
}

func TestExecuteChanOpenInit(t *testing.T) {
	host, connID := newConnectionOnlyFixture()
	portID := mustPortId("transfer")
	router := hosttest.StaticRouter{Modules: map[ibctypes.PortId]channel.Module{portID: hosttest.EchoModule{}}}

	msg := channel.MsgChannelOpenInit{
		PortId: portID,
		Channel: channeltypes.ChannelEnd{
			Ordering:       channeltypes.Unordered,
			Counterparty:   channeltypes.Counterparty{PortId: portID},
			ConnectionHops: []ibctypes.ConnectionId{connID},
			Version:        "ics20-1",
		},
		Signer: "relayer",
	}

	chanID, err := keeper.ExecuteChanOpenInit(context.Background(), host, router, msg)
	require.NoError(t, err)
	require.Equal(t, ibctypes.ChannelId("channel-0"), chanID)

	end, ok := host.ChannelEnd(context.Background(), portID, chanID)
	require.True(t, ok)
	require.Equal(t, channeltypes.Init, end.State)

	require.Len(t, host.Events(), 2)
}

func TestExecuteChanOpenTry(t *testing.T) {
	host, connID := newConnectionOnlyFixture()
	conn, _ := host.ConnectionEnd(context.Background(), connID)
	portID := mustPortId("transfer")
	router := hosttest.StaticRouter{Modules: map[ibctypes.PortId]channel.Module{portID: hosttest.EchoModule{}}}

	counterpartyEnd := channeltypes.Counterparty{PortId: portID, ChannelId: mustChannelId("channel-9")}

	expected := channeltypes.ChannelEnd{
		State:          channeltypes.Init,
		Ordering:       channeltypes.Unordered,
		Counterparty:   channeltypes.Counterparty{PortId: portID, ChannelId: ""},
		ConnectionHops: []ibctypes.ConnectionId{conn.Counterparty.ConnectionId},
		Version:        "ics20-1",
	}

	msg := channel.MsgChannelOpenTry{
		PortId:                      portID,
		CounterpartyChosenChannelId: "",
		Channel: channeltypes.ChannelEnd{
			Ordering:       channeltypes.Unordered,
			Counterparty:   counterpartyEnd,
			ConnectionHops: []ibctypes.ConnectionId{connID},
		},
		CounterpartyVersion: "ics20-1",
		ProofInit:           host24.Encode(expected),
		ProofHeight:         ibctypes.NewHeight(1, 50),
		Signer:              "relayer",
	}

	chanID, err := keeper.ExecuteChanOpenTry(context.Background(), host, router, msg)
	require.NoError(t, err)

	end, ok := host.ChannelEnd(context.Background(), portID, chanID)
	require.True(t, ok)
	require.Equal(t, channeltypes.TryOpen, end.State)
	require.Len(t, host.Events(), 2)
}

func TestExecuteChanOpenAck(t *testing.T) {
	host, connID := newConnectionOnlyFixture()
	conn, _ := host.ConnectionEnd(context.Background(), connID)
	portID := mustPortId("transfer")
	chanID := mustChannelId("channel-0")
	router := hosttest.StaticRouter{Modules: map[ibctypes.PortId]channel.Module{portID: hosttest.EchoModule{}}}

	host.SeedChannel(portID, chanID, channeltypes.ChannelEnd{
		State:          channeltypes.Init,
		Ordering:       channeltypes.Unordered,
		Counterparty:   channeltypes.Counterparty{PortId: portID},
		ConnectionHops: []ibctypes.ConnectionId{connID},
		Version:        "ics20-1",
	})

	counterpartyChanID := mustChannelId("channel-9")
	expected := channeltypes.ChannelEnd{
		State:          channeltypes.TryOpen,
		Ordering:       channeltypes.Unordered,
		Counterparty:   channeltypes.Counterparty{PortId: portID, ChannelId: chanID},
		ConnectionHops: []ibctypes.ConnectionId{conn.Counterparty.ConnectionId},
		Version:        "ics20-1",
	}

	msg := channel.MsgChannelOpenAck{
		PortId:                portID,
		ChannelId:             chanID,
		CounterpartyChannelId: counterpartyChanID,
		CounterpartyVersion:   "ics20-1",
		ProofTry:              host24.Encode(expected),
		ProofHeight:           ibctypes.NewHeight(1, 50),
		Signer:                "relayer",
	}

	require.NoError(t, keeper.ExecuteChanOpenAck(context.Background(), host, router, msg))

	end, ok := host.ChannelEnd(context.Background(), portID, chanID)
	require.True(t, ok)
	require.Equal(t, channeltypes.Open, end.State)
	require.Equal(t, counterpartyChanID, end.Counterparty.ChannelId)
	require.Len(t, host.Events(), 2)
}

func TestExecuteChanOpenConfirm(t *testing.T) {
	host, connID := newConnectionOnlyFixture()
	conn, _ := host.ConnectionEnd(context.Background(), connID)
	portID := mustPortId("transfer")
	chanID := mustChannelId("channel-0")
	counterpartyChanID := mustChannelId("channel-9")
	router := hosttest.StaticRouter{Modules: map[ibctypes.PortId]channel.Module{portID: hosttest.EchoModule{}}}

	host.SeedChannel(portID, chanID, channeltypes.ChannelEnd{
		State:          channeltypes.TryOpen,
		Ordering:       channeltypes.Unordered,
		Counterparty:   channeltypes.Counterparty{PortId: portID, ChannelId: counterpartyChanID},
		ConnectionHops: []ibctypes.ConnectionId{connID},
		Version:        "ics20-1",
	})

	expected := channeltypes.ChannelEnd{
		State:          channeltypes.Open,
		Ordering:       channeltypes.Unordered,
		Counterparty:   channeltypes.Counterparty{PortId: portID, ChannelId: chanID},
		ConnectionHops: []ibctypes.ConnectionId{conn.Counterparty.ConnectionId},
		Version:        "ics20-1",
	}

	msg := channel.MsgChannelOpenConfirm{
		PortId:      portID,
		ChannelId:   chanID,
		ProofAck:    host24.Encode(expected),
		ProofHeight: ibctypes.NewHeight(1, 50),
		Signer:      "relayer",
	}

	require.NoError(t, keeper.ExecuteChanOpenConfirm(context.Background(), host, router, msg))

	end, ok := host.ChannelEnd(context.Background(), portID, chanID)
	require.True(t, ok)
	require.Equal(t, channeltypes.Open, end.State)
	require.Len(t, host.Events(), 2)
}
