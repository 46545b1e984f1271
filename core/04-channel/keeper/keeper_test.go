package keeper_test

import (
	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/core/hosttest"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// newOpenFixture seeds a host with a single active client, an Open
// connection over it, and an Open channel on top of that connection —
// the common starting point for every packet-engine scenario test.
func newOpenFixture(ordering channeltypes.Ordering) *hosttest.Context {
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

	portID := mustPortId("transfer")
	chanID := mustChannelId("channel-0")
	host.SeedChannel(portID, chanID, channeltypes.ChannelEnd{
		State:    channeltypes.Open,
		Ordering: ordering,
		Counterparty: channeltypes.Counterparty{
			PortId:    portID,
			ChannelId: mustChannelId("channel-7"),
		},
		ConnectionHops: []ibctypes.ConnectionId{connID},
		Version:        "ics20-1",
	})

	return host
}

func mustClientId(s string) ibctypes.ClientId {
	id, err := ibctypes.NewClientId(s)
	if err != nil {
		panic(err)
	}
	return id
}

func mustConnectionId(s string) ibctypes.ConnectionId {
	id, err := ibctypes.NewConnectionId(s)
	if err != nil {
		panic(err)
	}
	return id
}

func mustPortId(s string) ibctypes.PortId {
	id, err := ibctypes.NewPortId(s)
	if err != nil {
		panic(err)
	}
	return id
}

func mustChannelId(s string) ibctypes.ChannelId {
	id, err := ibctypes.NewChannelId(s)
	if err != nil {
		panic(err)
	}
	return id
}
