package connection_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	connection "github.com/tokenize-x/ibc-core/core/03-connection"
	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	host24 "github.com/tokenize-x/ibc-core/core/24-host"
	"github.com/tokenize-x/ibc-core/core/hosttest"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

func newClientOnlyFixture(t *testing.T) (*hosttest.Context, ibctypes.ClientId) {
	t.Helper()
	host := hosttest.NewContext(ibctypes.NewHeight(1, 100), ibctypes.NewTimestamp(1_000))
	clientID, err := ibctypes.NewClientId("07-tendermint-0")
	require.NoError(t, err)
	consState := &hosttest.MockConsensusState{Timestamp: ibctypes.NewTimestamp(900), RootBytes: []byte("root")}
	host.SeedClient(clientID, &hosttest.MockClientState{Latest: ibctypes.NewHeight(1, 50)}, ibctypes.NewHeight(1, 50), consState)
	return host, clientID
}

func defaultVersion() connectiontypes.Version {
	return connectiontypes.Version{Identifier: "1", Features: []string{"ORDER_ORDERED", "ORDER_UNORDERED"}}
}

func TestExecuteConnOpenInit(t *testing.T) {
	host, clientID := newClientOnlyFixture(t)

	msg := connection.MsgConnectionOpenInit{
		ClientId: clientID,
		Counterparty: connectiontypes.Counterparty{
			ClientId: mustClientId(t, "07-tendermint-7"),
		},
		Signer: "relayer",
	}

	connID, err := connection.ExecuteConnOpenInit(context.Background(), host, msg)
	require.NoError(t, err)
	require.Equal(t, ibctypes.ConnectionId("connection-0"), connID)

	end, ok := host.ConnectionEnd(context.Background(), connID)
	require.True(t, ok)
	require.Equal(t, connectiontypes.Init, end.State)
	require.Len(t, host.Events(), 2)
}

func TestExecuteConnOpenTry(t *testing.T) {
	host, clientID := newClientOnlyFixture(t)
	counterpartyClientID := mustClientId(t, "07-tendermint-7")
	counterpartyConnID := mustConnectionId(t, "connection-9")

	expectedSelf := connectiontypes.ConnectionEnd{
		State:    connectiontypes.Init,
		ClientId: counterpartyClientID,
		Counterparty: connectiontypes.Counterparty{
			ClientId:     clientID,
			ConnectionId: "",
		},
		Versions: []connectiontypes.Version{defaultVersion()},
	}

	selfClientState := &hosttest.MockClientState{Latest: ibctypes.NewHeight(2, 1)}
	host.SetSelfClientState(selfClientState)
	consensusHeight := ibctypes.NewHeight(1, 40)
	selfConsensusState := &hosttest.MockConsensusState{Timestamp: ibctypes.NewTimestamp(800), RootBytes: []byte("self-root")}
	host.SetSelfConsensusState(consensusHeight, selfConsensusState)

	msg := connection.MsgConnectionOpenTry{
		ClientId: clientID,
		Counterparty: connectiontypes.Counterparty{
			ClientId:     counterpartyClientID,
			ConnectionId: counterpartyConnID,
		},
		CounterpartyVersions: []connectiontypes.Version{defaultVersion()},
		ProofHeight:          ibctypes.NewHeight(1, 50),
		ProofInit:            host24.Encode(expectedSelf),
		ClientState:          selfClientState,
		ConsensusHeight:      consensusHeight,
		Signer:               "relayer",
	}
	msg.ProofClient = host24.Encode(msg.ClientState)
	msg.ProofConsensus = host24.Encode(selfConsensusState)

	connID, err := connection.ExecuteConnOpenTry(context.Background(), host, msg)
	require.NoError(t, err)

	end, ok := host.ConnectionEnd(context.Background(), connID)
	require.True(t, ok)
	require.Equal(t, connectiontypes.TryOpen, end.State)
	require.Len(t, host.Events(), 2)
}

func TestExecuteConnOpenTryRejectsMismatchedSelfClientState(t *testing.T) {
	host, clientID := newClientOnlyFixture(t)
	counterpartyClientID := mustClientId(t, "07-tendermint-7")
	counterpartyConnID := mustConnectionId(t, "connection-9")

	expectedSelf := connectiontypes.ConnectionEnd{
		State:    connectiontypes.Init,
		ClientId: counterpartyClientID,
		Counterparty: connectiontypes.Counterparty{
			ClientId:     clientID,
			ConnectionId: "",
		},
		Versions: []connectiontypes.Version{defaultVersion()},
	}

	host.SetSelfClientState(&hosttest.MockClientState{Latest: ibctypes.NewHeight(2, 1)})
	consensusHeight := ibctypes.NewHeight(1, 40)

	msg := connection.MsgConnectionOpenTry{
		ClientId: clientID,
		Counterparty: connectiontypes.Counterparty{
			ClientId:     counterpartyClientID,
			ConnectionId: counterpartyConnID,
		},
		CounterpartyVersions: []connectiontypes.Version{defaultVersion()},
		ProofHeight:          ibctypes.NewHeight(1, 50),
		ProofInit:            host24.Encode(expectedSelf),
		ClientState:          &hosttest.MockClientState{Latest: ibctypes.NewHeight(9, 9)}, // does not match selfClientState
		ConsensusHeight:      consensusHeight,
		Signer:               "relayer",
	}
	msg.ProofClient = host24.Encode(msg.ClientState)
	msg.ProofConsensus = host24.Encode(&hosttest.MockConsensusState{})

	_, err := connection.ExecuteConnOpenTry(context.Background(), host, msg)
	require.ErrorIs(t, err, connectiontypes.ErrInvalidClientState)
}

func TestExecuteConnOpenAck(t *testing.T) {
	host, clientID := newClientOnlyFixture(t)
	connID := mustConnectionId(t, "connection-0")
	counterpartyClientID := mustClientId(t, "07-tendermint-7")

	host.SeedConnection(connID, connectiontypes.ConnectionEnd{
		State:        connectiontypes.Init,
		ClientId:     clientID,
		Counterparty: connectiontypes.Counterparty{ClientId: counterpartyClientID},
		Versions:     []connectiontypes.Version{defaultVersion()},
	})

	counterpartyConnID := mustConnectionId(t, "connection-9")
	expectedCounterparty := connectiontypes.ConnectionEnd{
		State:    connectiontypes.TryOpen,
		ClientId: counterpartyClientID,
		Counterparty: connectiontypes.Counterparty{
			ClientId:     clientID,
			ConnectionId: connID,
		},
		Versions: []connectiontypes.Version{defaultVersion()},
	}

	selfClientState := &hosttest.MockClientState{Latest: ibctypes.NewHeight(2, 1)}
	host.SetSelfClientState(selfClientState)
	consensusHeight := ibctypes.NewHeight(1, 40)
	selfConsensusState := &hosttest.MockConsensusState{Timestamp: ibctypes.NewTimestamp(800), RootBytes: []byte("self-root")}
	host.SetSelfConsensusState(consensusHeight, selfConsensusState)

	msg := connection.MsgConnectionOpenAck{
		ConnectionId:             connID,
		CounterpartyConnectionId: counterpartyConnID,
		Version:                  defaultVersion(),
		ProofHeight:              ibctypes.NewHeight(1, 50),
		ProofTry:                 host24.Encode(expectedCounterparty),
		ClientState:              selfClientState,
		ConsensusHeight:          consensusHeight,
		Signer:                   "relayer",
	}
	msg.ProofClient = host24.Encode(msg.ClientState)
	msg.ProofConsensus = host24.Encode(selfConsensusState)

	require.NoError(t, connection.ExecuteConnOpenAck(context.Background(), host, msg))

	end, ok := host.ConnectionEnd(context.Background(), connID)
	require.True(t, ok)
	require.Equal(t, connectiontypes.Open, end.State)
	require.Equal(t, counterpartyConnID, end.Counterparty.ConnectionId)
	require.Len(t, host.Events(), 2)
}

func TestExecuteConnOpenConfirm(t *testing.T) {
	host, clientID := newClientOnlyFixture(t)
	connID := mustConnectionId(t, "connection-0")
	counterpartyClientID := mustClientId(t, "07-tendermint-7")
	counterpartyConnID := mustConnectionId(t, "connection-9")

	host.SeedConnection(connID, connectiontypes.ConnectionEnd{
		State:    connectiontypes.TryOpen,
		ClientId: clientID,
		Counterparty: connectiontypes.Counterparty{
			ClientId:     counterpartyClientID,
			ConnectionId: counterpartyConnID,
		},
		Versions: []connectiontypes.Version{defaultVersion()},
	})

	expectedCounterparty := connectiontypes.ConnectionEnd{
		State:    connectiontypes.Open,
		ClientId: counterpartyClientID,
		Counterparty: connectiontypes.Counterparty{
			ClientId:     clientID,
			ConnectionId: connID,
		},
		Versions: []connectiontypes.Version{defaultVersion()},
	}

	msg := connection.MsgConnectionOpenConfirm{
		ConnectionId: connID,
		ProofHeight:  ibctypes.NewHeight(1, 50),
		ProofAck:     host24.Encode(expectedCounterparty),
		Signer:       "relayer",
	}

	require.NoError(t, connection.ExecuteConnOpenConfirm(context.Background(), host, msg))

	end, ok := host.ConnectionEnd(context.Background(), connID)
	require.True(t, ok)
	require.Equal(t, connectiontypes.Open, end.State)
	require.Len(t, host.Events(), 2)
}

func mustClientId(t *testing.T, s string) ibctypes.ClientId {
	t.Helper()
	id, err := ibctypes.NewClientId(s)
	require.NoError(t, err)
	return id
}

func mustConnectionId(t *testing.T, s string) ibctypes.ConnectionId {
	t.Helper()
	id, err := ibctypes.NewConnectionId(s)
	require.NoError(t, err)
	return id
}
