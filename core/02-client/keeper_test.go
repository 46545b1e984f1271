package client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	client "github.com/tokenize-x/ibc-core/core/02-client"
	"github.com/tokenize-x/ibc-core/core/hosttest"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

func newClientFixture(t *testing.T) (*hosttest.Context, ibctypes.ClientId) {
	t.Helper()
	host := hosttest.NewContext(ibctypes.NewHeight(1, 100), ibctypes.NewTimestamp(1_000))

	clientID, err := ibctypes.NewClientId("07-tendermint-0")
	require.NoError(t, err)

	consState := &hosttest.MockConsensusState{Timestamp: ibctypes.NewTimestamp(900), RootBytes: []byte("root-50")}
	host.SeedClient(clientID, &hosttest.MockClientState{Latest: ibctypes.NewHeight(1, 50)}, ibctypes.NewHeight(1, 50), consState)
	return host, clientID
}

func TestExecuteUpdateClientInstallsNewConsensusState(t *testing.T) {
	host, clientID := newClientFixture(t)

	header := &hosttest.MockHeader{
		Height:    ibctypes.NewHeight(1, 60),
		Timestamp: ibctypes.NewTimestamp(1_100),
		Root:      []byte("root-60"),
	}
	msg := client.MsgUpdateClient{ClientId: clientID, ClientMessage: header, Signer: "relayer"}

	require.NoError(t, client.ExecuteUpdateClient(context.Background(), host, msg))

	consState, ok := host.ConsensusState(context.Background(), clientID, ibctypes.NewHeight(1, 60))
	require.True(t, ok)
	require.Equal(t, ibctypes.NewTimestamp(1_100), consState.GetTimestamp())

	clientState, ok := host.ClientState(context.Background(), clientID)
	require.True(t, ok)
	require.Equal(t, ibctypes.NewHeight(1, 60), clientState.LatestHeight())

	events := host.Events()
	require.Len(t, events, 2)
	require.Equal(t, "message", events[0].Type)
	require.Equal(t, client.EventTypeUpdateClient, events[1].Type)
}

func TestValidateUpdateClientRejectsFrozenClient(t *testing.T) {
	host, clientID := newClientFixture(t)
	frozen, _ := host.ClientState(context.Background(), clientID)
	frozen.(*hosttest.MockClientState).Frozen = true
	host.StoreClientState(context.Background(), clientID, frozen)

	header := &hosttest.MockHeader{Height: ibctypes.NewHeight(1, 60), Timestamp: ibctypes.NewTimestamp(1_100), Root: []byte("root-60")}
	msg := client.MsgUpdateClient{ClientId: clientID, ClientMessage: header, Signer: "relayer"}

	_, err := client.ValidateUpdateClient(context.Background(), host, msg)
	require.ErrorIs(t, err, client.ErrClientFrozen)
}

func TestValidateUpdateClientRejectsNilMessage(t *testing.T) {
	host, clientID := newClientFixture(t)
	msg := client.MsgUpdateClient{ClientId: clientID, ClientMessage: nil, Signer: "relayer"}

	_, err := client.ValidateUpdateClient(context.Background(), host, msg)
	require.ErrorIs(t, err, client.ErrHeaderVerificationFailure)
}
