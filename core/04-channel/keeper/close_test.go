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
)

func TestExecuteChanCloseInit(t *testing.T) {
	host := newOpenFixture(channeltypes.Unordered)
	portID := mustPortId("transfer")
	chanID := mustChannelId("channel-0")
	router := hosttest.StaticRouter{Modules: map[ibctypes.PortId]channel.Module{portID: hosttest.EchoModule{}}}

	msg := channel.MsgChannelCloseInit{PortId: portID, ChannelId: chanID, Signer: "owner"}
	require.NoError(t, keeper.ExecuteChanCloseInit(context.Background(), host, router, hosttest.AllowAllAuthority{}, msg))

	end, ok := host.ChannelEnd(context.Background(), portID, chanID)
	require.True(t, ok)
	require.Equal(t, channeltypes.Closed, end.State)
	require.Len(t, host.Events(), 2)
}

func TestExecuteChanCloseInitRejectsAlreadyClosed(t *testing.T) {
	host := newOpenFixture(channeltypes.Unordered)
	portID := mustPortId("transfer")
	chanID := mustChannelId("channel-0")
	router := hosttest.StaticRouter{Modules: map[ibctypes.PortId]channel.Module{portID: hosttest.EchoModule{}}}

	end, _ := host.ChannelEnd(context.Background(), portID, chanID)
	end.State = channeltypes.Closed
	host.StoreChannel(context.Background(), portID, chanID, end)

	msg := channel.MsgChannelCloseInit{PortId: portID, ChannelId: chanID, Signer: "owner"}
	err := keeper.ExecuteChanCloseInit(context.Background(), host, router, hosttest.AllowAllAuthority{}, msg)
	require.ErrorIs(t, err, channeltypes.ErrInvalidChannelState)
}

func TestExecuteChanCloseConfirm(t *testing.T) {
	host := newOpenFixture(channeltypes.Unordered)
	portID := mustPortId("transfer")
	chanID := mustChannelId("channel-0")
	router := hosttest.StaticRouter{Modules: map[ibctypes.PortId]channel.Module{portID: hosttest.EchoModule{}}}

	end, _ := host.ChannelEnd(context.Background(), portID, chanID)
	expected := channeltypes.ChannelEnd{
		State:          channeltypes.Closed,
		Ordering:       end.Ordering,
		Counterparty:   channeltypes.Counterparty{PortId: portID, ChannelId: chanID},
		ConnectionHops: []ibctypes.ConnectionId{mustConnectionId("connection-7")},
		Version:        end.Version,
	}

	msg := channel.MsgChannelCloseConfirm{
		PortId:      portID,
		ChannelId:   chanID,
		ProofInit:   host24.Encode(expected),
		ProofHeight: ibctypes.NewHeight(1, 50),
		Signer:      "relayer",
	}

	require.NoError(t, keeper.ExecuteChanCloseConfirm(context.Background(), host, router, msg))

	got, ok := host.ChannelEnd(context.Background(), portID, chanID)
	require.True(t, ok)
	require.Equal(t, channeltypes.Closed, got.State)
	require.Len(t, host.Events(), 2)
}
