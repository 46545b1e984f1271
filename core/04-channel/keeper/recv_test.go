package keeper_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	commitment "github.com/tokenize-x/ibc-core/core/23-commitment"
	channel "github.com/tokenize-x/ibc-core/core/04-channel"
	"github.com/tokenize-x/ibc-core/core/04-channel/keeper"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/core/hosttest"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

func recvFixtureMsg() (channel.MsgRecvPacket, channeltypes.Acknowledgement) {
	portID := mustPortId("transfer")
	packet := channeltypes.Packet{
		Sequence:      1,
		SourcePort:    portID,
		SourceChannel: mustChannelId("channel-7"),
		DestPort:      portID,
		DestChannel:   mustChannelId("channel-0"),
		Data:          []byte("payload"),
		TimeoutHeight: ibctypes.NewHeight(1, 200),
	}
	expected := commitment.PacketCommitment(packet.Data, packet.TimeoutHeight, packet.TimeoutTimestamp)
	ack, _ := channeltypes.NewResultAcknowledgement([]byte("ok"))
	return channel.MsgRecvPacket{
		Packet:          packet,
		ProofCommitment: expected[:],
		ProofHeight:     ibctypes.NewHeight(1, 50),
		Signer:          "relayer",
	}, ack
}

// TestExecuteRecvPacketIdempotency is the literal S2 scenario: the first
// unordered receive produces 4 events (receive pair + write-ack pair); a
// replayed receive of the same packet is a pure no-op — zero events, zero
// state delta.
func TestExecuteRecvPacketIdempotency(t *testing.T) {
	host := newOpenFixture(channeltypes.Unordered)
	msg, ack := recvFixtureMsg()
	router := hosttest.StaticRouter{Modules: map[ibctypes.PortId]channel.Module{
		msg.Packet.DestPort: hosttest.EchoModule{Ack: ack},
	}}

	require.NoError(t, keeper.ExecuteRecvPacket(context.Background(), host, router, msg))
	require.Len(t, host.Events(), 4)
	require.True(t, host.GetPacketReceipt(context.Background(), msg.Packet.DestPort, msg.Packet.DestChannel, msg.Packet.Sequence))

	eventsAfterFirst := len(host.Events())

	require.NoError(t, keeper.ExecuteRecvPacket(context.Background(), host, router, msg))
	require.Len(t, host.Events(), eventsAfterFirst)
}

func TestExecuteRecvPacketOrderedSequenceMismatchIsFatal(t *testing.T) {
	host := newOpenFixture(channeltypes.Ordered)
	msg, ack := recvFixtureMsg()
	msg.Packet.Sequence = 2 // next_sequence_recv is seeded at 1
	router := hosttest.StaticRouter{Modules: map[ibctypes.PortId]channel.Module{
		msg.Packet.DestPort: hosttest.EchoModule{Ack: ack},
	}}

	err := keeper.ExecuteRecvPacket(context.Background(), host, router, msg)
	require.ErrorIs(t, err, channeltypes.ErrInvalidPacketSequence)
}
