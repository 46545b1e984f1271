package keeper

import (
	"context"

	commitment "github.com/tokenize-x/ibc-core/core/23-commitment"
	client "github.com/tokenize-x/ibc-core/core/02-client"
	channel "github.com/tokenize-x/ibc-core/core/04-channel"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
)

// ValidateSendPacket implements spec.md §4.F.1's preconditions. SendPacket
// is invoked by an application module, not a relayed message, so there are
// no proofs to check — only local state and the counterparty client's
// freshness relative to the requested timeout.
func ValidateSendPacket(ctx context.Context, vctx channel.ValidationContext, msg channel.MsgSendPacket) (channeltypes.ChannelEnd, error) {
	if msg.TimeoutHeight.IsZero() && !msg.TimeoutTimestamp.IsSet() {
		return channeltypes.ChannelEnd{}, channeltypes.ErrMissingTimeout.Wrap(
			"at least one of timeout_height or timeout_timestamp must be set")
	}
	if len(msg.Data) == 0 {
		return channeltypes.ChannelEnd{}, channeltypes.ErrInvalidPacket.Wrap("data must be non-empty")
	}

	end, ok := vctx.ChannelEnd(ctx, msg.SourcePort, msg.SourceChannel)
	if !ok {
		return channeltypes.ChannelEnd{}, channeltypes.ErrChannelNotFound.Wrapf("port %s channel %s", msg.SourcePort, msg.SourceChannel)
	}
	if end.State == channeltypes.Closed {
		return channeltypes.ChannelEnd{}, channeltypes.ErrChannelClosed.Wrapf("port %s channel %s", msg.SourcePort, msg.SourceChannel)
	}
	if end.State != channeltypes.Open {
		return channeltypes.ChannelEnd{}, channeltypes.ErrInvalidChannelState.Wrapf("expected Open, got %s", end.State)
	}

	conn, err := openConnection(ctx, vctx, end.ConnectionHops)
	if err != nil {
		return channeltypes.ChannelEnd{}, err
	}
	if err := client.RequireActive(ctx, vctx, conn.ClientId); err != nil {
		return channeltypes.ChannelEnd{}, err
	}

	clientState, _ := vctx.ClientState(ctx, conn.ClientId)
	latestHeight := clientState.LatestHeight()
	consState, ok := vctx.ConsensusState(ctx, conn.ClientId, latestHeight)
	if !ok {
		return channeltypes.ChannelEnd{}, client.ErrConsensusStateNotFound.Wrapf("client %s height %s", conn.ClientId, latestHeight)
	}

	if !msg.TimeoutHeight.IsZero() && latestHeight.GTE(msg.TimeoutHeight) {
		return channeltypes.ChannelEnd{}, channeltypes.ErrPacketTimeout.Wrapf(
			"latest counterparty consensus height %s is not before timeout height %s", latestHeight, msg.TimeoutHeight)
	}
	if msg.TimeoutTimestamp.IsSet() && !consState.GetTimestamp().Before(msg.TimeoutTimestamp) {
		return channeltypes.ChannelEnd{}, channeltypes.ErrPacketTimeout.Wrapf(
			"latest counterparty consensus time is not before timeout timestamp %d", msg.TimeoutTimestamp)
	}

	return end, nil
}

// ExecuteSendPacket consumes and increments next_sequence_send, writes the
// packet commitment, and emits SendPacket (spec.md §4.F.1).
func ExecuteSendPacket(ctx context.Context, ectx channel.ExecutionContext, msg channel.MsgSendPacket) (channeltypes.Packet, error) {
	end, err := ValidateSendPacket(ctx, ectx, msg)
	if err != nil {
		return channeltypes.Packet{}, err
	}

	seq, ok := ectx.GetNextSequenceSend(ctx, msg.SourcePort, msg.SourceChannel)
	if !ok {
		return channeltypes.Packet{}, channeltypes.ErrHostInvariantViolated.Wrapf(
			"no next_sequence_send counter for port %s channel %s", msg.SourcePort, msg.SourceChannel)
	}

	packet := channeltypes.Packet{
		Sequence:         seq,
		SourcePort:       msg.SourcePort,
		SourceChannel:    msg.SourceChannel,
		DestPort:         end.Counterparty.PortId,
		DestChannel:      end.Counterparty.ChannelId,
		Data:             msg.Data,
		TimeoutHeight:    msg.TimeoutHeight,
		TimeoutTimestamp: msg.TimeoutTimestamp,
	}

	ectx.SetNextSequenceSend(ctx, msg.SourcePort, msg.SourceChannel, seq+1)
	ectx.SetPacketCommitment(ctx, msg.SourcePort, msg.SourceChannel, seq, commitment.PacketCommitment(msg.Data, msg.TimeoutHeight, msg.TimeoutTimestamp))

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryChannel))
	ectx.EmitEvent(ctx, channeltypes.EventSendPacket(packet))
	ectx.LogMessage(ctx, "sent packet", "port_id", msg.SourcePort, "channel_id", msg.SourceChannel, "sequence", seq)

	return packet, nil
}
