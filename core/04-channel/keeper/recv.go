package keeper

import (
	"context"

	client "github.com/tokenize-x/ibc-core/core/02-client"
	commitment "github.com/tokenize-x/ibc-core/core/23-commitment"
	host "github.com/tokenize-x/ibc-core/core/24-host"
	channel "github.com/tokenize-x/ibc-core/core/04-channel"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/core/exported"
)

// ValidateRecvPacket implements spec.md §4.F.2. The second return value is
// true when the packet has already been received on an unordered channel —
// in that case RecvPacket is a no-op rather than an error (spec.md §8 S2).
func ValidateRecvPacket(ctx context.Context, vctx channel.ValidationContext, msg channel.MsgRecvPacket) (channeltypes.ChannelEnd, bool, error) {
	if err := msg.Packet.ValidateBasic(); err != nil {
		return channeltypes.ChannelEnd{}, false, err
	}

	end, ok := vctx.ChannelEnd(ctx, msg.Packet.DestPort, msg.Packet.DestChannel)
	if !ok {
		return channeltypes.ChannelEnd{}, false, channeltypes.ErrChannelNotFound.Wrapf("port %s channel %s", msg.Packet.DestPort, msg.Packet.DestChannel)
	}
	if end.State != channeltypes.Open {
		return channeltypes.ChannelEnd{}, false, channeltypes.ErrInvalidChannelState.Wrapf("expected Open, got %s", end.State)
	}
	if end.Counterparty.PortId != msg.Packet.SourcePort || end.Counterparty.ChannelId != msg.Packet.SourceChannel {
		return channeltypes.ChannelEnd{}, false, channeltypes.ErrInvalidChannelState.Wrap("packet does not match channel counterparty")
	}

	conn, err := openConnection(ctx, vctx, end.ConnectionHops)
	if err != nil {
		return channeltypes.ChannelEnd{}, false, err
	}
	if err := client.RequireActive(ctx, vctx, conn.ClientId); err != nil {
		return channeltypes.ChannelEnd{}, false, err
	}

	if !msg.Packet.TimeoutHeight.IsZero() && vctx.HostHeight().GTE(msg.Packet.TimeoutHeight) {
		return channeltypes.ChannelEnd{}, false, channeltypes.ErrPacketTimeout.Wrapf(
			"host height %s at or past timeout height %s", vctx.HostHeight(), msg.Packet.TimeoutHeight)
	}
	if msg.Packet.TimeoutTimestamp.IsSet() && !vctx.HostTimestamp().Before(msg.Packet.TimeoutTimestamp) {
		return channeltypes.ChannelEnd{}, false, channeltypes.ErrPacketTimeout.Wrapf(
			"host timestamp at or past timeout timestamp %d", msg.Packet.TimeoutTimestamp)
	}

	consState, ok := vctx.ConsensusState(ctx, conn.ClientId, msg.ProofHeight)
	if !ok {
		return channeltypes.ChannelEnd{}, false, client.ErrConsensusStateNotFound.Wrapf("client %s height %s", conn.ClientId, msg.ProofHeight)
	}
	clientState, _ := vctx.ClientState(ctx, conn.ClientId)

	expected := commitment.PacketCommitment(msg.Packet.Data, msg.Packet.TimeoutHeight, msg.Packet.TimeoutTimestamp)
	path := host.PacketCommitmentPath(msg.Packet.SourcePort, msg.Packet.SourceChannel, msg.Packet.Sequence)
	if err := clientState.VerifyMembership(
		consState, msg.ProofCommitment, exported.StringPath(path), expected[:],
	); err != nil {
		return channeltypes.ChannelEnd{}, false, exported.ErrMembershipVerificationFailed.Wrap(err.Error())
	}

	if end.Ordering == channeltypes.Ordered {
		nextRecv, ok := vctx.GetNextSequenceRecv(ctx, msg.Packet.DestPort, msg.Packet.DestChannel)
		if !ok {
			return channeltypes.ChannelEnd{}, false, channeltypes.ErrHostInvariantViolated.Wrapf(
				"no next_sequence_recv counter for port %s channel %s", msg.Packet.DestPort, msg.Packet.DestChannel)
		}
		if msg.Packet.Sequence != nextRecv {
			return channeltypes.ChannelEnd{}, false, channeltypes.ErrInvalidPacketSequence.Wrapf(
				"expected sequence %d, got %d", nextRecv, msg.Packet.Sequence)
		}
		return end, false, nil
	}

	if vctx.GetPacketReceipt(ctx, msg.Packet.DestPort, msg.Packet.DestChannel, msg.Packet.Sequence) {
		return end, true, nil
	}
	return end, false, nil
}

// ExecuteRecvPacket records the receipt, invokes the application callback,
// and — unless the application defers its acknowledgement — writes and
// commits it in the same call. Already-received packets on an unordered
// channel are a pure no-op: zero state mutation, zero events (spec.md §8 S2).
func ExecuteRecvPacket(ctx context.Context, ectx channel.ExecutionContext, router channel.Router, msg channel.MsgRecvPacket) error {
	end, alreadyReceived, err := ValidateRecvPacket(ctx, ectx, msg)
	if err != nil {
		return err
	}
	if alreadyReceived {
		return nil
	}

	if end.Ordering == channeltypes.Ordered {
		ectx.SetNextSequenceRecv(ctx, msg.Packet.DestPort, msg.Packet.DestChannel, msg.Packet.Sequence+1)
	} else {
		ectx.SetPacketReceipt(ctx, msg.Packet.DestPort, msg.Packet.DestChannel, msg.Packet.Sequence)
	}

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryChannel))
	ectx.EmitEvent(ctx, channeltypes.EventReceivePacket(msg.Packet))

	mod, ok := router.Route(msg.Packet.DestPort)
	if !ok {
		return channeltypes.ErrChannelNotFound.Wrapf("no module bound to port %s", msg.Packet.DestPort)
	}
	ack, deferred, appErr := mod.OnRecvPacket(ctx, msg.Packet, msg.Signer)
	if appErr != nil {
		ack, err = channeltypes.NewErrorAcknowledgement(appErr.Error())
		if err != nil {
			return err
		}
		deferred = false
	}
	if deferred {
		return nil
	}

	ackCommitment, err := commitment.AckCommitment(ack.Bytes())
	if err != nil {
		return err
	}
	ectx.SetPacketAcknowledgement(ctx, msg.Packet.DestPort, msg.Packet.DestChannel, msg.Packet.Sequence, ackCommitment)

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryChannel))
	ectx.EmitEvent(ctx, channeltypes.EventWriteAcknowledgement(msg.Packet, ack))
	return nil
}
