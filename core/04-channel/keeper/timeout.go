package keeper

import (
	"context"

	client "github.com/tokenize-x/ibc-core/core/02-client"
	commitment "github.com/tokenize-x/ibc-core/core/23-commitment"
	host "github.com/tokenize-x/ibc-core/core/24-host"
	channel "github.com/tokenize-x/ibc-core/core/04-channel"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/core/exported"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// ValidateTimeoutPacket implements spec.md §4.F.4. The second return value
// is true when the source commitment has already been removed — Timeout is
// then a no-op rather than an error (spec.md §8 S5).
func ValidateTimeoutPacket(ctx context.Context, vctx channel.ValidationContext, msg channel.MsgTimeout) (channeltypes.ChannelEnd, bool, error) {
	end, storedCommitment, alreadyGone, err := loadForTimeout(ctx, vctx, msg.Packet)
	if err != nil || alreadyGone {
		return end, alreadyGone, err
	}

	conn, err := openConnection(ctx, vctx, end.ConnectionHops)
	if err != nil {
		return channeltypes.ChannelEnd{}, false, err
	}
	if err := client.RequireActive(ctx, vctx, conn.ClientId); err != nil {
		return channeltypes.ChannelEnd{}, false, err
	}
	consState, ok := vctx.ConsensusState(ctx, conn.ClientId, msg.ProofHeight)
	if !ok {
		return channeltypes.ChannelEnd{}, false, client.ErrConsensusStateNotFound.Wrapf("client %s height %s", conn.ClientId, msg.ProofHeight)
	}
	clientState, _ := vctx.ClientState(ctx, conn.ClientId)

	deadlinePassed := (!msg.Packet.TimeoutHeight.IsZero() && msg.ProofHeight.GTE(msg.Packet.TimeoutHeight)) ||
		(msg.Packet.TimeoutTimestamp.IsSet() && !consState.GetTimestamp().Before(msg.Packet.TimeoutTimestamp))

	if end.Ordering == channeltypes.Ordered {
		if msg.NextSequenceRecv <= msg.Packet.Sequence && !deadlinePassed {
			return channeltypes.ChannelEnd{}, false, channeltypes.ErrPacketTimeoutNotReached.Wrapf(
				"sequence %d not yet past by counterparty (next_sequence_recv %d) and deadline not reached", msg.Packet.Sequence, msg.NextSequenceRecv)
		}
		path := host.NextSequenceRecvPath(msg.Packet.DestPort, msg.Packet.DestChannel)
		if err := clientState.VerifyMembership(
			consState, msg.ProofUnreceived, exported.StringPath(path), host.Encode(msg.NextSequenceRecv),
		); err != nil {
			return channeltypes.ChannelEnd{}, false, exported.ErrMembershipVerificationFailed.Wrap(err.Error())
		}
	} else {
		if !deadlinePassed {
			return channeltypes.ChannelEnd{}, false, channeltypes.ErrPacketTimeoutNotReached.Wrapf(
				"neither timeout height %s nor timeout timestamp %d reached at proof height %s", msg.Packet.TimeoutHeight, msg.Packet.TimeoutTimestamp, msg.ProofHeight)
		}
		path := host.PacketReceiptPath(msg.Packet.DestPort, msg.Packet.DestChannel, msg.Packet.Sequence)
		if err := clientState.VerifyNonMembership(consState, msg.ProofUnreceived, exported.StringPath(path)); err != nil {
			return channeltypes.ChannelEnd{}, false, exported.ErrNonMembershipVerificationFailed.Wrap(err.Error())
		}
	}

	_ = storedCommitment
	return end, false, nil
}

// ExecuteTimeoutPacket deletes the source commitment, invokes the
// application callback, and — on an ordered channel — closes the channel
// locally, since an ordered channel cannot skip a sequence and continue
// (spec.md §4.F.4, §8 S3). Already-timed-out packets are a pure no-op.
func ExecuteTimeoutPacket(ctx context.Context, ectx channel.ExecutionContext, router channel.Router, msg channel.MsgTimeout) error {
	end, alreadyGone, err := ValidateTimeoutPacket(ctx, ectx, msg)
	if err != nil {
		return err
	}
	if alreadyGone {
		return nil
	}
	return finishTimeout(ctx, ectx, router, end, msg.Packet, msg.Signer)
}

// ValidateTimeoutOnClosePacket implements spec.md §4.F.5: like Timeout, but
// the deadline check is replaced by a membership proof that the
// counterparty channel end is already Closed.
func ValidateTimeoutOnClosePacket(ctx context.Context, vctx channel.ValidationContext, msg channel.MsgTimeoutOnClose) (channeltypes.ChannelEnd, bool, error) {
	end, storedCommitment, alreadyGone, err := loadForTimeout(ctx, vctx, msg.Packet)
	if err != nil || alreadyGone {
		return end, alreadyGone, err
	}

	conn, err := openConnection(ctx, vctx, end.ConnectionHops)
	if err != nil {
		return channeltypes.ChannelEnd{}, false, err
	}
	consState, ok := vctx.ConsensusState(ctx, conn.ClientId, msg.ProofHeight)
	if !ok {
		return channeltypes.ChannelEnd{}, false, client.ErrConsensusStateNotFound.Wrapf("client %s height %s", conn.ClientId, msg.ProofHeight)
	}
	clientState, _ := vctx.ClientState(ctx, conn.ClientId)

	expectedCounterparty := channeltypes.ChannelEnd{
		State:    channeltypes.Closed,
		Ordering: end.Ordering,
		Counterparty: channeltypes.Counterparty{
			PortId:    msg.Packet.SourcePort,
			ChannelId: msg.Packet.SourceChannel,
		},
		ConnectionHops: []ibctypes.ConnectionId{conn.Counterparty.ConnectionId},
		Version:        end.Version,
	}
	closePath := host.ChannelPath(msg.Packet.DestPort, msg.Packet.DestChannel)
	if err := clientState.VerifyMembership(
		consState, msg.ProofClose, exported.StringPath(closePath), host.Encode(expectedCounterparty),
	); err != nil {
		return channeltypes.ChannelEnd{}, false, exported.ErrMembershipVerificationFailed.Wrap(err.Error())
	}

	if end.Ordering == channeltypes.Ordered {
		path := host.NextSequenceRecvPath(msg.Packet.DestPort, msg.Packet.DestChannel)
		if err := clientState.VerifyMembership(
			consState, msg.ProofUnreceived, exported.StringPath(path), host.Encode(msg.NextSequenceRecv),
		); err != nil {
			return channeltypes.ChannelEnd{}, false, exported.ErrMembershipVerificationFailed.Wrap(err.Error())
		}
	} else {
		path := host.PacketReceiptPath(msg.Packet.DestPort, msg.Packet.DestChannel, msg.Packet.Sequence)
		if err := clientState.VerifyNonMembership(consState, msg.ProofUnreceived, exported.StringPath(path)); err != nil {
			return channeltypes.ChannelEnd{}, false, exported.ErrNonMembershipVerificationFailed.Wrap(err.Error())
		}
	}

	_ = storedCommitment
	return end, false, nil
}

// ExecuteTimeoutOnClosePacket mirrors ExecuteTimeoutPacket: it deletes the
// commitment and calls the module, and closes the channel locally only when
// the channel is ordered.
func ExecuteTimeoutOnClosePacket(ctx context.Context, ectx channel.ExecutionContext, router channel.Router, msg channel.MsgTimeoutOnClose) error {
	end, alreadyGone, err := ValidateTimeoutOnClosePacket(ctx, ectx, msg)
	if err != nil {
		return err
	}
	if alreadyGone {
		return nil
	}
	return finishTimeout(ctx, ectx, router, end, msg.Packet, msg.Signer)
}

func loadForTimeout(ctx context.Context, vctx channel.ValidationContext, packet channeltypes.Packet) (channeltypes.ChannelEnd, [32]byte, bool, error) {
	if err := packet.ValidateBasic(); err != nil {
		return channeltypes.ChannelEnd{}, [32]byte{}, false, err
	}
	end, ok := vctx.ChannelEnd(ctx, packet.SourcePort, packet.SourceChannel)
	if !ok {
		return channeltypes.ChannelEnd{}, [32]byte{}, false, channeltypes.ErrChannelNotFound.Wrapf("port %s channel %s", packet.SourcePort, packet.SourceChannel)
	}
	storedCommitment, ok := vctx.GetPacketCommitment(ctx, packet.SourcePort, packet.SourceChannel, packet.Sequence)
	if !ok {
		return end, [32]byte{}, true, nil
	}
	expected := commitment.PacketCommitment(packet.Data, packet.TimeoutHeight, packet.TimeoutTimestamp)
	if storedCommitment != expected {
		return channeltypes.ChannelEnd{}, [32]byte{}, false, channeltypes.ErrPacketCommitmentMismatch.Wrapf(
			"port %s channel %s sequence %d", packet.SourcePort, packet.SourceChannel, packet.Sequence)
	}
	return end, storedCommitment, false, nil
}

func finishTimeout(ctx context.Context, ectx channel.ExecutionContext, router channel.Router, end channeltypes.ChannelEnd, packet channeltypes.Packet, relayer string) error {
	ectx.DeletePacketCommitment(ctx, packet.SourcePort, packet.SourceChannel, packet.Sequence)

	mod, ok := router.Route(packet.SourcePort)
	if !ok {
		return channeltypes.ErrChannelNotFound.Wrapf("no module bound to port %s", packet.SourcePort)
	}
	if err := mod.OnTimeoutPacket(ctx, packet, relayer); err != nil {
		return err
	}

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryChannel))
	ectx.EmitEvent(ctx, channeltypes.EventTimeoutPacket(packet))

	if end.Ordering != channeltypes.Ordered {
		return nil
	}

	end.State = channeltypes.Closed
	ectx.StoreChannel(ctx, packet.SourcePort, packet.SourceChannel, end)

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryChannel))
	ectx.EmitEvent(ctx, channeltypes.EventChannelClosed(packet.SourcePort, packet.SourceChannel, end.Counterparty, end.ConnectionHops[0]))
	ectx.LogMessage(ctx, "channel closed by timeout", "port_id", packet.SourcePort, "channel_id", packet.SourceChannel, "sequence", packet.Sequence)
	return nil
}
