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

// ValidateAcknowledgePacket implements spec.md §4.F.3. The second return
// value is true when the source commitment has already been removed —
// AcknowledgePacket is then a no-op rather than an error, mirroring
// RecvPacket's replay idempotency.
func ValidateAcknowledgePacket(ctx context.Context, vctx channel.ValidationContext, msg channel.MsgAcknowledgement) (channeltypes.ChannelEnd, bool, error) {
	if err := msg.Packet.ValidateBasic(); err != nil {
		return channeltypes.ChannelEnd{}, false, err
	}

	end, ok := vctx.ChannelEnd(ctx, msg.Packet.SourcePort, msg.Packet.SourceChannel)
	if !ok {
		return channeltypes.ChannelEnd{}, false, channeltypes.ErrChannelNotFound.Wrapf("port %s channel %s", msg.Packet.SourcePort, msg.Packet.SourceChannel)
	}
	if end.State != channeltypes.Open && end.State != channeltypes.Closed {
		return channeltypes.ChannelEnd{}, false, channeltypes.ErrInvalidChannelState.Wrapf("expected Open or Closed, got %s", end.State)
	}

	storedCommitment, ok := vctx.GetPacketCommitment(ctx, msg.Packet.SourcePort, msg.Packet.SourceChannel, msg.Packet.Sequence)
	if !ok {
		return end, true, nil
	}

	expected := commitment.PacketCommitment(msg.Packet.Data, msg.Packet.TimeoutHeight, msg.Packet.TimeoutTimestamp)
	if storedCommitment != expected {
		return channeltypes.ChannelEnd{}, false, channeltypes.ErrPacketCommitmentMismatch.Wrapf(
			"port %s channel %s sequence %d", msg.Packet.SourcePort, msg.Packet.SourceChannel, msg.Packet.Sequence)
	}

	conn, err := openConnection(ctx, vctx, end.ConnectionHops)
	if err != nil {
		return channeltypes.ChannelEnd{}, false, err
	}
	if err := client.RequireActive(ctx, vctx, conn.ClientId); err != nil {
		return channeltypes.ChannelEnd{}, false, err
	}

	if end.Ordering == channeltypes.Ordered {
		nextAck, ok := vctx.GetNextSequenceAck(ctx, msg.Packet.SourcePort, msg.Packet.SourceChannel)
		if !ok {
			return channeltypes.ChannelEnd{}, false, channeltypes.ErrHostInvariantViolated.Wrapf(
				"no next_sequence_ack counter for port %s channel %s", msg.Packet.SourcePort, msg.Packet.SourceChannel)
		}
		if msg.Packet.Sequence != nextAck {
			return channeltypes.ChannelEnd{}, false, channeltypes.ErrInvalidPacketSequence.Wrapf(
				"expected sequence %d, got %d", nextAck, msg.Packet.Sequence)
		}
	}

	consState, ok := vctx.ConsensusState(ctx, conn.ClientId, msg.ProofHeight)
	if !ok {
		return channeltypes.ChannelEnd{}, false, client.ErrConsensusStateNotFound.Wrapf("client %s height %s", conn.ClientId, msg.ProofHeight)
	}
	clientState, _ := vctx.ClientState(ctx, conn.ClientId)

	ackCommitment, err := commitment.AckCommitment(msg.Acknowledgement.Bytes())
	if err != nil {
		return channeltypes.ChannelEnd{}, false, err
	}
	path := host.PacketAcknowledgementPath(msg.Packet.DestPort, msg.Packet.DestChannel, msg.Packet.Sequence)
	if err := clientState.VerifyMembership(
		consState, msg.ProofAcked, exported.StringPath(path), ackCommitment[:],
	); err != nil {
		return channeltypes.ChannelEnd{}, false, exported.ErrMembershipVerificationFailed.Wrap(err.Error())
	}

	return end, false, nil
}

// ExecuteAcknowledgePacket deletes the source commitment, advances the ack
// sequence counter on ordered channels, and invokes the application
// callback. Already-acknowledged packets are a pure no-op.
func ExecuteAcknowledgePacket(ctx context.Context, ectx channel.ExecutionContext, router channel.Router, msg channel.MsgAcknowledgement) error {
	end, alreadyAcked, err := ValidateAcknowledgePacket(ctx, ectx, msg)
	if err != nil {
		return err
	}
	if alreadyAcked {
		return nil
	}

	ectx.DeletePacketCommitment(ctx, msg.Packet.SourcePort, msg.Packet.SourceChannel, msg.Packet.Sequence)
	if end.Ordering == channeltypes.Ordered {
		ectx.SetNextSequenceAck(ctx, msg.Packet.SourcePort, msg.Packet.SourceChannel, msg.Packet.Sequence+1)
	}

	mod, ok := router.Route(msg.Packet.SourcePort)
	if !ok {
		return channeltypes.ErrChannelNotFound.Wrapf("no module bound to port %s", msg.Packet.SourcePort)
	}
	if err := mod.OnAcknowledgementPacket(ctx, msg.Packet, msg.Acknowledgement, msg.Signer); err != nil {
		return err
	}

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryChannel))
	ectx.EmitEvent(ctx, channeltypes.EventAcknowledgePacket(msg.Packet))
	return nil
}
