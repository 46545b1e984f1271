package channel

import (
	"context"

	connection "github.com/tokenize-x/ibc-core/core/03-connection"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// ValidationContext is the full read-only surface channel and packet
// handlers need: every client and connection query (embedded) plus
// channel/sequence/commitment/receipt/ack storage lookups.
type ValidationContext interface {
	connection.ValidationContext

	ChannelEnd(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId) (channeltypes.ChannelEnd, bool)

	GetNextSequenceSend(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId) (ibctypes.Sequence, bool)
	GetNextSequenceRecv(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId) (ibctypes.Sequence, bool)
	GetNextSequenceAck(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId) (ibctypes.Sequence, bool)

	GetPacketCommitment(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence) ([32]byte, bool)
	GetPacketReceipt(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence) bool
	GetPacketAcknowledgement(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence) ([32]byte, bool)
}

// ExecutionContext is the mutating counterpart.
type ExecutionContext interface {
	ValidationContext
	connection.ExecutionContext

	StoreChannel(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, end channeltypes.ChannelEnd)
	// NextChannelIdentifier allocates a fresh channel id for
	// ChanOpenInit/Try, in the reference "channel-<n>" textual form.
	NextChannelIdentifier(ctx context.Context) ibctypes.ChannelId

	SetNextSequenceSend(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence)
	SetNextSequenceRecv(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence)
	SetNextSequenceAck(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence)

	SetPacketCommitment(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence, commitment [32]byte)
	DeletePacketCommitment(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence)
	SetPacketReceipt(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence)
	SetPacketAcknowledgement(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence, ackCommitment [32]byte)
}
