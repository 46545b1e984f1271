// Package host provides the canonical, byte-stable store-path encoder.
// These strings are the preimage for membership proofs and must never
// change shape — any edit here breaks cross-implementation interoperability.
package host

import (
	"fmt"

	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// ClientStatePath is the path under which a client's ClientState is stored.
func ClientStatePath(clientID ibctypes.ClientId) string {
	return fmt.Sprintf("clients/%s/clientState", clientID)
}

// ConsensusStatePath is the path under which a consensus state at a given
// height is stored for a client.
func ConsensusStatePath(clientID ibctypes.ClientId, height ibctypes.Height) string {
	return fmt.Sprintf("clients/%s/consensusStates/%d-%d", clientID, height.RevisionNumber, height.RevisionHeight)
}

// ConnectionPath is the path under which a ConnectionEnd is stored.
func ConnectionPath(connID ibctypes.ConnectionId) string {
	return fmt.Sprintf("connections/%s", connID)
}

// ChannelPath is the path under which a ChannelEnd is stored.
func ChannelPath(portID ibctypes.PortId, chanID ibctypes.ChannelId) string {
	return fmt.Sprintf("channelEnds/ports/%s/channels/%s", portID, chanID)
}

// NextSequenceSendPath is the path for the outbound sequence counter.
func NextSequenceSendPath(portID ibctypes.PortId, chanID ibctypes.ChannelId) string {
	return fmt.Sprintf("nextSequenceSend/ports/%s/channels/%s", portID, chanID)
}

// NextSequenceRecvPath is the path for the inbound sequence counter.
func NextSequenceRecvPath(portID ibctypes.PortId, chanID ibctypes.ChannelId) string {
	return fmt.Sprintf("nextSequenceRecv/ports/%s/channels/%s", portID, chanID)
}

// NextSequenceAckPath is the path for the ack sequence counter.
func NextSequenceAckPath(portID ibctypes.PortId, chanID ibctypes.ChannelId) string {
	return fmt.Sprintf("nextSequenceAck/ports/%s/channels/%s", portID, chanID)
}

// PacketCommitmentPath is the path under which a packet commitment is stored
// on the sending chain.
func PacketCommitmentPath(portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence) string {
	return fmt.Sprintf("commitments/ports/%s/channels/%s/sequences/%d", portID, chanID, seq)
}

// PacketReceiptPath is the path under which a replay-protection receipt is
// stored on the receiving chain (unordered channels only).
func PacketReceiptPath(portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence) string {
	return fmt.Sprintf("receipts/ports/%s/channels/%s/sequences/%d", portID, chanID, seq)
}

// PacketAcknowledgementPath is the path under which an acknowledgement
// commitment is stored on the receiving chain.
func PacketAcknowledgementPath(portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence) string {
	return fmt.Sprintf("acks/ports/%s/channels/%s/sequences/%d", portID, chanID, seq)
}
