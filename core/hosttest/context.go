package hosttest

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/core/exported"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// HostHeight implements client.ValidationContext.
func (c *Context) HostHeight() ibctypes.Height {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hostHeight
}

// HostTimestamp implements client.ValidationContext.
func (c *Context) HostTimestamp() ibctypes.Timestamp {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hostTimestamp
}

// ClientState implements client.ValidationContext.
func (c *Context) ClientState(_ context.Context, clientID ibctypes.ClientId) (exported.ClientState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.clients[clientID]
	if !ok {
		return nil, false
	}
	return rec.state, true
}

// ConsensusState implements client.ValidationContext.
func (c *Context) ConsensusState(_ context.Context, clientID ibctypes.ClientId, height ibctypes.Height) (exported.ConsensusState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.clients[clientID]
	if !ok {
		return nil, false
	}
	cs, ok := rec.consensus[height]
	return cs, ok
}

// NextConsensusState implements client.ValidationContext.
func (c *Context) NextConsensusState(_ context.Context, clientID ibctypes.ClientId, height ibctypes.Height) (exported.ConsensusState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.clients[clientID]
	if !ok {
		return nil, false
	}
	for _, h := range sortedHeights(rec.consensus) {
		if h.Compare(height) > 0 {
			return rec.consensus[h], true
		}
	}
	return nil, false
}

// PrevConsensusState implements client.ValidationContext.
func (c *Context) PrevConsensusState(_ context.Context, clientID ibctypes.ClientId, height ibctypes.Height) (exported.ConsensusState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.clients[clientID]
	if !ok {
		return nil, false
	}
	heights := sortedHeights(rec.consensus)
	for i := len(heights) - 1; i >= 0; i-- {
		if heights[i].Compare(height) < 0 {
			return rec.consensus[heights[i]], true
		}
	}
	return nil, false
}

// ClientUpdateMeta implements client.ValidationContext.
func (c *Context) ClientUpdateMeta(_ context.Context, clientID ibctypes.ClientId, height ibctypes.Height) (ibctypes.Timestamp, ibctypes.Height, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.clients[clientID]
	if !ok {
		return ibctypes.ZeroTimestamp, ibctypes.ZeroHeight, false
	}
	meta, ok := rec.updateMeta[height]
	if !ok {
		return ibctypes.ZeroTimestamp, ibctypes.ZeroHeight, false
	}
	return meta.processedTime, meta.processedHeight, true
}

// StoreClientState implements client.ExecutionContext.
func (c *Context) StoreClientState(_ context.Context, clientID ibctypes.ClientId, state exported.ClientState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.clients[clientID]
	if !ok {
		rec = &clientRecord{consensus: make(map[ibctypes.Height]exported.ConsensusState), updateMeta: make(map[ibctypes.Height]updateMeta)}
		c.clients[clientID] = rec
	}
	rec.state = state
}

// StoreConsensusState implements client.ExecutionContext.
func (c *Context) StoreConsensusState(_ context.Context, clientID ibctypes.ClientId, height ibctypes.Height, state exported.ConsensusState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.clients[clientID]
	if !ok {
		rec = &clientRecord{consensus: make(map[ibctypes.Height]exported.ConsensusState), updateMeta: make(map[ibctypes.Height]updateMeta)}
		c.clients[clientID] = rec
	}
	rec.consensus[height] = state
}

// DeleteConsensusState implements client.ExecutionContext.
func (c *Context) DeleteConsensusState(_ context.Context, clientID ibctypes.ClientId, height ibctypes.Height) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rec, ok := c.clients[clientID]; ok {
		delete(rec.consensus, height)
	}
}

// StoreUpdateMeta implements client.ExecutionContext.
func (c *Context) StoreUpdateMeta(_ context.Context, clientID ibctypes.ClientId, height ibctypes.Height, processedTime ibctypes.Timestamp, processedHeight ibctypes.Height) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.clients[clientID]
	if !ok {
		rec = &clientRecord{consensus: make(map[ibctypes.Height]exported.ConsensusState), updateMeta: make(map[ibctypes.Height]updateMeta)}
		c.clients[clientID] = rec
	}
	rec.updateMeta[height] = updateMeta{processedTime: processedTime, processedHeight: processedHeight}
}

// DeleteUpdateMeta implements client.ExecutionContext.
func (c *Context) DeleteUpdateMeta(_ context.Context, clientID ibctypes.ClientId, height ibctypes.Height) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rec, ok := c.clients[clientID]; ok {
		delete(rec.updateMeta, height)
	}
}

// EmitEvent implements client.ExecutionContext. Dispatch's collector wraps
// this to also report events to the caller; here we just keep the host's
// own record, the way a real chain's event manager would.
func (c *Context) EmitEvent(_ context.Context, event sdk.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

// LogMessage implements client.ExecutionContext.
func (c *Context) LogMessage(_ context.Context, msg string, keyvals ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Info(msg, keyvals...)
	c.logs = append(c.logs, fmt.Sprintf("%s %v", msg, keyvals))
}

// ConnectionEnd implements connection.ValidationContext.
func (c *Context) ConnectionEnd(_ context.Context, connID ibctypes.ConnectionId) (connectiontypes.ConnectionEnd, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	end, ok := c.connections[connID]
	return end, ok
}

// SupportedVersions implements connection.ValidationContext.
func (c *Context) SupportedVersions() []connectiontypes.Version {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]connectiontypes.Version, len(c.supportedVersions))
	copy(out, c.supportedVersions)
	return out
}

// SelfClientState implements connection.ValidationContext.
func (c *Context) SelfClientState(_ context.Context) exported.ClientState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selfClientState
}

// SelfConsensusState implements connection.ValidationContext.
func (c *Context) SelfConsensusState(_ context.Context, height ibctypes.Height) (exported.ConsensusState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cs, ok := c.selfConsensusState[height]
	return cs, ok
}

// StoreConnection implements connection.ExecutionContext.
func (c *Context) StoreConnection(_ context.Context, connID ibctypes.ConnectionId, end connectiontypes.ConnectionEnd) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connections[connID] = end
}

// NextConnectionIdentifier implements connection.ExecutionContext.
func (c *Context) NextConnectionIdentifier(_ context.Context) ibctypes.ConnectionId {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := ibctypes.FormatConnectionId(c.nextConnectionSeq)
	c.nextConnectionSeq++
	return id
}

// ChannelEnd implements channel.ValidationContext.
func (c *Context) ChannelEnd(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId) (channeltypes.ChannelEnd, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ports, ok := c.channels[portID]
	if !ok {
		return channeltypes.ChannelEnd{}, false
	}
	end, ok := ports[chanID]
	return end, ok
}

// GetNextSequenceSend implements channel.ValidationContext.
func (c *Context) GetNextSequenceSend(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId) (ibctypes.Sequence, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	seqs, ok := c.sequenceCounterLocked(portID, chanID)
	if !ok {
		return 0, false
	}
	return seqs.send, true
}

// GetNextSequenceRecv implements channel.ValidationContext.
func (c *Context) GetNextSequenceRecv(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId) (ibctypes.Sequence, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	seqs, ok := c.sequenceCounterLocked(portID, chanID)
	if !ok {
		return 0, false
	}
	return seqs.recv, true
}

// GetNextSequenceAck implements channel.ValidationContext.
func (c *Context) GetNextSequenceAck(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId) (ibctypes.Sequence, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	seqs, ok := c.sequenceCounterLocked(portID, chanID)
	if !ok {
		return 0, false
	}
	return seqs.ack, true
}

func (c *Context) sequenceCounterLocked(portID ibctypes.PortId, chanID ibctypes.ChannelId) (*sequences, bool) {
	byChan, ok := c.sequenceCounters[portID]
	if !ok {
		return nil, false
	}
	seqs, ok := byChan[chanID]
	return seqs, ok
}

// GetPacketCommitment implements channel.ValidationContext.
func (c *Context) GetPacketCommitment(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence) ([32]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	byChan, ok := c.commitments[portID]
	if !ok {
		return [32]byte{}, false
	}
	v, ok := byChan[chanID][seq]
	return v, ok
}

// GetPacketReceipt implements channel.ValidationContext.
func (c *Context) GetPacketReceipt(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	byChan, ok := c.receipts[portID]
	if !ok {
		return false
	}
	return byChan[chanID][seq]
}

// GetPacketAcknowledgement implements channel.ValidationContext.
func (c *Context) GetPacketAcknowledgement(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence) ([32]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	byChan, ok := c.acknowledgements[portID]
	if !ok {
		return [32]byte{}, false
	}
	v, ok := byChan[chanID][seq]
	return v, ok
}

// StoreChannel implements channel.ExecutionContext.
func (c *Context) StoreChannel(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, end channeltypes.ChannelEnd) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureChannelMapsLocked(portID, chanID)
	if _, ok := c.sequenceCounters[portID][chanID]; !ok {
		c.sequenceCounters[portID][chanID] = &sequences{send: 1, recv: 1, ack: 1}
	}
	c.channels[portID][chanID] = end
}

// NextChannelIdentifier implements channel.ExecutionContext.
func (c *Context) NextChannelIdentifier(_ context.Context) ibctypes.ChannelId {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := ibctypes.FormatChannelId(c.nextChannelSeq)
	c.nextChannelSeq++
	return id
}

// SetNextSequenceSend implements channel.ExecutionContext.
func (c *Context) SetNextSequenceSend(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureChannelMapsLocked(portID, chanID)
	c.sequenceCounters[portID][chanID].send = seq
}

// SetNextSequenceRecv implements channel.ExecutionContext.
func (c *Context) SetNextSequenceRecv(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureChannelMapsLocked(portID, chanID)
	c.sequenceCounters[portID][chanID].recv = seq
}

// SetNextSequenceAck implements channel.ExecutionContext.
func (c *Context) SetNextSequenceAck(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureChannelMapsLocked(portID, chanID)
	c.sequenceCounters[portID][chanID].ack = seq
}

// SetPacketCommitment implements channel.ExecutionContext.
func (c *Context) SetPacketCommitment(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence, commitment [32]byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureChannelMapsLocked(portID, chanID)
	c.commitments[portID][chanID][seq] = commitment
}

// DeletePacketCommitment implements channel.ExecutionContext.
func (c *Context) DeletePacketCommitment(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if byChan, ok := c.commitments[portID]; ok {
		delete(byChan[chanID], seq)
	}
}

// SetPacketReceipt implements channel.ExecutionContext.
func (c *Context) SetPacketReceipt(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureChannelMapsLocked(portID, chanID)
	c.receipts[portID][chanID][seq] = true
}

// SetPacketAcknowledgement implements channel.ExecutionContext.
func (c *Context) SetPacketAcknowledgement(_ context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, seq ibctypes.Sequence, ackCommitment [32]byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureChannelMapsLocked(portID, chanID)
	c.acknowledgements[portID][chanID][seq] = ackCommitment
}
