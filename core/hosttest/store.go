// Package hosttest is an in-memory double of core.ValidationContext /
// core.ExecutionContext, grounded on original_source/ibc-testkit's
// MockContext (ibc_store guarded by a single lock, per-client and
// per-port/channel maps keyed by identifier) and the teacher's
// testutil/simapp convention of an in-memory app double built for tests
// only. Nothing under this package is reachable from production code.
package hosttest

import (
	"sort"
	"sync"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/core/exported"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

type clientRecord struct {
	state      exported.ClientState
	consensus  map[ibctypes.Height]exported.ConsensusState
	updateMeta map[ibctypes.Height]updateMeta
}

type updateMeta struct {
	processedTime   ibctypes.Timestamp
	processedHeight ibctypes.Height
}

type sequences struct {
	send, recv, ack ibctypes.Sequence
}

// Context is a single-process, map-backed host. It is safe for concurrent
// use by tests that exercise the engine from multiple goroutines, though
// none of the scenario tests in this module require that.
type Context struct {
	mu sync.Mutex

	logger log.Logger

	hostHeight    ibctypes.Height
	hostTimestamp ibctypes.Timestamp

	selfClientState    exported.ClientState
	selfConsensusState map[ibctypes.Height]exported.ConsensusState
	supportedVersions  []connectiontypes.Version

	clients     map[ibctypes.ClientId]*clientRecord
	connections map[ibctypes.ConnectionId]connectiontypes.ConnectionEnd
	channels    map[ibctypes.PortId]map[ibctypes.ChannelId]channeltypes.ChannelEnd

	sequenceCounters map[ibctypes.PortId]map[ibctypes.ChannelId]*sequences
	commitments      map[ibctypes.PortId]map[ibctypes.ChannelId]map[ibctypes.Sequence][32]byte
	receipts         map[ibctypes.PortId]map[ibctypes.ChannelId]map[ibctypes.Sequence]bool
	acknowledgements map[ibctypes.PortId]map[ibctypes.ChannelId]map[ibctypes.Sequence][32]byte

	nextConnectionSeq uint64
	nextChannelSeq    uint64

	events []sdk.Event
	logs   []string
}

// NewContext builds an empty host at the given height/timestamp, with no
// clients, connections, or channels registered. Callers populate it with
// the Seed* helpers below.
func NewContext(hostHeight ibctypes.Height, hostTimestamp ibctypes.Timestamp) *Context {
	return &Context{
		logger:             log.NewNopLogger(),
		hostHeight:         hostHeight,
		hostTimestamp:      hostTimestamp,
		selfConsensusState: make(map[ibctypes.Height]exported.ConsensusState),
		supportedVersions:  []connectiontypes.Version{{Identifier: "1", Features: []string{"ORDER_ORDERED", "ORDER_UNORDERED"}}},
		clients:            make(map[ibctypes.ClientId]*clientRecord),
		connections:        make(map[ibctypes.ConnectionId]connectiontypes.ConnectionEnd),
		channels:           make(map[ibctypes.PortId]map[ibctypes.ChannelId]channeltypes.ChannelEnd),
		sequenceCounters:   make(map[ibctypes.PortId]map[ibctypes.ChannelId]*sequences),
		commitments:        make(map[ibctypes.PortId]map[ibctypes.ChannelId]map[ibctypes.Sequence][32]byte),
		receipts:           make(map[ibctypes.PortId]map[ibctypes.ChannelId]map[ibctypes.Sequence]bool),
		acknowledgements:   make(map[ibctypes.PortId]map[ibctypes.ChannelId]map[ibctypes.Sequence][32]byte),
	}
}

// WithLogger swaps the context's logger, the way the teacher's
// WithCustomLogger option swaps simapp's, for tests that want to assert on
// or inspect log output instead of discarding it.
func (c *Context) WithLogger(logger log.Logger) *Context {
	c.logger = logger
	return c
}

// SetHostHeight / SetHostTimestamp let a test advance the local chain's own
// clock, independent of any client's consensus state.
func (c *Context) SetHostHeight(h ibctypes.Height)         { c.mu.Lock(); defer c.mu.Unlock(); c.hostHeight = h }
func (c *Context) SetHostTimestamp(t ibctypes.Timestamp)   { c.mu.Lock(); defer c.mu.Unlock(); c.hostTimestamp = t }
func (c *Context) SetSelfClientState(cs exported.ClientState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selfClientState = cs
}

// SetSelfConsensusState seeds the host's own consensus state at a given
// height, the value a counterparty's ConnOpenTry/Ack proofClient/proofConsensus
// are checked against.
func (c *Context) SetSelfConsensusState(height ibctypes.Height, cs exported.ConsensusState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selfConsensusState[height] = cs
}

// SeedClient installs a client with its genesis consensus state, as a test
// fixture would via a prior MsgCreateClient this engine does not implement
// (client creation is out of scope per spec.md §4.C).
func (c *Context) SeedClient(clientID ibctypes.ClientId, state exported.ClientState, height ibctypes.Height, consensus exported.ConsensusState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clients[clientID] = &clientRecord{
		state:      state,
		consensus:  map[ibctypes.Height]exported.ConsensusState{height: consensus},
		updateMeta: map[ibctypes.Height]updateMeta{height: {processedTime: c.hostTimestamp, processedHeight: c.hostHeight}},
	}
}

// SeedConnection installs a ConnectionEnd under connID, initializing its
// channel sequence/commitment maps lazily as channels are opened.
func (c *Context) SeedConnection(connID ibctypes.ConnectionId, end connectiontypes.ConnectionEnd) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connections[connID] = end
}

// SeedChannel installs a ChannelEnd plus its three sequence counters at 1
// (the reference engine's initial value) and registers it for commitment,
// receipt, and acknowledgement storage.
func (c *Context) SeedChannel(portID ibctypes.PortId, chanID ibctypes.ChannelId, end channeltypes.ChannelEnd) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureChannelMapsLocked(portID, chanID)
	c.channels[portID][chanID] = end
	c.sequenceCounters[portID][chanID] = &sequences{send: 1, recv: 1, ack: 1}
}

func (c *Context) ensureChannelMapsLocked(portID ibctypes.PortId, chanID ibctypes.ChannelId) {
	if c.channels[portID] == nil {
		c.channels[portID] = make(map[ibctypes.ChannelId]channeltypes.ChannelEnd)
	}
	if c.sequenceCounters[portID] == nil {
		c.sequenceCounters[portID] = make(map[ibctypes.ChannelId]*sequences)
	}
	if c.commitments[portID] == nil {
		c.commitments[portID] = make(map[ibctypes.ChannelId]map[ibctypes.Sequence][32]byte)
	}
	if c.commitments[portID][chanID] == nil {
		c.commitments[portID][chanID] = make(map[ibctypes.Sequence][32]byte)
	}
	if c.receipts[portID] == nil {
		c.receipts[portID] = make(map[ibctypes.ChannelId]map[ibctypes.Sequence]bool)
	}
	if c.receipts[portID][chanID] == nil {
		c.receipts[portID][chanID] = make(map[ibctypes.Sequence]bool)
	}
	if c.acknowledgements[portID] == nil {
		c.acknowledgements[portID] = make(map[ibctypes.ChannelId]map[ibctypes.Sequence][32]byte)
	}
	if c.acknowledgements[portID][chanID] == nil {
		c.acknowledgements[portID][chanID] = make(map[ibctypes.Sequence][32]byte)
	}
}

// Events returns every event recorded via EmitEvent, in emission order.
func (c *Context) Events() []sdk.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]sdk.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Logs returns every message recorded via LogMessage, in emission order.
func (c *Context) Logs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.logs))
	copy(out, c.logs)
	return out
}

// sortedHeights returns the keys of m in ascending Height order.
func sortedHeights(m map[ibctypes.Height]exported.ConsensusState) []ibctypes.Height {
	out := make([]ibctypes.Height, 0, len(m))
	for h := range m {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out
}
