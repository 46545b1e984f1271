// Package types holds the ICS-04 channel-end and packet data model.
package types

import (
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// State is the channel handshake/lifecycle state.
type State int

const (
	Uninitialized State = iota
	Init
	TryOpen
	Open
	Closed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "STATE_UNINITIALIZED_UNSPECIFIED"
	case Init:
		return "STATE_INIT"
	case TryOpen:
		return "STATE_TRYOPEN"
	case Open:
		return "STATE_OPEN"
	case Closed:
		return "STATE_CLOSED"
	default:
		return "STATE_UNKNOWN"
	}
}

// Ordering is the packet-delivery discipline a channel enforces.
type Ordering int

const (
	Unordered Ordering = iota
	Ordered
)

func (o Ordering) String() string {
	if o == Ordered {
		return "ORDER_ORDERED"
	}
	return "ORDER_UNORDERED"
}

// Counterparty identifies the channel end on the other chain.
type Counterparty struct {
	PortId    ibctypes.PortId
	ChannelId ibctypes.ChannelId // empty until the counterparty has chosen one
}

// ChannelEnd is one chain's view of a channel to a counterparty chain, per
// spec.md §3.
type ChannelEnd struct {
	State          State
	Ordering       Ordering
	Counterparty   Counterparty
	ConnectionHops []ibctypes.ConnectionId
	Version        string
}
