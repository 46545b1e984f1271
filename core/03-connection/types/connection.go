// Package types holds the ICS-03 connection-end data model.
package types

import (
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// State is the connection handshake state, monotone except for the
// Uninitialized zero value.
type State int

const (
	Uninitialized State = iota
	Init
	TryOpen
	Open
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
	default:
		return "STATE_UNKNOWN"
	}
}

// MerklePrefix is the counterparty's key-space prefix, used to form the
// full path a membership proof is checked against.
type MerklePrefix struct {
	KeyPrefix []byte
}

// Counterparty identifies the connection end on the other chain.
type Counterparty struct {
	ClientId     ibctypes.ClientId
	ConnectionId ibctypes.ConnectionId // empty until the counterparty has chosen one
	Prefix       MerklePrefix
}

// Version is a connection feature-set negotiated during handshake. Real
// deployments use "1" with a fixed feature list; the engine treats the
// identifier and feature list opaquely beyond intersection-matching.
type Version struct {
	Identifier string
	Features   []string
}

// ConnectionEnd is one chain's view of a connection to a counterparty chain,
// per spec.md §3.
type ConnectionEnd struct {
	State        State
	ClientId     ibctypes.ClientId
	Counterparty Counterparty
	// Versions holds the proposed set during handshake; exactly one after
	// State == Open.
	Versions    []Version
	DelayPeriod uint64
}

// HasVersion reports whether v is present (by Identifier) in the connection
// end's version list.
func (c ConnectionEnd) HasVersion(v Version) bool {
	for _, cv := range c.Versions {
		if cv.Identifier == v.Identifier {
			return true
		}
	}
	return false
}
