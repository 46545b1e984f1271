// Package exported defines the polymorphism boundary over light-client
// variants (ICS-02). The engine is generic over this interface set; it
// never switches on a concrete client type. New client variants register by
// implementing ClientState and being constructed behind a client id — the
// dispatch in core/02-client is total over whatever was stored.
package exported

import (
	"github.com/cosmos/gogoproto/proto"

	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// Status is the liveness state of a client, as seen by the handlers that
// consume it.
type Status int

const (
	// Active clients may be used for verification and update.
	Active Status = iota
	// Frozen clients were proven to have observed conflicting headers and
	// must not be used for verification.
	Frozen
	// Expired clients have not been updated within their trusting period.
	Expired
)

func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case Frozen:
		return "Frozen"
	case Expired:
		return "Expired"
	default:
		return "Unknown"
	}
}

// Path is an opaque, client-variant-specific encoding of a store path. Most
// variants accept the strings produced by core/24-host directly; variants
// that verify against a Merkle-prefixed store (the common case) wrap it in
// a MerklePath.
type Path interface {
	String() string
}

// StringPath is the trivial Path implementation used by every client
// variant that does not need a structured prefix.
type StringPath string

func (p StringPath) String() string { return string(p) }

// Proof is the opaque, client-variant-specific proof bytes produced by the
// counterparty chain. The engine never interprets these bytes itself; only
// the client variant behind verify_membership/verify_non_membership does.
type Proof []byte

// Root is the client-variant-specific commitment root (e.g. a Merkle root)
// recorded in a ConsensusState at a given height.
type Root interface {
	Bytes() []byte
}

// ClientMessage is the variant-specific update input consumed by
// ClientState.UpdateState (e.g. a block header, a misbehaviour evidence
// pair).
type ClientMessage interface {
	proto.Message
	ClientType() string
}

// ConsensusState is a pruned header: a commitment root and timestamp at a
// given height, as installed by a client update.
type ConsensusState interface {
	proto.Message
	ClientType() string
	GetRoot() Root
	GetTimestamp() ibctypes.Timestamp
}

// NewConsensusState pairs a freshly derived consensus state with the height
// it must be installed at, as returned by ClientState.UpdateState.
type NewConsensusState struct {
	Height ibctypes.Height
	State  ConsensusState
}

// ClientState is the uniform capability set every light-client variant
// exposes to the engine (ICS-02, spec.md §4.C).
type ClientState interface {
	proto.Message

	ClientType() string
	LatestHeight() ibctypes.Height
	Status(consensusState ConsensusState, now ibctypes.Timestamp) Status

	// VerifyMembership checks that `value` is present at `path` in the
	// commitment root recorded by consensusState, using proof.
	VerifyMembership(consensusState ConsensusState, proof Proof, path Path, value []byte) error

	// VerifyNonMembership checks that nothing is present at `path` in the
	// commitment root recorded by consensusState, using proof.
	VerifyNonMembership(consensusState ConsensusState, proof Proof, path Path) error

	// UpdateState validates clientMessage against the stored client and
	// latest consensus state and returns every new consensus state it
	// derives, keyed by the height it must be installed at. It does not
	// perform the storage itself — the caller (core/02-client) writes what
	// UpdateState returns via the ExecutionContext mutators.
	UpdateState(consensusState ConsensusState, clientMessage ClientMessage) ([]NewConsensusState, error)
}
