package connection

import (
	"context"

	client "github.com/tokenize-x/ibc-core/core/02-client"
	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/core/exported"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// ValidationContext is the read-only surface ICS-03 handlers need: every
// client query (embedded) plus connection-end storage lookups.
type ValidationContext interface {
	client.ValidationContext

	ConnectionEnd(ctx context.Context, connID ibctypes.ConnectionId) (connectiontypes.ConnectionEnd, bool)
	SupportedVersions() []connectiontypes.Version

	// SelfClientState and SelfConsensusState let ConnOpenTry/Ack verify the
	// counterparty's stored view of THIS chain's client and consensus
	// state, per spec.md §4.D.
	SelfClientState(ctx context.Context) exported.ClientState
	SelfConsensusState(ctx context.Context, height ibctypes.Height) (exported.ConsensusState, bool)
}

// ExecutionContext is the mutating counterpart.
type ExecutionContext interface {
	ValidationContext
	client.ExecutionContext

	StoreConnection(ctx context.Context, connID ibctypes.ConnectionId, end connectiontypes.ConnectionEnd)
	// NextConnectionIdentifier allocates a fresh connection id for
	// ConnOpenInit/Try, in the reference "connection-<n>" textual form.
	NextConnectionIdentifier(ctx context.Context) ibctypes.ConnectionId
}
