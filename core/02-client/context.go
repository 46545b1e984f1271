package client

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/tokenize-x/ibc-core/core/exported"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// ValidationContext is the read-only surface the engine needs from the host
// to answer ICS-02 queries: "what does this chain currently believe about
// its clients and its own height/time". Every handler in 03-connection and
// 04-channel embeds this — a client is a dependency of every higher-level
// handshake or packet operation.
type ValidationContext interface {
	// HostHeight is the current height of the chain the engine is embedded
	// in (not a counterparty height).
	HostHeight() ibctypes.Height
	// HostTimestamp is the current wall-clock instant of the chain the
	// engine is embedded in.
	HostTimestamp() ibctypes.Timestamp

	ClientState(ctx context.Context, clientID ibctypes.ClientId) (exported.ClientState, bool)
	ConsensusState(ctx context.Context, clientID ibctypes.ClientId, height ibctypes.Height) (exported.ConsensusState, bool)
	// NextConsensusState returns the stored consensus state with the
	// smallest height strictly greater than height, or ok=false if none.
	NextConsensusState(ctx context.Context, clientID ibctypes.ClientId, height ibctypes.Height) (cs exported.ConsensusState, ok bool)
	// PrevConsensusState returns the stored consensus state with the
	// largest height strictly less than height, or ok=false if none.
	PrevConsensusState(ctx context.Context, clientID ibctypes.ClientId, height ibctypes.Height) (cs exported.ConsensusState, ok bool)
	// ClientUpdateMeta returns when (host time, host height) a given
	// consensus state height was installed.
	ClientUpdateMeta(ctx context.Context, clientID ibctypes.ClientId, height ibctypes.Height) (processedTime ibctypes.Timestamp, processedHeight ibctypes.Height, ok bool)
}

// ExecutionContext is the mutating counterpart of ValidationContext, plus
// the side-effect surface (events, logs) every handler in every domain
// package needs.
type ExecutionContext interface {
	ValidationContext

	StoreClientState(ctx context.Context, clientID ibctypes.ClientId, clientState exported.ClientState)
	StoreConsensusState(ctx context.Context, clientID ibctypes.ClientId, height ibctypes.Height, consensusState exported.ConsensusState)
	DeleteConsensusState(ctx context.Context, clientID ibctypes.ClientId, height ibctypes.Height)
	StoreUpdateMeta(ctx context.Context, clientID ibctypes.ClientId, height ibctypes.Height, processedTime ibctypes.Timestamp, processedHeight ibctypes.Height)
	DeleteUpdateMeta(ctx context.Context, clientID ibctypes.ClientId, height ibctypes.Height)

	EmitEvent(ctx context.Context, event sdk.Event)
	LogMessage(ctx context.Context, msg string, keyvals ...interface{})
}

// Status resolves the live status of a client by combining its stored
// ClientState with its latest ConsensusState, per the uniform capability set
// described in spec.md §4.C.
func Status(ctx context.Context, vctx ValidationContext, clientID ibctypes.ClientId) (exported.Status, error) {
	cs, ok := vctx.ClientState(ctx, clientID)
	if !ok {
		return 0, ErrClientStateNotFound.Wrapf("client %s", clientID)
	}
	consState, ok := vctx.ConsensusState(ctx, clientID, cs.LatestHeight())
	if !ok {
		return 0, ErrConsensusStateNotFound.Wrapf("client %s height %s", clientID, cs.LatestHeight())
	}
	return cs.Status(consState, vctx.HostTimestamp()), nil
}

// RequireActive is the precondition every handshake/packet handler applies
// before trusting a client for proof verification.
func RequireActive(ctx context.Context, vctx ValidationContext, clientID ibctypes.ClientId) error {
	status, err := Status(ctx, vctx, clientID)
	if err != nil {
		return err
	}
	switch status {
	case exported.Frozen:
		return ErrClientFrozen.Wrapf("client %s", clientID)
	case exported.Active:
		return nil
	default:
		return ErrClientNotActive.Wrapf("client %s status %s", clientID, status)
	}
}
