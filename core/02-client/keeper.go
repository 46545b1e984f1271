package client

import (
	"context"

	"github.com/tokenize-x/ibc-core/core/exported"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// ValidateUpdateClient performs every precondition check for MsgUpdateClient
// without mutating host state: client exists, is Active, and the supplied
// client message verifies against the client's own variant logic. Safe to
// call from a dry-run / mempool-admission path (spec.md §4.G).
func ValidateUpdateClient(ctx context.Context, vctx ValidationContext, msg MsgUpdateClient) ([]exported.NewConsensusState, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := RequireActive(ctx, vctx, msg.ClientId); err != nil {
		return nil, err
	}

	clientState, ok := vctx.ClientState(ctx, msg.ClientId)
	if !ok {
		return nil, ErrClientStateNotFound.Wrapf("client %s", msg.ClientId)
	}
	consState, ok := vctx.ConsensusState(ctx, msg.ClientId, clientState.LatestHeight())
	if !ok {
		return nil, ErrConsensusStateNotFound.Wrapf("client %s height %s", msg.ClientId, clientState.LatestHeight())
	}

	newStates, err := clientState.UpdateState(consState, msg.ClientMessage)
	if err != nil {
		return nil, ErrHeaderVerificationFailure.Wrap(err.Error())
	}
	return newStates, nil
}

// ExecuteUpdateClient repeats validation inside the same transaction, then
// installs every new consensus state UpdateState derives and records its
// processed-at metadata, emitting UpdateClient events in order.
func ExecuteUpdateClient(ctx context.Context, ectx ExecutionContext, msg MsgUpdateClient) error {
	newStates, err := ValidateUpdateClient(ctx, ectx, msg)
	if err != nil {
		return err
	}

	clientState, _ := ectx.ClientState(ctx, msg.ClientId)

	heights := make([]ibctypes.Height, len(newStates))
	for i, ncs := range newStates {
		ectx.StoreConsensusState(ctx, msg.ClientId, ncs.Height, ncs.State)
		ectx.StoreUpdateMeta(ctx, msg.ClientId, ncs.Height, ectx.HostTimestamp(), ectx.HostHeight())
		heights[i] = ncs.Height
	}
	// clientState tracks its own LatestHeight internally; UpdateState has
	// already advanced it in place for variants with pointer receivers.
	ectx.StoreClientState(ctx, msg.ClientId, clientState)

	ectx.EmitEvent(ctx, MessageEvent(CategoryClient))
	ectx.EmitEvent(ctx, EventUpdateClient(msg.ClientId, msg.ClientMessage.ClientType(), heights))
	ectx.LogMessage(ctx, "updated client", "client_id", msg.ClientId, "heights", heights)
	return nil
}
