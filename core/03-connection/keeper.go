package connection

import (
	"bytes"
	"context"

	client "github.com/tokenize-x/ibc-core/core/02-client"
	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	host "github.com/tokenize-x/ibc-core/core/24-host"
	"github.com/tokenize-x/ibc-core/core/exported"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// ValidateConnOpenInit checks the client id and that the client state exists;
// ConnOpenInit needs no proofs.
func ValidateConnOpenInit(ctx context.Context, vctx ValidationContext, msg MsgConnectionOpenInit) error {
	if err := ibctypes.ValidateIdentifier(string(msg.ClientId)); err != nil {
		return err
	}
	if _, ok := vctx.ClientState(ctx, msg.ClientId); !ok {
		return client.ErrClientStateNotFound.Wrapf("client %s", msg.ClientId)
	}
	return nil
}

// ExecuteConnOpenInit creates a new ConnectionEnd in Init state and emits
// OpenInitConnection.
func ExecuteConnOpenInit(ctx context.Context, ectx ExecutionContext, msg MsgConnectionOpenInit) (ibctypes.ConnectionId, error) {
	if err := ValidateConnOpenInit(ctx, ectx, msg); err != nil {
		return "", err
	}

	versions := ectx.SupportedVersions()
	if msg.Version != nil {
		versions = []connectiontypes.Version{*msg.Version}
	}

	connID := ectx.NextConnectionIdentifier(ctx)
	end := connectiontypes.ConnectionEnd{
		State:        connectiontypes.Init,
		ClientId:     msg.ClientId,
		Counterparty: msg.Counterparty,
		Versions:     versions,
		DelayPeriod:  msg.DelayPeriod,
	}
	ectx.StoreConnection(ctx, connID, end)

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryConnection))
	ectx.EmitEvent(ctx, connectiontypes.EventOpenInitConnection(connID, msg.ClientId, msg.Counterparty))
	ectx.LogMessage(ctx, "connection init", "connection_id", connID, "client_id", msg.ClientId)
	return connID, nil
}

// ValidateConnOpenTry verifies, via membership proofs against B's stored
// consensus root, that A already carries a matching Init (or TryOpen)
// connection end and that A's stored view of B's client/consensus state is
// itself valid, then picks a version.
func ValidateConnOpenTry(ctx context.Context, vctx ValidationContext, msg MsgConnectionOpenTry) (connectiontypes.Version, error) {
	if err := client.RequireActive(ctx, vctx, msg.ClientId); err != nil {
		return connectiontypes.Version{}, err
	}

	counterpartyClientState, ok := vctx.ClientState(ctx, msg.ClientId)
	if !ok {
		return connectiontypes.Version{}, client.ErrClientStateNotFound.Wrapf("client %s", msg.ClientId)
	}
	consState, ok := vctx.ConsensusState(ctx, msg.ClientId, msg.ProofHeight)
	if !ok {
		return connectiontypes.Version{}, client.ErrConsensusStateNotFound.Wrapf("client %s height %s", msg.ClientId, msg.ProofHeight)
	}

	expectedSelf := connectiontypes.ConnectionEnd{
		State:    connectiontypes.Init,
		ClientId: msg.Counterparty.ClientId,
		Counterparty: connectiontypes.Counterparty{
			ClientId:     msg.ClientId,
			ConnectionId: msg.CounterpartyChosenConnectionId,
		},
		Versions:    msg.CounterpartyVersions,
		DelayPeriod: msg.DelayPeriod,
	}
	expectedPath := host.ConnectionPath(msg.Counterparty.ConnectionId)
	if err := counterpartyClientState.VerifyMembership(
		consState, msg.ProofInit, exported.StringPath(expectedPath), host.Encode(expectedSelf),
	); err != nil {
		expectedSelf.State = connectiontypes.TryOpen
		if retryErr := counterpartyClientState.VerifyMembership(
			consState, msg.ProofInit, exported.StringPath(expectedPath), host.Encode(expectedSelf),
		); retryErr != nil {
			return connectiontypes.Version{}, exported.ErrMembershipVerificationFailed.Wrap(err.Error())
		}
	}

	selfClient := vctx.SelfClientState(ctx)
	if !bytes.Equal(host.Encode(msg.ClientState), host.Encode(selfClient)) {
		return connectiontypes.Version{}, connectiontypes.ErrInvalidClientState.Wrap(
			"counterparty's view of this chain's client state does not match")
	}
	if err := counterpartyClientState.VerifyMembership(
		consState, msg.ProofClient, exported.StringPath(host.ClientStatePath(msg.Counterparty.ClientId)), host.Encode(msg.ClientState),
	); err != nil {
		return connectiontypes.Version{}, connectiontypes.ErrInvalidClientState.Wrap(err.Error())
	}

	selfConsensusState, ok := vctx.SelfConsensusState(ctx, msg.ConsensusHeight)
	if !ok {
		return connectiontypes.Version{}, connectiontypes.ErrInvalidConsensusState.Wrapf(
			"no self consensus state at height %s", msg.ConsensusHeight)
	}
	if err := counterpartyClientState.VerifyMembership(
		consState, msg.ProofConsensus, exported.StringPath(host.ConsensusStatePath(msg.Counterparty.ClientId, msg.ConsensusHeight)), host.Encode(selfConsensusState),
	); err != nil {
		return connectiontypes.Version{}, connectiontypes.ErrInvalidConsensusState.Wrap(err.Error())
	}

	version, err := PickVersion(msg.CounterpartyVersions, vctx.SupportedVersions())
	if err != nil {
		return connectiontypes.Version{}, err
	}
	return version, nil
}

// ExecuteConnOpenTry writes a TryOpen connection end and emits
// OpenTryConnection.
func ExecuteConnOpenTry(ctx context.Context, ectx ExecutionContext, msg MsgConnectionOpenTry) (ibctypes.ConnectionId, error) {
	version, err := ValidateConnOpenTry(ctx, ectx, msg)
	if err != nil {
		return "", err
	}

	connID := ectx.NextConnectionIdentifier(ctx)
	end := connectiontypes.ConnectionEnd{
		State:        connectiontypes.TryOpen,
		ClientId:     msg.ClientId,
		Counterparty: msg.Counterparty,
		Versions:     []connectiontypes.Version{version},
		DelayPeriod:  msg.DelayPeriod,
	}
	ectx.StoreConnection(ctx, connID, end)

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryConnection))
	ectx.EmitEvent(ctx, connectiontypes.EventOpenTryConnection(connID, msg.ClientId, msg.Counterparty))
	return connID, nil
}

// ValidateConnOpenAck verifies that B reports TryOpen with data matching
// what A expects, that the chosen version was among what A proposed, and
// that B's stored view of A's client/consensus state is itself correct.
func ValidateConnOpenAck(ctx context.Context, vctx ValidationContext, msg MsgConnectionOpenAck) (connectiontypes.ConnectionEnd, error) {
	end, ok := vctx.ConnectionEnd(ctx, msg.ConnectionId)
	if !ok {
		return connectiontypes.ConnectionEnd{}, connectiontypes.ErrConnectionNotFound.Wrapf("connection %s", msg.ConnectionId)
	}
	if end.State != connectiontypes.Init && end.State != connectiontypes.TryOpen {
		return connectiontypes.ConnectionEnd{}, connectiontypes.ErrInvalidState.Wrapf(
			"expected Init or TryOpen, got %s", end.State)
	}
	if err := ConfirmVersion(end.Versions, msg.Version); err != nil {
		return connectiontypes.ConnectionEnd{}, err
	}

	if err := client.RequireActive(ctx, vctx, end.ClientId); err != nil {
		return connectiontypes.ConnectionEnd{}, err
	}
	consState, ok := vctx.ConsensusState(ctx, end.ClientId, msg.ProofHeight)
	if !ok {
		return connectiontypes.ConnectionEnd{}, client.ErrConsensusStateNotFound.Wrapf("client %s height %s", end.ClientId, msg.ProofHeight)
	}
	clientState, _ := vctx.ClientState(ctx, end.ClientId)

	expectedCounterparty := connectiontypes.ConnectionEnd{
		State:    connectiontypes.TryOpen,
		ClientId: end.Counterparty.ClientId,
		Counterparty: connectiontypes.Counterparty{
			ClientId:     end.ClientId,
			ConnectionId: msg.ConnectionId,
		},
		Versions:    []connectiontypes.Version{msg.Version},
		DelayPeriod: end.DelayPeriod,
	}
	expectedPath := host.ConnectionPath(msg.CounterpartyConnectionId)
	if err := clientState.VerifyMembership(
		consState, msg.ProofTry, exported.StringPath(expectedPath), host.Encode(expectedCounterparty),
	); err != nil {
		return connectiontypes.ConnectionEnd{}, exported.ErrMembershipVerificationFailed.Wrap(err.Error())
	}

	selfClient := vctx.SelfClientState(ctx)
	if !bytes.Equal(host.Encode(msg.ClientState), host.Encode(selfClient)) {
		return connectiontypes.ConnectionEnd{}, connectiontypes.ErrInvalidClientState.Wrap(
			"counterparty's view of this chain's client state does not match")
	}
	if err := clientState.VerifyMembership(
		consState, msg.ProofClient, exported.StringPath(host.ClientStatePath(end.Counterparty.ClientId)), host.Encode(msg.ClientState),
	); err != nil {
		return connectiontypes.ConnectionEnd{}, connectiontypes.ErrInvalidClientState.Wrap(err.Error())
	}

	selfConsensusState, ok := vctx.SelfConsensusState(ctx, msg.ConsensusHeight)
	if !ok {
		return connectiontypes.ConnectionEnd{}, connectiontypes.ErrInvalidConsensusState.Wrapf(
			"no self consensus state at height %s", msg.ConsensusHeight)
	}
	if err := clientState.VerifyMembership(
		consState, msg.ProofConsensus, exported.StringPath(host.ConsensusStatePath(end.Counterparty.ClientId, msg.ConsensusHeight)), host.Encode(selfConsensusState),
	); err != nil {
		return connectiontypes.ConnectionEnd{}, connectiontypes.ErrInvalidConsensusState.Wrap(err.Error())
	}

	return end, nil
}

// ExecuteConnOpenAck transitions Init/TryOpen to Open on this chain.
func ExecuteConnOpenAck(ctx context.Context, ectx ExecutionContext, msg MsgConnectionOpenAck) error {
	end, err := ValidateConnOpenAck(ctx, ectx, msg)
	if err != nil {
		return err
	}

	end.State = connectiontypes.Open
	end.Versions = []connectiontypes.Version{msg.Version}
	end.Counterparty.ConnectionId = msg.CounterpartyConnectionId
	ectx.StoreConnection(ctx, msg.ConnectionId, end)

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryConnection))
	ectx.EmitEvent(ctx, connectiontypes.EventOpenAckConnection(msg.ConnectionId, end.ClientId, end.Counterparty))
	return nil
}

// ValidateConnOpenConfirm verifies that A reports Open.
func ValidateConnOpenConfirm(ctx context.Context, vctx ValidationContext, msg MsgConnectionOpenConfirm) (connectiontypes.ConnectionEnd, error) {
	end, ok := vctx.ConnectionEnd(ctx, msg.ConnectionId)
	if !ok {
		return connectiontypes.ConnectionEnd{}, connectiontypes.ErrConnectionNotFound.Wrapf("connection %s", msg.ConnectionId)
	}
	if end.State != connectiontypes.TryOpen {
		return connectiontypes.ConnectionEnd{}, connectiontypes.ErrInvalidState.Wrapf("expected TryOpen, got %s", end.State)
	}

	if err := client.RequireActive(ctx, vctx, end.ClientId); err != nil {
		return connectiontypes.ConnectionEnd{}, err
	}
	consState, ok := vctx.ConsensusState(ctx, end.ClientId, msg.ProofHeight)
	if !ok {
		return connectiontypes.ConnectionEnd{}, client.ErrConsensusStateNotFound.Wrapf("client %s height %s", end.ClientId, msg.ProofHeight)
	}
	clientState, _ := vctx.ClientState(ctx, end.ClientId)

	expectedCounterparty := connectiontypes.ConnectionEnd{
		State:    connectiontypes.Open,
		ClientId: end.Counterparty.ClientId,
		Counterparty: connectiontypes.Counterparty{
			ClientId:     end.ClientId,
			ConnectionId: msg.ConnectionId,
		},
		Versions:    end.Versions,
		DelayPeriod: end.DelayPeriod,
	}
	expectedPath := host.ConnectionPath(end.Counterparty.ConnectionId)
	if err := clientState.VerifyMembership(
		consState, msg.ProofAck, exported.StringPath(expectedPath), host.Encode(expectedCounterparty),
	); err != nil {
		return connectiontypes.ConnectionEnd{}, exported.ErrMembershipVerificationFailed.Wrap(err.Error())
	}

	return end, nil
}

// ExecuteConnOpenConfirm transitions TryOpen to Open on this chain.
func ExecuteConnOpenConfirm(ctx context.Context, ectx ExecutionContext, msg MsgConnectionOpenConfirm) error {
	end, err := ValidateConnOpenConfirm(ctx, ectx, msg)
	if err != nil {
		return err
	}

	end.State = connectiontypes.Open
	ectx.StoreConnection(ctx, msg.ConnectionId, end)

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryConnection))
	ectx.EmitEvent(ctx, connectiontypes.EventOpenConfirmConnection(msg.ConnectionId, end.ClientId, end.Counterparty))
	return nil
}

