// Package keeper implements the ICS-04 channel handshake, close, and packet
// handlers (spec.md §4.E/§4.F).
package keeper

import (
	"context"

	client "github.com/tokenize-x/ibc-core/core/02-client"
	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	channel "github.com/tokenize-x/ibc-core/core/04-channel"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	host "github.com/tokenize-x/ibc-core/core/24-host"
	"github.com/tokenize-x/ibc-core/core/exported"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// openConnection looks up the single connection hop a channel requires and
// checks it is Open, per spec.md §4.E ("the underlying connection must be
// Open") and §9 (multi-hop is shape-only).
func openConnection(ctx context.Context, vctx channel.ValidationContext, hops []ibctypes.ConnectionId) (connectiontypes.ConnectionEnd, error) {
	if len(hops) != 1 {
		return connectiontypes.ConnectionEnd{}, channeltypes.ErrUnsupportedMultiHop.Wrapf("got %d hops", len(hops))
	}
	conn, ok := vctx.ConnectionEnd(ctx, hops[0])
	if !ok {
		return connectiontypes.ConnectionEnd{}, connectiontypes.ErrConnectionNotFound.Wrapf("connection %s", hops[0])
	}
	if conn.State != connectiontypes.Open {
		return connectiontypes.ConnectionEnd{}, channeltypes.ErrConnectionNotOpen.Wrapf("connection %s state %s", hops[0], conn.State)
	}
	return conn, nil
}

// ValidateChanOpenInit checks that the connection hop is Open; no proofs
// are needed since nothing has happened on the counterparty yet.
func ValidateChanOpenInit(ctx context.Context, vctx channel.ValidationContext, msg channel.MsgChannelOpenInit) error {
	if err := ibctypes.ValidateIdentifier(string(msg.PortId)); err != nil {
		return err
	}
	_, err := openConnection(ctx, vctx, msg.Channel.ConnectionHops)
	return err
}

// ExecuteChanOpenInit asks the application router to approve (and
// optionally rewrite) the proposed version, writes a new ChannelEnd in Init
// state, and emits OpenInitChannel.
func ExecuteChanOpenInit(ctx context.Context, ectx channel.ExecutionContext, router channel.Router, msg channel.MsgChannelOpenInit) (ibctypes.ChannelId, error) {
	if err := ValidateChanOpenInit(ctx, ectx, msg); err != nil {
		return "", err
	}

	mod, ok := router.Route(msg.PortId)
	if !ok {
		return "", channeltypes.ErrChannelNotFound.Wrapf("no module bound to port %s", msg.PortId)
	}

	chanID := ectx.NextChannelIdentifier(ctx)
	finalVersion, err := mod.OnChanOpenInit(ctx, msg.Channel.Ordering, msg.Channel.ConnectionHops, msg.PortId, chanID, msg.Channel.Counterparty, msg.Channel.Version)
	if err != nil {
		return "", err
	}

	end := msg.Channel
	end.State = channeltypes.Init
	end.Counterparty.ChannelId = ""
	end.Version = finalVersion
	ectx.StoreChannel(ctx, msg.PortId, chanID, end)

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryChannel))
	ectx.EmitEvent(ctx, channeltypes.EventOpenInitChannel(msg.PortId, chanID, end.Counterparty, end.ConnectionHops[0]))
	ectx.LogMessage(ctx, "channel init", "port_id", msg.PortId, "channel_id", chanID)
	return chanID, nil
}

// ValidateChanOpenTry verifies, via membership proof against A's stored
// consensus root, that A already carries a matching Init channel end.
func ValidateChanOpenTry(ctx context.Context, vctx channel.ValidationContext, msg channel.MsgChannelOpenTry) error {
	if err := ibctypes.ValidateIdentifier(string(msg.PortId)); err != nil {
		return err
	}
	conn, err := openConnection(ctx, vctx, msg.Channel.ConnectionHops)
	if err != nil {
		return err
	}
	if err := client.RequireActive(ctx, vctx, conn.ClientId); err != nil {
		return err
	}
	consState, ok := vctx.ConsensusState(ctx, conn.ClientId, msg.ProofHeight)
	if !ok {
		return client.ErrConsensusStateNotFound.Wrapf("client %s height %s", conn.ClientId, msg.ProofHeight)
	}
	clientState, _ := vctx.ClientState(ctx, conn.ClientId)

	expected := channeltypes.ChannelEnd{
		State:    channeltypes.Init,
		Ordering: msg.Channel.Ordering,
		Counterparty: channeltypes.Counterparty{
			PortId:    msg.PortId,
			ChannelId: msg.CounterpartyChosenChannelId,
		},
		ConnectionHops: []ibctypes.ConnectionId{conn.Counterparty.ConnectionId},
		Version:        msg.CounterpartyVersion,
	}
	path := host.ChannelPath(msg.Channel.Counterparty.PortId, msg.Channel.Counterparty.ChannelId)
	if err := clientState.VerifyMembership(
		consState, msg.ProofInit, exported.StringPath(path), host.Encode(expected),
	); err != nil {
		return exported.ErrMembershipVerificationFailed.Wrap(err.Error())
	}
	return nil
}

// ExecuteChanOpenTry asks the application router to approve a version,
// writes a new ChannelEnd in TryOpen state, and emits OpenTryChannel.
func ExecuteChanOpenTry(ctx context.Context, ectx channel.ExecutionContext, router channel.Router, msg channel.MsgChannelOpenTry) (ibctypes.ChannelId, error) {
	if err := ValidateChanOpenTry(ctx, ectx, msg); err != nil {
		return "", err
	}

	mod, ok := router.Route(msg.PortId)
	if !ok {
		return "", channeltypes.ErrChannelNotFound.Wrapf("no module bound to port %s", msg.PortId)
	}

	chanID := ectx.NextChannelIdentifier(ctx)
	finalVersion, err := mod.OnChanOpenTry(ctx, msg.Channel.Ordering, msg.Channel.ConnectionHops, msg.PortId, chanID, msg.Channel.Counterparty, msg.CounterpartyVersion)
	if err != nil {
		return "", err
	}

	end := msg.Channel
	end.State = channeltypes.TryOpen
	end.Version = finalVersion
	ectx.StoreChannel(ctx, msg.PortId, chanID, end)

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryChannel))
	ectx.EmitEvent(ctx, channeltypes.EventOpenTryChannel(msg.PortId, chanID, end.Counterparty, end.ConnectionHops[0]))
	return chanID, nil
}

// ValidateChanOpenAck verifies that B reports TryOpen with data matching
// what A expects.
func ValidateChanOpenAck(ctx context.Context, vctx channel.ValidationContext, msg channel.MsgChannelOpenAck) (channeltypes.ChannelEnd, connectiontypes.ConnectionEnd, error) {
	end, ok := vctx.ChannelEnd(ctx, msg.PortId, msg.ChannelId)
	if !ok {
		return channeltypes.ChannelEnd{}, connectiontypes.ConnectionEnd{}, channeltypes.ErrChannelNotFound.Wrapf("port %s channel %s", msg.PortId, msg.ChannelId)
	}
	if end.State != channeltypes.Init && end.State != channeltypes.TryOpen {
		return channeltypes.ChannelEnd{}, connectiontypes.ConnectionEnd{}, channeltypes.ErrInvalidChannelState.Wrapf(
			"expected Init or TryOpen, got %s", end.State)
	}

	conn, err := openConnection(ctx, vctx, end.ConnectionHops)
	if err != nil {
		return channeltypes.ChannelEnd{}, connectiontypes.ConnectionEnd{}, err
	}
	if err := client.RequireActive(ctx, vctx, conn.ClientId); err != nil {
		return channeltypes.ChannelEnd{}, connectiontypes.ConnectionEnd{}, err
	}
	consState, ok := vctx.ConsensusState(ctx, conn.ClientId, msg.ProofHeight)
	if !ok {
		return channeltypes.ChannelEnd{}, connectiontypes.ConnectionEnd{}, client.ErrConsensusStateNotFound.Wrapf("client %s height %s", conn.ClientId, msg.ProofHeight)
	}
	clientState, _ := vctx.ClientState(ctx, conn.ClientId)

	expected := channeltypes.ChannelEnd{
		State:    channeltypes.TryOpen,
		Ordering: end.Ordering,
		Counterparty: channeltypes.Counterparty{
			PortId:    msg.PortId,
			ChannelId: msg.ChannelId,
		},
		ConnectionHops: []ibctypes.ConnectionId{conn.Counterparty.ConnectionId},
		Version:        msg.CounterpartyVersion,
	}
	path := host.ChannelPath(end.Counterparty.PortId, msg.CounterpartyChannelId)
	if err := clientState.VerifyMembership(
		consState, msg.ProofTry, exported.StringPath(path), host.Encode(expected),
	); err != nil {
		return channeltypes.ChannelEnd{}, connectiontypes.ConnectionEnd{}, exported.ErrMembershipVerificationFailed.Wrap(err.Error())
	}

	return end, conn, nil
}

// ExecuteChanOpenAck transitions Init/TryOpen to Open, notifies the
// application, and emits OpenAckChannel.
func ExecuteChanOpenAck(ctx context.Context, ectx channel.ExecutionContext, router channel.Router, msg channel.MsgChannelOpenAck) error {
	end, conn, err := ValidateChanOpenAck(ctx, ectx, msg)
	if err != nil {
		return err
	}

	mod, ok := router.Route(msg.PortId)
	if !ok {
		return channeltypes.ErrChannelNotFound.Wrapf("no module bound to port %s", msg.PortId)
	}
	if err := mod.OnChanOpenAck(ctx, msg.PortId, msg.ChannelId, msg.CounterpartyChannelId, msg.CounterpartyVersion); err != nil {
		return err
	}

	end.State = channeltypes.Open
	end.Version = msg.CounterpartyVersion
	end.Counterparty.ChannelId = msg.CounterpartyChannelId
	ectx.StoreChannel(ctx, msg.PortId, msg.ChannelId, end)

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryChannel))
	ectx.EmitEvent(ctx, channeltypes.EventOpenAckChannel(msg.PortId, msg.ChannelId, end.Counterparty, conn.Counterparty.ConnectionId))
	return nil
}

// ValidateChanOpenConfirm verifies that A reports Open.
func ValidateChanOpenConfirm(ctx context.Context, vctx channel.ValidationContext, msg channel.MsgChannelOpenConfirm) (channeltypes.ChannelEnd, connectiontypes.ConnectionEnd, error) {
	end, ok := vctx.ChannelEnd(ctx, msg.PortId, msg.ChannelId)
	if !ok {
		return channeltypes.ChannelEnd{}, connectiontypes.ConnectionEnd{}, channeltypes.ErrChannelNotFound.Wrapf("port %s channel %s", msg.PortId, msg.ChannelId)
	}
	if end.State != channeltypes.TryOpen {
		return channeltypes.ChannelEnd{}, connectiontypes.ConnectionEnd{}, channeltypes.ErrInvalidChannelState.Wrapf("expected TryOpen, got %s", end.State)
	}

	conn, err := openConnection(ctx, vctx, end.ConnectionHops)
	if err != nil {
		return channeltypes.ChannelEnd{}, connectiontypes.ConnectionEnd{}, err
	}
	if err := client.RequireActive(ctx, vctx, conn.ClientId); err != nil {
		return channeltypes.ChannelEnd{}, connectiontypes.ConnectionEnd{}, err
	}
	consState, ok := vctx.ConsensusState(ctx, conn.ClientId, msg.ProofHeight)
	if !ok {
		return channeltypes.ChannelEnd{}, connectiontypes.ConnectionEnd{}, client.ErrConsensusStateNotFound.Wrapf("client %s height %s", conn.ClientId, msg.ProofHeight)
	}
	clientState, _ := vctx.ClientState(ctx, conn.ClientId)

	expected := channeltypes.ChannelEnd{
		State:    channeltypes.Open,
		Ordering: end.Ordering,
		Counterparty: channeltypes.Counterparty{
			PortId:    msg.PortId,
			ChannelId: msg.ChannelId,
		},
		ConnectionHops: []ibctypes.ConnectionId{conn.Counterparty.ConnectionId},
		Version:        end.Version,
	}
	path := host.ChannelPath(end.Counterparty.PortId, end.Counterparty.ChannelId)
	if err := clientState.VerifyMembership(
		consState, msg.ProofAck, exported.StringPath(path), host.Encode(expected),
	); err != nil {
		return channeltypes.ChannelEnd{}, connectiontypes.ConnectionEnd{}, exported.ErrMembershipVerificationFailed.Wrap(err.Error())
	}

	return end, conn, nil
}

// ExecuteChanOpenConfirm transitions TryOpen to Open, notifies the
// application, and emits OpenConfirmChannel.
func ExecuteChanOpenConfirm(ctx context.Context, ectx channel.ExecutionContext, router channel.Router, msg channel.MsgChannelOpenConfirm) error {
	end, conn, err := ValidateChanOpenConfirm(ctx, ectx, msg)
	if err != nil {
		return err
	}

	mod, ok := router.Route(msg.PortId)
	if !ok {
		return channeltypes.ErrChannelNotFound.Wrapf("no module bound to port %s", msg.PortId)
	}
	if err := mod.OnChanOpenConfirm(ctx, msg.PortId, msg.ChannelId); err != nil {
		return err
	}

	end.State = channeltypes.Open
	ectx.StoreChannel(ctx, msg.PortId, msg.ChannelId, end)

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryChannel))
	ectx.EmitEvent(ctx, channeltypes.EventOpenConfirmChannel(msg.PortId, msg.ChannelId, end.Counterparty, conn.Counterparty.ConnectionId))
	return nil
}
