package keeper

import (
	"context"

	client "github.com/tokenize-x/ibc-core/core/02-client"
	channel "github.com/tokenize-x/ibc-core/core/04-channel"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	host "github.com/tokenize-x/ibc-core/core/24-host"
	"github.com/tokenize-x/ibc-core/core/exported"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// ValidateChanCloseInit checks the channel is Open. Caller authority
// (port-owner delegation, spec.md §4.E) is enforced by the PortAuthority
// the dispatcher is configured with, not here.
func ValidateChanCloseInit(ctx context.Context, vctx channel.ValidationContext, msg channel.MsgChannelCloseInit) (channeltypes.ChannelEnd, error) {
	end, ok := vctx.ChannelEnd(ctx, msg.PortId, msg.ChannelId)
	if !ok {
		return channeltypes.ChannelEnd{}, channeltypes.ErrChannelNotFound.Wrapf("port %s channel %s", msg.PortId, msg.ChannelId)
	}
	if end.State != channeltypes.Open {
		return channeltypes.ChannelEnd{}, channeltypes.ErrInvalidChannelState.Wrapf("expected Open, got %s", end.State)
	}
	return end, nil
}

// ExecuteChanCloseInit transitions Open to Closed locally, notifies the
// application, and emits CloseInitChannel.
func ExecuteChanCloseInit(ctx context.Context, ectx channel.ExecutionContext, router channel.Router, authority channel.PortAuthority, msg channel.MsgChannelCloseInit) error {
	end, err := ValidateChanCloseInit(ctx, ectx, msg)
	if err != nil {
		return err
	}
	if err := authority.AuthorizeClose(ctx, msg.PortId, msg.Signer); err != nil {
		return err
	}

	mod, ok := router.Route(msg.PortId)
	if !ok {
		return channeltypes.ErrChannelNotFound.Wrapf("no module bound to port %s", msg.PortId)
	}
	if err := mod.OnChanCloseInit(ctx, msg.PortId, msg.ChannelId); err != nil {
		return err
	}

	end.State = channeltypes.Closed
	ectx.StoreChannel(ctx, msg.PortId, msg.ChannelId, end)

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryChannel))
	ectx.EmitEvent(ctx, channeltypes.EventCloseInitChannel(msg.PortId, msg.ChannelId, end.Counterparty, end.ConnectionHops[0]))
	return nil
}

// ValidateChanCloseConfirm verifies, via membership proof, that the
// counterparty channel end is Closed.
func ValidateChanCloseConfirm(ctx context.Context, vctx channel.ValidationContext, msg channel.MsgChannelCloseConfirm) (channeltypes.ChannelEnd, error) {
	end, ok := vctx.ChannelEnd(ctx, msg.PortId, msg.ChannelId)
	if !ok {
		return channeltypes.ChannelEnd{}, channeltypes.ErrChannelNotFound.Wrapf("port %s channel %s", msg.PortId, msg.ChannelId)
	}
	if end.State != channeltypes.Open {
		return channeltypes.ChannelEnd{}, channeltypes.ErrInvalidChannelState.Wrapf("expected Open, got %s", end.State)
	}

	conn, err := openConnection(ctx, vctx, end.ConnectionHops)
	if err != nil {
		return channeltypes.ChannelEnd{}, err
	}
	if err := client.RequireActive(ctx, vctx, conn.ClientId); err != nil {
		return channeltypes.ChannelEnd{}, err
	}
	consState, ok := vctx.ConsensusState(ctx, conn.ClientId, msg.ProofHeight)
	if !ok {
		return channeltypes.ChannelEnd{}, client.ErrConsensusStateNotFound.Wrapf("client %s height %s", conn.ClientId, msg.ProofHeight)
	}
	clientState, _ := vctx.ClientState(ctx, conn.ClientId)

	expected := channeltypes.ChannelEnd{
		State:    channeltypes.Closed,
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
		consState, msg.ProofInit, exported.StringPath(path), host.Encode(expected),
	); err != nil {
		return channeltypes.ChannelEnd{}, exported.ErrMembershipVerificationFailed.Wrap(err.Error())
	}

	return end, nil
}

// ExecuteChanCloseConfirm mirrors the counterparty's closure locally,
// notifies the application, and emits CloseInitChannel's counterpart: there
// is no separate "confirm" event in the closed event set (spec.md §6), so
// ChanCloseConfirm reuses ChannelClosed.
func ExecuteChanCloseConfirm(ctx context.Context, ectx channel.ExecutionContext, router channel.Router, msg channel.MsgChannelCloseConfirm) error {
	end, err := ValidateChanCloseConfirm(ctx, ectx, msg)
	if err != nil {
		return err
	}

	mod, ok := router.Route(msg.PortId)
	if !ok {
		return channeltypes.ErrChannelNotFound.Wrapf("no module bound to port %s", msg.PortId)
	}
	if err := mod.OnChanCloseConfirm(ctx, msg.PortId, msg.ChannelId); err != nil {
		return err
	}

	end.State = channeltypes.Closed
	ectx.StoreChannel(ctx, msg.PortId, msg.ChannelId, end)

	ectx.EmitEvent(ctx, client.MessageEvent(client.CategoryChannel))
	ectx.EmitEvent(ctx, channeltypes.EventChannelClosed(msg.PortId, msg.ChannelId, end.Counterparty, end.ConnectionHops[0]))
	return nil
}
