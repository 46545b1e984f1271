package core

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	client "github.com/tokenize-x/ibc-core/core/02-client"
	connection "github.com/tokenize-x/ibc-core/core/03-connection"
	channel "github.com/tokenize-x/ibc-core/core/04-channel"
	"github.com/tokenize-x/ibc-core/core/04-channel/keeper"
)

// eventCollector wraps a host ExecutionContext so Dispatch can return
// exactly the events one call produced, while still forwarding every
// EmitEvent through to the host's own accounting (its event manager,
// its tx log, whatever the host does with them).
type eventCollector struct {
	ExecutionContext
	events []sdk.Event
}

func (c *eventCollector) EmitEvent(ctx context.Context, event sdk.Event) {
	c.ExecutionContext.EmitEvent(ctx, event)
	c.events = append(c.events, event)
}

// Dispatch routes a MsgEnvelope to its handler pair and runs the two-pass
// validate-then-execute contract (spec.md §4.G): every Execute* function
// below re-validates before mutating, so a host can also call the bare
// Validate* functions directly for dry-run / mempool admission. On success,
// Dispatch returns exactly the events this one call emitted.
func Dispatch(ctx context.Context, ectx ExecutionContext, router Router, authority PortAuthority, env MsgEnvelope) ([]sdk.Event, error) {
	label, ok := env.set()
	if !ok {
		return nil, ErrInvalidEnvelope
	}

	collector := &eventCollector{ExecutionContext: ectx}
	var err error

	switch label {
	case "UpdateClient":
		err = client.ExecuteUpdateClient(ctx, collector, *env.UpdateClient)

	case "ConnectionOpenInit":
		_, err = connection.ExecuteConnOpenInit(ctx, collector, *env.ConnectionOpenInit)
	case "ConnectionOpenTry":
		_, err = connection.ExecuteConnOpenTry(ctx, collector, *env.ConnectionOpenTry)
	case "ConnectionOpenAck":
		err = connection.ExecuteConnOpenAck(ctx, collector, *env.ConnectionOpenAck)
	case "ConnectionOpenConfirm":
		err = connection.ExecuteConnOpenConfirm(ctx, collector, *env.ConnectionOpenConfirm)

	case "ChannelOpenInit":
		_, err = keeper.ExecuteChanOpenInit(ctx, collector, router, *env.ChannelOpenInit)
	case "ChannelOpenTry":
		_, err = keeper.ExecuteChanOpenTry(ctx, collector, router, *env.ChannelOpenTry)
	case "ChannelOpenAck":
		err = keeper.ExecuteChanOpenAck(ctx, collector, router, *env.ChannelOpenAck)
	case "ChannelOpenConfirm":
		err = keeper.ExecuteChanOpenConfirm(ctx, collector, router, *env.ChannelOpenConfirm)
	case "ChannelCloseInit":
		err = keeper.ExecuteChanCloseInit(ctx, collector, router, authority, *env.ChannelCloseInit)
	case "ChannelCloseConfirm":
		err = keeper.ExecuteChanCloseConfirm(ctx, collector, router, *env.ChannelCloseConfirm)

	case "SendPacket":
		_, err = keeper.ExecuteSendPacket(ctx, collector, *env.SendPacket)
	case "RecvPacket":
		err = keeper.ExecuteRecvPacket(ctx, collector, router, *env.RecvPacket)
	case "Acknowledgement":
		err = keeper.ExecuteAcknowledgePacket(ctx, collector, router, *env.Acknowledgement)
	case "Timeout":
		err = keeper.ExecuteTimeoutPacket(ctx, collector, router, *env.Timeout)
	case "TimeoutOnClose":
		err = keeper.ExecuteTimeoutOnClosePacket(ctx, collector, router, *env.TimeoutOnClose)

	default:
		return nil, ErrInvalidEnvelope
	}

	if err != nil {
		return nil, err
	}
	return collector.events, nil
}

var _ channel.ExecutionContext = (*eventCollector)(nil)
