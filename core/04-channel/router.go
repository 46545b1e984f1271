package channel

import (
	"context"

	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// Module is the application-layer callback surface the engine invokes but
// never implements (spec.md §1 Non-goals: "it does not include an
// application payload interpreter"). One Module is registered per port.
type Module interface {
	// OnChanOpenInit is called during ChanOpenInit so the application
	// can approve the proposed version and optionally rewrite it.
	OnChanOpenInit(ctx context.Context, ordering channeltypes.Ordering, connectionHops []ibctypes.ConnectionId, portID ibctypes.PortId, chanID ibctypes.ChannelId, counterparty channeltypes.Counterparty, version string) (finalVersion string, err error)
	OnChanOpenTry(ctx context.Context, ordering channeltypes.Ordering, connectionHops []ibctypes.ConnectionId, portID ibctypes.PortId, chanID ibctypes.ChannelId, counterparty channeltypes.Counterparty, counterpartyVersion string) (finalVersion string, err error)
	OnChanOpenAck(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId, counterpartyChannelID ibctypes.ChannelId, counterpartyVersion string) error
	OnChanOpenConfirm(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId) error
	OnChanCloseInit(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId) error
	OnChanCloseConfirm(ctx context.Context, portID ibctypes.PortId, chanID ibctypes.ChannelId) error

	OnRecvPacket(ctx context.Context, packet channeltypes.Packet, relayer string) (ack channeltypes.Acknowledgement, deferred bool, err error)
	OnAcknowledgementPacket(ctx context.Context, packet channeltypes.Packet, acknowledgement channeltypes.Acknowledgement, relayer string) error
	OnTimeoutPacket(ctx context.Context, packet channeltypes.Packet, relayer string) error
}

// Router resolves the Module registered for a port. Route reports ok=false
// when no module owns that port.
type Router interface {
	Route(portID ibctypes.PortId) (Module, bool)
}

// PortAuthority is consulted by ChanCloseInit: closing a channel is
// delegated to whoever owns the port (spec.md §4.E).
type PortAuthority interface {
	AuthorizeClose(ctx context.Context, portID ibctypes.PortId, signer string) error
}
