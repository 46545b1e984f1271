package hosttest

import (
	"context"

	channel "github.com/tokenize-x/ibc-core/core/04-channel"
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// StaticRouter routes every port in Modules to the paired Module, and
// nothing else.
type StaticRouter struct {
	Modules map[ibctypes.PortId]channel.Module
}

func (r StaticRouter) Route(portID ibctypes.PortId) (channel.Module, bool) {
	mod, ok := r.Modules[portID]
	return mod, ok
}

var _ channel.Router = StaticRouter{}

// EchoModule is a channel.Module double: it accepts whatever version is
// proposed, answers OnRecvPacket with RecvErr when it is set and otherwise
// with Ack and Deferred as given (an unset Ack is the zero Acknowledgement),
// and otherwise does nothing. No callback reads AckErr.
type EchoModule struct {
	Ack      channeltypes.Acknowledgement
	AckErr   error
	Deferred bool

	RecvErr error
}

func (m EchoModule) OnChanOpenInit(_ context.Context, _ channeltypes.Ordering, _ []ibctypes.ConnectionId, _ ibctypes.PortId, _ ibctypes.ChannelId, _ channeltypes.Counterparty, version string) (string, error) {
	return version, nil
}

func (m EchoModule) OnChanOpenTry(_ context.Context, _ channeltypes.Ordering, _ []ibctypes.ConnectionId, _ ibctypes.PortId, _ ibctypes.ChannelId, _ channeltypes.Counterparty, counterpartyVersion string) (string, error) {
	return counterpartyVersion, nil
}

func (m EchoModule) OnChanOpenAck(_ context.Context, _ ibctypes.PortId, _ ibctypes.ChannelId, _ ibctypes.ChannelId, _ string) error {
	return nil
}

func (m EchoModule) OnChanOpenConfirm(_ context.Context, _ ibctypes.PortId, _ ibctypes.ChannelId) error {
	return nil
}

func (m EchoModule) OnChanCloseInit(_ context.Context, _ ibctypes.PortId, _ ibctypes.ChannelId) error {
	return nil
}

func (m EchoModule) OnChanCloseConfirm(_ context.Context, _ ibctypes.PortId, _ ibctypes.ChannelId) error {
	return nil
}

func (m EchoModule) OnRecvPacket(_ context.Context, _ channeltypes.Packet, _ string) (channeltypes.Acknowledgement, bool, error) {
	if m.RecvErr != nil {
		return channeltypes.Acknowledgement{}, false, m.RecvErr
	}
	return m.Ack, m.Deferred, nil
}

func (m EchoModule) OnAcknowledgementPacket(_ context.Context, _ channeltypes.Packet, _ channeltypes.Acknowledgement, _ string) error {
	return nil
}

func (m EchoModule) OnTimeoutPacket(_ context.Context, _ channeltypes.Packet, _ string) error {
	return nil
}

var _ channel.Module = EchoModule{}

// AllowAllAuthority authorizes every ChannelCloseInit call.
type AllowAllAuthority struct{}

func (AllowAllAuthority) AuthorizeClose(_ context.Context, _ ibctypes.PortId, _ string) error {
	return nil
}

var _ channel.PortAuthority = AllowAllAuthority{}
