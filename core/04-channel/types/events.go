package types

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

const (
	EventTypeOpenInitChannel    = "channel_open_init"
	EventTypeOpenTryChannel     = "channel_open_try"
	EventTypeOpenAckChannel     = "channel_open_ack"
	EventTypeOpenConfirmChannel = "channel_open_confirm"
	EventTypeCloseInitChannel   = "channel_close_init"
	EventTypeChannelClosed      = "channel_closed"

	EventTypeSendPacket            = "send_packet"
	EventTypeReceivePacket         = "recv_packet"
	EventTypeWriteAcknowledgement  = "write_acknowledgement"
	EventTypeAcknowledgePacket     = "acknowledge_packet"
	EventTypeTimeoutPacket         = "timeout_packet"

	AttributeKeyPortID             = "port_id"
	AttributeKeyChannelID           = "channel_id"
	AttributeKeyCounterpartyPortID  = "counterparty_port_id"
	AttributeKeyCounterpartyChannelID = "counterparty_channel_id"
	AttributeKeyConnectionID        = "connection_id"
	AttributeKeySequence            = "packet_sequence"
	AttributeKeyData                = "packet_data"
	AttributeKeyTimeoutHeight       = "packet_timeout_height"
	AttributeKeyTimeoutTimestamp    = "packet_timeout_timestamp"
	AttributeKeyAck                 = "packet_ack"
)

func channelEvent(eventType string, portID ibctypes.PortId, chanID ibctypes.ChannelId, cp Counterparty, connID ibctypes.ConnectionId) sdk.Event {
	return sdk.NewEvent(
		eventType,
		sdk.NewAttribute(AttributeKeyPortID, string(portID)),
		sdk.NewAttribute(AttributeKeyChannelID, string(chanID)),
		sdk.NewAttribute(AttributeKeyCounterpartyPortID, string(cp.PortId)),
		sdk.NewAttribute(AttributeKeyCounterpartyChannelID, string(cp.ChannelId)),
		sdk.NewAttribute(AttributeKeyConnectionID, string(connID)),
	)
}

func EventOpenInitChannel(portID ibctypes.PortId, chanID ibctypes.ChannelId, cp Counterparty, connID ibctypes.ConnectionId) sdk.Event {
	return channelEvent(EventTypeOpenInitChannel, portID, chanID, cp, connID)
}

func EventOpenTryChannel(portID ibctypes.PortId, chanID ibctypes.ChannelId, cp Counterparty, connID ibctypes.ConnectionId) sdk.Event {
	return channelEvent(EventTypeOpenTryChannel, portID, chanID, cp, connID)
}

func EventOpenAckChannel(portID ibctypes.PortId, chanID ibctypes.ChannelId, cp Counterparty, connID ibctypes.ConnectionId) sdk.Event {
	return channelEvent(EventTypeOpenAckChannel, portID, chanID, cp, connID)
}

func EventOpenConfirmChannel(portID ibctypes.PortId, chanID ibctypes.ChannelId, cp Counterparty, connID ibctypes.ConnectionId) sdk.Event {
	return channelEvent(EventTypeOpenConfirmChannel, portID, chanID, cp, connID)
}

func EventCloseInitChannel(portID ibctypes.PortId, chanID ibctypes.ChannelId, cp Counterparty, connID ibctypes.ConnectionId) sdk.Event {
	return channelEvent(EventTypeCloseInitChannel, portID, chanID, cp, connID)
}

func EventChannelClosed(portID ibctypes.PortId, chanID ibctypes.ChannelId, cp Counterparty, connID ibctypes.ConnectionId) sdk.Event {
	return channelEvent(EventTypeChannelClosed, portID, chanID, cp, connID)
}

func packetEvent(eventType string, p Packet) sdk.Event {
	return sdk.NewEvent(
		eventType,
		sdk.NewAttribute(AttributeKeyData, string(p.Data)),
		sdk.NewAttribute(AttributeKeyTimeoutHeight, p.TimeoutHeight.String()),
		sdk.NewAttribute(AttributeKeyTimeoutTimestamp, strconv.FormatUint(uint64(p.TimeoutTimestamp), 10)),
		sdk.NewAttribute(AttributeKeySequence, strconv.FormatUint(uint64(p.Sequence), 10)),
		sdk.NewAttribute(AttributeKeyPortID, string(p.SourcePort)),
		sdk.NewAttribute(AttributeKeyChannelID, string(p.SourceChannel)),
		sdk.NewAttribute(AttributeKeyCounterpartyPortID, string(p.DestPort)),
		sdk.NewAttribute(AttributeKeyCounterpartyChannelID, string(p.DestChannel)),
	)
}

func EventSendPacket(p Packet) sdk.Event { return packetEvent(EventTypeSendPacket, p) }

func EventReceivePacket(p Packet) sdk.Event { return packetEvent(EventTypeReceivePacket, p) }

func EventAcknowledgePacket(p Packet) sdk.Event { return packetEvent(EventTypeAcknowledgePacket, p) }

func EventTimeoutPacket(p Packet) sdk.Event { return packetEvent(EventTypeTimeoutPacket, p) }

func EventWriteAcknowledgement(p Packet, ack Acknowledgement) sdk.Event {
	e := packetEvent(EventTypeWriteAcknowledgement, p)
	return e.AppendAttributes(sdk.NewAttribute(AttributeKeyAck, string(ack.Bytes())))
}
