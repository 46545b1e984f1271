package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

const (
	EventTypeOpenInitConnection    = "connection_open_init"
	EventTypeOpenTryConnection     = "connection_open_try"
	EventTypeOpenAckConnection     = "connection_open_ack"
	EventTypeOpenConfirmConnection = "connection_open_confirm"

	AttributeKeyConnectionID             = "connection_id"
	AttributeKeyClientID                 = "client_id"
	AttributeKeyCounterpartyClientID     = "counterparty_client_id"
	AttributeKeyCounterpartyConnectionID = "counterparty_connection_id"
)

func newConnectionEvent(eventType string, connID ibctypes.ConnectionId, clientID ibctypes.ClientId, cp Counterparty) sdk.Event {
	return sdk.NewEvent(
		eventType,
		sdk.NewAttribute(AttributeKeyConnectionID, string(connID)),
		sdk.NewAttribute(AttributeKeyClientID, string(clientID)),
		sdk.NewAttribute(AttributeKeyCounterpartyClientID, string(cp.ClientId)),
		sdk.NewAttribute(AttributeKeyCounterpartyConnectionID, string(cp.ConnectionId)),
	)
}

func EventOpenInitConnection(connID ibctypes.ConnectionId, clientID ibctypes.ClientId, cp Counterparty) sdk.Event {
	return newConnectionEvent(EventTypeOpenInitConnection, connID, clientID, cp)
}

func EventOpenTryConnection(connID ibctypes.ConnectionId, clientID ibctypes.ClientId, cp Counterparty) sdk.Event {
	return newConnectionEvent(EventTypeOpenTryConnection, connID, clientID, cp)
}

func EventOpenAckConnection(connID ibctypes.ConnectionId, clientID ibctypes.ClientId, cp Counterparty) sdk.Event {
	return newConnectionEvent(EventTypeOpenAckConnection, connID, clientID, cp)
}

func EventOpenConfirmConnection(connID ibctypes.ConnectionId, clientID ibctypes.ClientId, cp Counterparty) sdk.Event {
	return newConnectionEvent(EventTypeOpenConfirmConnection, connID, clientID, cp)
}
