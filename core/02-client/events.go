package client

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// Event type and attribute key constants, closed per spec.md §6.
const (
	EventTypeUpdateClient       = "update_client"
	EventTypeClientMisbehaviour = "client_misbehaviour"
	EventTypeUpgradeClient      = "upgrade_client"
	EventTypeCreateClient       = "create_client"

	AttributeKeyClientID          = "client_id"
	AttributeKeyConsensusHeights   = "consensus_heights"
	AttributeKeyClientType        = "client_type"
)

// EventUpdateClient builds the sdk.Event emitted after a successful
// UpdateClient execution, carrying the heights newly installed.
func EventUpdateClient(clientID ibctypes.ClientId, clientType string, heights []ibctypes.Height) sdk.Event {
	heightStrs := make([]string, len(heights))
	for i, h := range heights {
		heightStrs[i] = h.String()
	}
	return sdk.NewEvent(
		EventTypeUpdateClient,
		sdk.NewAttribute(AttributeKeyClientID, string(clientID)),
		sdk.NewAttribute(AttributeKeyClientType, clientType),
		sdk.NewAttribute(AttributeKeyConsensusHeights, fmt.Sprintf("%v", heightStrs)),
	)
}

// MessageEvent builds the "Message(category)" marker event that precedes
// every domain event within a transaction (spec.md §6/§9 — load-bearing
// ordering).
func MessageEvent(category string) sdk.Event {
	return sdk.NewEvent(sdk.EventTypeMessage, sdk.NewAttribute("category", category))
}

// Message categories, used as the MessageEvent argument by every domain
// package.
const (
	CategoryClient     = "client"
	CategoryConnection = "connection"
	CategoryChannel    = "channel"
)
