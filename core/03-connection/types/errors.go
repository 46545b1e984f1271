package types

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace for ICS-03 connection errors.
const ModuleName = "ibccoreconnection"

var (
	ErrConnectionNotFound      = errorsmod.Register(ModuleName, 2, "connection not found")
	ErrInvalidState            = errorsmod.Register(ModuleName, 3, "connection is not in the expected state")
	ErrInvalidCounterparty     = errorsmod.Register(ModuleName, 4, "invalid counterparty")
	ErrVersionNegotiationFailed = errorsmod.Register(ModuleName, 5, "version negotiation failed")
	ErrInvalidClientState      = errorsmod.Register(ModuleName, 6, "invalid client state")
	ErrInvalidConsensusState   = errorsmod.Register(ModuleName, 7, "invalid consensus state")
)
