package client

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace for ICS-02 client errors.
const ModuleName = "ibccoreclient"

var (
	ErrClientStateNotFound       = errorsmod.Register(ModuleName, 2, "client state not found")
	ErrConsensusStateNotFound    = errorsmod.Register(ModuleName, 3, "consensus state not found")
	ErrClientFrozen              = errorsmod.Register(ModuleName, 4, "client is frozen")
	ErrClientNotActive           = errorsmod.Register(ModuleName, 5, "client is not active")
	ErrHeaderVerificationFailure = errorsmod.Register(ModuleName, 6, "header failed verification")
	ErrUpdateMetaDataNotFound    = errorsmod.Register(ModuleName, 7, "update metadata not found")
	ErrInvalidClientIdentifier   = errorsmod.Register(ModuleName, 8, "invalid client identifier")
)
