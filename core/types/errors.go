package types

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace used for data-model construction errors.
const ModuleName = "ibccoretypes"

var (
	// ErrInvalidIdentifier is returned when an identifier string does not
	// obey the character class and length rules shared by every identifier
	// kind (ClientId, ConnectionId, PortId, ChannelId).
	ErrInvalidIdentifier = errorsmod.Register(ModuleName, 2, "invalid identifier")

	// ErrInvalidSequence is returned when a sequence number is zero.
	ErrInvalidSequence = errorsmod.Register(ModuleName, 3, "invalid sequence")

	// ErrInvalidLengthBounds is the error for length bounds that can never be
	// satisfied (min > max). No function in this module returns it.
	ErrInvalidLengthBounds = errorsmod.Register(ModuleName, 4, "invalid length bounds")
)
