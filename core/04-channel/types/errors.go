package types

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace for ICS-04 channel and packet errors.
const ModuleName = "ibccorechannel"

var (
	// ChannelError
	ErrChannelNotFound     = errorsmod.Register(ModuleName, 2, "channel not found")
	ErrInvalidChannelState = errorsmod.Register(ModuleName, 3, "invalid channel state")
	ErrInvalidOrdering     = errorsmod.Register(ModuleName, 4, "invalid channel ordering")
	ErrChannelClosed       = errorsmod.Register(ModuleName, 5, "channel is closed")
	ErrConnectionNotOpen   = errorsmod.Register(ModuleName, 6, "connection is not open")
	ErrUnsupportedMultiHop = errorsmod.Register(ModuleName, 7, "multi-hop channels are not supported")

	// PacketError
	ErrPacketCommitmentNotFound    = errorsmod.Register(ModuleName, 10, "packet commitment not found")
	ErrPacketCommitmentMismatch    = errorsmod.Register(ModuleName, 11, "packet commitment mismatch")
	ErrPacketReceiptAlreadyExists  = errorsmod.Register(ModuleName, 12, "packet receipt already exists")
	ErrPacketTimeoutNotReached     = errorsmod.Register(ModuleName, 13, "packet timeout not reached")
	ErrPacketTimeout               = errorsmod.Register(ModuleName, 14, "packet timeout deadline exceeded")
	ErrInvalidPacketSequence       = errorsmod.Register(ModuleName, 15, "invalid packet sequence")
	ErrInvalidAcknowledgement      = errorsmod.Register(ModuleName, 16, "invalid acknowledgement")
	ErrMissingTimeout              = errorsmod.Register(ModuleName, 17, "packet must have a timeout height or timestamp")

	// HostInvariantViolated signals host-store corruption: a state this
	// engine's own invariants (spec.md §3) guarantee cannot happen.
	ErrHostInvariantViolated = errorsmod.Register(ModuleName, 30, "host invariant violated")
)
