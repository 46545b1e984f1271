package core

import (
	errorsmod "cosmossdk.io/errors"

	channel "github.com/tokenize-x/ibc-core/core/04-channel"
)

// ModuleName is the codespace for dispatch-layer errors.
const ModuleName = "ibccore"

// ErrInvalidEnvelope is returned when a MsgEnvelope carries zero or more
// than one populated message.
var ErrInvalidEnvelope = errorsmod.Register(ModuleName, 1, "envelope must carry exactly one message")

// ValidationContext is the full read-only host surface the engine needs,
// spanning ICS-02/03/04 — every handler package's ValidationContext embeds
// into this one, so any host satisfying it can run the whole engine.
type ValidationContext = channel.ValidationContext

// ExecutionContext is the mutating counterpart of ValidationContext.
type ExecutionContext = channel.ExecutionContext

// Router resolves the application Module bound to a port.
type Router = channel.Router

// Module is the application callback surface invoked during handshakes and
// packet processing.
type Module = channel.Module

// PortAuthority gates ChannelCloseInit to whoever owns the port.
type PortAuthority = channel.PortAuthority
