package types

import (
	errorsmod "cosmossdk.io/errors"

	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// Packet is the application-level message carried between two channel
// endpoints, per spec.md §3.
type Packet struct {
	Sequence         ibctypes.Sequence
	SourcePort       ibctypes.PortId
	SourceChannel    ibctypes.ChannelId
	DestPort         ibctypes.PortId
	DestChannel      ibctypes.ChannelId
	Data             []byte
	TimeoutHeight    ibctypes.Height    // ZeroHeight means unset
	TimeoutTimestamp ibctypes.Timestamp // ZeroTimestamp means unset
}

// ValidateBasic checks the packet shape invariants: sequence must be
// nonzero, data must be non-empty, and at least one timeout bound must be
// set.
func (p Packet) ValidateBasic() error {
	if p.Sequence == 0 {
		return ErrInvalidPacket.Wrap("sequence must be >= 1")
	}
	if len(p.Data) == 0 {
		return ErrInvalidPacket.Wrap("data must be non-empty")
	}
	if p.TimeoutHeight.IsZero() && !p.TimeoutTimestamp.IsSet() {
		return ErrMissingTimeout.Wrap("at least one of timeout_height or timeout_timestamp must be set")
	}
	return nil
}

// ErrInvalidPacket is a construction-time validation error, distinct from
// the §7 PacketError taxonomy returned by handlers.
var ErrInvalidPacket = errorsmod.Register(ModuleName, 20, "invalid packet")
