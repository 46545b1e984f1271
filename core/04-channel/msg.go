package channel

import (
	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
	"github.com/tokenize-x/ibc-core/core/exported"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// MsgChannelOpenInit starts a channel handshake on this chain.
type MsgChannelOpenInit struct {
	PortId         ibctypes.PortId
	Channel        channeltypes.ChannelEnd // State/Counterparty.ChannelId are ignored; Init is assigned here
	Signer         string
}

// MsgChannelOpenTry is submitted on chain B in response to chain A's Init.
type MsgChannelOpenTry struct {
	PortId                    ibctypes.PortId
	CounterpartyChosenChannelId ibctypes.ChannelId
	Channel                   channeltypes.ChannelEnd
	CounterpartyVersion       string
	ProofInit                 exported.Proof
	ProofHeight               ibctypes.Height
	Signer                    string
}

// MsgChannelOpenAck is submitted on chain A once chain B reports TryOpen.
type MsgChannelOpenAck struct {
	PortId                ibctypes.PortId
	ChannelId             ibctypes.ChannelId
	CounterpartyChannelId ibctypes.ChannelId
	CounterpartyVersion   string
	ProofTry              exported.Proof
	ProofHeight           ibctypes.Height
	Signer                string
}

// MsgChannelOpenConfirm is submitted on chain B once chain A reports Open.
type MsgChannelOpenConfirm struct {
	PortId      ibctypes.PortId
	ChannelId   ibctypes.ChannelId
	ProofAck    exported.Proof
	ProofHeight ibctypes.Height
	Signer      string
}

// MsgChannelCloseInit closes a channel on this chain unilaterally, subject
// to port-owner authority (delegated to the caller/router, spec.md §4.E).
type MsgChannelCloseInit struct {
	PortId    ibctypes.PortId
	ChannelId ibctypes.ChannelId
	Signer    string
}

// MsgChannelCloseConfirm mirrors a counterparty-initiated close.
type MsgChannelCloseConfirm struct {
	PortId      ibctypes.PortId
	ChannelId   ibctypes.ChannelId
	ProofInit   exported.Proof
	ProofHeight ibctypes.Height
	Signer      string
}

// MsgSendPacket is invoked by an application module, not by a relayed
// message (spec.md §4.F.1 — send_packet has no proofs).
type MsgSendPacket struct {
	SourcePort       ibctypes.PortId
	SourceChannel    ibctypes.ChannelId
	Data             []byte
	TimeoutHeight    ibctypes.Height
	TimeoutTimestamp ibctypes.Timestamp
}

// MsgRecvPacket carries a relayed packet plus a membership proof of its
// commitment on the source chain.
type MsgRecvPacket struct {
	Packet          channeltypes.Packet
	ProofCommitment exported.Proof
	ProofHeight     ibctypes.Height
	Signer          string
}

// MsgAcknowledgement carries a relayed acknowledgement plus a membership
// proof of its commitment on the destination chain.
type MsgAcknowledgement struct {
	Packet          channeltypes.Packet
	Acknowledgement channeltypes.Acknowledgement
	ProofAcked      exported.Proof
	ProofHeight     ibctypes.Height
	Signer          string
}

// MsgTimeout carries a relayed packet plus either a non-membership proof of
// its receipt (unordered) or a membership proof that the counterparty's
// next_sequence_recv has advanced past it (ordered).
type MsgTimeout struct {
	Packet              channeltypes.Packet
	ProofUnreceived      exported.Proof
	ProofHeight          ibctypes.Height
	NextSequenceRecv     ibctypes.Sequence
	Signer               string
}

// MsgTimeoutOnClose is like MsgTimeout but additionally proves the
// counterparty channel end is Closed, and skips the deadline check.
type MsgTimeoutOnClose struct {
	Packet           channeltypes.Packet
	ProofUnreceived  exported.Proof
	ProofClose       exported.Proof
	ProofHeight      ibctypes.Height
	NextSequenceRecv ibctypes.Sequence
	Signer           string
}
