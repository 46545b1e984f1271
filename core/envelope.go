// Package core wires the ICS-02/03/04 handler packages together behind a
// single dispatch entrypoint. It owns no storage, networking, or wire
// codec of its own (spec.md §1 Non-goals) — every side effect flows through
// the host-supplied ExecutionContext.
package core

import (
	client "github.com/tokenize-x/ibc-core/core/02-client"
	connection "github.com/tokenize-x/ibc-core/core/03-connection"
	channel "github.com/tokenize-x/ibc-core/core/04-channel"
)

// MsgEnvelope is the tagged union of every message this engine accepts,
// spec.md §4.G's single entrypoint shape. Callers (a gRPC msg service, a
// CLI, a test) populate exactly one field.
type MsgEnvelope struct {
	UpdateClient *client.MsgUpdateClient

	ConnectionOpenInit    *connection.MsgConnectionOpenInit
	ConnectionOpenTry     *connection.MsgConnectionOpenTry
	ConnectionOpenAck     *connection.MsgConnectionOpenAck
	ConnectionOpenConfirm *connection.MsgConnectionOpenConfirm

	ChannelOpenInit     *channel.MsgChannelOpenInit
	ChannelOpenTry      *channel.MsgChannelOpenTry
	ChannelOpenAck      *channel.MsgChannelOpenAck
	ChannelOpenConfirm  *channel.MsgChannelOpenConfirm
	ChannelCloseInit    *channel.MsgChannelCloseInit
	ChannelCloseConfirm *channel.MsgChannelCloseConfirm

	SendPacket      *channel.MsgSendPacket
	RecvPacket      *channel.MsgRecvPacket
	Acknowledgement *channel.MsgAcknowledgement
	Timeout         *channel.MsgTimeout
	TimeoutOnClose  *channel.MsgTimeoutOnClose
}

// set returns the single populated field and a label identifying it, or
// ok=false if zero or more than one field is populated.
func (e MsgEnvelope) set() (label string, ok bool) {
	fields := []struct {
		name string
		set  bool
	}{
		{"UpdateClient", e.UpdateClient != nil},
		{"ConnectionOpenInit", e.ConnectionOpenInit != nil},
		{"ConnectionOpenTry", e.ConnectionOpenTry != nil},
		{"ConnectionOpenAck", e.ConnectionOpenAck != nil},
		{"ConnectionOpenConfirm", e.ConnectionOpenConfirm != nil},
		{"ChannelOpenInit", e.ChannelOpenInit != nil},
		{"ChannelOpenTry", e.ChannelOpenTry != nil},
		{"ChannelOpenAck", e.ChannelOpenAck != nil},
		{"ChannelOpenConfirm", e.ChannelOpenConfirm != nil},
		{"ChannelCloseInit", e.ChannelCloseInit != nil},
		{"ChannelCloseConfirm", e.ChannelCloseConfirm != nil},
		{"SendPacket", e.SendPacket != nil},
		{"RecvPacket", e.RecvPacket != nil},
		{"Acknowledgement", e.Acknowledgement != nil},
		{"Timeout", e.Timeout != nil},
		{"TimeoutOnClose", e.TimeoutOnClose != nil},
	}
	found := ""
	count := 0
	for _, f := range fields {
		if f.set {
			found = f.name
			count++
		}
	}
	if count != 1 {
		return "", false
	}
	return found, true
}
