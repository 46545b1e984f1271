package host_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	host "github.com/tokenize-x/ibc-core/core/24-host"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

func TestPathShapes(t *testing.T) {
	port := ibctypes.PortId("transfer")
	chann := ibctypes.ChannelId("channel-0")

	require.Equal(t, "channelEnds/ports/transfer/channels/channel-0", host.ChannelPath(port, chann))
	require.Equal(t, "commitments/ports/transfer/channels/channel-0/sequences/1", host.PacketCommitmentPath(port, chann, 1))
	require.Equal(t, "receipts/ports/transfer/channels/channel-0/sequences/1", host.PacketReceiptPath(port, chann, 1))
	require.Equal(t, "acks/ports/transfer/channels/channel-0/sequences/1", host.PacketAcknowledgementPath(port, chann, 1))
	require.Equal(t, "connections/connection-0", host.ConnectionPath("connection-0"))
	require.Equal(t, "clients/07-tendermint-0/clientState", host.ClientStatePath("07-tendermint-0"))
	require.Equal(t, "clients/07-tendermint-0/consensusStates/0-2", host.ConsensusStatePath("07-tendermint-0", ibctypes.NewHeight(0, 2)))
}
