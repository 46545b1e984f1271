package commitment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	commitment "github.com/tokenize-x/ibc-core/core/23-commitment"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

func TestPacketCommitmentDeterministic(t *testing.T) {
	h := ibctypes.NewHeight(0, 10)
	c1 := commitment.PacketCommitment([]byte("hello"), h, 0)
	c2 := commitment.PacketCommitment([]byte("hello"), h, 0)
	require.Equal(t, c1, c2)

	c3 := commitment.PacketCommitment([]byte("hello"), ibctypes.NewHeight(0, 11), 0)
	require.NotEqual(t, c1, c3)
}

func TestAckCommitmentRejectsEmpty(t *testing.T) {
	_, err := commitment.AckCommitment(nil)
	require.ErrorIs(t, err, commitment.ErrEmptyAcknowledgement)

	got, err := commitment.AckCommitment([]byte("ok"))
	require.NoError(t, err)
	require.NotZero(t, got)
}
