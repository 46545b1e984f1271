package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	channeltypes "github.com/tokenize-x/ibc-core/core/04-channel/types"
)

// TestNewAcknowledgementRejectsEmptyBytes is the literal S6 scenario: an
// empty acknowledgement payload is rejected at construction.
func TestNewAcknowledgementRejectsEmptyBytes(t *testing.T) {
	_, err := channeltypes.NewAcknowledgement(nil)
	require.ErrorIs(t, err, channeltypes.ErrInvalidAcknowledgement)

	_, err = channeltypes.NewAcknowledgement([]byte{})
	require.ErrorIs(t, err, channeltypes.ErrInvalidAcknowledgement)
}

func TestNewResultAndErrorAcknowledgement(t *testing.T) {
	ack, err := channeltypes.NewResultAcknowledgement([]byte("payload"))
	require.NoError(t, err)
	require.NotEmpty(t, ack.Bytes())

	ack, err = channeltypes.NewErrorAcknowledgement("boom")
	require.NoError(t, err)
	require.NotEmpty(t, ack.Bytes())
}
