package client

import (
	ibctypes "github.com/tokenize-x/ibc-core/core/types"

	"github.com/tokenize-x/ibc-core/core/exported"
)

// MsgUpdateClient carries a new header (or misbehaviour evidence) for an
// existing client, per ICS-02. Mirrors the shape of cosmos-ibc-rs's
// ClientMsg::UpdateClient (original_source/ibc-core/ics02-client/types/src/msgs/update_client.rs).
type MsgUpdateClient struct {
	ClientId      ibctypes.ClientId
	ClientMessage exported.ClientMessage
	Signer        string
}

// ValidateBasic performs stateless validation of the message shape.
func (m MsgUpdateClient) ValidateBasic() error {
	if err := ibctypes.ValidateIdentifier(string(m.ClientId)); err != nil {
		return ErrInvalidClientIdentifier.Wrap(err.Error())
	}
	if m.ClientMessage == nil {
		return ErrHeaderVerificationFailure.Wrap("client message must not be nil")
	}
	return nil
}
