package connection

import (
	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
	"github.com/tokenize-x/ibc-core/core/exported"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// MsgConnectionOpenInit starts a handshake on this chain; no proofs are
// needed since nothing has happened on the counterparty yet.
type MsgConnectionOpenInit struct {
	ClientId     ibctypes.ClientId
	Counterparty connectiontypes.Counterparty
	Version      *connectiontypes.Version // nil means "propose every supported version"
	DelayPeriod  uint64
	Signer       string
}

// MsgConnectionOpenTry is submitted on chain B in response to chain A's
// Init. ProofInit is a membership proof that A is Init (or already
// TryOpen); ProofClient is a membership proof of B's client state as A
// stores it.
type MsgConnectionOpenTry struct {
	CounterpartyChosenConnectionId ibctypes.ConnectionId // A's view of this connection, if A is re-trying
	ClientId                       ibctypes.ClientId
	Counterparty                   connectiontypes.Counterparty
	DelayPeriod                    uint64
	CounterpartyVersions           []connectiontypes.Version
	ProofHeight                    ibctypes.Height
	ProofInit                      exported.Proof
	ProofClient                    exported.Proof
	ClientState                    exported.ClientState // A's stored view of B
	ConsensusHeight                ibctypes.Height
	ProofConsensus                 exported.Proof
	Signer                         string
}

// MsgConnectionOpenAck is submitted on chain A once chain B reports TryOpen.
type MsgConnectionOpenAck struct {
	ConnectionId                   ibctypes.ConnectionId
	CounterpartyConnectionId       ibctypes.ConnectionId
	Version                        connectiontypes.Version
	ProofHeight                    ibctypes.Height
	ProofTry                       exported.Proof
	ProofClient                    exported.Proof
	ClientState                    exported.ClientState
	ConsensusHeight                ibctypes.Height
	ProofConsensus                 exported.Proof
	Signer                         string
}

// MsgConnectionOpenConfirm is submitted on chain B once chain A reports Open.
type MsgConnectionOpenConfirm struct {
	ConnectionId ibctypes.ConnectionId
	ProofHeight  ibctypes.Height
	ProofAck     exported.Proof
	Signer       string
}
