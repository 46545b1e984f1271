package hosttest

import (
	"bytes"
	"fmt"

	"github.com/tokenize-x/ibc-core/core/exported"
	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// MockClientState is a minimal exported.ClientState double. Membership is
// simulated rather than cryptographically verified: a proof is "valid" iff
// it is byte-identical to the expected value, the same trivial-codec
// convention used by ibc-testkit's mock client
// (original_source/ibc-testkit/src/testapp/ibc/clients/mock).
type MockClientState struct {
	Latest ibctypes.Height
	Frozen bool
}

func (m *MockClientState) Reset()         {}
func (m *MockClientState) String() string { return fmt.Sprintf("MockClientState{latest=%s}", m.Latest) }
func (m *MockClientState) ProtoMessage()  {}

func (m *MockClientState) ClientType() string              { return "mock" }
func (m *MockClientState) LatestHeight() ibctypes.Height    { return m.Latest }

func (m *MockClientState) Status(_ exported.ConsensusState, _ ibctypes.Timestamp) exported.Status {
	if m.Frozen {
		return exported.Frozen
	}
	return exported.Active
}

func (m *MockClientState) VerifyMembership(_ exported.ConsensusState, proof exported.Proof, path exported.Path, value []byte) error {
	if !bytes.Equal(proof, value) {
		return fmt.Errorf("mock membership proof mismatch at path %q", path.String())
	}
	return nil
}

func (m *MockClientState) VerifyNonMembership(_ exported.ConsensusState, proof exported.Proof, path exported.Path) error {
	if len(proof) != 0 {
		return fmt.Errorf("mock non-membership proof must be empty at path %q", path.String())
	}
	return nil
}

func (m *MockClientState) UpdateState(_ exported.ConsensusState, clientMessage exported.ClientMessage) ([]exported.NewConsensusState, error) {
	header, ok := clientMessage.(*MockHeader)
	if !ok {
		return nil, fmt.Errorf("unexpected client message type %T", clientMessage)
	}
	m.Latest = header.Height
	return []exported.NewConsensusState{
		{Height: header.Height, State: &MockConsensusState{Timestamp: header.Timestamp, RootBytes: header.Root}},
	}, nil
}

var _ exported.ClientState = (*MockClientState)(nil)

// MockConsensusState is a minimal exported.ConsensusState double.
type MockConsensusState struct {
	Timestamp ibctypes.Timestamp
	RootBytes []byte
}

func (m *MockConsensusState) Reset()         {}
func (m *MockConsensusState) String() string { return "MockConsensusState" }
func (m *MockConsensusState) ProtoMessage()  {}

func (m *MockConsensusState) ClientType() string                 { return "mock" }
func (m *MockConsensusState) GetRoot() exported.Root              { return mockRoot(m.RootBytes) }
func (m *MockConsensusState) GetTimestamp() ibctypes.Timestamp    { return m.Timestamp }

var _ exported.ConsensusState = (*MockConsensusState)(nil)

type mockRoot []byte

func (r mockRoot) Bytes() []byte { return r }

// MockHeader is a minimal exported.ClientMessage double used to drive
// UpdateClient in tests.
type MockHeader struct {
	Height    ibctypes.Height
	Timestamp ibctypes.Timestamp
	Root      []byte
}

func (h *MockHeader) Reset()         {}
func (h *MockHeader) String() string { return fmt.Sprintf("MockHeader{%s}", h.Height) }
func (h *MockHeader) ProtoMessage()  {}

func (h *MockHeader) ClientType() string { return "mock" }

var _ exported.ClientMessage = (*MockHeader)(nil)
