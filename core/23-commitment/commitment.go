// Package commitment implements the deterministic fingerprints stored on
// chain in place of full packet/acknowledgement payloads.
package commitment

import (
	"crypto/sha256"
	"encoding/binary"

	errorsmod "cosmossdk.io/errors"

	ibctypes "github.com/tokenize-x/ibc-core/core/types"
)

// ModuleName is the codespace for commitment-layer errors.
const ModuleName = "ibccorecommitment"

// ErrEmptyAcknowledgement is returned by AckCommitment for the empty byte
// sequence, which is forbidden at acknowledgement construction.
var ErrEmptyAcknowledgement = errorsmod.Register(ModuleName, 2, "acknowledgement cannot be empty")

// PacketCommitment computes the 32-byte fingerprint of a packet's payload
// and timeout bounds:
//
//	sha256(timeout_timestamp_be || timeout_height_revnum_be || timeout_height_revheight_be || sha256(data))
//
// An absent height encodes as (0,0); an absent timestamp encodes as 0. The
// encoding is fixed and must stay byte-exact with the reference
// implementation.
func PacketCommitment(data []byte, timeoutHeight ibctypes.Height, timeoutTimestamp ibctypes.Timestamp) [32]byte {
	dataHash := sha256.Sum256(data)

	buf := make([]byte, 0, 8+8+8+32)
	var tmp [8]byte

	binary.BigEndian.PutUint64(tmp[:], uint64(timeoutTimestamp))
	buf = append(buf, tmp[:]...)

	binary.BigEndian.PutUint64(tmp[:], timeoutHeight.RevisionNumber)
	buf = append(buf, tmp[:]...)

	binary.BigEndian.PutUint64(tmp[:], timeoutHeight.RevisionHeight)
	buf = append(buf, tmp[:]...)

	buf = append(buf, dataHash[:]...)

	return sha256.Sum256(buf)
}

// AckCommitment computes the 32-byte fingerprint of acknowledgement bytes.
// It fails with ErrEmptyAcknowledgement on the empty byte sequence — the
// same invariant enforced at Acknowledgement construction time, checked
// again here because the commitment layer must never silently hash nothing.
func AckCommitment(ack []byte) ([32]byte, error) {
	if len(ack) == 0 {
		return [32]byte{}, ErrEmptyAcknowledgement
	}
	return sha256.Sum256(ack), nil
}
