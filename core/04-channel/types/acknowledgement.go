package types

import (
	"encoding/base64"
	"encoding/json"
)

// Acknowledgement is non-empty, application-defined opaque bytes returned by
// the receiver. The empty byte sequence is forbidden at construction
// (spec.md §3, §8 S6), grounded on original_source's
// `ibc/src/core/ics04_channel/acknowledgement.rs` non-empty invariant.
type Acknowledgement struct {
	bytes []byte
}

// NewAcknowledgement constructs an opaque Acknowledgement, rejecting the
// empty byte sequence.
func NewAcknowledgement(b []byte) (Acknowledgement, error) {
	if len(b) == 0 {
		return Acknowledgement{}, ErrInvalidAcknowledgement.Wrap("acknowledgement bytes must be non-empty")
	}
	return Acknowledgement{bytes: b}, nil
}

// Bytes returns the opaque acknowledgement payload.
func (a Acknowledgement) Bytes() []byte { return a.bytes }

// ackResult is the canonical JSON wrapper applications commonly use; the
// engine never interprets it — it is provided as a convenience constructor
// only, per spec.md §3 ("the engine treats the value opaquely").
type ackResult struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// NewResultAcknowledgement builds the canonical success wrapper
// {"result": "<base64>"}.
func NewResultAcknowledgement(result []byte) (Acknowledgement, error) {
	b, err := json.Marshal(ackResult{Result: base64.StdEncoding.EncodeToString(result)})
	if err != nil {
		return Acknowledgement{}, err
	}
	return NewAcknowledgement(b)
}

// NewErrorAcknowledgement builds the canonical error wrapper
// {"error": "<msg>"}.
func NewErrorAcknowledgement(msg string) (Acknowledgement, error) {
	b, err := json.Marshal(ackResult{Error: msg})
	if err != nil {
		return Acknowledgement{}, err
	}
	return NewAcknowledgement(b)
}
