package connection

import (
	connectiontypes "github.com/tokenize-x/ibc-core/core/03-connection/types"
)

// PickVersion implements spec.md §4.D's negotiation rule: the responder
// picks the first version in the initiator's proposed list (the
// initiator's preference order is the tie-break) that also appears in the
// responder's supported set.
func PickVersion(proposed, supported []connectiontypes.Version) (connectiontypes.Version, error) {
	for _, p := range proposed {
		for _, s := range supported {
			if p.Identifier == s.Identifier && sameFeatures(p.Features, s.Features) {
				return p, nil
			}
		}
	}
	return connectiontypes.Version{}, connectiontypes.ErrVersionNegotiationFailed.Wrap(
		"no proposed version is supported")
}

// ConfirmVersion implements ConnOpenAck's check: the version the initiator
// receives back must be the exact singleton it originally proposed a
// superset of.
func ConfirmVersion(proposed []connectiontypes.Version, chosen connectiontypes.Version) error {
	for _, p := range proposed {
		if p.Identifier == chosen.Identifier && sameFeatures(p.Features, chosen.Features) {
			return nil
		}
	}
	return connectiontypes.ErrVersionNegotiationFailed.Wrapf(
		"chosen version %s not among proposed versions", chosen.Identifier)
}

func sameFeatures(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		// No feature constraints on either side: identifier match alone is
		// sufficient, which is the common case (single default version).
		return true
	}
	set := make(map[string]struct{}, len(b))
	for _, f := range b {
		set[f] = struct{}{}
	}
	for _, f := range a {
		if _, ok := set[f]; !ok {
			return false
		}
	}
	return true
}
