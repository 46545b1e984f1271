package exported

import (
	errorsmod "cosmossdk.io/errors"
)

// ModuleName is the codespace for proof-verification errors (§7 ProofError).
const ModuleName = "ibccoreproof"

var (
	ErrMissingProof                     = errorsmod.Register(ModuleName, 2, "proof is required but missing")
	ErrMembershipVerificationFailed     = errorsmod.Register(ModuleName, 3, "membership verification failed")
	ErrNonMembershipVerificationFailed  = errorsmod.Register(ModuleName, 4, "non-membership verification failed")
)
