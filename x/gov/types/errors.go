package types

import (
	sdkerrors "github.com/okx/testtube/types/errors"
)

var (
	ErrUnknownProposal       = sdkerrors.Register(ModuleName, 2, "unknown proposal")
	ErrInactiveProposal      = sdkerrors.Register(ModuleName, 3, "inactive proposal")
	ErrAlreadyActiveProposal = sdkerrors.Register(ModuleName, 4, "proposal already active")
	ErrInvalidVote           = sdkerrors.Register(ModuleName, 9, "invalid vote option")
	ErrNoProposalMsgs        = sdkerrors.Register(ModuleName, 12, "no messages proposed")
	ErrInvalidProposalMsg    = sdkerrors.Register(ModuleName, 13, "invalid proposal message")
	ErrInvalidSigner         = sdkerrors.Register(ModuleName, 14, "expected gov account as only signer for proposal message")
	ErrMetadataTooLong       = sdkerrors.Register(ModuleName, 16, "metadata too long")
	ErrMinDepositTooSmall    = sdkerrors.Register(ModuleName, 17, "minimum deposit is too small")
	ErrInvalidAuthority      = sdkerrors.Register(ModuleName, 18, "invalid authority")
)
