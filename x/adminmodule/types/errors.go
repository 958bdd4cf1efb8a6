package types

import (
	sdkerrors "github.com/okx/testtube/types/errors"
)

var (
	ErrNotAdmin           = sdkerrors.Register(ModuleName, 2, "sender is not an admin")
	ErrAdminAlreadyExists = sdkerrors.Register(ModuleName, 3, "admin already exists")
	ErrAdminNotFound      = sdkerrors.Register(ModuleName, 4, "admin does not exist")
	ErrLastAdmin          = sdkerrors.Register(ModuleName, 5, "cannot delete the last admin")
	ErrNoProposalMsgs     = sdkerrors.Register(ModuleName, 6, "proposal has no messages")
	ErrInvalidProposalMsg = sdkerrors.Register(ModuleName, 7, "invalid proposal message")
	ErrInvalidSigner      = sdkerrors.Register(ModuleName, 8, "expected adminmodule account as only signer for proposal message")
	ErrProposalExecution  = sdkerrors.Register(ModuleName, 9, "proposal execution failed")
)
