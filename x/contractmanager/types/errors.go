package types

import (
	sdkerrors "github.com/okx/testtube/types/errors"
)

var (
	ErrIncorrectFailureToResubmit = sdkerrors.Register(ModuleName, 1101, "failure response not suitable to resubmit")
	ErrFailedToResubmitFailure    = sdkerrors.Register(ModuleName, 1102, "failed to resubmit failure")
	ErrInvalidAuthority           = sdkerrors.Register(ModuleName, 1103, "invalid authority")
	ErrNoFailure                  = sdkerrors.Register(ModuleName, 1104, "failure not found")
)
