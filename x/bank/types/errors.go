package types

import (
	sdkerrors "github.com/okx/testtube/types/errors"
)

var (
	ErrNoInputs              = sdkerrors.Register(ModuleName, 2, "no inputs to send transaction")
	ErrSendDisabled          = sdkerrors.Register(ModuleName, 5, "send transactions are disabled")
	ErrDenomMetadataNotFound = sdkerrors.Register(ModuleName, 6, "client denom metadata not found")
	ErrInvalidAuthority      = sdkerrors.Register(ModuleName, 7, "invalid authority")
)
