package types

import (
	sdkerrors "github.com/okx/testtube/types/errors"
)

var (
	ErrAccountNotFound       = sdkerrors.Register(ModuleName, 2, "account not found")
	ErrModuleAccountNotFound = sdkerrors.Register(ModuleName, 3, "module account not found")
)
