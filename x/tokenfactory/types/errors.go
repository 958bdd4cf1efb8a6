package types

import (
	"fmt"

	sdkerrors "github.com/okx/testtube/types/errors"
)

var (
	ErrDenomExists              = sdkerrors.Register(ModuleName, 2, "attempting to create a denom that already exists (has bank metadata)")
	ErrUnauthorized             = sdkerrors.Register(ModuleName, 3, "unauthorized account")
	ErrInvalidDenom             = sdkerrors.Register(ModuleName, 4, "invalid denom")
	ErrInvalidCreator           = sdkerrors.Register(ModuleName, 5, "invalid creator")
	ErrInvalidAuthorityMetadata = sdkerrors.Register(ModuleName, 6, "invalid authority metadata")
	ErrSubdenomTooLong          = sdkerrors.Register(ModuleName, 8, fmt.Sprintf("subdenom too long, max length is %d bytes", MaxSubdenomLength))
	ErrCreatorTooLong           = sdkerrors.Register(ModuleName, 9, fmt.Sprintf("creator too long, max length is %d bytes", MaxCreatorLength))
	ErrDenomDoesNotExist        = sdkerrors.Register(ModuleName, 10, "denom does not exist")
	ErrBurnFromModuleAccount    = sdkerrors.Register(ModuleName, 11, "burning from Module Account is not allowed")
	ErrInvalidAuthority         = sdkerrors.Register(ModuleName, 12, "invalid authority")
)
