package types

import (
	sdkerrors "github.com/okx/testtube/types/errors"
)

var (
	ErrMarketDoesNotExist    = sdkerrors.Register(ModuleName, 2, "market does not exist")
	ErrMarketAlreadyExists   = sdkerrors.Register(ModuleName, 3, "market already exists")
	ErrInvalidMarket         = sdkerrors.Register(ModuleName, 4, "invalid market")
	ErrUnauthorizedAuthority = sdkerrors.Register(ModuleName, 5, "signer is not a market authority")
	ErrInvalidAdmin          = sdkerrors.Register(ModuleName, 6, "signer is not the market map admin")
	ErrInvalidParams         = sdkerrors.Register(ModuleName, 7, "invalid params")
)
