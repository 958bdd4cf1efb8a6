package types

import (
	sdkerrors "github.com/okx/testtube/types/errors"
)

var (
	ErrInvalidCurrencyPair      = sdkerrors.Register(ModuleName, 2, "invalid currency pair")
	ErrCurrencyPairNotFound     = sdkerrors.Register(ModuleName, 3, "currency pair not found")
	ErrCurrencyPairAlreadyExist = sdkerrors.Register(ModuleName, 4, "currency pair already exists")
	ErrNoPrice                  = sdkerrors.Register(ModuleName, 5, "no price for currency pair")
	ErrInvalidPrice             = sdkerrors.Register(ModuleName, 6, "invalid price")
)
