package types

import (
	sdkerrors "github.com/okx/testtube/types/errors"
)

var (
	ErrNoValidatorFound        = sdkerrors.Register(ModuleName, 3, "validator does not exist")
	ErrValidatorOwnerExists    = sdkerrors.Register(ModuleName, 4, "validator already exist for this operator address; must use new validator operator address")
	ErrBadDenom                = sdkerrors.Register(ModuleName, 11, "invalid coin denomination")
	ErrProposerMustBeValidator = sdkerrors.Register(ModuleName, 50, "the proposal of proposer must be validator")
)
