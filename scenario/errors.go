package scenario

import (
	sdkerrors "github.com/okx/testtube/types/errors"
)

const codespace = "scenario"

var (
	ErrEmptyContent    = sdkerrors.Register(codespace, 1, "empty scenario")
	ErrUnmarshalYAML   = sdkerrors.Register(codespace, 2, "failed to parse scenario yaml")
	ErrInvalidAccount  = sdkerrors.Register(codespace, 3, "invalid account")
	ErrInvalidStep     = sdkerrors.Register(codespace, 4, "invalid step")
	ErrUnknownAction   = sdkerrors.Register(codespace, 5, "unknown action")
	ErrMissingArg      = sdkerrors.Register(codespace, 6, "missing argument")
	ErrInvalidArg      = sdkerrors.Register(codespace, 7, "invalid argument")
	ErrStepFailed      = sdkerrors.Register(codespace, 8, "step failed")
	ErrExpectedFailure = sdkerrors.Register(codespace, 9, "step succeeded but a failure was expected")
)
