package types

import (
	"fmt"

	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
)

// DefaultSudoCallGasLimit bounds the gas of a sudo call into a contract.
const DefaultSudoCallGasLimit uint64 = 1_000_000

type Params struct {
	SudoCallGasLimit uint64 `json:"sudo_call_gas_limit"`
}

func DefaultParams() Params {
	return Params{SudoCallGasLimit: DefaultSudoCallGasLimit}
}

func (p Params) Validate() error {
	if p.SudoCallGasLimit == 0 {
		return fmt.Errorf("sudo call gas limit must be positive")
	}
	return nil
}

// Failure is a sudo call into a contract that returned an error.
type Failure struct {
	Address     string `json:"address"`
	Id          uint64 `json:"id"`
	SudoPayload []byte `json:"sudo_payload"`
	Error       string `json:"error"`
}

// MsgUpdateParams replaces the params. Authority must be gov or the
// adminmodule.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

func (m MsgUpdateParams) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Authority); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority (%s)", err)
	}
	if err := m.Params.Validate(); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	return nil
}

func (m MsgUpdateParams) GetSigner() string { return m.Authority }

type MsgUpdateParamsResponse struct{}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryFailuresRequest lists the failures of Address, or of every
// contract when Address is empty.
type QueryFailuresRequest struct {
	Address string `json:"address"`
}

type QueryFailuresResponse struct {
	Failures []Failure `json:"failures"`
}

type QueryAddressFailureRequest struct {
	Address   string `json:"address"`
	FailureId uint64 `json:"failure_id"`
}

type QueryAddressFailureResponse struct {
	Failure Failure `json:"failure"`
}
