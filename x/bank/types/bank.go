package types

import (
	"fmt"

	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
)

// DenomUnit is one unit of a denomination and its decimal exponent
// relative to the base.
type DenomUnit struct {
	Denom    string   `json:"denom"`
	Exponent uint32   `json:"exponent"`
	Aliases  []string `json:"aliases"`
}

// Metadata describes a denomination.
type Metadata struct {
	Description string      `json:"description"`
	DenomUnits  []DenomUnit `json:"denom_units"`
	Base        string      `json:"base"`
	Display     string      `json:"display"`
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol"`
	URI         string      `json:"uri"`
	URIHash     string      `json:"uri_hash"`
}

// Validate checks the base unit exists with exponent zero and exponents
// strictly increase.
func (m Metadata) Validate() error {
	if err := sdk.ValidateDenom(m.Base); err != nil {
		return fmt.Errorf("invalid metadata base denom: %w", err)
	}
	if len(m.DenomUnits) == 0 {
		return nil
	}
	if m.DenomUnits[0].Denom != m.Base || m.DenomUnits[0].Exponent != 0 {
		return fmt.Errorf("the first denomination unit must be the base denom %s with exponent 0", m.Base)
	}
	for i := 1; i < len(m.DenomUnits); i++ {
		if m.DenomUnits[i].Exponent <= m.DenomUnits[i-1].Exponent {
			return fmt.Errorf("denom units must be sorted by strictly increasing exponent")
		}
	}
	return nil
}

// Params of the bank module.
type Params struct {
	DefaultSendEnabled bool `json:"default_send_enabled"`
}

func DefaultParams() Params { return Params{DefaultSendEnabled: true} }

func (p Params) Validate() error { return nil }

// MsgSend moves Amount from FromAddress to ToAddress.
type MsgSend struct {
	FromAddress string    `json:"from_address"`
	ToAddress   string    `json:"to_address"`
	Amount      sdk.Coins `json:"amount"`
}

func (msg MsgSend) ValidateBasic() error {
	if err := sdk.ValidateAddress(msg.FromAddress); err != nil {
		return sdkerrors.Wrapf(err, "invalid from address")
	}
	if err := sdk.ValidateAddress(msg.ToAddress); err != nil {
		return sdkerrors.Wrapf(err, "invalid to address")
	}
	if len(msg.Amount) == 0 {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, "send amount is empty")
	}
	if err := msg.Amount.Validate(); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, err.Error())
	}
	return nil
}

func (msg MsgSend) GetSigner() string { return msg.FromAddress }

type MsgSendResponse struct{}

// MsgUpdateParams replaces the bank params. Authority must be gov.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

func (msg MsgUpdateParams) ValidateBasic() error {
	if err := sdk.ValidateAddress(msg.Authority); err != nil {
		return sdkerrors.Wrap(err, "invalid authority address")
	}
	return msg.Params.Validate()
}

func (msg MsgUpdateParams) GetSigner() string { return msg.Authority }

type MsgUpdateParamsResponse struct{}
