package types

import (
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
	banktypes "github.com/okx/testtube/x/bank/types"
)

// MsgCreateDenom creates factory/{Sender}/{Subdenom} with Sender as admin.
type MsgCreateDenom struct {
	Sender   string `json:"sender"`
	Subdenom string `json:"subdenom"`
}

func (m MsgCreateDenom) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Sender); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "Invalid sender address (%s)", err)
	}
	if _, err := GetTokenDenom(m.Sender, m.Subdenom); err != nil {
		return sdkerrors.Wrap(ErrInvalidDenom, err.Error())
	}
	return nil
}

func (m MsgCreateDenom) GetSigner() string { return m.Sender }

type MsgCreateDenomResponse struct {
	NewTokenDenom string `json:"new_token_denom"`
}

// MsgMint mints Amount to MintToAddress, or to Sender when it is empty.
type MsgMint struct {
	Sender        string   `json:"sender"`
	Amount        sdk.Coin `json:"amount"`
	MintToAddress string   `json:"mint_to_address"`
}

func (m MsgMint) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Sender); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "Invalid sender address (%s)", err)
	}
	if m.MintToAddress != "" {
		if err := sdk.ValidateAddress(m.MintToAddress); err != nil {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "Invalid mint to address (%s)", err)
		}
	}
	if err := m.Amount.Validate(); err != nil || !m.Amount.IsPositive() {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, m.Amount.String())
	}
	return nil
}

func (m MsgMint) GetSigner() string { return m.Sender }

type MsgMintResponse struct{}

// MsgBurn burns Amount from BurnFromAddress, or from Sender when it is
// empty.
type MsgBurn struct {
	Sender          string   `json:"sender"`
	Amount          sdk.Coin `json:"amount"`
	BurnFromAddress string   `json:"burn_from_address"`
}

func (m MsgBurn) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Sender); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "Invalid sender address (%s)", err)
	}
	if m.BurnFromAddress != "" {
		if err := sdk.ValidateAddress(m.BurnFromAddress); err != nil {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "Invalid burn from address (%s)", err)
		}
	}
	if err := m.Amount.Validate(); err != nil || !m.Amount.IsPositive() {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, m.Amount.String())
	}
	return nil
}

func (m MsgBurn) GetSigner() string { return m.Sender }

type MsgBurnResponse struct{}

// MsgChangeAdmin hands the admin role of Denom to NewAdmin.
type MsgChangeAdmin struct {
	Sender   string `json:"sender"`
	Denom    string `json:"denom"`
	NewAdmin string `json:"new_admin"`
}

func (m MsgChangeAdmin) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Sender); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "Invalid sender address (%s)", err)
	}
	if err := sdk.ValidateAddress(m.NewAdmin); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "Invalid address (%s)", err)
	}
	if _, _, err := DeconstructDenom(m.Denom); err != nil {
		return err
	}
	return nil
}

func (m MsgChangeAdmin) GetSigner() string { return m.Sender }

type MsgChangeAdminResponse struct{}

// MsgSetDenomMetadata replaces the bank metadata of Metadata.Base.
type MsgSetDenomMetadata struct {
	Sender   string             `json:"sender"`
	Metadata banktypes.Metadata `json:"metadata"`
}

func (m MsgSetDenomMetadata) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Sender); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "Invalid sender address (%s)", err)
	}
	if err := m.Metadata.Validate(); err != nil {
		return sdkerrors.Wrap(ErrInvalidDenom, err.Error())
	}
	if _, _, err := DeconstructDenom(m.Metadata.Base); err != nil {
		return err
	}
	return nil
}

func (m MsgSetDenomMetadata) GetSigner() string { return m.Sender }

type MsgSetDenomMetadataResponse struct{}

// MsgUpdateParams replaces the tokenfactory params. Authority must be
// gov.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

func (m MsgUpdateParams) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Authority); err != nil {
		return sdkerrors.Wrap(err, "invalid authority address")
	}
	return m.Params.Validate()
}

func (m MsgUpdateParams) GetSigner() string { return m.Authority }

type MsgUpdateParamsResponse struct{}
