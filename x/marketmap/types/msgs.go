package types

import (
	sdk "github.com/okx/testtube/types"
	sdkerrors "github.com/okx/testtube/types/errors"
)

// MsgCreateMarkets adds markets. Authority must be a market authority.
type MsgCreateMarkets struct {
	Authority     string   `json:"authority"`
	CreateMarkets []Market `json:"create_markets"`
}

func (m MsgCreateMarkets) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Authority); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority (%s)", err)
	}
	return validateMarkets(m.CreateMarkets)
}

func (m MsgCreateMarkets) GetSigner() string { return m.Authority }

type MsgCreateMarketsResponse struct{}

// MsgUpdateMarkets replaces existing markets.
type MsgUpdateMarkets struct {
	Authority     string   `json:"authority"`
	UpdateMarkets []Market `json:"update_markets"`
}

func (m MsgUpdateMarkets) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Authority); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority (%s)", err)
	}
	return validateMarkets(m.UpdateMarkets)
}

func (m MsgUpdateMarkets) GetSigner() string { return m.Authority }

type MsgUpdateMarketsResponse struct{}

func validateMarkets(markets []Market) error {
	if len(markets) == 0 {
		return sdkerrors.Wrap(ErrInvalidMarket, "no markets")
	}
	seen := make(map[string]struct{}, len(markets))
	for _, market := range markets {
		if err := market.ValidateBasic(); err != nil {
			return sdkerrors.Wrap(ErrInvalidMarket, err.Error())
		}
		if _, ok := seen[market.Ticker.String()]; ok {
			return sdkerrors.Wrapf(ErrInvalidMarket, "duplicate market %s", market.Ticker)
		}
		seen[market.Ticker.String()] = struct{}{}
	}
	return nil
}

// MsgRemoveMarketAuthorities drops addresses from the market authorities.
// Admin must be the market map admin.
type MsgRemoveMarketAuthorities struct {
	RemoveAddresses []string `json:"remove_addresses"`
	Admin           string   `json:"admin"`
}

func (m MsgRemoveMarketAuthorities) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Admin); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid admin (%s)", err)
	}
	if len(m.RemoveAddresses) == 0 {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "no addresses to remove")
	}
	for _, addr := range m.RemoveAddresses {
		if err := sdk.ValidateAddress(addr); err != nil {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid address (%s)", err)
		}
	}
	return nil
}

func (m MsgRemoveMarketAuthorities) GetSigner() string { return m.Admin }

type MsgRemoveMarketAuthoritiesResponse struct{}

// MsgParams replaces the module params. Authority must be gov.
type MsgParams struct {
	Params    Params `json:"params"`
	Authority string `json:"authority"`
}

func (m MsgParams) ValidateBasic() error {
	if err := sdk.ValidateAddress(m.Authority); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority (%s)", err)
	}
	if err := m.Params.Validate(); err != nil {
		return sdkerrors.Wrap(ErrInvalidParams, err.Error())
	}
	return nil
}

func (m MsgParams) GetSigner() string { return m.Authority }

type MsgParamsResponse struct{}
