package types

import (
	sdk "github.com/okx/testtube/types"
	oracletypes "github.com/okx/testtube/x/oracle/types"
)

const (
	// ModuleName is the name of the marketmap module.
	ModuleName = "marketmap"

	// StoreKey is the store key of the marketmap module.
	StoreKey = sdk.StoreKey(ModuleName)

	// QueryPath is the prefix of marketmap query routes.
	QueryPath = "/slinky.marketmap.v1.Query/"

	TypeURLMsgCreateMarkets           = "/slinky.marketmap.v1.MsgCreateMarkets"
	TypeURLMsgUpdateMarkets           = "/slinky.marketmap.v1.MsgUpdateMarkets"
	TypeURLMsgRemoveMarketAuthorities = "/slinky.marketmap.v1.MsgRemoveMarketAuthorities"
	TypeURLMsgParams                  = "/slinky.marketmap.v1.MsgParams"
	ParamsTypeURL                     = "/slinky.marketmap.v1.Params"
)

var (
	MarketsPrefix  = []byte{0x01}
	LastUpdatedKey = []byte{0x02}
	ParamsKey      = []byte{0x03}
)

// MarketKey returns the state key of the market for cp.
func MarketKey(cp oracletypes.CurrencyPair) []byte {
	return append(append([]byte{}, MarketsPrefix...), []byte(cp.String())...)
}
