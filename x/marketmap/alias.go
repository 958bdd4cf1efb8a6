package marketmap

import (
	"github.com/okx/testtube/x/marketmap/keeper"
	"github.com/okx/testtube/x/marketmap/types"
)

const (
	ModuleName = types.ModuleName
	StoreKey   = types.StoreKey
)

var (
	NewKeeper     = keeper.NewKeeper
	DefaultParams = types.DefaultParams
)

type (
	Keeper           = keeper.Keeper
	Market           = types.Market
	Ticker           = types.Ticker
	ProviderConfig   = types.ProviderConfig
	MsgCreateMarkets = types.MsgCreateMarkets
)
