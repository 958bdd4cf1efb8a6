package oracle

import (
	"github.com/okx/testtube/x/oracle/keeper"
	"github.com/okx/testtube/x/oracle/types"
)

const (
	ModuleName = types.ModuleName
	StoreKey   = types.StoreKey
)

var (
	NewKeeper           = keeper.NewKeeper
	NewCurrencyPair     = types.NewCurrencyPair
	DefaultGenesisState = types.DefaultGenesisState
)

type (
	Keeper       = keeper.Keeper
	CurrencyPair = types.CurrencyPair
	QuotePrice   = types.QuotePrice
)
