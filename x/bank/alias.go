package bank

import (
	"github.com/okx/testtube/x/bank/keeper"
	"github.com/okx/testtube/x/bank/types"
)

const (
	ModuleName = types.ModuleName
	StoreKey   = types.StoreKey
)

var (
	NewBaseKeeper = keeper.NewBaseKeeper
	DefaultParams = types.DefaultParams
)

type (
	BaseKeeper = keeper.BaseKeeper
	MsgSend    = types.MsgSend
	Metadata   = types.Metadata
	DenomUnit  = types.DenomUnit
)
