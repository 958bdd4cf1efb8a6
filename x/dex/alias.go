package dex

import (
	"github.com/okx/testtube/x/dex/keeper"
	"github.com/okx/testtube/x/dex/types"
)

const (
	ModuleName = types.ModuleName
	StoreKey   = types.StoreKey
)

var (
	NewKeeper = keeper.NewKeeper
	NewPairID = types.NewPairID
)

type (
	Keeper             = keeper.Keeper
	MsgPlaceLimitOrder = types.MsgPlaceLimitOrder
)
