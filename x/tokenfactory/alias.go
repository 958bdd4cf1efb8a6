package tokenfactory

import (
	"github.com/okx/testtube/x/tokenfactory/keeper"
	"github.com/okx/testtube/x/tokenfactory/types"
)

const (
	ModuleName = types.ModuleName
	StoreKey   = types.StoreKey
)

var (
	NewKeeper     = keeper.NewKeeper
	GetTokenDenom = types.GetTokenDenom
)

type (
	Keeper         = keeper.Keeper
	MsgCreateDenom = types.MsgCreateDenom
)
